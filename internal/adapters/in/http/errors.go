package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fastroute/internal/core/application/simulation"
	"fastroute/internal/core/domain/services"
	"fastroute/internal/pkg/errs"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFromError classifies a domain error chain into an HTTP status code.
// Every typed error in errs unwraps to one sentinel, so errors.Is is enough.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrRateLimitExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, simulation.ErrSimulationAlreadyRunning):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, services.ErrNoRouteFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status and writes the JSON error body.
// Internal errors are logged with their cause but answered with a generic
// message so storage details never leak to clients.
func (s *Server) writeError(ctx echo.Context, err error) error {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(status, ErrorResponse{
			Code:    status,
			Message: "internal server error",
		})
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}

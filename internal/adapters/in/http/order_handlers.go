package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"fastroute/internal/core/application/usecases/commands"
	"fastroute/internal/core/application/usecases/queries"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/core/domain/model/order"
	"fastroute/internal/pkg/errs"
)

// orderIDFromPath parses the :id path parameter as an order UUID.
func orderIDFromPath(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return id, nil
}

func (s *Server) getAllOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.FilterAll)
}

func (s *Server) getPendingOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.FilterPending)
}

func (s *Server) getActiveOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.FilterActive)
}

func (s *Server) listOrders(ctx echo.Context, filter queries.OrderFilter) error {
	query, err := queries.NewGetOrdersQuery(filter)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.deps.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderListJSONFrom(orders))
}

func (s *Server) getOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.deps.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderJSONFrom(result))
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerAddress string `json:"customer_address"`
	RestaurantID    string `json:"restaurant_id"`
	DeliveryX       int    `json:"delivery_x"`
	DeliveryY       int    `json:"delivery_y"`
}

// OrderCreatedResponse reports a placed order. BotAssigned is null when
// the fleet was full and the order stayed pending.
type OrderCreatedResponse struct {
	Message     string  `json:"message"`
	OrderID     string  `json:"order_id"`
	Address     string  `json:"address"`
	BotAssigned *string `json:"bot_assigned"`
}

func (s *Server) createOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("requestBody", err))
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("restaurantId", err))
	}

	// Bounds are checked before the int8 narrowing so huge values cannot
	// wrap into the valid range.
	if req.DeliveryX < 0 || req.DeliveryX >= kernel.GridSize ||
		req.DeliveryY < 0 || req.DeliveryY >= kernel.GridSize {
		return s.writeError(ctx, errs.NewValueIsOutOfRangeError(
			"deliveryLocation", fmt.Sprintf("(%d, %d)", req.DeliveryX, req.DeliveryY), 0, kernel.GridSize-1,
		))
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		req.CustomerName,
		req.CustomerAddress,
		restaurantID,
		kernel.Coordinate(req.DeliveryX),
		kernel.Coordinate(req.DeliveryY),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.deps.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{
		Message:     "Order created!",
		OrderID:     result.OrderID,
		Address:     result.CustomerAddress,
		BotAssigned: result.AssignedBotName,
	})
}

func (s *Server) updateOrderStatus(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	status, err := order.ParseStatus(ctx.Param("status"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.deps.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Order %s status updated to %s", orderID, status),
	})
}

func (s *Server) cancelOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.deps.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Order %s cancelled", orderID),
	})
}

func (s *Server) deleteOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.deps.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Order %s deleted", orderID),
	})
}

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/order"
	"fastroute/internal/core/ports"
)

// SnapshotSource delivers fleet snapshots on the broadcast cadence.
// The broadcast job publishes one consistent snapshot per interval; every
// stream client subscribes here instead of reading storage itself.
type SnapshotSource interface {
	Subscribe() (<-chan ports.FleetSnapshot, func())
}

// StreamOrderJSON is the trimmed order view pushed on the event stream.
type StreamOrderJSON struct {
	ID             string `json:"id"`
	CustomerName   string `json:"customer_name"`
	Status         string `json:"status"`
	BotID          *int   `json:"bot_id"`
	PickupNodeID   int    `json:"pickup_node_id"`
	DeliveryNodeID int    `json:"delivery_node_id"`
	RestaurantID   string `json:"restaurant_id"`
}

// StreamBotJSON is the trimmed bot view pushed on the event stream.
type StreamBotJSON struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	CurrentX    int    `json:"current_x"`
	CurrentY    int    `json:"current_y"`
	OrdersCount int    `json:"orders_count"`
}

// StreamEventJSON is one server-sent event payload.
type StreamEventJSON struct {
	Type      string            `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Orders    []StreamOrderJSON `json:"orders"`
	Bots      []StreamBotJSON   `json:"bots"`
}

func streamEventFrom(snapshot ports.FleetSnapshot, now time.Time) StreamEventJSON {
	orders := make([]StreamOrderJSON, len(snapshot.ActiveOrders))
	for i, o := range snapshot.ActiveOrders {
		orders[i] = streamOrderJSONFrom(o)
	}

	bots := make([]StreamBotJSON, len(snapshot.Bots))
	for i, b := range snapshot.Bots {
		bots[i] = streamBotJSONFrom(b)
	}

	return StreamEventJSON{
		Type:      "update",
		Timestamp: now,
		Orders:    orders,
		Bots:      bots,
	}
}

func streamOrderJSONFrom(o *order.Order) StreamOrderJSON {
	var botID *int
	if o.BotID() != nil {
		id := int(*o.BotID())
		botID = &id
	}

	return StreamOrderJSON{
		ID:             o.ID().String(),
		CustomerName:   o.CustomerName(),
		Status:         o.Status().String(),
		BotID:          botID,
		PickupNodeID:   int(o.PickupNodeID()),
		DeliveryNodeID: int(o.DeliveryNodeID()),
		RestaurantID:   o.RestaurantID().String(),
	}
}

func streamBotJSONFrom(b *bot.Bot) StreamBotJSON {
	return StreamBotJSON{
		ID:          int(b.ID()),
		Name:        b.Name(),
		Status:      b.Status().String(),
		CurrentX:    int(b.Location().X()),
		CurrentY:    int(b.Location().Y()),
		OrdersCount: b.ActiveOrders(),
	}
}

// streamOrders pushes fleet snapshots as server-sent events until the
// client disconnects. The broadcaster buffers the latest snapshot, so a
// fresh client gets its first event immediately.
func (s *Server) streamOrders(ctx echo.Context) error {
	response := ctx.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set(echo.HeaderCacheControl, "no-cache")
	response.Header().Set(echo.HeaderConnection, "keep-alive")
	response.WriteHeader(http.StatusOK)

	events, unsubscribe := s.deps.Snapshots.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Request().Context().Done():
			return nil
		case snapshot := <-events:
			if err := writeSnapshotEvent(ctx, snapshot); err != nil {
				// The write failing means the client is gone.
				return nil
			}
		}
	}
}

func writeSnapshotEvent(ctx echo.Context, snapshot ports.FleetSnapshot) error {
	payload, err := json.Marshal(streamEventFrom(snapshot, time.Now().UTC()))
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(ctx.Response(), "data: %s\n\n", payload); err != nil {
		return err
	}
	ctx.Response().Flush()

	return nil
}

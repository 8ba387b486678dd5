package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/sweetdelights/bakery/app/services"
	"github.com/sweetdelights/bakery/pkg/event"
	"github.com/sweetdelights/bakery/pkg/logger"
	"github.com/sweetdelights/bakery/pkg/ws"
)

// StreamController relays order lifecycle events to connected admin
// dashboards over WebSocket.
type StreamController struct {
	hub *ws.Hub
}

// NewStreamController starts the hub and subscribes it to the order events.
func NewStreamController() *StreamController {
	hub := ws.NewHub()
	go hub.Run()

	for _, name := range []string{
		services.EventOrderCreated,
		services.EventOrderUpdated,
		services.EventOrderDeleted,
	} {
		name := name
		event.Listen(name, func(payload interface{}) {
			msg, err := json.Marshal(map[string]interface{}{
				"event": name,
				"data":  payload,
			})
			if err != nil {
				logger.Error("stream: encode event failed", "event", name, "error", err)
				return
			}
			hub.Broadcast <- msg
		})
	}
	return &StreamController{hub: hub}
}

// Orders handles GET /api/orders/stream (admin only).
func (c *StreamController) Orders(w http.ResponseWriter, r *http.Request) {
	ws.Upgrade(w, r, c.hub)
}

package api

import (
	"net/http"
	"time"

	resdto "drop-arbiter/internal/handler/dto/response"
	"drop-arbiter/internal/handler/httperr"
	"drop-arbiter/internal/handler/middleware"
	"drop-arbiter/internal/infra/broadcast"

	"github.com/gin-gonic/gin"
)

const defaultHeartbeat = 15 * time.Second

type EventsHandler struct {
	hub       *broadcast.Hub
	heartbeat time.Duration
}

func NewEventsHandler(hub *broadcast.Hub) *EventsHandler {
	return &EventsHandler{hub: hub, heartbeat: defaultHeartbeat}
}

// @Summary Operator event stream
// @Description Server-sent events for the authenticated operator. Events are not replayed; a slow client is disconnected and must reconnect.
// @Tags events
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {object} resdto.EventResponse
// @Router /api/events/stream [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	sub, err := h.hub.Subscribe(operatorID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Event stream unavailable")
		return
	}
	defer sub.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, open := <-sub.Events():
			if !open {
				return
			}
			c.SSEvent(string(ev.Type), resdto.FromEvent(ev))
			c.Writer.Flush()
		case <-ticker.C:
			if _, err := c.Writer.WriteString(": ping\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}

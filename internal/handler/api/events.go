package api

import (
	"io"
	"time"

	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const keepAliveInterval = 25 * time.Second

type EventsHandler struct {
	feed queries.ChangeFeed
}

func NewEventsHandler(feed queries.ChangeFeed) *EventsHandler {
	return &EventsHandler{feed: feed}
}

// @Summary Change stream
// @Description Server-sent events carrying the cache tags touched by each write. Clients refetch what they show.
// @Tags events
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {object} queries.Change
// @Router /api/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	changes, stop := h.feed.Subscribe(c.Request.Context())
	defer stop()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(_ io.Writer) bool {
		select {
		case change, ok := <-changes:
			if !ok {
				return false
			}
			c.SSEvent("change", change)
			return true
		case <-keepAlive.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

package handlers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/broadcast"
	"github.com/SscSPs/forex_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	rateUpdateEvent = "rates:update"
	heartbeatEvent  = "ping"
)

// RateSubscriber hands out rate snapshot streams. *broadcast.Hub implements it.
type RateSubscriber interface {
	Subscribe(ctx context.Context) (<-chan broadcast.RateSnapshot, func(), error)
}

type rateStreamHandler struct {
	hub       RateSubscriber
	heartbeat time.Duration
}

func newRateStreamHandler(hub RateSubscriber, heartbeat time.Duration) *rateStreamHandler {
	return &rateStreamHandler{hub: hub, heartbeat: heartbeat}
}

// streamRates godoc
// @Summary Stream live rates
// @Description Server-Sent Events stream of active rates. The current snapshot is sent on connect,
// @Description then again on every broadcast tick and after every rate change.
// @Tags rates
// @Produce text/event-stream
// @Success 200 {object} broadcast.RateSnapshot "rates:update events"
// @Failure 500 {object} dto.ErrorResponse "Failed to load rates"
// @Router /rates/stream [get]
func (h *rateStreamHandler) streamRates(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	snapshots, unsubscribe, err := h.hub.Subscribe(ctx)
	if err != nil {
		respondError(c, err, "Failed to load rates")
		return
	}
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	logger.Info("Rate stream opened")
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case snapshot, ok := <-snapshots:
			if !ok {
				return false
			}
			c.SSEvent(rateUpdateEvent, snapshot)
			return true
		case t := <-heartbeat.C:
			c.SSEvent(heartbeatEvent, t.UTC().Format(time.RFC3339))
			return true
		}
	})
	logger.Info("Rate stream closed", slog.Bool("client_gone", ctx.Err() != nil))
}

package broadcast

import (
	"context"
	"log/slog"

	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RatesChangedChannel is the Redis pub/sub channel shared by all instances.
const RatesChangedChannel = "forex:rates:changed"

// RedisRelay spreads rate-change notifications across instances. Each instance
// publishes its own mutations and triggers its local hub for everyone else's.
type RedisRelay struct {
	client     *redis.Client
	hub        *Hub
	logger     *slog.Logger
	instanceID string
}

// NewRedisRelay creates a relay for hub over client.
func NewRedisRelay(client *redis.Client, hub *Hub, logger *slog.Logger) *RedisRelay {
	return &RedisRelay{
		client:     client,
		hub:        hub,
		logger:     logger,
		instanceID: uuid.NewString(),
	}
}

var _ portssvc.RateChangeNotifier = (*RedisRelay)(nil)

// NotifyRatesChanged triggers the local hub and tells the other instances.
// A failed publish only affects remote subscribers, so it is logged and ignored.
func (r *RedisRelay) NotifyRatesChanged(ctx context.Context) {
	r.hub.Trigger()
	if err := r.client.Publish(ctx, RatesChangedChannel, r.instanceID).Err(); err != nil {
		r.logger.Warn("Failed to publish rate change", slog.String("channel", RatesChangedChannel), slog.String("error", err.Error()))
	}
}

// Listen triggers the local hub for every change published by another instance until ctx is done.
func (r *RedisRelay) Listen(ctx context.Context) error {
	pubsub := r.client.Subscribe(ctx, RatesChangedChannel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}
	r.logger.Info("Listening for rate changes", slog.String("channel", RatesChangedChannel))

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			if msg.Payload == r.instanceID {
				continue
			}
			r.hub.Trigger()
		}
	}
}

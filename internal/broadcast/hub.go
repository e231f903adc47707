package broadcast

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	DefaultInterval   = 30 * time.Second
	DefaultBufferSize = 4
)

// RatesSource loads the active rates a snapshot is built from.
type RatesSource interface {
	ListActiveRates(ctx context.Context) ([]domain.Rate, error)
}

// Hub fans rate snapshots out to subscribers on a fixed tick and whenever Trigger is called.
// It never blocks on a subscriber: a full subscriber buffer loses its oldest snapshot.
type Hub struct {
	source     RatesSource
	logger     *slog.Logger
	metrics    *Metrics
	interval   time.Duration
	bufferSize int
	now        func() time.Time

	trigger chan struct{}

	mu          sync.Mutex
	subscribers map[uint64]chan RateSnapshot
	nextID      uint64
}

// Option configures a Hub.
type Option func(*Hub)

// WithInterval sets the periodic broadcast interval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(h *Hub) {
		if d > 0 {
			h.interval = d
		}
	}
}

// WithBufferSize sets how many snapshots each subscriber may have queued.
func WithBufferSize(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.bufferSize = n
		}
	}
}

// WithMetrics replaces the hub's private metrics with registered ones.
func WithMetrics(m *Metrics) Option {
	return func(h *Hub) {
		if m != nil {
			h.metrics = m
		}
	}
}

// WithClock overrides the snapshot timestamp source.
func WithClock(now func() time.Time) Option {
	return func(h *Hub) {
		h.now = now
	}
}

// NewHub creates a hub reading from source. Call Run to start periodic broadcasts.
func NewHub(source RatesSource, logger *slog.Logger, opts ...Option) *Hub {
	h := &Hub{
		source:      source,
		logger:      logger,
		interval:    DefaultInterval,
		bufferSize:  DefaultBufferSize,
		now:         func() time.Time { return time.Now().UTC() },
		trigger:     make(chan struct{}, 1),
		subscribers: make(map[uint64]chan RateSnapshot),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.metrics == nil {
		h.metrics = NewMetrics(prometheus.NewRegistry())
	}
	return h
}

var _ portssvc.RateChangeNotifier = (*Hub)(nil)

// Subscribe registers a subscriber and queues the current snapshot before returning.
// The subscriber is registered before the store is read, so a broadcast racing the
// initial load is delivered; the initial snapshot is then skipped as older.
// The stream is closed by the returned cancel func or when ctx ends.
func (h *Hub) Subscribe(ctx context.Context) (<-chan RateSnapshot, func(), error) {
	ch := make(chan RateSnapshot, h.bufferSize)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subscribers[id] = ch
	h.mu.Unlock()

	snapshot, err := h.load(ctx)
	if err != nil {
		h.mu.Lock()
		delete(h.subscribers, id)
		h.mu.Unlock()
		return nil, nil, err
	}

	h.mu.Lock()
	if len(ch) == 0 {
		ch <- snapshot
	}
	count := len(h.subscribers)
	h.mu.Unlock()

	h.metrics.subscribers.Inc()
	h.metrics.broadcasts.WithLabelValues(reasonSubscribe).Inc()
	h.logger.Debug("Rate stream subscriber added", slog.Uint64("subscriber_id", id), slog.Int("subscribers", count))

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, id)
			close(ch)
			h.mu.Unlock()
			h.metrics.subscribers.Dec()
			h.logger.Debug("Rate stream subscriber removed", slog.Uint64("subscriber_id", id))
		})
	}
	go func() {
		<-ctx.Done()
		cancel()
	}()

	return ch, cancel, nil
}

// SubscriberCount returns the number of live subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Trigger requests a broadcast. It never blocks; triggers that arrive while one is
// already pending collapse into it.
func (h *Hub) Trigger() {
	select {
	case h.trigger <- struct{}{}:
	default:
	}
}

// NotifyRatesChanged triggers a broadcast after a rate mutation.
func (h *Hub) NotifyRatesChanged(_ context.Context) {
	h.Trigger()
}

// Run broadcasts on every tick and every trigger until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.logger.Info("Rate broadcast hub started", slog.Duration("interval", h.interval))
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Rate broadcast hub stopped")
			return
		case <-ticker.C:
			h.broadcast(ctx, reasonTick)
		case <-h.trigger:
			h.broadcast(ctx, reasonTrigger)
		}
	}
}

func (h *Hub) load(ctx context.Context) (RateSnapshot, error) {
	rates, err := h.source.ListActiveRates(ctx)
	if err != nil {
		h.metrics.failures.Inc()
		return RateSnapshot{}, fmt.Errorf("failed to load rate snapshot: %w", err)
	}
	return newSnapshot(rates, h.now()), nil
}

// broadcast reads the store at send time so the latest committed rates win.
func (h *Hub) broadcast(ctx context.Context, reason string) {
	if h.SubscriberCount() == 0 {
		return
	}

	snapshot, err := h.load(ctx)
	if err != nil {
		h.logger.Error("Rate broadcast skipped", slog.String("reason", reason), slog.String("error", err.Error()))
		return
	}

	h.mu.Lock()
	for _, ch := range h.subscribers {
		if h.offer(ch, snapshot) {
			h.metrics.dropped.Inc()
		}
	}
	count := len(h.subscribers)
	h.mu.Unlock()

	h.metrics.broadcasts.WithLabelValues(reason).Inc()
	h.logger.Debug("Rate snapshot broadcast", slog.String("reason", reason), slog.Int("subscribers", count), slog.Int("rates", len(snapshot.Rates)))
}

// offer queues snapshot on ch, discarding the oldest queued snapshot when ch is full.
// Must be called with h.mu held. Reports whether a snapshot was dropped.
func (h *Hub) offer(ch chan RateSnapshot, snapshot RateSnapshot) bool {
	dropped := false
	for {
		select {
		case ch <- snapshot:
			return dropped
		default:
		}
		select {
		case <-ch:
			dropped = true
		default:
		}
	}
}

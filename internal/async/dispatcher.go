package async

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	DefaultWorkers    = 4
	DefaultQueueSize  = 256
	DefaultJobTimeout = 10 * time.Second
)

// ErrDispatcherStopped is returned by Shutdown when called twice.
var ErrDispatcherStopped = errors.New("dispatcher already stopped")

// job outcomes used as metric labels
const (
	outcomeOK      = "ok"
	outcomeError   = "error"
	outcomePanic   = "panic"
	outcomeDropped = "dropped"
)

type job struct {
	name string
	fn   func(ctx context.Context) error
}

// Dispatcher runs best-effort jobs on a fixed pool of workers fed by a bounded queue.
// Jobs are never retried; failures are logged and counted.
type Dispatcher struct {
	logger     *slog.Logger
	queue      chan job
	workers    int
	jobTimeout time.Duration
	jobs       *prometheus.CounterVec

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
	once    sync.Once
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithRegisterer registers the job counter on reg instead of a private registry.
func WithRegisterer(reg prometheus.Registerer) DispatcherOption {
	return func(d *Dispatcher) {
		d.jobs = newJobCounter(reg)
	}
}

// NewDispatcher creates a dispatcher. Non-positive sizes fall back to the defaults.
func NewDispatcher(workers, queueSize int, jobTimeout time.Duration, logger *slog.Logger, opts ...DispatcherOption) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if jobTimeout <= 0 {
		jobTimeout = DefaultJobTimeout
	}
	d := &Dispatcher{
		logger:     logger,
		queue:      make(chan job, queueSize),
		workers:    workers,
		jobTimeout: jobTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.jobs == nil {
		d.jobs = newJobCounter(prometheus.NewRegistry())
	}
	return d
}

func newJobCounter(reg prometheus.Registerer) *prometheus.CounterVec {
	return promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Namespace: "forex",
		Subsystem: "dispatcher",
		Name:      "jobs_total",
		Help:      "Background jobs by name and outcome",
	}, []string{"job", "outcome"})
}

var _ portssvc.JobSubmitter = (*Dispatcher)(nil)

// Start launches the workers.
func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work(i)
	}
	d.logger.Info("Dispatcher started", slog.Int("workers", d.workers), slog.Int("queue_size", cap(d.queue)))
}

// Submit enqueues fn without blocking. It returns false when the queue is full or the
// dispatcher is shutting down; the job is then dropped.
func (d *Dispatcher) Submit(name string, fn func(ctx context.Context) error) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		d.jobs.WithLabelValues(name, outcomeDropped).Inc()
		d.logger.Warn("Job dropped, dispatcher stopped", slog.String("job", name))
		return false
	}

	select {
	case d.queue <- job{name: name, fn: fn}:
		return true
	default:
		d.jobs.WithLabelValues(name, outcomeDropped).Inc()
		d.logger.Warn("Job dropped, queue full", slog.String("job", name), slog.Int("queue_size", cap(d.queue)))
		return false
	}
}

// Shutdown stops accepting jobs and waits for queued ones to finish or ctx to end.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	err := ErrDispatcherStopped
	d.once.Do(func() {
		err = nil
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()
	})
	if err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("Dispatcher drained")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("dispatcher shutdown: %w", ctx.Err())
	}
}

func (d *Dispatcher) work(id int) {
	defer d.wg.Done()
	for j := range d.queue {
		d.run(id, j)
	}
}

func (d *Dispatcher) run(worker int, j job) {
	ctx, cancel := context.WithTimeout(context.Background(), d.jobTimeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			d.jobs.WithLabelValues(j.name, outcomePanic).Inc()
			d.logger.Error("Job panicked", slog.String("job", j.name), slog.Int("worker", worker), slog.Any("panic", r))
		}
	}()

	if err := j.fn(ctx); err != nil {
		d.jobs.WithLabelValues(j.name, outcomeError).Inc()
		d.logger.Error("Job failed", slog.String("job", j.name), slog.Int("worker", worker), slog.Duration("elapsed", time.Since(start)), slog.String("error", err.Error()))
		return
	}
	d.jobs.WithLabelValues(j.name, outcomeOK).Inc()
	d.logger.Debug("Job done", slog.String("job", j.name), slog.Int("worker", worker), slog.Duration("elapsed", time.Since(start)))
}

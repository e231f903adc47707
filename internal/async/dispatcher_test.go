package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcher_RunsSubmittedJobs(t *testing.T) {
	d := NewDispatcher(2, 8, time.Second, discardLogger())
	d.Start()

	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		require.True(t, d.Submit("count", func(ctx context.Context) error {
			ran.Add(1)
			return nil
		}))
	}

	require.NoError(t, d.Shutdown(context.Background()))
	assert.Equal(t, int32(5), ran.Load())
	assert.Equal(t, 5.0, testutil.ToFloat64(d.jobs.WithLabelValues("count", outcomeOK)))
}

func TestDispatcher_SubmitNeverBlocksWhenFull(t *testing.T) {
	d := NewDispatcher(1, 1, time.Second, discardLogger())
	// no workers started, so the queue fills up

	assert.True(t, d.Submit("first", func(ctx context.Context) error { return nil }))

	done := make(chan bool)
	go func() { done <- d.Submit("second", func(ctx context.Context) error { return nil }) }()

	select {
	case accepted := <-done:
		assert.False(t, accepted)
	case <-time.After(time.Second):
		t.Fatal("Submit blocked on a full queue")
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(d.jobs.WithLabelValues("second", outcomeDropped)))
}

func TestDispatcher_RecoversFromPanicsAndErrors(t *testing.T) {
	d := NewDispatcher(1, 4, time.Second, discardLogger())
	d.Start()

	var after atomic.Bool
	d.Submit("boom", func(ctx context.Context) error { panic("boom") })
	d.Submit("fail", func(ctx context.Context) error { return errors.New("smtp down") })
	d.Submit("after", func(ctx context.Context) error {
		after.Store(true)
		return nil
	})

	require.NoError(t, d.Shutdown(context.Background()))
	assert.True(t, after.Load(), "worker must survive a panicking job")
	assert.Equal(t, 1.0, testutil.ToFloat64(d.jobs.WithLabelValues("boom", outcomePanic)))
	assert.Equal(t, 1.0, testutil.ToFloat64(d.jobs.WithLabelValues("fail", outcomeError)))
}

func TestDispatcher_JobTimeout(t *testing.T) {
	d := NewDispatcher(1, 1, 20*time.Millisecond, discardLogger())
	d.Start()

	var ctxErr atomic.Value
	d.Submit("slow", func(ctx context.Context) error {
		<-ctx.Done()
		ctxErr.Store(ctx.Err())
		return ctx.Err()
	})

	require.NoError(t, d.Shutdown(context.Background()))
	assert.ErrorIs(t, ctxErr.Load().(error), context.DeadlineExceeded)
}

func TestDispatcher_SubmitAfterShutdown(t *testing.T) {
	d := NewDispatcher(1, 1, time.Second, discardLogger())
	d.Start()
	require.NoError(t, d.Shutdown(context.Background()))

	assert.False(t, d.Submit("late", func(ctx context.Context) error { return nil }))
	assert.ErrorIs(t, d.Shutdown(context.Background()), ErrDispatcherStopped)
}

func TestDispatcher_ShutdownHonoursContext(t *testing.T) {
	d := NewDispatcher(1, 1, time.Second, discardLogger())
	d.Start()

	release := make(chan struct{})
	defer close(release)
	d.Submit("stuck", func(ctx context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Shutdown(ctx), context.DeadlineExceeded)
}

package jobs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorker_EnqueueAsync(t *testing.T) {
	w := NewWorker(2)

	var ran atomic.Int32
	done := make(chan struct{}, 3)
	for i := 0; i < 3; i++ {
		w.EnqueueAsync(func(ctx context.Context) error {
			ran.Add(1)
			done <- struct{}{}
			return nil
		})
	}
	for i := 0; i < 3; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("async job did not run")
		}
	}
	w.Shutdown()

	assert.Equal(t, int32(3), ran.Load())
	stats := w.GetStats()
	assert.Equal(t, int64(3), stats.CompletedJobs)
	assert.Zero(t, stats.ActiveJobs)
	assert.Equal(t, 10, stats.MaxConcurrent)
}

func TestWorker_FailuresAndPanics(t *testing.T) {
	w := NewWorker(1)

	var wg sync.WaitGroup
	wg.Add(2)
	w.EnqueueAsync(func(ctx context.Context) error {
		defer wg.Done()
		return errors.New("boom")
	})
	w.EnqueueAsync(func(ctx context.Context) error {
		defer wg.Done()
		panic("bad job")
	})
	wg.Wait()
	w.Shutdown()

	stats := w.GetStats()
	assert.Equal(t, int64(2), stats.FailedJobs)
	assert.Equal(t, int64(2), stats.CompletedJobs)
}

func TestWorker_Enqueue(t *testing.T) {
	w := NewWorker(2)
	done := make(chan struct{})
	w.Enqueue(func(ctx context.Context) error {
		close(done)
		return nil
	})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("queued job did not run")
	}
	w.Shutdown()
}

func TestWorker_ScheduleEveryImmediate(t *testing.T) {
	w := NewWorker(1)
	ran := make(chan struct{}, 1)
	w.ScheduleEveryImmediate("purge", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled job did not run at startup")
	}
	w.Shutdown()

	stats := w.GetStats()
	if assert.Len(t, stats.Scheduled, 1) {
		assert.Equal(t, "purge", stats.Scheduled[0].Name)
		assert.Equal(t, int64(1), stats.Scheduled[0].Runs)
		assert.NotNil(t, stats.Scheduled[0].LastRun)
	}
}

func TestWorker_ShutdownIsIdempotent(t *testing.T) {
	w := NewWorker(1)
	w.Shutdown()
	w.Shutdown()
	w.EnqueueAsync(func(ctx context.Context) error { return nil })
	assert.Error(t, w.Context().Err())
}

func TestForEach_BoundedConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int32
	results := make([]int, 20)

	ForEach(context.Background(), len(results), 4, func(ctx context.Context, i int) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		results[i] = i * i
		inFlight.Add(-1)
	})

	assert.LessOrEqual(t, peak.Load(), int32(4))
	for i, r := range results {
		assert.Equal(t, i*i, r)
	}
}

func TestForEach_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	ForEach(ctx, 10, 1, func(ctx context.Context, i int) { calls.Add(1) })
	assert.Zero(t, calls.Load())
}

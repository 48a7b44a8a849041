package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lanca/lanca-api/pkg/logger"
)

// Job represents a background task
type Job func(ctx context.Context) error

// Worker manages background jobs and scheduled tasks
type Worker struct {
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	queue         chan Job
	asyncSem      chan struct{}
	maxConcurrent int
	stats         WorkerStats
	scheduled     map[string]*ScheduledJob
	statsMu       sync.RWMutex
	closeOnce     sync.Once
}

// WorkerStats holds statistics about the worker. CompletedJobs counts every
// finished job; FailedJobs is the subset that returned an error or panicked.
type WorkerStats struct {
	ActiveJobs    int            `json:"active_jobs"`
	CompletedJobs int64          `json:"completed_jobs"`
	FailedJobs    int64          `json:"failed_jobs"`
	QueueLength   int            `json:"queue_length"`
	MaxConcurrent int            `json:"max_concurrent"`
	Scheduled     []ScheduledJob `json:"scheduled"`
}

// ScheduledJob describes a recurring job and its last run
type ScheduledJob struct {
	Name      string        `json:"name"`
	Interval  time.Duration `json:"interval"`
	LastRun   *time.Time    `json:"last_run,omitempty"`
	LastError string        `json:"last_error,omitempty"`
	Runs      int64         `json:"runs"`
}

// NewWorker creates a worker with N concurrent processors
func NewWorker(numWorkers int) *Worker {
	if numWorkers < 1 {
		numWorkers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	// async jobs get twice the pool size, at least 10
	asyncLimit := numWorkers * 2
	if asyncLimit < 10 {
		asyncLimit = 10
	}

	w := &Worker{
		ctx:           ctx,
		cancel:        cancel,
		queue:         make(chan Job, 100),
		asyncSem:      make(chan struct{}, asyncLimit),
		maxConcurrent: asyncLimit,
		scheduled:     map[string]*ScheduledJob{},
	}

	for i := 0; i < numWorkers; i++ {
		w.wg.Add(1)
		go w.process(i)
	}

	return w
}

// Enqueue adds a job to be processed by the worker pool
func (w *Worker) Enqueue(job Job) {
	if w.ctx.Err() != nil {
		return
	}
	select {
	case w.queue <- job:
	default:
		logger.Warn("[Worker] queue full, running job synchronously")
		w.run("queue", job)
	}
}

// EnqueueAsync runs a job in a new goroutine (fire-and-forget), bounded by semaphore
func (w *Worker) EnqueueAsync(job Job) {
	if w.ctx.Err() != nil {
		return
	}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		select {
		case w.asyncSem <- struct{}{}:
		case <-w.ctx.Done():
			return
		}
		defer func() { <-w.asyncSem }()

		w.run("async", job)
	}()
}

// process handles jobs from the queue
func (w *Worker) process(workerID int) {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case job := <-w.queue:
			w.run(fmt.Sprintf("worker %d", workerID), job)
		}
	}
}

// ScheduleEvery runs a named job at fixed intervals. The first run happens
// after the interval.
func (w *Worker) ScheduleEvery(name string, interval time.Duration, job Job) {
	w.schedule(name, interval, false, job)
}

// ScheduleEveryImmediate runs a named job once at startup, then at fixed
// intervals.
func (w *Worker) ScheduleEveryImmediate(name string, interval time.Duration, job Job) {
	w.schedule(name, interval, true, job)
}

func (w *Worker) schedule(name string, interval time.Duration, immediate bool, job Job) {
	w.statsMu.Lock()
	w.scheduled[name] = &ScheduledJob{Name: name, Interval: interval}
	w.statsMu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		if immediate {
			w.runScheduledJob(name, job)
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				w.runScheduledJob(name, job)
			}
		}
	}()
}

func (w *Worker) runScheduledJob(name string, job Job) {
	start := time.Now()
	err := w.run("scheduler:"+name, job)

	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	if s, ok := w.scheduled[name]; ok {
		s.Runs++
		s.LastRun = &start
		s.LastError = ""
		if err != nil {
			s.LastError = err.Error()
		}
	}
}

// run executes job with panic recovery and stats tracking
func (w *Worker) run(source string, job Job) (err error) {
	w.trackJobStart()
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil {
			logger.Error("[Worker] job failed", "source", source, "error", err)
			w.trackJobFailure()
		} else {
			logger.Debug("[Worker] job completed", "source", source, "duration", time.Since(start))
		}
		w.trackJobEnd()
	}()
	return job(w.ctx)
}

// Shutdown gracefully stops all workers and waits for running jobs
func (w *Worker) Shutdown() {
	w.closeOnce.Do(func() {
		w.cancel()
		w.wg.Wait()
	})
}

// Context returns the worker's context for checking cancellation
func (w *Worker) Context() context.Context {
	return w.ctx
}

// GetStats returns the current worker statistics
func (w *Worker) GetStats() WorkerStats {
	w.statsMu.RLock()
	defer w.statsMu.RUnlock()
	stats := w.stats
	stats.QueueLength = len(w.queue)
	stats.MaxConcurrent = w.maxConcurrent
	stats.Scheduled = make([]ScheduledJob, 0, len(w.scheduled))
	for _, s := range w.scheduled {
		stats.Scheduled = append(stats.Scheduled, *s)
	}
	return stats
}

func (w *Worker) trackJobStart() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.ActiveJobs++
}

func (w *Worker) trackJobEnd() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.ActiveJobs--
	w.stats.CompletedJobs++
}

func (w *Worker) trackJobFailure() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.FailedJobs++
}

package workers

import (
	"context"
	"sync"
	"time"
)

type Workers struct {
	mu      sync.Mutex
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add registers w. It is not started until the next Start.
func (w *Workers) Add(worker Worker) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.workers = append(w.workers, worker)
}

// Start starts every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.snapshot() {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse registration order.
func (w *Workers) Stop() {
	workers := w.snapshot()
	for i := len(workers) - 1; i >= 0; i-- {
		workers[i].Stop()
	}
}

func (w *Workers) snapshot() []Worker {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]Worker, len(w.workers))
	copy(out, w.workers)
	return out
}

// Every adapts job to [Worker], starting it with interval.
func Every(job IntervalJob, interval time.Duration) Worker {
	return &intervalWorker{job: job, interval: interval}
}

type intervalWorker struct {
	job      IntervalJob
	interval time.Duration
}

func (w *intervalWorker) Start(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *intervalWorker) Stop() {
	w.job.Stop()
}

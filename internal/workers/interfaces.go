// Package workers manages the background jobs of the library.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one.
package workers

import (
	"context"
	"time"
)

// Worker is a background job with an explicit lifecycle.
//
// Start must not block; Stop must block until the job has exited and must be
// safe to call on a worker that is not running.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go loop(ctx)
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// IntervalJob is a job started with an explicit period, such as the
// configuration refresh job.
type IntervalJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

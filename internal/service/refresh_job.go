package service

import (
	"context"
	"sync"
	"time"

	"github.com/Ahcene43/WAW/models"
)

const defaultRefreshInterval = 5 * time.Minute

// resolvable is the part of [ConfigResolver] the refresh job drives.
type resolvable interface {
	Resolve(ctx context.Context) models.Resolution
}

type refreshJob struct {
	resolver resolvable

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a [RefreshJob] over resolver. The job is idle until
// Start is called.
func NewRefreshJob(resolver ConfigResolver) RefreshJob {
	return &refreshJob{resolver: resolver}
}

// Start implements [RefreshJob]. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.resolver.Resolve(jobCtx)
			}
		}
	}()
}

// Stop implements [RefreshJob].
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

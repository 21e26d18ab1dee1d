// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahcene43/WAW/models"
)

// spyResolver counts Resolve calls.
type spyResolver struct {
	calls atomic.Int64
}

func (s *spyResolver) Resolve(context.Context) models.Resolution {
	s.calls.Add(1)
	return models.Resolution{}
}

// ── NewRefreshJob ───────────────────────────────────────────────────────────

func TestNewRefreshJob_ReturnsInterface(t *testing.T) {
	job := NewRefreshJob(nil)
	require.NotNil(t, job)

	var _ RefreshJob = job
}

// ── Start / Stop ────────────────────────────────────────────────────────────

func TestRefreshJob_Start_CallsResolve(t *testing.T) {
	spy := &spyResolver{}
	job := &refreshJob{resolver: spy}

	// 10ms interval: roughly 5 ticks in 55ms
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Resolve should run several times, ran %d", got)
}

func TestRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyResolver{}
	job := &refreshJob{resolver: spy}

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no Resolve after Stop")
}

func TestRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := &refreshJob{resolver: &spyResolver{}}
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_Stop_Twice_NoPanic(t *testing.T) {
	job := &refreshJob{resolver: &spyResolver{}}
	job.Start(context.Background(), 10*time.Millisecond)

	assert.NotPanics(t, func() {
		job.Stop()
		job.Stop()
	})
}

// TestRefreshJob_Restart verifies that a second Start replaces the first loop.
func TestRefreshJob_Restart(t *testing.T) {
	spy := &spyResolver{}
	job := &refreshJob{resolver: spy}

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(1))
}

// TestRefreshJob_ContextCancel verifies that cancelling the parent context
// ends the loop.
func TestRefreshJob_ContextCancel(t *testing.T) {
	spy := &spyResolver{}
	job := &refreshJob{resolver: spy}
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	cancel()
	time.Sleep(15 * time.Millisecond)

	callsAfterCancel := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterCancel, spy.calls.Load())

	job.Stop()
}

// TestRefreshJob_DefaultInterval verifies that a non-positive interval does
// not tick immediately.
func TestRefreshJob_DefaultInterval(t *testing.T) {
	spy := &spyResolver{}
	job := &refreshJob{resolver: spy}

	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.calls.Load())
}

package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/dashboard"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_DisabledJobIsSkipped(t *testing.T) {
	s := NewScheduler()
	s.AddJob("off", 0, func(ctx context.Context) error { return nil })
	s.AddJob("on", time.Minute, func(ctx context.Context) error { return nil })

	assert.Equal(t, []string{"on"}, s.Jobs())
}

func TestScheduler_RunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	s.Stop()

	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_RunOnceContinuesAfterFailure(t *testing.T) {
	s := NewScheduler()
	var second bool
	s.AddJob("fail", time.Minute, func(ctx context.Context) error { return errors.New("boom") })
	s.AddJob("ok", time.Minute, func(ctx context.Context) error {
		second = true
		return nil
	})

	s.RunOnce(context.Background())

	assert.True(t, second)
}

type fakeDashboard struct {
	calls atomic.Int32
	err   error
}

func (f *fakeDashboard) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	f.calls.Add(1)
	return dashboard.DashboardResponse{GeneratedAt: time.Date(2025, 9, 4, 8, 0, 0, 0, time.UTC)}, f.err
}

func TestDashboardPushJob_NoSubscribers(t *testing.T) {
	svc := &fakeDashboard{}
	job := NewDashboardPushJob(svc, sse.NewHub())

	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, int32(0), svc.calls.Load())
}

func TestDashboardPushJob_Broadcasts(t *testing.T) {
	svc := &fakeDashboard{}
	hub := sse.NewHub()
	ch, cleanup := hub.Subscribe("admin")
	defer cleanup()

	require.NoError(t, NewDashboardPushJob(svc, hub).Run(context.Background()))

	require.Len(t, ch, 1)
	got := <-ch
	assert.Equal(t, dashboard.EventSummaryUpdated, got.Event)
	assert.IsType(t, dashboard.DashboardResponse{}, got.Data)
}

func TestDashboardPushJob_PropagatesError(t *testing.T) {
	hub := sse.NewHub()
	_, cleanup := hub.Subscribe("admin")
	defer cleanup()
	svc := &fakeDashboard{err: errors.New("backend down")}

	assert.Error(t, NewDashboardPushJob(svc, hub).Run(context.Background()))
}

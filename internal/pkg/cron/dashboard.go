package cron

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/dashboard"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/sse"
)

const PushDashboardJobName = "push_dashboard_summary"

// Broadcaster is satisfied by *sse.Hub
type Broadcaster interface {
	Broadcast(event sse.Event) int
	TotalSubscribers() int
}

// DashboardPushJob recomputes the dashboard and broadcasts it to open
// SSE sessions. Nothing is fetched while no one is listening.
type DashboardPushJob struct {
	dashboardService dashboard.DashboardService
	hub              Broadcaster
}

func NewDashboardPushJob(dashboardService dashboard.DashboardService, hub Broadcaster) *DashboardPushJob {
	return &DashboardPushJob{
		dashboardService: dashboardService,
		hub:              hub,
	}
}

func (j *DashboardPushJob) Run(ctx context.Context) error {
	if j.hub.TotalSubscribers() == 0 {
		return nil
	}

	resp, err := j.dashboardService.GetDashboard(ctx)
	if err != nil {
		return err
	}

	delivered := j.hub.Broadcast(sse.Event{
		Event: dashboard.EventSummaryUpdated,
		Data:  resp,
	})
	slog.Debug("Dashboard summary pushed", "delivered", delivered)
	return nil
}

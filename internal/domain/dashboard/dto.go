package dashboard

import (
	"context"
	"time"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/report"
)

// EventSummaryUpdated is the SSE event name carrying a DashboardResponse.
const EventSummaryUpdated = "summary_updated"

type DeviceOverview struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type DashboardResponse struct {
	Today        report.DaySummary  `json:"today"`
	Devices      DeviceOverview     `json:"devices"`
	RecentEvents []attendance.Event `json:"recent_events"`
	GeneratedAt  time.Time          `json:"generated_at"`
}

type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

type DashboardService interface {
	GetDashboard(ctx context.Context) (DashboardResponse, error)
}

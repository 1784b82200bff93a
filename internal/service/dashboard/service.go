package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/dashboard"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/device"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/report"
	"golang.org/x/sync/errgroup"
)

const recentEventLimit = 10

type DashboardServiceImpl struct {
	reportService     report.ReportService
	deviceService     device.DeviceService
	attendanceService attendance.AttendanceService
	now               func() time.Time
}

func NewDashboardService(reportService report.ReportService, deviceService device.DeviceService, attendanceService attendance.AttendanceService) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		reportService:     reportService,
		deviceService:     deviceService,
		attendanceService: attendanceService,
		now:               time.Now,
	}
}

// GetDashboard gathers today's cards. Any failing source fails the whole
// dashboard; partial cards are never returned.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	var resp dashboard.DashboardResponse

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		today, err := s.reportService.DaySummary(gctx, "")
		if err != nil {
			return fmt.Errorf("today summary: %w", err)
		}
		resp.Today = today
		return nil
	})

	g.Go(func() error {
		devices, err := s.deviceService.List(gctx)
		if err != nil {
			return fmt.Errorf("devices: %w", err)
		}
		resp.Devices.Total = len(devices)
		for _, d := range devices {
			if d.IsActive {
				resp.Devices.Active++
			}
		}
		return nil
	})

	g.Go(func() error {
		events, err := s.attendanceService.ListEvents(gctx, attendance.EventFilter{Limit: recentEventLimit})
		if err != nil {
			return fmt.Errorf("recent events: %w", err)
		}
		resp.RecentEvents = events
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	resp.GeneratedAt = s.now().UTC()
	return resp, nil
}

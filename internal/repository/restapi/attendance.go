package restapi

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	client *Client
}

func NewAttendanceRepository(client *Client) attendance.EventSource {
	return &attendanceRepositoryImpl{client: client}
}

// ListEvents implements attendance.EventSource. The backend listing takes no
// filters; the whole table is returned and narrowed by the caller.
func (r *attendanceRepositoryImpl) ListEvents(ctx context.Context, filter attendance.EventFilter) ([]attendance.Event, error) {
	return r.list(ctx, r.client.url("attendance", ""), nil)
}

// ListDeviceHistory implements attendance.EventSource.
func (r *attendanceRepositoryImpl) ListDeviceHistory(ctx context.Context, deviceID string) ([]attendance.Event, error) {
	return r.list(ctx, r.client.url("attendance", "history", deviceID), attendance.ErrDeviceNotFound)
}

// ListEmployeeEvents implements attendance.EventSource.
func (r *attendanceRepositoryImpl) ListEmployeeEvents(ctx context.Context, employeeID string) ([]attendance.Event, error) {
	return r.list(ctx, r.client.url("attendance", "employee", employeeID), attendance.ErrEmployeeNotFound)
}

func (r *attendanceRepositoryImpl) list(ctx context.Context, endpoint string, notFound error) ([]attendance.Event, error) {
	var events []attendance.Event
	if err := r.client.getJSON(ctx, endpoint, &events); err != nil {
		if notFound != nil {
			return nil, notFoundAs(err, notFound)
		}
		return nil, err
	}

	kept := make([]attendance.Event, 0, len(events))
	for _, e := range events {
		if e.EmployeeID == "" {
			slog.Warn("Dropping attendance record without employee", "id", e.ID, "device_id", e.DeviceID)
			continue
		}
		kept = append(kept, e)
	}
	return kept, nil
}

package attendance

import "context"

// AttendanceService exposes raw recognition events.
type AttendanceService interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]Event, error)
	DeviceHistory(ctx context.Context, deviceID string) ([]Event, error)
	EmployeeEvents(ctx context.Context, employeeID string) ([]Event, error)
}

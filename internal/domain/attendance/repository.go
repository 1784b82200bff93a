package attendance

import "context"

// EventSource provides raw attendance events.
type EventSource interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]Event, error)
	ListDeviceHistory(ctx context.Context, deviceID string) ([]Event, error)
	ListEmployeeEvents(ctx context.Context, employeeID string) ([]Event, error)
}

package attendance

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	source   attendance.EventSource
	pipeline *Pipeline
}

func NewAttendanceService(source attendance.EventSource, pipeline *Pipeline) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		source:   source,
		pipeline: pipeline,
	}
}

// ListEvents returns raw events, newest first, restricted to the filter's
// civil date range when one is given.
func (s *AttendanceServiceImpl) ListEvents(ctx context.Context, filter attendance.EventFilter) ([]attendance.Event, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	events, err := s.source.ListEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}

	result := make([]attendance.Event, 0, len(events))
	for _, ev := range events {
		if filter.EmployeeID != "" && ev.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.DeviceID != "" && ev.DeviceID != filter.DeviceID {
			continue
		}
		if filter.StartDate != "" || filter.EndDate != "" {
			at, ok := s.pipeline.Normalizer().Normalize(ev.Timestamp)
			if !ok || !filter.InRange(at.Date) {
				continue
			}
		}
		result = append(result, ev)
	}

	s.sortNewestFirst(result)
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (s *AttendanceServiceImpl) DeviceHistory(ctx context.Context, deviceID string) ([]attendance.Event, error) {
	if !validator.IsValidCode(deviceID) {
		return nil, validator.ValidationErrors{{Field: "device_id", Message: "invalid device_id"}}
	}
	events, err := s.source.ListDeviceHistory(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get device history: %w", err)
	}
	s.sortNewestFirst(events)
	return events, nil
}

func (s *AttendanceServiceImpl) EmployeeEvents(ctx context.Context, employeeID string) ([]attendance.Event, error) {
	if !validator.IsValidCode(employeeID) {
		return nil, validator.ValidationErrors{{Field: "employee_id", Message: "invalid employee_id"}}
	}
	events, err := s.source.ListEmployeeEvents(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee attendance: %w", err)
	}
	s.sortNewestFirst(events)
	return events, nil
}

func (s *AttendanceServiceImpl) sortNewestFirst(events []attendance.Event) {
	sortNewestFirst(events, s.pipeline.Normalizer().Normalize)
}

type sortKey struct {
	event attendance.Event
	at    time.Time
	ok    bool
}

// sortNewestFirst orders by parsed instant; unparseable timestamps sink to the
// end. Each timestamp is normalized once.
func sortNewestFirst(events []attendance.Event, normalize func(string) (NormalizedInstant, bool)) {
	keys := make([]sortKey, len(events))
	for i, ev := range events {
		at, ok := normalize(ev.Timestamp)
		keys[i] = sortKey{event: ev, at: at.Instant, ok: ok}
	}

	slices.SortStableFunc(keys, func(a, b sortKey) int {
		switch {
		case a.ok && b.ok:
			return b.at.Compare(a.at)
		case a.ok:
			return -1
		case b.ok:
			return 1
		default:
			return 0
		}
	})

	for i, k := range keys {
		events[i] = k.event
	}
}

package attendance

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	events []attendance.Event
	calls  int
}

func (f *fakeSource) ListEvents(ctx context.Context, filter attendance.EventFilter) ([]attendance.Event, error) {
	f.calls++
	return append([]attendance.Event(nil), f.events...), nil
}

func (f *fakeSource) ListDeviceHistory(ctx context.Context, deviceID string) ([]attendance.Event, error) {
	f.calls++
	return append([]attendance.Event(nil), f.events...), nil
}

func (f *fakeSource) ListEmployeeEvents(ctx context.Context, employeeID string) ([]attendance.Event, error) {
	f.calls++
	return append([]attendance.Event(nil), f.events...), nil
}

func sourceEvents() []attendance.Event {
	return []attendance.Event{
		{ID: 1, EmployeeID: "EMP001", Timestamp: "2025-09-03 01:00:00", ActionType: attendance.ActionCheckIn, DeviceID: "CAM01"},
		{ID: 2, EmployeeID: "EMP002", Timestamp: "2025-09-04 01:10:00", ActionType: attendance.ActionCheckIn, DeviceID: "CAM02"},
		{ID: 3, EmployeeID: "EMP001", Timestamp: "garbage", ActionType: attendance.ActionCheckIn, DeviceID: "CAM01"},
		// 2025-09-04 23:30 UTC is already 2025-09-05 in Ho Chi Minh City
		{ID: 4, EmployeeID: "EMP001", Timestamp: "2025-09-04T23:30:00", ActionType: attendance.ActionCheckOut, DeviceID: "CAM01"},
	}
}

func newTestAttendanceService(t *testing.T, source *fakeSource) attendance.AttendanceService {
	t.Helper()
	return NewAttendanceService(source, NewPipeline(newTestPolicy(t, "08:00")))
}

func TestListEvents_NewestFirst(t *testing.T) {
	svc := newTestAttendanceService(t, &fakeSource{events: sourceEvents()})

	events, err := svc.ListEvents(context.Background(), attendance.EventFilter{})

	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, []int64{4, 2, 1, 3}, []int64{events[0].ID, events[1].ID, events[2].ID, events[3].ID})
}

func TestListEvents_Filters(t *testing.T) {
	svc := newTestAttendanceService(t, &fakeSource{events: sourceEvents()})
	ctx := context.Background()

	events, err := svc.ListEvents(ctx, attendance.EventFilter{StartDate: "2025-09-05", EndDate: "2025-09-05"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(4), events[0].ID)

	events, err = svc.ListEvents(ctx, attendance.EventFilter{EmployeeID: "EMP001", DeviceID: "CAM01", Limit: 2})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(4), events[0].ID)
	assert.Equal(t, int64(1), events[1].ID)
}

func TestListEvents_InvalidFilterSkipsSource(t *testing.T) {
	source := &fakeSource{}
	svc := newTestAttendanceService(t, source)

	_, err := svc.ListEvents(context.Background(), attendance.EventFilter{StartDate: "2025-09-05", EndDate: "2025-09-01"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, 0, source.calls)
}

func TestDeviceHistory_InvalidID(t *testing.T) {
	source := &fakeSource{}
	svc := newTestAttendanceService(t, source)

	_, err := svc.DeviceHistory(context.Background(), "CAM 01")
	assert.Error(t, err)
	_, err = svc.EmployeeEvents(context.Background(), "")
	assert.Error(t, err)
	assert.Equal(t, 0, source.calls)
}

func TestSortNewestFirst_NormalizesEachTimestampOnce(t *testing.T) {
	n := newTestNormalizer(t)
	calls := map[string]int{}
	counting := func(ts string) (NormalizedInstant, bool) {
		calls[ts]++
		return n.Normalize(ts)
	}

	events := sourceEvents()
	sortNewestFirst(events, counting)

	ids := make([]int64, len(events))
	for i, ev := range events {
		ids[i] = ev.ID
	}
	assert.Equal(t, []int64{4, 2, 1, 3}, ids)
	for ts, c := range calls {
		assert.Equal(t, 1, c, ts)
	}
	assert.Len(t, calls, 4)
}

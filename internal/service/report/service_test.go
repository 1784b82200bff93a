package report

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/report"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/validator"
	attendanceService "github.com/cmlabs-hris/face-attendance-dashboard/internal/service/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackendDown = errors.New("backend down")

type fakeRoster struct {
	employees []employee.Employee
	err       error
	calls     atomic.Int32
}

func (f *fakeRoster) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	f.calls.Add(1)
	return f.employees, f.err
}

type fakeEvents struct {
	events     []attendance.Event
	err        error
	lastFilter attendance.EventFilter
}

func (f *fakeEvents) ListEvents(ctx context.Context, filter attendance.EventFilter) ([]attendance.Event, error) {
	f.lastFilter = filter
	return f.events, f.err
}

func (f *fakeEvents) ListDeviceHistory(ctx context.Context, deviceID string) ([]attendance.Event, error) {
	return f.events, f.err
}

func (f *fakeEvents) ListEmployeeEvents(ctx context.Context, employeeID string) ([]attendance.Event, error) {
	return f.events, f.err
}

func newTestService(t *testing.T, roster *fakeRoster, events *fakeEvents) *ReportServiceImpl {
	t.Helper()
	daily, err := attendanceService.NewPolicy("Asia/Ho_Chi_Minh", "08:00", "18:00")
	require.NoError(t, err)
	summary := daily.WithWorkStart(attendanceService.TimeOfDay{Hour: 8, Minute: 30})

	// Thursday 2025-09-04, 15:00 local
	now := time.Date(2025, 9, 4, 8, 0, 0, 0, time.UTC)
	return NewReportService(roster, events, attendanceService.NewPipeline(daily), attendanceService.NewPipeline(summary)).
		WithClock(func() time.Time { return now })
}

func todayEvents() []attendance.Event {
	return []attendance.Event{
		{ID: 1, EmployeeID: "EMP001", Timestamp: "2025-09-04 01:00:00", ActionType: attendance.ActionCheckIn, DeviceID: "CAM01"},
		{ID: 2, EmployeeID: "EMP001", Timestamp: "2025-09-04 10:00:00", ActionType: attendance.ActionCheckOut, DeviceID: "CAM01"},
		{ID: 3, EmployeeID: "EMP002", Timestamp: "2025-09-04 01:20:00", ActionType: attendance.ActionCheckIn, DeviceID: "CAM02"},
		{ID: 4, EmployeeID: "EMP003", Timestamp: "2025-09-03 01:00:00", ActionType: attendance.ActionCheckIn, DeviceID: "CAM01"},
	}
}

func TestSummary_EmptyEventsFullRoster(t *testing.T) {
	svc := newTestService(t, &fakeRoster{employees: roster5()}, &fakeEvents{})

	resp, err := svc.Summary(context.Background(), report.SummaryRequest{Period: report.PeriodToday})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.WorkingDays)
	require.Len(t, resp.Employees, 5)
	for _, s := range resp.Employees {
		assert.Equal(t, 0, s.DaysPresent)
		assert.Equal(t, 1, s.DaysAbsent)
	}
	assert.Equal(t, 5, resp.Overview.DaysAbsent)
	assert.Equal(t, 0.0, resp.Overview.AttendanceRate)
}

func TestSummary_UsesReportThreshold(t *testing.T) {
	svc := newTestService(t, &fakeRoster{employees: roster5()}, &fakeEvents{events: todayEvents()})

	resp, err := svc.Summary(context.Background(), report.SummaryRequest{Period: report.PeriodToday})

	require.NoError(t, err)
	assert.Equal(t, "2025-09-04", resp.StartDate)
	// 08:20 is on time against the 08:30 report threshold
	assert.Equal(t, 0, resp.Employees[1].DaysLate)
	assert.Equal(t, 1, resp.Employees[1].DaysPresent)
	// EMP003's event is outside the window
	assert.Equal(t, 0, resp.Employees[2].DaysPresent)
	assert.Equal(t, 40.0, resp.Overview.AttendanceRate)
}

func TestSummary_DepartmentFilter(t *testing.T) {
	svc := newTestService(t, &fakeRoster{employees: roster5()}, &fakeEvents{events: todayEvents()})

	resp, err := svc.Summary(context.Background(), report.SummaryRequest{Period: report.PeriodThisWeek, Department: "HR"})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.WorkingDays)
	require.Len(t, resp.Employees, 2)
	require.Len(t, resp.Departments, 1)
	assert.Equal(t, "HR", resp.Departments[0].Department)
	assert.Equal(t, 1, resp.Employees[0].DaysPresent)
}

func TestSummary_UnassignedDepartmentFilter(t *testing.T) {
	svc := newTestService(t, &fakeRoster{employees: roster5()}, &fakeEvents{events: todayEvents()})

	resp, err := svc.Summary(context.Background(), report.SummaryRequest{Period: report.PeriodToday, Department: UnassignedDepartment})

	require.NoError(t, err)
	require.Len(t, resp.Employees, 1)
	assert.Equal(t, "EMP005", resp.Employees[0].EmployeeID)
	require.Len(t, resp.Departments, 1)
	assert.Equal(t, UnassignedDepartment, resp.Departments[0].Department)
	assert.Equal(t, 1, resp.Departments[0].EmployeeCount)
}

func TestDaily_UnassignedDepartmentFilter(t *testing.T) {
	events := append(todayEvents(), attendance.Event{ID: 5, EmployeeID: "EMP005", Timestamp: "2025-09-04 00:55:00", ActionType: attendance.ActionCheckIn, DeviceID: "CAM02"})
	svc := newTestService(t, &fakeRoster{employees: roster5()}, &fakeEvents{events: events})

	table, err := svc.Daily(context.Background(), report.DailyFilter{Department: UnassignedDepartment})

	require.NoError(t, err)
	require.Equal(t, 1, table.Total)
	assert.Equal(t, "EMP005", table.Rows[0].EmployeeID)
}

func TestSummary_InvalidPeriod(t *testing.T) {
	roster := &fakeRoster{employees: roster5()}
	svc := newTestService(t, roster, &fakeEvents{})

	_, err := svc.Summary(context.Background(), report.SummaryRequest{Period: "fortnight"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "period")
	assert.Equal(t, int32(0), roster.calls.Load())
}

func TestSummary_FetchFailureFailsRequest(t *testing.T) {
	svc := newTestService(t, &fakeRoster{employees: roster5()}, &fakeEvents{err: errBackendDown})

	_, err := svc.Summary(context.Background(), report.SummaryRequest{Period: report.PeriodToday})

	assert.ErrorIs(t, err, errBackendDown)
}

func TestDaily_DefaultsToToday(t *testing.T) {
	events := &fakeEvents{events: todayEvents()}
	svc := newTestService(t, &fakeRoster{employees: roster5()}, events)

	table, err := svc.Daily(context.Background(), report.DailyFilter{})

	require.NoError(t, err)
	assert.Equal(t, "2025-09-04", table.StartDate)
	assert.Equal(t, "2025-09-04", events.lastFilter.StartDate)
	require.Equal(t, 2, table.Total)

	first := table.Rows[0]
	assert.Equal(t, 1, first.No)
	assert.Equal(t, "EMP001", first.EmployeeID)
	assert.Equal(t, "Nguyễn Văn A", first.EmployeeName)
	assert.Equal(t, "9.0", first.HoursWorked)
	assert.Equal(t, attendance.StatusPresent, first.Status)

	second := table.Rows[1]
	assert.Equal(t, 2, second.No)
	assert.Equal(t, attendance.StatusLate, second.Status)
}

func TestDaily_Filters(t *testing.T) {
	svc := newTestService(t, &fakeRoster{employees: roster5()}, &fakeEvents{events: todayEvents()})
	ctx := context.Background()

	table, err := svc.Daily(ctx, report.DailyFilter{StartDate: "2025-09-03", EndDate: "2025-09-04"})
	require.NoError(t, err)
	require.Equal(t, 3, table.Total)
	assert.Equal(t, "2025-09-04", table.Rows[0].Date)
	assert.Equal(t, "2025-09-03", table.Rows[2].Date)

	table, err = svc.Daily(ctx, report.DailyFilter{StartDate: "2025-09-03", EndDate: "2025-09-04", Status: "late"})
	require.NoError(t, err)
	require.Equal(t, 1, table.Total)
	assert.Equal(t, "EMP002", table.Rows[0].EmployeeID)

	table, err = svc.Daily(ctx, report.DailyFilter{StartDate: "2025-09-03", EndDate: "2025-09-04", Search: "lê văn"})
	require.NoError(t, err)
	require.Equal(t, 1, table.Total)
	assert.Equal(t, "EMP003", table.Rows[0].EmployeeID)

	table, err = svc.Daily(ctx, report.DailyFilter{StartDate: "2025-09-03", EndDate: "2025-09-04", Department: "IT"})
	require.NoError(t, err)
	assert.Equal(t, 2, table.Total)
}

func TestDaily_EmptyIsNotAnError(t *testing.T) {
	svc := newTestService(t, &fakeRoster{}, &fakeEvents{})

	table, err := svc.Daily(context.Background(), report.DailyFilter{})

	require.NoError(t, err)
	assert.NotNil(t, table.Rows)
	assert.Empty(t, table.Rows)
}

func TestDaily_InvalidFilterSkipsFetch(t *testing.T) {
	roster := &fakeRoster{}
	svc := newTestService(t, roster, &fakeEvents{})

	_, err := svc.Daily(context.Background(), report.DailyFilter{StartDate: "04/09/2025"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, int32(0), roster.calls.Load())
}

func TestExportDaily(t *testing.T) {
	svc := newTestService(t, &fakeRoster{employees: roster5()}, &fakeEvents{events: todayEvents()})

	var buf bytes.Buffer
	filename, err := svc.ExportDaily(context.Background(), report.DailyFilter{}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "attendance_2025-09-04.csv", filename)

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(buf.String(), "\ufeff")), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1,EMP001,Nguyễn Văn A,2025-09-04,08:00,17:00,9.0,CAM01", lines[1])
	assert.Equal(t, "2,EMP002,Trần Thị B,2025-09-04,08:20,-,0.0,CAM02", lines[2])
}

func TestDaySummary(t *testing.T) {
	svc := newTestService(t, &fakeRoster{employees: roster5()}, &fakeEvents{events: todayEvents()})

	summary, err := svc.DaySummary(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "2025-09-04", summary.Date)
	assert.Equal(t, 1, summary.Present)
	assert.Equal(t, 1, summary.Late)
	assert.Equal(t, 3, summary.Absent)

	_, err = svc.DaySummary(context.Background(), "not-a-date")
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

package report

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWorkingDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"weekend only", "2025-09-06", "2025-09-07", 0},
		{"monday to friday", "2025-09-01", "2025-09-05", 5},
		{"single weekday", "2025-09-04", "2025-09-04", 1},
		{"single saturday", "2025-09-06", "2025-09-06", 0},
		{"full month", "2025-09-01", "2025-09-30", 22},
		{"two weeks", "2025-09-01", "2025-09-14", 10},
		{"reversed", "2025-09-05", "2025-09-01", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkingDays(day(tt.start), day(tt.end)))
		})
	}
}

func TestRate(t *testing.T) {
	assert.Equal(t, 0.0, Rate(3, 0))
	assert.Equal(t, 100.0, Rate(5, 5))
	assert.Equal(t, 66.7, Rate(2, 3))
	assert.Equal(t, 33.3, Rate(1, 3))
	assert.Equal(t, 0.0, Rate(0, 22))
}

func TestMeanRate(t *testing.T) {
	assert.Equal(t, 0.0, MeanRate(nil))
	assert.Equal(t, 50.0, MeanRate([]float64{100, 0}))
	assert.Equal(t, 83.4, MeanRate([]float64{100, 66.7}))
}

func roster5() []employee.Employee {
	return []employee.Employee{
		{EmployeeID: "EMP001", Name: "Nguyễn Văn A", Department: "IT"},
		{EmployeeID: "EMP002", Name: "Trần Thị B", Department: "IT"},
		{EmployeeID: "EMP003", Name: "Lê Văn C", Department: "HR"},
		{EmployeeID: "EMP004", Name: "Phạm Thị D", Department: "HR"},
		{EmployeeID: "EMP005", Name: "Hoàng Văn E"},
	}
}

func TestEmployeeSummaries_NoRecords(t *testing.T) {
	stats := EmployeeSummaries(nil, roster5(), 1)

	require.Len(t, stats, 5)
	for _, s := range stats {
		assert.Equal(t, 0, s.DaysPresent)
		assert.Equal(t, 1, s.DaysAbsent)
		assert.Equal(t, 0.0, s.AttendanceRate)
		assert.Equal(t, "0.0", s.TotalHours)
	}
	assert.Equal(t, UnassignedDepartment, stats[4].Department)
}

func TestEmployeeSummaries_Counts(t *testing.T) {
	records := []attendance.DailyRecord{
		{EmployeeID: "EMP001", Date: "2025-09-01", Status: attendance.StatusPresent, HoursWorked: "9.0"},
		{EmployeeID: "EMP001", Date: "2025-09-02", Status: attendance.StatusLate, HoursWorked: "8.5", EarlyLeave: true},
		{EmployeeID: "EMP001", Date: "2025-09-03", Status: attendance.StatusIncomplete, HoursWorked: "0.0"},
		{EmployeeID: "EMP002", Date: "2025-09-01", Status: attendance.StatusLate, HoursWorked: "7.2"},
		{EmployeeID: "GHOST", Date: "2025-09-01", Status: attendance.StatusPresent, HoursWorked: "9.0"},
	}

	stats := EmployeeSummaries(records, roster5()[:2], 5)

	require.Len(t, stats, 2)
	assert.Equal(t, report.EmployeeStats{
		EmployeeID:     "EMP001",
		Name:           "Nguyễn Văn A",
		Department:     "IT",
		DaysPresent:    3,
		DaysLate:       1,
		DaysAbsent:     2,
		DaysEarlyLeave: 1,
		DaysIncomplete: 1,
		TotalHours:     "17.5",
		AttendanceRate: 60,
	}, stats[0])
	assert.Equal(t, 1, stats[1].DaysPresent)
	assert.Equal(t, 4, stats[1].DaysAbsent)
	assert.Equal(t, 20.0, stats[1].AttendanceRate)
}

func TestEmployeeSummaries_AbsentNeverNegative(t *testing.T) {
	records := []attendance.DailyRecord{
		{EmployeeID: "EMP001", Date: "2025-09-06", Status: attendance.StatusPresent, HoursWorked: "4.0"},
		{EmployeeID: "EMP001", Date: "2025-09-07", Status: attendance.StatusPresent, HoursWorked: "4.0"},
	}

	stats := EmployeeSummaries(records, roster5()[:1], 0)

	assert.Equal(t, 2, stats[0].DaysPresent)
	assert.Equal(t, 0, stats[0].DaysAbsent)
	assert.Equal(t, 0.0, stats[0].AttendanceRate)
}

func TestRollups_UseMeanOfRates(t *testing.T) {
	stats := []report.EmployeeStats{
		{EmployeeID: "A", Department: "IT", DaysPresent: 3, DaysAbsent: 0, AttendanceRate: 100},
		{EmployeeID: "B", Department: "IT", DaysPresent: 2, DaysAbsent: 1, DaysLate: 1, AttendanceRate: 66.7},
		{EmployeeID: "C", Department: "HR", DaysPresent: 0, DaysAbsent: 3, AttendanceRate: 0},
	}

	depts := DepartmentRollup(stats)
	require.Len(t, depts, 2)
	assert.Equal(t, "HR", depts[0].Department)
	assert.Equal(t, 0.0, depts[0].AttendanceRate)
	assert.Equal(t, "IT", depts[1].Department)
	assert.Equal(t, 2, depts[1].EmployeeCount)
	assert.Equal(t, 5, depts[1].DaysPresent)
	assert.Equal(t, 1, depts[1].DaysLate)
	assert.Equal(t, 83.4, depts[1].AttendanceRate)

	overview := OverallRollup(stats)
	assert.Equal(t, 3, overview.TotalEmployees)
	assert.Equal(t, 5, overview.DaysPresent)
	assert.Equal(t, 4, overview.DaysAbsent)
	assert.Equal(t, 55.6, overview.AttendanceRate)
}

func TestRollups_Empty(t *testing.T) {
	assert.Equal(t, []report.DepartmentStats{}, DepartmentRollup(nil))
	assert.Equal(t, report.Overview{}, OverallRollup(nil))
}

func TestSummarizeDay(t *testing.T) {
	records := []attendance.DailyRecord{
		{EmployeeID: "EMP001", Date: "2025-09-04", Status: attendance.StatusPresent},
		{EmployeeID: "EMP002", Date: "2025-09-04", Status: attendance.StatusLate},
		{EmployeeID: "EMP003", Date: "2025-09-04", Status: attendance.StatusIncomplete},
		{EmployeeID: "EMP004", Date: "2025-09-03", Status: attendance.StatusPresent},
	}

	summary := SummarizeDay("2025-09-04", records, roster5())

	assert.Equal(t, report.DaySummary{
		Date:           "2025-09-04",
		TotalEmployees: 5,
		Present:        1,
		Late:           1,
		Incomplete:     1,
		Absent:         2,
		AttendanceRate: 60,
	}, summary)
}

func TestSummarizeDay_EmptyRoster(t *testing.T) {
	summary := SummarizeDay("2025-09-04", nil, nil)
	assert.Equal(t, 0, summary.TotalEmployees)
	assert.Equal(t, 0.0, summary.AttendanceRate)
}

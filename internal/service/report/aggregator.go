package report

import (
	"log/slog"
	"sort"
	"time"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/report"
	"github.com/shopspring/decimal"
)

// UnassignedDepartment groups employees without a department.
const UnassignedDepartment = "Unassigned"

var hundred = decimal.NewFromInt(100)

// WorkingDays counts Monday to Friday dates in [start, end]. Only the
// civil dates of start and end matter.
func WorkingDays(start, end time.Time) int {
	start, end = midnight(start), midnight(end)
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// Rate is part/whole as a percentage with one decimal, 0 when whole is 0.
func Rate(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(whole))).Round(1).InexactFloat64()
}

// MeanRate is the arithmetic mean of already rounded per-employee rates.
func MeanRate(rates []float64) float64 {
	if len(rates) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, r := range rates {
		sum = sum.Add(decimal.NewFromFloat(r))
	}
	return sum.Div(decimal.NewFromInt(int64(len(rates)))).Round(1).InexactFloat64()
}

// EmployeeSummaries computes one stats row per roster employee, in roster
// order. Records of employees missing from the roster are ignored.
func EmployeeSummaries(records []attendance.DailyRecord, roster []employee.Employee, workingDays int) []report.EmployeeStats {
	byEmployee := make(map[string][]attendance.DailyRecord)
	for _, r := range records {
		byEmployee[r.EmployeeID] = append(byEmployee[r.EmployeeID], r)
	}

	stats := make([]report.EmployeeStats, 0, len(roster))
	for _, emp := range roster {
		s := report.EmployeeStats{
			EmployeeID: emp.EmployeeID,
			Name:       emp.Name,
			Department: departmentOf(emp),
		}

		dates := make(map[string]struct{})
		hours := decimal.Zero
		for _, r := range byEmployee[emp.EmployeeID] {
			dates[r.Date] = struct{}{}
			switch r.Status {
			case attendance.StatusLate:
				s.DaysLate++
			case attendance.StatusIncomplete:
				s.DaysIncomplete++
			}
			if r.EarlyLeave {
				s.DaysEarlyLeave++
			}
			h, err := decimal.NewFromString(r.HoursWorked)
			if err != nil {
				slog.Warn("Ignoring malformed hours_worked", "employee_id", r.EmployeeID, "date", r.Date, "value", r.HoursWorked)
				continue
			}
			hours = hours.Add(h)
		}

		s.DaysPresent = len(dates)
		s.DaysAbsent = max(0, workingDays-s.DaysPresent)
		s.AttendanceRate = Rate(s.DaysPresent, workingDays)
		s.TotalHours = hours.StringFixed(1)
		stats = append(stats, s)
	}
	return stats
}

// DepartmentRollup sums employee stats per department, sorted by name.
func DepartmentRollup(stats []report.EmployeeStats) []report.DepartmentStats {
	index := make(map[string]int)
	var (
		depts []report.DepartmentStats
		rates [][]float64
	)
	for _, s := range stats {
		i, ok := index[s.Department]
		if !ok {
			i = len(depts)
			index[s.Department] = i
			depts = append(depts, report.DepartmentStats{Department: s.Department})
			rates = append(rates, nil)
		}
		depts[i].EmployeeCount++
		depts[i].DaysPresent += s.DaysPresent
		depts[i].DaysLate += s.DaysLate
		depts[i].DaysAbsent += s.DaysAbsent
		rates[i] = append(rates[i], s.AttendanceRate)
	}
	for i := range depts {
		depts[i].AttendanceRate = MeanRate(rates[i])
	}

	sort.SliceStable(depts, func(a, b int) bool {
		return depts[a].Department < depts[b].Department
	})
	if depts == nil {
		depts = []report.DepartmentStats{}
	}
	return depts
}

// OverallRollup sums every employee's stats.
func OverallRollup(stats []report.EmployeeStats) report.Overview {
	o := report.Overview{TotalEmployees: len(stats)}
	rates := make([]float64, 0, len(stats))
	for _, s := range stats {
		o.DaysPresent += s.DaysPresent
		o.DaysLate += s.DaysLate
		o.DaysAbsent += s.DaysAbsent
		rates = append(rates, s.AttendanceRate)
	}
	o.AttendanceRate = MeanRate(rates)
	return o
}

// SummarizeDay classifies every roster employee for one date. Employees
// without a record that day count as absent.
func SummarizeDay(date string, records []attendance.DailyRecord, roster []employee.Employee) report.DaySummary {
	statusOf := make(map[string]attendance.Status)
	for _, r := range records {
		if r.Date == date {
			statusOf[r.EmployeeID] = r.Status
		}
	}

	summary := report.DaySummary{Date: date, TotalEmployees: len(roster)}
	for _, emp := range roster {
		switch statusOf[emp.EmployeeID] {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusLate:
			summary.Late++
		case attendance.StatusIncomplete:
			summary.Incomplete++
		default:
			summary.Absent++
		}
	}
	summary.AttendanceRate = Rate(summary.TotalEmployees-summary.Absent, summary.TotalEmployees)
	return summary
}

func departmentOf(emp employee.Employee) string {
	if emp.Department == "" {
		return UnassignedDepartment
	}
	return emp.Department
}

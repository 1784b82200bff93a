package report

import (
	"strings"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/validator"
)

type Period string

const (
	PeriodToday     Period = "today"
	PeriodThisWeek  Period = "this_week"
	PeriodThisMonth Period = "this_month"
	PeriodLastWeek  Period = "last_week"
	PeriodLastMonth Period = "last_month"
	PeriodCustom    Period = "custom"
)

var validPeriods = []string{
	string(PeriodToday), string(PeriodThisWeek), string(PeriodThisMonth),
	string(PeriodLastWeek), string(PeriodLastMonth), string(PeriodCustom),
}

// SummaryRequest asks for attendance statistics over a reporting window.
type SummaryRequest struct {
	Period     Period `json:"period"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	Department string `json:"department,omitempty"`
}

func (r *SummaryRequest) Validate() error {
	if r.Period == "" {
		r.Period = PeriodThisMonth
	}

	var errs validator.ValidationErrors
	if !validator.IsInSlice(string(r.Period), validPeriods) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "period must be one of " + strings.Join(validPeriods, ", ")})
	}
	if r.Period == PeriodCustom {
		errs = append(errs, validateRange(r.StartDate, r.EndDate, true)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DailyFilter selects rows of the daily attendance table. Empty dates
// default to today.
type DailyFilter struct {
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
	Search     string `json:"search,omitempty"`
	Department string `json:"department,omitempty"`
	Status     string `json:"status,omitempty"`
}

var dailyStatuses = []string{
	string(attendance.StatusPresent),
	string(attendance.StatusLate),
	string(attendance.StatusIncomplete),
}

func (f *DailyFilter) Validate() error {
	f.Search = strings.TrimSpace(f.Search)

	errs := validateRange(f.StartDate, f.EndDate, false)
	if f.EmployeeID != "" && !validator.IsValidCode(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "invalid employee_id"})
	}
	if f.Status != "" && !validator.IsInSlice(f.Status, dailyStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of " + strings.Join(dailyStatuses, ", ")})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateRange(start, end string, required bool) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if required && start == "" {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date is required"})
	}
	if required && end == "" {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date is required"})
	}

	s, sOK := validator.IsValidDate(start)
	if start != "" && !sOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}
	e, eOK := validator.IsValidDate(end)
	if end != "" && !eOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
	}
	if sOK && eOK && s.After(e) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: ErrInvalidDateRange.Error()})
	}
	if sOK && eOK && e.Sub(s).Hours()/24 > MaxRangeDays {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: ErrRangeTooLong.Error()})
	}
	return errs
}

// MaxRangeDays bounds custom reporting windows.
const MaxRangeDays = 366

// EmployeeStats is one employee's attendance over a reporting window.
type EmployeeStats struct {
	EmployeeID     string  `json:"employee_id"`
	Name           string  `json:"name"`
	Department     string  `json:"department"`
	DaysPresent    int     `json:"days_present"`
	DaysLate       int     `json:"days_late"`
	DaysAbsent     int     `json:"days_absent"`
	DaysEarlyLeave int     `json:"days_early_leave"`
	DaysIncomplete int     `json:"days_incomplete"`
	TotalHours     string  `json:"total_hours"`
	AttendanceRate float64 `json:"attendance_rate"`
}

type DepartmentStats struct {
	Department     string  `json:"department"`
	EmployeeCount  int     `json:"employee_count"`
	DaysPresent    int     `json:"days_present"`
	DaysLate       int     `json:"days_late"`
	DaysAbsent     int     `json:"days_absent"`
	AttendanceRate float64 `json:"attendance_rate"`
}

type Overview struct {
	TotalEmployees int     `json:"total_employees"`
	DaysPresent    int     `json:"days_present"`
	DaysLate       int     `json:"days_late"`
	DaysAbsent     int     `json:"days_absent"`
	AttendanceRate float64 `json:"attendance_rate"`
}

type SummaryResponse struct {
	Period      Period            `json:"period"`
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	WorkingDays int               `json:"working_days"`
	Overview    Overview          `json:"overview"`
	Departments []DepartmentStats `json:"departments"`
	Employees   []EmployeeStats   `json:"employees"`
}

// DaySummary backs the dashboard cards for a single date.
type DaySummary struct {
	Date           string  `json:"date"`
	TotalEmployees int     `json:"total_employees"`
	Present        int     `json:"present"`
	Late           int     `json:"late"`
	Incomplete     int     `json:"incomplete"`
	Absent         int     `json:"absent"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// DailyRow is one line of the daily attendance table.
type DailyRow struct {
	No           int    `json:"stt"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	attendance.DailyRecord
}

type DailyTable struct {
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date"`
	Total     int        `json:"total"`
	Rows      []DailyRow `json:"rows"`
}

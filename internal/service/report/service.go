package report

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/report"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/validator"
	attendanceService "github.com/cmlabs-hris/face-attendance-dashboard/internal/service/attendance"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	roster employee.Roster
	events attendance.EventSource
	// daily drives the attendance table and dashboard cards; summary drives
	// period reports, which may use a different lateness threshold.
	daily   *attendanceService.Pipeline
	summary *attendanceService.Pipeline
	now     func() time.Time
}

func NewReportService(
	roster employee.Roster,
	events attendance.EventSource,
	daily *attendanceService.Pipeline,
	summary *attendanceService.Pipeline,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		roster:  roster,
		events:  events,
		daily:   daily,
		summary: summary,
		now:     time.Now,
	}
}

// WithClock replaces the service clock.
func (s *ReportServiceImpl) WithClock(now func() time.Time) *ReportServiceImpl {
	s.now = now
	return s
}

func (s *ReportServiceImpl) today() time.Time {
	return midnight(s.now().In(s.daily.Policy().Location))
}

// fetch loads roster and events in parallel. Either failure fails both.
func (s *ReportServiceImpl) fetch(ctx context.Context, filter attendance.EventFilter) ([]employee.Employee, []attendance.Event, error) {
	var (
		roster []employee.Employee
		events []attendance.Event
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.roster.ListEmployees(ctx)
		if err != nil {
			return fmt.Errorf("failed to load employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		events, err = s.events.ListEvents(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to load attendance events: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return roster, events, nil
}

// Daily implements report.ReportService.
func (s *ReportServiceImpl) Daily(ctx context.Context, filter report.DailyFilter) (report.DailyTable, error) {
	if err := filter.Validate(); err != nil {
		return report.DailyTable{}, err
	}

	today := s.today().Format(dateLayout)
	if filter.StartDate == "" {
		filter.StartDate = today
	}
	if filter.EndDate == "" {
		filter.EndDate = filter.StartDate
	}
	if filter.StartDate > filter.EndDate {
		return report.DailyTable{}, report.ErrInvalidDateRange
	}

	eventFilter := attendance.EventFilter{
		EmployeeID: filter.EmployeeID,
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
	}
	roster, events, err := s.fetch(ctx, eventFilter)
	if err != nil {
		return report.DailyTable{}, err
	}

	people := make(map[string]employee.Employee, len(roster))
	for _, emp := range roster {
		people[emp.EmployeeID] = emp
	}

	search := strings.ToLower(filter.Search)
	rows := make([]report.DailyRow, 0)
	for _, rec := range s.daily.Run(events) {
		if !eventFilter.InRange(rec.Date) {
			continue
		}
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && string(rec.Status) != filter.Status {
			continue
		}

		emp := people[rec.EmployeeID]
		if filter.Department != "" && departmentOf(emp) != filter.Department {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(emp.Name), search) &&
			!strings.Contains(strings.ToLower(rec.EmployeeID), search) {
			continue
		}

		rows = append(rows, report.DailyRow{
			EmployeeName: emp.Name,
			Department:   emp.Department,
			DailyRecord:  rec,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date > rows[j].Date
		}
		return rows[i].EmployeeID < rows[j].EmployeeID
	})
	for i := range rows {
		rows[i].No = i + 1
	}

	return report.DailyTable{
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Total:     len(rows),
		Rows:      rows,
	}, nil
}

// ExportDaily implements report.ReportService.
func (s *ReportServiceImpl) ExportDaily(ctx context.Context, filter report.DailyFilter, w io.Writer) (string, error) {
	table, err := s.Daily(ctx, filter)
	if err != nil {
		return "", err
	}
	if err := WriteDailyCSV(w, table.Rows); err != nil {
		return "", err
	}
	return ExportFilename(table), nil
}

// Summary implements report.ReportService.
func (s *ReportServiceImpl) Summary(ctx context.Context, req report.SummaryRequest) (report.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.SummaryResponse{}, err
	}

	rng, err := ResolvePeriod(req.Period, s.today(), req.StartDate, req.EndDate)
	if err != nil {
		return report.SummaryResponse{}, err
	}

	eventFilter := attendance.EventFilter{StartDate: rng.StartDate(), EndDate: rng.EndDate()}
	roster, events, err := s.fetch(ctx, eventFilter)
	if err != nil {
		return report.SummaryResponse{}, err
	}

	if req.Department != "" {
		filtered := make([]employee.Employee, 0, len(roster))
		for _, emp := range roster {
			if departmentOf(emp) == req.Department {
				filtered = append(filtered, emp)
			}
		}
		roster = filtered
	}

	var records []attendance.DailyRecord
	for _, rec := range s.summary.Run(events) {
		if eventFilter.InRange(rec.Date) {
			records = append(records, rec)
		}
	}

	workingDays := WorkingDays(rng.Start, rng.End)
	stats := EmployeeSummaries(records, roster, workingDays)

	return report.SummaryResponse{
		Period:      req.Period,
		StartDate:   rng.StartDate(),
		EndDate:     rng.EndDate(),
		WorkingDays: workingDays,
		Overview:    OverallRollup(stats),
		Departments: DepartmentRollup(stats),
		Employees:   stats,
	}, nil
}

// DaySummary implements report.ReportService. An empty date means today.
func (s *ReportServiceImpl) DaySummary(ctx context.Context, date string) (report.DaySummary, error) {
	if date == "" {
		date = s.today().Format(dateLayout)
	} else if _, ok := validator.IsValidDate(date); !ok {
		return report.DaySummary{}, validator.ValidationErrors{{Field: "date", Message: "must be in YYYY-MM-DD format"}}
	}

	roster, events, err := s.fetch(ctx, attendance.EventFilter{StartDate: date, EndDate: date})
	if err != nil {
		return report.DaySummary{}, err
	}
	return SummarizeDay(date, s.daily.Run(events), roster), nil
}

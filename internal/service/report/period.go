package report

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/report"
)

const dateLayout = "2006-01-02"

// DateRange is an inclusive range of civil dates, both at midnight.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) StartDate() string { return r.Start.Format(dateLayout) }
func (r DateRange) EndDate() string   { return r.End.Format(dateLayout) }

// midnight truncates t to the start of its civil date in t's location.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// monday returns the Monday of the week containing day.
func monday(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// ResolvePeriod turns a named period into a date range relative to now.
// Weeks cover Monday to Friday.
func ResolvePeriod(period report.Period, now time.Time, startDate, endDate string) (DateRange, error) {
	today := midnight(now)

	switch period {
	case report.PeriodToday:
		return DateRange{Start: today, End: today}, nil
	case report.PeriodThisWeek:
		start := monday(today)
		return DateRange{Start: start, End: start.AddDate(0, 0, 4)}, nil
	case report.PeriodLastWeek:
		start := monday(today).AddDate(0, 0, -7)
		return DateRange{Start: start, End: start.AddDate(0, 0, 4)}, nil
	case report.PeriodThisMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return DateRange{Start: start, End: start.AddDate(0, 1, -1)}, nil
	case report.PeriodLastMonth:
		start := time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, today.Location())
		return DateRange{Start: start, End: start.AddDate(0, 1, -1)}, nil
	case report.PeriodCustom:
		return parseRange(startDate, endDate, today.Location())
	default:
		return DateRange{}, fmt.Errorf("unsupported period %q", period)
	}
}

func parseRange(startDate, endDate string, loc *time.Location) (DateRange, error) {
	start, err := time.ParseInLocation(dateLayout, startDate, loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := time.ParseInLocation(dateLayout, endDate, loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid end_date: %w", err)
	}
	if start.After(end) {
		return DateRange{}, report.ErrInvalidDateRange
	}
	return DateRange{Start: start, End: end}, nil
}

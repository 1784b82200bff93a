package attendance

import (
	"slices"
	"time"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

var hourNanos = decimal.NewFromInt(int64(time.Hour))

// Reduce folds one group into its daily record. The group's slice is not
// modified.
func Reduce(g Group, policy Policy) attendance.DailyRecord {
	events := slices.Clone(g.Events)
	slices.SortStableFunc(events, func(a, b NormalizedEvent) int {
		return a.At.Instant.Compare(b.At.Instant)
	})

	var in, out *NormalizedEvent
	for i := range events {
		switch events[i].ActionType {
		case attendance.ActionCheckIn:
			if in == nil {
				in = &events[i]
			}
		case attendance.ActionCheckOut:
			out = &events[i]
		}
	}
	if in != nil && out != nil && out.At.Instant.Equal(in.At.Instant) {
		out = nil
	}

	record := attendance.DailyRecord{
		EmployeeID:  g.EmployeeID,
		Date:        g.Date,
		HoursWorked: HoursBetween(in, out),
		DeviceID:    attendance.NoDevice,
		EventCount:  len(events),
	}

	if in != nil {
		record.CheckIn = punch(in)
		record.Status = attendance.StatusPresent
		if policy.IsLate(in.At.Local) {
			record.Status = attendance.StatusLate
		}
	} else {
		record.Status = attendance.StatusIncomplete
	}

	if out != nil {
		record.CheckOut = punch(out)
		record.EarlyLeave = policy.IsEarlyLeave(out.At.Local)
	}

	switch {
	case in != nil && in.DeviceID != "":
		record.DeviceID = in.DeviceID
	case out != nil && out.DeviceID != "":
		record.DeviceID = out.DeviceID
	}

	return record
}

// HoursBetween returns the worked hours between two punches with one
// decimal, or "0.0" if either is missing or the span is not positive.
func HoursBetween(in, out *NormalizedEvent) string {
	if in == nil || out == nil {
		return "0.0"
	}
	d := out.At.Instant.Sub(in.At.Instant)
	if d <= 0 {
		return "0.0"
	}
	return decimal.NewFromInt(int64(d)).Div(hourNanos).StringFixed(1)
}

func punch(e *NormalizedEvent) *attendance.Punch {
	return &attendance.Punch{
		Timestamp: e.Timestamp,
		Time:      e.At.Time,
		DeviceID:  e.DeviceID,
	}
}

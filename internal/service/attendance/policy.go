package attendance

import (
	"fmt"
	"time"

	// Embedded zone database so named zones resolve on hosts without one.
	_ "time/tzdata"
)

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// on returns t on the civil date of day, in day's location.
func (t TimeOfDay) on(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, day.Location())
}

// Policy holds the rules that classify a reconstructed day.
type Policy struct {
	WorkStart TimeOfDay
	WorkEnd   TimeOfDay
	Location  *time.Location
}

// NewPolicy builds a policy from configuration strings.
func NewPolicy(timezone, workStart, workEnd string) (Policy, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Policy{}, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	start, err := ParseTimeOfDay(workStart)
	if err != nil {
		return Policy{}, err
	}
	end, err := ParseTimeOfDay(workEnd)
	if err != nil {
		return Policy{}, err
	}
	return Policy{WorkStart: start, WorkEnd: end, Location: loc}, nil
}

// WithWorkStart returns a copy of p using a different lateness threshold.
func (p Policy) WithWorkStart(start TimeOfDay) Policy {
	p.WorkStart = start
	return p
}

// IsLate reports whether a local check-in is strictly after the work start.
// A check-in at exactly the threshold is on time.
func (p Policy) IsLate(local time.Time) bool {
	return local.After(p.WorkStart.on(local))
}

// IsEarlyLeave reports whether a local check-out is strictly before the work end.
func (p Policy) IsEarlyLeave(local time.Time) bool {
	return local.Before(p.WorkEnd.on(local))
}

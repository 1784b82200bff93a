package attendance

import (
	"log/slog"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
)

// NormalizedEvent pairs a raw event with its parsed timestamp.
type NormalizedEvent struct {
	attendance.Event
	At NormalizedInstant
}

// Group holds every event of one employee on one civil date, in input order.
type Group struct {
	Key        string
	EmployeeID string
	Date       string
	Events     []NormalizedEvent
}

func groupKey(employeeID, date string) string {
	return employeeID + "_" + date
}

// GroupEvents partitions events by employee and display-zone civil date.
// Groups come back in order of first appearance. Events whose timestamp
// cannot be parsed, or that carry no employee, belong to no group.
func GroupEvents(events []attendance.Event, n *Normalizer) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, ev := range events {
		if ev.EmployeeID == "" {
			slog.Debug("Skipping attendance event without employee", "event_id", ev.ID)
			continue
		}
		at, ok := n.Normalize(ev.Timestamp)
		if !ok {
			continue
		}

		key := groupKey(ev.EmployeeID, at.Date)
		i, exists := index[key]
		if !exists {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key, EmployeeID: ev.EmployeeID, Date: at.Date})
		}
		groups[i].Events = append(groups[i].Events, NormalizedEvent{Event: ev, At: at})
	}
	return groups
}

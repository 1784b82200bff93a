package attendance

import (
	"log/slog"
	"strings"
	"time"
)

// Backend timestamps are naive UTC. Fractional seconds are accepted by
// time.Parse without being named in the layout.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
}

// NormalizedInstant is a parsed event timestamp.
type NormalizedInstant struct {
	Instant time.Time // absolute, UTC
	Local   time.Time // Instant in the display zone
	UTCDate string    // date portion of the raw string, before zone shifting
	Date    string    // civil date in the display zone, YYYY-MM-DD
	Time    string    // civil time in the display zone, HH:MM
}

type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{loc: loc}
}

// Normalize parses ts. It never fails loudly: an unparseable timestamp
// yields ok == false and a zero value.
func (n *Normalizer) Normalize(ts string) (NormalizedInstant, bool) {
	ts = strings.TrimSpace(ts)
	instant, ok := parseInstant(ts)
	if !ok {
		slog.Debug("Skipping unparseable attendance timestamp", "timestamp", ts)
		return NormalizedInstant{}, false
	}

	local := instant.In(n.loc)
	return NormalizedInstant{
		Instant: instant,
		Local:   local,
		UTCDate: rawDate(ts),
		Date:    local.Format("2006-01-02"),
		Time:    local.Format("15:04"),
	}, true
}

func parseInstant(ts string) (time.Time, bool) {
	if ts == "" {
		return time.Time{}, false
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.UTC(), true
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, ts, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func rawDate(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i >= 0 {
		return ts[:i]
	}
	if i := strings.IndexByte(ts, ' '); i >= 0 {
		return ts[:i]
	}
	return ts
}

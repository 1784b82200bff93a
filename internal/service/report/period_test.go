package report

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)
	// Thursday
	now := time.Date(2025, 9, 4, 15, 30, 0, 0, loc)

	tests := []struct {
		period    report.Period
		wantStart string
		wantEnd   string
	}{
		{report.PeriodToday, "2025-09-04", "2025-09-04"},
		{report.PeriodThisWeek, "2025-09-01", "2025-09-05"},
		{report.PeriodLastWeek, "2025-08-25", "2025-08-29"},
		{report.PeriodThisMonth, "2025-09-01", "2025-09-30"},
		{report.PeriodLastMonth, "2025-08-01", "2025-08-31"},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			rng, err := ResolvePeriod(tt.period, now, "", "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, rng.StartDate())
			assert.Equal(t, tt.wantEnd, rng.EndDate())
		})
	}
}

func TestResolvePeriod_SundayBelongsToPreviousWeek(t *testing.T) {
	now := time.Date(2025, 9, 7, 9, 0, 0, 0, time.UTC)

	rng, err := ResolvePeriod(report.PeriodThisWeek, now, "", "")

	require.NoError(t, err)
	assert.Equal(t, "2025-09-01", rng.StartDate())
	assert.Equal(t, "2025-09-05", rng.EndDate())
}

func TestResolvePeriod_JanuaryLastMonth(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	rng, err := ResolvePeriod(report.PeriodLastMonth, now, "", "")

	require.NoError(t, err)
	assert.Equal(t, "2025-12-01", rng.StartDate())
	assert.Equal(t, "2025-12-31", rng.EndDate())
}

func TestResolvePeriod_Custom(t *testing.T) {
	now := time.Date(2025, 9, 4, 9, 0, 0, 0, time.UTC)

	rng, err := ResolvePeriod(report.PeriodCustom, now, "2025-08-10", "2025-08-20")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-10", rng.StartDate())
	assert.Equal(t, "2025-08-20", rng.EndDate())

	_, err = ResolvePeriod(report.PeriodCustom, now, "2025-08-20", "2025-08-10")
	assert.ErrorIs(t, err, report.ErrInvalidDateRange)

	_, err = ResolvePeriod(report.PeriodCustom, now, "yesterday", "2025-08-10")
	assert.Error(t, err)

	_, err = ResolvePeriod(report.Period("fortnight"), now, "", "")
	assert.Error(t, err)
}

package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// naiveUTCLayout matches what the recognition backend serializes, so rows
// read here go through the same normalizer as API responses.
const naiveUTCLayout = "2006-01-02T15:04:05.999999"

const dateLayout = "2006-01-02"

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.EventSource {
	return &attendanceRepositoryImpl{db: db}
}

const selectEvents = `
	SELECT id, COALESCE(employee_id, ''), timestamp, COALESCE(action_type, 'CHECK_IN'),
		COALESCE(device_id, ''), COALESCE(confidence, 0), image_path
	FROM attendance
`

// ListEvents implements attendance.EventSource.
// Civil date bounds are widened by a day on each side because the table
// stores UTC; the pipeline trims to the exact local range.
func (r *attendanceRepositoryImpl) ListEvents(ctx context.Context, filter attendance.EventFilter) ([]attendance.Event, error) {
	var (
		where []string
		args  []interface{}
	)

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		where = append(where, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.DeviceID != "" {
		args = append(args, filter.DeviceID)
		where = append(where, fmt.Sprintf("device_id = $%d", len(args)))
	}
	if filter.StartDate != "" {
		start, err := time.Parse(dateLayout, filter.StartDate)
		if err != nil {
			return nil, fmt.Errorf("parse start_date: %w", err)
		}
		args = append(args, start.AddDate(0, 0, -1))
		where = append(where, fmt.Sprintf("timestamp >= $%d", len(args)))
	}
	if filter.EndDate != "" {
		end, err := time.Parse(dateLayout, filter.EndDate)
		if err != nil {
			return nil, fmt.Errorf("parse end_date: %w", err)
		}
		args = append(args, end.AddDate(0, 0, 2))
		where = append(where, fmt.Sprintf("timestamp < $%d", len(args)))
	}

	query := selectEvents
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY timestamp DESC, id DESC"

	return r.query(ctx, query, args...)
}

// ListDeviceHistory implements attendance.EventSource.
func (r *attendanceRepositoryImpl) ListDeviceHistory(ctx context.Context, deviceID string) ([]attendance.Event, error) {
	return r.query(ctx, selectEvents+" WHERE device_id = $1 ORDER BY timestamp DESC, id DESC", deviceID)
}

// ListEmployeeEvents implements attendance.EventSource.
func (r *attendanceRepositoryImpl) ListEmployeeEvents(ctx context.Context, employeeID string) ([]attendance.Event, error) {
	return r.query(ctx, selectEvents+" WHERE employee_id = $1 ORDER BY timestamp DESC, id DESC", employeeID)
}

func (r *attendanceRepositoryImpl) query(ctx context.Context, query string, args ...interface{}) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}

	events, err := pgx.CollectRows(rows, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("failed to scan attendance: %w", err)
	}

	kept := events[:0]
	for _, e := range events {
		if e.EmployeeID == "" {
			slog.Warn("Dropping attendance row without employee", "id", e.ID)
			continue
		}
		kept = append(kept, e)
	}
	return kept, nil
}

func scanEvent(row pgx.CollectableRow) (attendance.Event, error) {
	var (
		e  attendance.Event
		ts time.Time
	)
	err := row.Scan(&e.ID, &e.EmployeeID, &ts, &e.ActionType, &e.DeviceID, &e.Confidence, &e.ImagePath)
	if err != nil {
		return attendance.Event{}, err
	}
	e.Timestamp = formatNaiveUTC(ts)
	return e, nil
}

// formatNaiveUTC renders a timestamp column as the backend does. Columns
// without a zone come back from pgx as UTC already.
func formatNaiveUTC(ts time.Time) string {
	return ts.UTC().Format(naiveUTCLayout)
}

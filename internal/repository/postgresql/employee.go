package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Roster {
	return &employeeRepositoryImpl{db: db}
}

// ListEmployees implements employee.Roster.
func (e *employeeRepositoryImpl) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, COALESCE(name, ''), COALESCE(department, ''), created_at
		FROM employees
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}

	employees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (employee.Employee, error) {
		var (
			emp       employee.Employee
			createdAt *time.Time
		)
		if err := row.Scan(&emp.ID, &emp.EmployeeID, &emp.Name, &emp.Department, &createdAt); err != nil {
			return employee.Employee{}, err
		}
		if createdAt != nil {
			emp.CreatedAt = formatNaiveUTC(*createdAt)
		}
		return emp, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}
	return employees, nil
}

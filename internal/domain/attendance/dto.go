package attendance

import (
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/validator"
)

// EventFilter narrows a raw event listing. Dates are civil dates (YYYY-MM-DD)
// in the display timezone; sources that cannot filter by date return more and
// the pipeline discards what falls outside the range.
type EventFilter struct {
	EmployeeID string `json:"employee_id,omitempty"`
	DeviceID   string `json:"device_id,omitempty"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

func (f *EventFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != "" && !validator.IsValidCode(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "invalid employee_id"})
	}
	if f.DeviceID != "" && !validator.IsValidCode(f.DeviceID) {
		errs = append(errs, validator.ValidationError{Field: "device_id", Message: "invalid device_id"})
	}

	start, startOK := validator.IsValidDate(f.StartDate)
	if f.StartDate != "" && !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(f.EndDate)
	if f.EndDate != "" && !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
	}
	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: ErrInvalidDateRange.Error()})
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// InRange reports whether a civil date falls inside the filter's date bounds.
// Dates compare lexically because they share the YYYY-MM-DD layout.
func (f EventFilter) InRange(date string) bool {
	if f.StartDate != "" && date < f.StartDate {
		return false
	}
	if f.EndDate != "" && date > f.EndDate {
		return false
	}
	return true
}

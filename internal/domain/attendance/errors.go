package attendance

import "errors"

// Attendance domain errors
var (
	ErrDeviceNotFound   = errors.New("device not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidDateRange = errors.New("start_date must not be after end_date")
)

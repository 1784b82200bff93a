package report

import "errors"

var (
	ErrInvalidDateRange = errors.New("start_date must not be after end_date")
	ErrRangeTooLong     = errors.New("date range must not exceed 366 days")
)

package holiday

import "errors"

// Holiday domain errors
var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("a holiday is already declared on that date")
)

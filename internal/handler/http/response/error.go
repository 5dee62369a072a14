package response

import (
	"errors"
	"net/http"

	"github.com/atlashr/workforce-backend-go/internal/domain/attendance"
	"github.com/atlashr/workforce-backend-go/internal/domain/employee"
	"github.com/atlashr/workforce-backend-go/internal/domain/geofence"
	"github.com/atlashr/workforce-backend-go/internal/domain/holiday"
	"github.com/atlashr/workforce-backend-go/internal/domain/punch"
	"github.com/atlashr/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is not active", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday is already declared on that date")

	// Geofence domain errors
	case errors.Is(err, geofence.ErrAreaNotFound):
		NotFound(w, "Geofenced area not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

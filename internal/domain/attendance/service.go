package attendance

import (
	"context"
)

// AttendanceService defines the reconciliation engine operations exposed to
// the surrounding CRUD layer.
type AttendanceService interface {
	// Generate reconciles one employee's date range into daily attendance
	// records. Idempotent over overlapping ranges; never touches future
	// dates; a failed date is reported in the response and does not abort
	// the batch.
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)

	// List is the read path; no side effects.
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// Statistics returns the monthly breakdown for one employee, including
	// the derived late / early-departure sub-classification.
	Statistics(ctx context.Context, req StatisticsRequest) (StatisticsResponse, error)
}

package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for daily attendance records.
type AttendanceRepository interface {
	// Upsert inserts or updates the record keyed on (employee_id, date).
	// The write must be protected by the unique index on that pair so that
	// concurrent synchronization of the same employee cannot duplicate a day.
	// On update, non-null check-in/check-out/remark values are kept when the
	// incoming value is null: new data augments, it does not erase.
	Upsert(ctx context.Context, record DailyAttendance) (DailyAttendance, error)

	// GetByEmployeeAndDate returns (nil, nil) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*DailyAttendance, error)

	// ListByEmployeeAndRange returns records with from <= date <= to,
	// ascending by date.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]DailyAttendance, error)

	List(ctx context.Context, filter AttendanceFilter) ([]DailyAttendance, int64, error)
}

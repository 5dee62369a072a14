package holiday

import (
	"context"
)

// HolidayService defines business logic for the declared-holiday calendar.
type HolidayService interface {
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)

	// BulkCreateHolidays imports a batch of declarations atomically: one
	// duplicate date rolls back the whole import.
	BulkCreateHolidays(ctx context.Context, req BulkCreateHolidaysRequest) ([]HolidayResponse, error)
	ListHolidays(ctx context.Context, year int) ([]HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}

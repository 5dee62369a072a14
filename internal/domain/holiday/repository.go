package holiday

import (
	"context"
)

// HolidayRepository defines data access for the declared-holiday calendar.
// The reconciliation engine only reads it; writes come from the back office.
type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// ListByYear returns holidays for one calendar year, optionally only
	// active declarations. Year is denormalized from the date for this query.
	ListByYear(ctx context.Context, year int, activeOnly bool) ([]Holiday, error)

	Delete(ctx context.Context, id string) error
}

package punch

import (
	"context"
	"time"
)

type PunchRepository interface {
	Create(ctx context.Context, p Punch) (Punch, error)

	// ListByEmployeeAndRange returns an employee's punches with
	// fromUTC <= punched_at < toUTC, ascending by instant.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, fromUTC, toUTC time.Time) ([]Punch, error)

	List(ctx context.Context, filter PunchFilter) ([]Punch, int64, error)

	Delete(ctx context.Context, id string) error
}

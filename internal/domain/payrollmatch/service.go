package payrollmatch

import (
	"context"
)

// PayrollDaysProvider is the optional upstream payroll collaborator. An
// unconfigured deployment returns ErrPayrollDaysUnavailable for every call.
type PayrollDaysProvider interface {
	GetPayrollDays(ctx context.Context, employeeID string, month string) (float64, error)
}

// PayrollMatchService cross-checks attendance-derived day counts against
// payroll-reported ones for one month.
type PayrollMatchService interface {
	Match(ctx context.Context, filter MatchFilter) ([]PayrollMatchRecord, error)
}

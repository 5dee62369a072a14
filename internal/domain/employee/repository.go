package employee

import (
	"context"
)

// EmployeeRepository is the narrow read contract over the employee directory.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive returns active employees, optionally filtered by a
	// name/code search term.
	ListActive(ctx context.Context, search string) ([]Employee, error)
}

// SalaryComponentRepository exposes the salary template provider contract.
type SalaryComponentRepository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]SalaryComponent, error)
}

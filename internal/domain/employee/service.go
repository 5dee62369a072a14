package employee

import (
	"context"
)

// EmployeeService exposes the read-only employee directory.
type EmployeeService interface {
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, search string) ([]EmployeeResponse, error)
}

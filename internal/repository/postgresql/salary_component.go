package postgresql

import (
	"context"
	"fmt"

	"github.com/atlashr/workforce-backend-go/internal/domain/employee"
	"github.com/atlashr/workforce-backend-go/internal/pkg/database"
)

type salaryComponentRepository struct {
	db *database.DB
}

// ListByEmployee implements employee.SalaryComponentRepository.
func (r *salaryComponentRepository) ListByEmployee(ctx context.Context, employeeID string) ([]employee.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, name, component_type, calculation_type,
		       amount, is_active, created_at, updated_at
		FROM salary_components
		WHERE employee_id = $1
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary components: %w", err)
	}
	defer rows.Close()

	var components []employee.SalaryComponent
	for rows.Next() {
		var c employee.SalaryComponent
		err := rows.Scan(
			&c.ID, &c.EmployeeID, &c.Name, &c.Type, &c.CalculationType,
			&c.Amount, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary component: %w", err)
		}
		components = append(components, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating salary component rows: %w", err)
	}

	return components, nil
}

func NewSalaryComponentRepository(db *database.DB) employee.SalaryComponentRepository {
	return &salaryComponentRepository{db: db}
}

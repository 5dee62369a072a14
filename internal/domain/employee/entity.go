package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is owned by the broader HR system; the reconciliation engine
// only reads it.
type Employee struct {
	ID            string
	FullName      string
	EmployeeCode  string
	DepartmentID  *string
	DesignationID *string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ComponentType enum
type ComponentType string

const (
	ComponentTypeEarning      ComponentType = "earning"
	ComponentTypeDeduction    ComponentType = "deduction"
	ComponentTypeContribution ComponentType = "contribution"
)

// CalculationType enum
type CalculationType string

const (
	CalculationFixedAmount CalculationType = "fixed_amount"
	CalculationPercentage  CalculationType = "percentage"
	CalculationFormula     CalculationType = "formula"
)

// SalaryComponent is one line of an employee's monthly salary template.
type SalaryComponent struct {
	ID              string
	EmployeeID      string
	Name            string
	Type            ComponentType
	CalculationType CalculationType
	Amount          decimal.Decimal
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MonthlySalary sums the active, fixed-amount earning components of a salary
// template. Percentage and formula components are outside the reconciliation
// core and are skipped.
func MonthlySalary(components []SalaryComponent) decimal.Decimal {
	total := decimal.Zero
	for _, c := range components {
		if !c.IsActive || c.Type != ComponentTypeEarning || c.CalculationType != CalculationFixedAmount {
			continue
		}
		total = total.Add(c.Amount)
	}
	return total
}

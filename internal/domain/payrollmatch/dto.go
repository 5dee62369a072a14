package payrollmatch

import (
	"time"

	"github.com/atlashr/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// MatchStatus enum
type MatchStatus string

const (
	StatusMatched     MatchStatus = "Matched"
	StatusUnderReview MatchStatus = "Under Review"
	StatusMismatch    MatchStatus = "Mismatch"

	// StatusUnavailable marks rows whose payroll-days figure could not be
	// obtained. The engine refuses to self-referentially default payroll
	// days to attendance days, which would make every row trivially match.
	StatusUnavailable MatchStatus = "Unavailable"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case StatusMatched, StatusUnderReview, StatusMismatch, StatusUnavailable:
		return true
	}
	return false
}

// PayrollMatchRecord is ephemeral: it is recomputed on every query and never
// persisted.
type PayrollMatchRecord struct {
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name"`
	EmployeeCode     string          `json:"employee_code"`
	Month            string          `json:"month"`
	AttendanceDays   float64         `json:"attendance_days"`
	PayrollDays      float64         `json:"payroll_days"`
	DaysDifference   float64         `json:"days_difference"`
	AttendanceAmount decimal.Decimal `json:"attendance_amount"`
	PayrollAmount    decimal.Decimal `json:"payroll_amount"`
	AmountDifference decimal.Decimal `json:"amount_difference"`
	MatchStatus      MatchStatus     `json:"match_status"`
	Remark           *string         `json:"remark,omitempty"`
}

type MatchFilter struct {
	Month  string // "2006-01", defaults to the current month
	Status *string
	Search *string
}

func (f *MatchFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != "" {
		if _, err := time.Parse("2006-01", f.Month); err != nil {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a valid month (YYYY-MM)"})
		}
	}
	if f.Status != nil && !MatchStatus(*f.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a valid match status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

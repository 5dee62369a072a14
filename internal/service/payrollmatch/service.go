package payrollmatch

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/atlashr/workforce-backend-go/internal/config"
	"github.com/atlashr/workforce-backend-go/internal/domain/attendance"
	"github.com/atlashr/workforce-backend-go/internal/domain/employee"
	"github.com/atlashr/workforce-backend-go/internal/domain/payrollmatch"
	"github.com/atlashr/workforce-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

type PayrollMatchServiceImpl struct {
	employee.EmployeeRepository
	employee.SalaryComponentRepository
	attendance.AttendanceRepository
	provider payrollmatch.PayrollDaysProvider

	cal *calendar.Calendar
	cfg config.PayrollConfig
	now func() time.Time
}

// Match implements payrollmatch.PayrollMatchService.
// Records are ephemeral: each call recomputes the month from stored
// attendance records and the external payroll-days figure.
func (s *PayrollMatchServiceImpl) Match(ctx context.Context, filter payrollmatch.MatchFilter) ([]payrollmatch.PayrollMatchRecord, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	month := filter.Month
	if month == "" {
		month = s.cal.Today(s.now()).Format("2006-01")
	}
	first, last, err := s.cal.MonthRange(month)
	if err != nil {
		return nil, err
	}

	search := ""
	if filter.Search != nil {
		search = *filter.Search
	}
	employees, err := s.EmployeeRepository.ListActive(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	records := make([]payrollmatch.PayrollMatchRecord, 0, len(employees))
	for _, emp := range employees {
		rec, err := s.matchEmployee(ctx, emp, month, first, last)
		if err != nil {
			return nil, err
		}
		if filter.Status != nil && string(rec.MatchStatus) != *filter.Status {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

func (s *PayrollMatchServiceImpl) matchEmployee(ctx context.Context, emp employee.Employee, month string, first, last time.Time) (payrollmatch.PayrollMatchRecord, error) {
	dayRecords, err := s.AttendanceRepository.ListByEmployeeAndRange(ctx, emp.ID, first, last)
	if err != nil {
		return payrollmatch.PayrollMatchRecord{}, fmt.Errorf("failed to list attendance for %s: %w", emp.ID, err)
	}

	attendanceDays := sumAttendanceDays(dayRecords)

	components, err := s.SalaryComponentRepository.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return payrollmatch.PayrollMatchRecord{}, fmt.Errorf("failed to list salary components for %s: %w", emp.ID, err)
	}
	salary := employee.MonthlySalary(components)

	rec := payrollmatch.PayrollMatchRecord{
		EmployeeID:       emp.ID,
		EmployeeName:     emp.FullName,
		EmployeeCode:     emp.EmployeeCode,
		Month:            month,
		AttendanceDays:   attendanceDays,
		AttendanceAmount: s.prorate(salary, attendanceDays),
		PayrollAmount:    decimal.Zero,
		AmountDifference: decimal.Zero,
	}

	payrollDays, err := s.provider.GetPayrollDays(ctx, emp.ID, month)
	if err != nil {
		// No integrated payroll system: refuse to default payroll days to
		// attendance days, which would make every row trivially match.
		if errors.Is(err, payrollmatch.ErrPayrollDaysUnavailable) {
			remark := "Payroll days unavailable: no payroll system integrated for this month"
			rec.MatchStatus = payrollmatch.StatusUnavailable
			rec.Remark = &remark
			return rec, nil
		}
		return payrollmatch.PayrollMatchRecord{}, fmt.Errorf("failed to get payroll days for %s: %w", emp.ID, err)
	}

	rec.PayrollDays = payrollDays
	rec.DaysDifference = attendanceDays - payrollDays
	rec.PayrollAmount = s.prorate(salary, payrollDays)
	rec.AmountDifference = rec.AttendanceAmount.Sub(rec.PayrollAmount)
	rec.MatchStatus = s.classify(rec.DaysDifference, rec.AmountDifference)

	if rec.DaysDifference != 0 || !rec.AmountDifference.IsZero() {
		remark := fmt.Sprintf("Attendance differs from payroll by %+.1f day(s) and %s", rec.DaysDifference, rec.AmountDifference.String())
		rec.Remark = &remark
	}

	return rec, nil
}

// sumAttendanceDays sums the per-status day weights (PRESENT 1, HALF_DAY
// 0.5) over one month of records, rounded to the nearest half day.
func sumAttendanceDays(records []attendance.DailyAttendance) float64 {
	days := 0.0
	for _, rec := range records {
		days += rec.Status.DayWeight()
	}
	return math.Round(days*2) / 2
}

// prorate computes round(monthlySalary / workingDaysPerMonth * days).
func (s *PayrollMatchServiceImpl) prorate(salary decimal.Decimal, days float64) decimal.Decimal {
	if s.cfg.WorkingDaysPerMonth <= 0 {
		return decimal.Zero
	}
	perDay := salary.Div(decimal.NewFromInt(int64(s.cfg.WorkingDaysPerMonth)))
	return perDay.Mul(decimal.NewFromFloat(days)).Round(0)
}

func (s *PayrollMatchServiceImpl) classify(daysDiff float64, amountDiff decimal.Decimal) payrollmatch.MatchStatus {
	if daysDiff == 0 && amountDiff.IsZero() {
		return payrollmatch.StatusMatched
	}
	amountThreshold := decimal.NewFromInt(s.cfg.AmountThreshold)
	if math.Abs(daysDiff) <= s.cfg.DayThreshold && amountDiff.Abs().LessThanOrEqual(amountThreshold) {
		return payrollmatch.StatusUnderReview
	}
	return payrollmatch.StatusMismatch
}

func NewPayrollMatchService(
	employeeRepo employee.EmployeeRepository,
	componentRepo employee.SalaryComponentRepository,
	attendanceRepo attendance.AttendanceRepository,
	provider payrollmatch.PayrollDaysProvider,
	cal *calendar.Calendar,
	cfg config.PayrollConfig,
) payrollmatch.PayrollMatchService {
	return &PayrollMatchServiceImpl{
		EmployeeRepository:        employeeRepo,
		SalaryComponentRepository: componentRepo,
		AttendanceRepository:      attendanceRepo,
		provider:                  provider,
		cal:                       cal,
		cfg:                       cfg,
		now:                       time.Now,
	}
}

// unconfiguredProvider is the default when no payroll system is wired in.
type unconfiguredProvider struct{}

func (unconfiguredProvider) GetPayrollDays(ctx context.Context, employeeID string, month string) (float64, error) {
	return 0, payrollmatch.ErrPayrollDaysUnavailable
}

// NewUnconfiguredProvider returns a PayrollDaysProvider that reports every
// employee-month as unavailable.
func NewUnconfiguredProvider() payrollmatch.PayrollDaysProvider {
	return unconfiguredProvider{}
}

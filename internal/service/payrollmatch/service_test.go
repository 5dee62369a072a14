package payrollmatch

import (
	"context"
	"testing"
	"time"

	"github.com/atlashr/workforce-backend-go/internal/config"
	"github.com/atlashr/workforce-backend-go/internal/domain/attendance"
	"github.com/atlashr/workforce-backend-go/internal/domain/employee"
	"github.com/atlashr/workforce-backend-go/internal/domain/payrollmatch"
	"github.com/atlashr/workforce-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) ListActive(ctx context.Context, search string) ([]employee.Employee, error) {
	return r.employees, nil
}

type fakeComponentRepo struct {
	components map[string][]employee.SalaryComponent
}

func (r *fakeComponentRepo) ListByEmployee(ctx context.Context, employeeID string) ([]employee.SalaryComponent, error) {
	return r.components[employeeID], nil
}

type fakeAttendanceRepo struct {
	records map[string][]attendance.DailyAttendance
}

func (r *fakeAttendanceRepo) Upsert(ctx context.Context, rec attendance.DailyAttendance) (attendance.DailyAttendance, error) {
	r.records[rec.EmployeeID] = append(r.records[rec.EmployeeID], rec)
	return rec, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.DailyAttendance, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.DailyAttendance, error) {
	return r.records[employeeID], nil
}

func (r *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.DailyAttendance, int64, error) {
	return nil, 0, nil
}

// stubProvider reports configured payroll days and unavailability for
// everyone else.
type stubProvider struct {
	days map[string]float64
}

func (p stubProvider) GetPayrollDays(ctx context.Context, employeeID string, month string) (float64, error) {
	if d, ok := p.days[employeeID]; ok {
		return d, nil
	}
	return 0, payrollmatch.ErrPayrollDaysUnavailable
}

func presentDays(n int) []attendance.DailyAttendance {
	recs := make([]attendance.DailyAttendance, 0, n)
	for i := 0; i < n; i++ {
		recs = append(recs, attendance.DailyAttendance{Status: attendance.StatusPresent})
	}
	return recs
}

func salaryOf(amount int64) []employee.SalaryComponent {
	return []employee.SalaryComponent{
		{Type: employee.ComponentTypeEarning, CalculationType: employee.CalculationFixedAmount, Amount: decimal.NewFromInt(amount), IsActive: true},
	}
}

func newMatchService(t *testing.T, employees []employee.Employee, components map[string][]employee.SalaryComponent, records map[string][]attendance.DailyAttendance, provider payrollmatch.PayrollDaysProvider) *PayrollMatchServiceImpl {
	t.Helper()

	cal, err := calendar.Load("Asia/Kolkata")
	require.NoError(t, err)

	return &PayrollMatchServiceImpl{
		EmployeeRepository:        &fakeEmployeeRepo{employees: employees},
		SalaryComponentRepository: &fakeComponentRepo{components: components},
		AttendanceRepository:      &fakeAttendanceRepo{records: records},
		provider:                  provider,
		cal:                       cal,
		cfg: config.PayrollConfig{
			WorkingDaysPerMonth: 26,
			DayThreshold:        1,
			AmountThreshold:     1000,
		},
		now: func() time.Time { return time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC) },
	}
}

func TestMatch_Mismatch(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", FullName: "Asha Rao", EmployeeCode: "1001-0001", IsActive: true}
	svc := newMatchService(t,
		[]employee.Employee{emp},
		map[string][]employee.SalaryComponent{"emp-1": salaryOf(26000)},
		map[string][]attendance.DailyAttendance{"emp-1": presentDays(20)},
		stubProvider{days: map[string]float64{"emp-1": 22}},
	)

	records, err := svc.Match(context.Background(), payrollmatch.MatchFilter{Month: "2024-06"})
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, 20.0, rec.AttendanceDays)
	assert.Equal(t, 22.0, rec.PayrollDays)
	assert.Equal(t, -2.0, rec.DaysDifference)
	assert.True(t, rec.AttendanceAmount.Equal(decimal.NewFromInt(20000)), "got %s", rec.AttendanceAmount)
	assert.True(t, rec.PayrollAmount.Equal(decimal.NewFromInt(22000)), "got %s", rec.PayrollAmount)
	assert.True(t, rec.AmountDifference.Equal(decimal.NewFromInt(-2000)), "got %s", rec.AmountDifference)
	assert.Equal(t, payrollmatch.StatusMismatch, rec.MatchStatus)
	assert.NotNil(t, rec.Remark)
}

func TestMatch_Matched(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", FullName: "Asha Rao", EmployeeCode: "1001-0001", IsActive: true}
	svc := newMatchService(t,
		[]employee.Employee{emp},
		map[string][]employee.SalaryComponent{"emp-1": salaryOf(26000)},
		map[string][]attendance.DailyAttendance{"emp-1": presentDays(22)},
		stubProvider{days: map[string]float64{"emp-1": 22}},
	)

	records, err := svc.Match(context.Background(), payrollmatch.MatchFilter{Month: "2024-06"})
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, payrollmatch.StatusMatched, rec.MatchStatus)
	assert.Equal(t, 0.0, rec.DaysDifference)
	assert.True(t, rec.AmountDifference.IsZero())
	assert.Nil(t, rec.Remark)
}

func TestMatch_UnderReview(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", FullName: "Asha Rao", EmployeeCode: "1001-0001", IsActive: true}
	svc := newMatchService(t,
		[]employee.Employee{emp},
		map[string][]employee.SalaryComponent{"emp-1": salaryOf(26000)},
		map[string][]attendance.DailyAttendance{"emp-1": presentDays(20)},
		stubProvider{days: map[string]float64{"emp-1": 21}},
	)

	records, err := svc.Match(context.Background(), payrollmatch.MatchFilter{Month: "2024-06"})
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, -1.0, rec.DaysDifference)
	assert.True(t, rec.AmountDifference.Equal(decimal.NewFromInt(-1000)), "got %s", rec.AmountDifference)
	assert.Equal(t, payrollmatch.StatusUnderReview, rec.MatchStatus)
	assert.NotNil(t, rec.Remark)
}

func TestMatch_UnavailableWhenNoProvider(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", FullName: "Asha Rao", EmployeeCode: "1001-0001", IsActive: true}
	svc := newMatchService(t,
		[]employee.Employee{emp},
		map[string][]employee.SalaryComponent{"emp-1": salaryOf(26000)},
		map[string][]attendance.DailyAttendance{"emp-1": presentDays(20)},
		NewUnconfiguredProvider(),
	)

	records, err := svc.Match(context.Background(), payrollmatch.MatchFilter{Month: "2024-06"})
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, payrollmatch.StatusUnavailable, rec.MatchStatus)
	assert.Equal(t, 20.0, rec.AttendanceDays)
	assert.Equal(t, 0.0, rec.PayrollDays)
	// Attendance-derived figures are still reported
	assert.True(t, rec.AttendanceAmount.Equal(decimal.NewFromInt(20000)), "got %s", rec.AttendanceAmount)
	require.NotNil(t, rec.Remark)
	assert.Contains(t, *rec.Remark, "unavailable")
}

func TestMatch_HalfDaysCountAsHalf(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", FullName: "Asha Rao", EmployeeCode: "1001-0001", IsActive: true}
	recs := append(presentDays(0),
		attendance.DailyAttendance{Status: attendance.StatusHalfDay},
		attendance.DailyAttendance{Status: attendance.StatusHalfDay},
		attendance.DailyAttendance{Status: attendance.StatusHalfDay},
	)
	svc := newMatchService(t,
		[]employee.Employee{emp},
		map[string][]employee.SalaryComponent{"emp-1": salaryOf(26000)},
		map[string][]attendance.DailyAttendance{"emp-1": recs},
		NewUnconfiguredProvider(),
	)

	records, err := svc.Match(context.Background(), payrollmatch.MatchFilter{Month: "2024-06"})
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, 1.5, records[0].AttendanceDays)
	assert.True(t, records[0].AttendanceAmount.Equal(decimal.NewFromInt(1500)), "got %s", records[0].AttendanceAmount)
}

func TestMatch_IgnoresInactiveAndNonEarningComponents(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", FullName: "Asha Rao", EmployeeCode: "1001-0001", IsActive: true}
	components := []employee.SalaryComponent{
		{Type: employee.ComponentTypeEarning, CalculationType: employee.CalculationFixedAmount, Amount: decimal.NewFromInt(26000), IsActive: true},
		{Type: employee.ComponentTypeEarning, CalculationType: employee.CalculationFixedAmount, Amount: decimal.NewFromInt(5000), IsActive: false},
		{Type: employee.ComponentTypeDeduction, CalculationType: employee.CalculationFixedAmount, Amount: decimal.NewFromInt(1800), IsActive: true},
		{Type: employee.ComponentTypeEarning, CalculationType: employee.CalculationPercentage, Amount: decimal.NewFromInt(40), IsActive: true},
	}
	svc := newMatchService(t,
		[]employee.Employee{emp},
		map[string][]employee.SalaryComponent{"emp-1": components},
		map[string][]attendance.DailyAttendance{"emp-1": presentDays(26)},
		NewUnconfiguredProvider(),
	)

	records, err := svc.Match(context.Background(), payrollmatch.MatchFilter{Month: "2024-06"})
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Full month at the full fixed earning
	assert.True(t, records[0].AttendanceAmount.Equal(decimal.NewFromInt(26000)), "got %s", records[0].AttendanceAmount)
}

func TestMatch_StatusFilter(t *testing.T) {
	emps := []employee.Employee{
		{ID: "emp-1", FullName: "Asha Rao", EmployeeCode: "1001-0001", IsActive: true},
		{ID: "emp-2", FullName: "Vikram Nair", EmployeeCode: "1001-0002", IsActive: true},
	}
	svc := newMatchService(t,
		emps,
		map[string][]employee.SalaryComponent{
			"emp-1": salaryOf(26000),
			"emp-2": salaryOf(26000),
		},
		map[string][]attendance.DailyAttendance{
			"emp-1": presentDays(22),
			"emp-2": presentDays(18),
		},
		stubProvider{days: map[string]float64{"emp-1": 22, "emp-2": 22}},
	)

	status := string(payrollmatch.StatusMismatch)
	records, err := svc.Match(context.Background(), payrollmatch.MatchFilter{Month: "2024-06", Status: &status})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "emp-2", records[0].EmployeeID)
}

func TestMatch_DefaultsToCurrentMonth(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", FullName: "Asha Rao", EmployeeCode: "1001-0001", IsActive: true}
	svc := newMatchService(t,
		[]employee.Employee{emp},
		map[string][]employee.SalaryComponent{"emp-1": salaryOf(26000)},
		map[string][]attendance.DailyAttendance{"emp-1": presentDays(10)},
		NewUnconfiguredProvider(),
	)

	records, err := svc.Match(context.Background(), payrollmatch.MatchFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-06", records[0].Month)
}

func TestMatch_InvalidMonth(t *testing.T) {
	svc := newMatchService(t, nil, nil, nil, NewUnconfiguredProvider())

	_, err := svc.Match(context.Background(), payrollmatch.MatchFilter{Month: "June"})
	assert.Error(t, err)
}

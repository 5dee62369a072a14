package payrollmatch

import "errors"

// ErrPayrollDaysUnavailable signals that no payroll system is integrated for
// the requested employee-month. Matchers convert it to StatusUnavailable
// rather than guessing a figure.
var ErrPayrollDaysUnavailable = errors.New("payroll days are not available for this employee and month")

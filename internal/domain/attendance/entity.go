package attendance

import (
	"time"
)

// Status enum for one employee-day. The generator emits Present, Absent,
// Holiday and WeekOff. HalfDay and OnLeave are written by external
// collaborators (payroll corrections, leave approval) and are only read
// here; the generator must never overwrite an OnLeave record.
type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusHoliday Status = "HOLIDAY"
	StatusWeekOff Status = "WEEK_OFF"
	StatusHalfDay Status = "HALF_DAY"
	StatusOnLeave Status = "ON_LEAVE"
)

// Valid reports whether s is a known persisted status.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHoliday, StatusWeekOff, StatusHalfDay, StatusOnLeave:
		return true
	}
	return false
}

// DayWeight returns the attendance-day contribution of a status:
// 1 for a counted day, 0.5 for a half day, 0 otherwise.
func (s Status) DayWeight() float64 {
	switch s {
	case StatusPresent:
		return 1
	case StatusHalfDay:
		return 0.5
	}
	return 0
}

// DailyAttendance is the system of record for one employee-day. At most one
// record exists per (employee, date); that pair is the idempotency key.
type DailyAttendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time // local canonical date, midnight in the target zone
	Status       Status
	CheckInTime  *string // local "15:04"
	CheckOutTime *string
	WorkingHours *float64
	Remark       *string
	LocationName *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

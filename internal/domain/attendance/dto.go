package attendance

import (
	"time"

	"github.com/atlashr/workforce-backend-go/internal/pkg/validator"
)

type GenerateRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`

	// Set by Validate.
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd {
		if start.After(end) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
		}
		r.Start = start
		r.End = end
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DateError reports one failed date inside an otherwise successful batch.
type DateError struct {
	Date  string `json:"date"`
	Error string `json:"error"`
}

// GenerateResponse always carries the counts and the produced records, even
// under partial failure. It never collapses to a bare success flag.
type GenerateResponse struct {
	Message   string               `json:"message"`
	Generated int                  `json:"generated"`
	Updated   int                  `json:"updated"`
	Records   []AttendanceResponse `json:"records"`
	Errors    []DateError          `json:"errors,omitempty"`
}

type AttendanceFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
	Status     *string
	Search     *string
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if f.Status != nil && !Status(*f.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a valid attendance status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	EmployeeCode *string  `json:"employee_code,omitempty"`
	Date         string   `json:"date"`
	Status       string   `json:"status"`
	CheckInTime  *string  `json:"check_in_time,omitempty"`
	CheckOutTime *string  `json:"check_out_time,omitempty"`
	WorkingHours *float64 `json:"working_hours,omitempty"`
	Remark       *string  `json:"remark,omitempty"`
	LocationName *string  `json:"location_name,omitempty"`
}

func ToResponse(rec DailyAttendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		EmployeeCode: rec.EmployeeCode,
		Date:         rec.Date.Format("2006-01-02"),
		Status:       string(rec.Status),
		CheckInTime:  rec.CheckInTime,
		CheckOutTime: rec.CheckOutTime,
		WorkingHours: rec.WorkingHours,
		Remark:       rec.Remark,
		LocationName: rec.LocationName,
	}
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	Attendances []AttendanceResponse `json:"attendances"`
}

type StatisticsRequest struct {
	EmployeeID string
	Month      string // "2006-01"
}

func (r *StatisticsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, err := time.Parse("2006-01", r.Month); err != nil {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a valid month (YYYY-MM)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// StatisticsResponse is the monthly per-status breakdown. Late and
// early-departure are derived views over stored PRESENT records; they are
// never persisted as statuses by the generator.
type StatisticsResponse struct {
	EmployeeID     string  `json:"employee_id"`
	Month          string  `json:"month"`
	Present        int     `json:"present"`
	Late           int     `json:"late"`
	EarlyDeparture int     `json:"early_departure"`
	Absent         int     `json:"absent"`
	HalfDay        int     `json:"half_day"`
	Holiday        int     `json:"holiday"`
	WeekOff        int     `json:"week_off"`
	OnLeave        int     `json:"on_leave"`
	AttendanceDays float64 `json:"attendance_days"`
	TotalHours     float64 `json:"total_hours"`
}

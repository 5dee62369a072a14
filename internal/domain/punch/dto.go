package punch

import (
	"time"

	"github.com/atlashr/workforce-backend-go/internal/pkg/validator"
)

type CreatePunchRequest struct {
	EmployeeID     string  `json:"employee_id"`
	Type           string  `json:"type"`
	PunchedAt      string  `json:"punched_at"` // UTC ISO-8601 instant
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	GeofenceAreaID *string `json:"geofence_area_id,omitempty"`
	ProjectID      *string `json:"project_id,omitempty"`

	// Set by Validate from PunchedAt.
	Instant time.Time `json:"-"`
}

func (r *CreatePunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.Type, []string{string(TypeIn), string(TypeOut)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'IN' or 'OUT'"})
	}

	// A parse failure is invalid input; it is never defaulted to now.
	instant, ok := validator.IsValidDateTime(r.PunchedAt)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "punched_at", Message: "must be a UTC ISO-8601 instant"})
	} else {
		r.Instant = instant.UTC()
	}

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
	Validity   *string
	Page       int
	Limit      int
}

func (f *PunchFilter) Validate() error {
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
	if f.Validity != nil && !validator.IsInSlice(*f.Validity,
		[]string{string(ValidityValid), string(ValidityInvalid), string(ValidityOutsideGeofence)}) {
		errs = append(errs, validator.ValidationError{Field: "validity", Message: "is not a valid punch validity"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	Type           string  `json:"type"`
	PunchedAt      string  `json:"punched_at"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Validity       string  `json:"validity"`
	GeofenceAreaID *string `json:"geofence_area_id,omitempty"`
	ProjectID      *string `json:"project_id,omitempty"`
}

func ToResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		Type:           string(p.Type),
		PunchedAt:      p.PunchedAt.UTC().Format(time.RFC3339),
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		Validity:       string(p.Validity),
		GeofenceAreaID: p.GeofenceAreaID,
		ProjectID:      p.ProjectID,
	}
}

type ListPunchResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Punches    []PunchResponse `json:"punches"`
}

package holiday

import (
	"fmt"
	"time"

	"github.com/atlashr/workforce-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`

	// Set by Validate.
	On time.Time `json:"-"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if on, ok := validator.IsValidDate(r.Date); ok {
		r.On = on
	} else {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkCreateHolidaysRequest imports a list of declarations, typically one
// year's calendar, in a single all-or-nothing batch.
type BulkCreateHolidaysRequest struct {
	Holidays []CreateHolidayRequest `json:"holidays"`
}

func (r *BulkCreateHolidaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Holidays) == 0 {
		errs = append(errs, validator.ValidationError{Field: "holidays", Message: "must not be empty"})
	}
	for i := range r.Holidays {
		if err := r.Holidays[i].Validate(); err != nil {
			if nested, ok := err.(validator.ValidationErrors); ok {
				for _, ne := range nested {
					errs = append(errs, validator.ValidationError{
						Field:   fmt.Sprintf("holidays[%d].%s", i, ne.Field),
						Message: ne.Message,
					})
				}
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Name     string `json:"name"`
	Year     int    `json:"year"`
	IsActive bool   `json:"is_active"`
}

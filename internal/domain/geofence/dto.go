package geofence

import (
	"github.com/atlashr/workforce-backend-go/internal/pkg/validator"
)

type CreateAreaRequest struct {
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
}

func (r *CreateAreaRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "must be between -180 and 180"})
	}
	if r.RadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{Field: "radius_meters", Message: "must be greater than 0"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AreaResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
	IsActive     bool    `json:"is_active"`
}

func ToResponse(a Area) AreaResponse {
	return AreaResponse{
		ID:           a.ID,
		Name:         a.Name,
		Latitude:     a.Latitude,
		Longitude:    a.Longitude,
		RadiusMeters: a.RadiusMeters,
		IsActive:     a.IsActive,
	}
}

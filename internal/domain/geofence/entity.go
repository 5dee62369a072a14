package geofence

import "time"

// Area is a circular geofenced work location. Punches carry their distance
// verdict against the linked area as a validity status.
type Area struct {
	ID           string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

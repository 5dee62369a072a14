package punch

import (
	"time"
)

// Type enum
type Type string

const (
	TypeIn  Type = "IN"
	TypeOut Type = "OUT"
)

// Validity enum
type Validity string

const (
	ValidityValid           Validity = "VALID"
	ValidityInvalid         Validity = "INVALID"
	ValidityOutsideGeofence Validity = "OUTSIDE_GEOFENCE"
)

// Punch is one GPS or biometric event. PunchedAt (UTC) is the only
// authoritative time field. Punches are immutable once created; they are
// only created or deleted, never mutated.
type Punch struct {
	ID             string
	EmployeeID     string
	Type           Type
	PunchedAt      time.Time
	Latitude       float64
	Longitude      float64
	Validity       Validity
	GeofenceAreaID *string
	ProjectID      *string
	CreatedAt      time.Time
}

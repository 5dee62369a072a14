package punch

import (
	"context"
)

// PunchService defines business logic for punch ingestion.
type PunchService interface {
	// CreatePunch records one location punch, computing its geofence
	// validity against the linked area.
	CreatePunch(ctx context.Context, req CreatePunchRequest) (PunchResponse, error)

	ListPunches(ctx context.Context, filter PunchFilter) (ListPunchResponse, error)

	// DeletePunch removes a punch (administrative correction only).
	DeletePunch(ctx context.Context, id string) error
}

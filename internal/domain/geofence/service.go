package geofence

import (
	"context"
)

// AreaService defines business logic for geofenced work locations.
type AreaService interface {
	CreateArea(ctx context.Context, req CreateAreaRequest) (AreaResponse, error)
	ListAreas(ctx context.Context) ([]AreaResponse, error)
}

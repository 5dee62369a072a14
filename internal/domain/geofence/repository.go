package geofence

import "context"

type AreaRepository interface {
	Create(ctx context.Context, area Area) (Area, error)
	GetByID(ctx context.Context, id string) (Area, error)
	ListActive(ctx context.Context) ([]Area, error)
}

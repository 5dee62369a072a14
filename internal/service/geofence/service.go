package geofence

import (
	"context"
	"fmt"

	"github.com/atlashr/workforce-backend-go/internal/domain/geofence"
)

type AreaServiceImpl struct {
	geofence.AreaRepository
}

// CreateArea implements geofence.AreaService.
func (s *AreaServiceImpl) CreateArea(ctx context.Context, req geofence.CreateAreaRequest) (geofence.AreaResponse, error) {
	if err := req.Validate(); err != nil {
		return geofence.AreaResponse{}, err
	}

	area := geofence.Area{
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
		IsActive:     true,
	}

	created, err := s.AreaRepository.Create(ctx, area)
	if err != nil {
		return geofence.AreaResponse{}, fmt.Errorf("failed to create geofence area: %w", err)
	}

	return geofence.ToResponse(created), nil
}

// ListAreas implements geofence.AreaService.
func (s *AreaServiceImpl) ListAreas(ctx context.Context) ([]geofence.AreaResponse, error) {
	areas, err := s.AreaRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list geofence areas: %w", err)
	}

	responses := make([]geofence.AreaResponse, 0, len(areas))
	for _, area := range areas {
		responses = append(responses, geofence.ToResponse(area))
	}

	return responses, nil
}

func NewAreaService(repo geofence.AreaRepository) geofence.AreaService {
	return &AreaServiceImpl{
		AreaRepository: repo,
	}
}

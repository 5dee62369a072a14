package punch

import (
	"context"
	"errors"
	"fmt"

	"github.com/atlashr/workforce-backend-go/internal/domain/employee"
	"github.com/atlashr/workforce-backend-go/internal/domain/geofence"
	"github.com/atlashr/workforce-backend-go/internal/domain/punch"
	"github.com/atlashr/workforce-backend-go/internal/pkg/utils"
	"github.com/google/uuid"
)

type PunchServiceImpl struct {
	punch.PunchRepository
	employee.EmployeeRepository
	areaRepo geofence.AreaRepository
}

// CreatePunch implements punch.PunchService.
// The stored instant is the caller-supplied UTC timestamp, already parsed by
// Validate; device-local time is never trusted for day bucketing.
func (s *PunchServiceImpl) CreatePunch(ctx context.Context, req punch.CreatePunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return punch.PunchResponse{}, employee.ErrEmployeeNotFound
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	validity, err := s.resolveValidity(ctx, req)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	p := punch.Punch{
		ID:             uuid.NewString(),
		EmployeeID:     req.EmployeeID,
		Type:           punch.Type(req.Type),
		PunchedAt:      req.Instant,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Validity:       validity,
		GeofenceAreaID: req.GeofenceAreaID,
		ProjectID:      req.ProjectID,
	}

	created, err := s.PunchRepository.Create(ctx, p)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return punch.ToResponse(created), nil
}

func (s *PunchServiceImpl) resolveValidity(ctx context.Context, req punch.CreatePunchRequest) (punch.Validity, error) {
	if req.GeofenceAreaID == nil {
		return punch.ValidityValid, nil
	}

	area, err := s.areaRepo.GetByID(ctx, *req.GeofenceAreaID)
	if err != nil {
		if errors.Is(err, geofence.ErrAreaNotFound) {
			return "", geofence.ErrAreaNotFound
		}
		return "", fmt.Errorf("failed to get geofence area: %w", err)
	}

	if !area.IsActive {
		return punch.ValidityInvalid, nil
	}

	distance := utils.HaversineDistance(req.Latitude, req.Longitude, area.Latitude, area.Longitude)
	if distance > float64(area.RadiusMeters) {
		return punch.ValidityOutsideGeofence, nil
	}

	return punch.ValidityValid, nil
}

// ListPunches implements punch.PunchService.
func (s *PunchServiceImpl) ListPunches(ctx context.Context, filter punch.PunchFilter) (punch.ListPunchResponse, error) {
	if err := filter.Validate(); err != nil {
		return punch.ListPunchResponse{}, err
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}

	punches, total, err := s.PunchRepository.List(ctx, filter)
	if err != nil {
		return punch.ListPunchResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, punch.ToResponse(p))
	}

	return punch.ListPunchResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Punches:    responses,
	}, nil
}

// DeletePunch implements punch.PunchService.
func (s *PunchServiceImpl) DeletePunch(ctx context.Context, id string) error {
	if err := s.PunchRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, punch.ErrPunchNotFound) {
			return punch.ErrPunchNotFound
		}
		return fmt.Errorf("failed to delete punch: %w", err)
	}
	return nil
}

func NewPunchService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	areaRepo geofence.AreaRepository,
) punch.PunchService {
	return &PunchServiceImpl{
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
		areaRepo:           areaRepo,
	}
}

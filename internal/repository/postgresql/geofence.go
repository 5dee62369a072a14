package postgresql

import (
	"context"
	"fmt"

	"github.com/atlashr/workforce-backend-go/internal/domain/geofence"
	"github.com/atlashr/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type geofenceAreaRepository struct {
	db *database.DB
}

// Create implements geofence.AreaRepository.
func (r *geofenceAreaRepository) Create(ctx context.Context, area geofence.Area) (geofence.Area, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO geofence_areas (name, latitude, longitude, radius_meters, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, area.Name, area.Latitude, area.Longitude, area.RadiusMeters, area.IsActive).
		Scan(&area.ID, &area.CreatedAt, &area.UpdatedAt)
	if err != nil {
		return geofence.Area{}, fmt.Errorf("failed to create geofence area: %w", err)
	}

	return area, nil
}

// GetByID implements geofence.AreaRepository.
func (r *geofenceAreaRepository) GetByID(ctx context.Context, id string) (geofence.Area, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, latitude, longitude, radius_meters, is_active, created_at, updated_at
		FROM geofence_areas
		WHERE id = $1
	`

	var area geofence.Area
	err := q.QueryRow(ctx, query, id).Scan(
		&area.ID, &area.Name, &area.Latitude, &area.Longitude,
		&area.RadiusMeters, &area.IsActive, &area.CreatedAt, &area.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return geofence.Area{}, geofence.ErrAreaNotFound
		}
		return geofence.Area{}, fmt.Errorf("failed to get geofence area: %w", err)
	}

	return area, nil
}

// ListActive implements geofence.AreaRepository.
func (r *geofenceAreaRepository) ListActive(ctx context.Context) ([]geofence.Area, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, latitude, longitude, radius_meters, is_active, created_at, updated_at
		FROM geofence_areas
		WHERE is_active = TRUE
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query geofence areas: %w", err)
	}
	defer rows.Close()

	var areas []geofence.Area
	for rows.Next() {
		var area geofence.Area
		err := rows.Scan(
			&area.ID, &area.Name, &area.Latitude, &area.Longitude,
			&area.RadiusMeters, &area.IsActive, &area.CreatedAt, &area.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan geofence area: %w", err)
		}
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating geofence area rows: %w", err)
	}

	return areas, nil
}

func NewGeofenceAreaRepository(db *database.DB) geofence.AreaRepository {
	return &geofenceAreaRepository{db: db}
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/atlashr/workforce-backend-go/internal/domain/punch"
	"github.com/atlashr/workforce-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

// Create implements punch.PunchRepository.
func (r *punchRepository) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (
			id, employee_id, punch_type, punched_at, latitude, longitude,
			validity, geofence_area_id, project_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		p.ID,
		p.EmployeeID,
		p.Type,
		p.PunchedAt,
		p.Latitude,
		p.Longitude,
		p.Validity,
		p.GeofenceAreaID,
		p.ProjectID,
	).Scan(&p.CreatedAt)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return p, nil
}

// ListByEmployeeAndRange implements punch.PunchRepository.
func (r *punchRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, fromUTC, toUTC time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, punch_type, punched_at, latitude, longitude,
		       validity, geofence_area_id, project_id, created_at
		FROM punches
		WHERE employee_id = $1
		  AND punched_at >= $2
		  AND punched_at < $3
		ORDER BY punched_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, fromUTC, toUTC)
	if err != nil {
		return nil, fmt.Errorf("failed to query punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Type, &p.PunchedAt, &p.Latitude, &p.Longitude,
			&p.Validity, &p.GeofenceAreaID, &p.ProjectID, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating punch rows: %w", err)
	}

	return punches, nil
}

// List implements punch.PunchRepository.
func (r *punchRepository) List(ctx context.Context, filter punch.PunchFilter) ([]punch.Punch, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND punched_at >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND punched_at < ($%d::date + 1)", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Validity != nil && *filter.Validity != "" {
		baseWhere += fmt.Sprintf(" AND validity = $%d", argIdx)
		args = append(args, *filter.Validity)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM punches WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count punches: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT id, employee_id, punch_type, punched_at, latitude, longitude,
		       validity, geofence_area_id, project_id, created_at
		FROM punches
		WHERE %s
		ORDER BY punched_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Type, &p.PunchedAt, &p.Latitude, &p.Longitude,
			&p.Validity, &p.GeofenceAreaID, &p.ProjectID, &p.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating punch rows: %w", err)
	}

	return punches, total, nil
}

// Delete implements punch.PunchRepository.
func (r *punchRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM punches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete punch: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}

	return nil
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}

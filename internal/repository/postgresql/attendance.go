package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atlashr/workforce-backend-go/internal/domain/attendance"
	"github.com/atlashr/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

// Upsert implements attendance.AttendanceRepository.
// The unique index on (employee_id, date) makes this safe under concurrent
// synchronization of the same employee; COALESCE keeps previously recorded
// times and remarks when the incoming value is null, and a stored ON_LEAVE
// status is never replaced.
func (a *attendanceRepository) Upsert(ctx context.Context, rec attendance.DailyAttendance) (attendance.DailyAttendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO daily_attendances (
			employee_id, date, status, check_in_time, check_out_time,
			working_hours, remark, location_name
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = CASE
				WHEN daily_attendances.status = 'ON_LEAVE' THEN daily_attendances.status
				ELSE EXCLUDED.status
			END,
			check_in_time  = COALESCE(EXCLUDED.check_in_time, daily_attendances.check_in_time),
			check_out_time = COALESCE(EXCLUDED.check_out_time, daily_attendances.check_out_time),
			working_hours  = COALESCE(EXCLUDED.working_hours, daily_attendances.working_hours),
			remark         = COALESCE(EXCLUDED.remark, daily_attendances.remark),
			location_name  = COALESCE(EXCLUDED.location_name, daily_attendances.location_name),
			updated_at     = NOW()
		RETURNING id, status, check_in_time, check_out_time, working_hours,
		          remark, location_name, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.Date,
		rec.Status,
		rec.CheckInTime,
		rec.CheckOutTime,
		rec.WorkingHours,
		rec.Remark,
		rec.LocationName,
	).Scan(
		&rec.ID, &rec.Status, &rec.CheckInTime, &rec.CheckOutTime, &rec.WorkingHours,
		&rec.Remark, &rec.LocationName, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.DailyAttendance{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.DailyAttendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, status, check_in_time, check_out_time,
		       working_hours, remark, location_name, created_at, updated_at
		FROM daily_attendances
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var rec attendance.DailyAttendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CheckInTime, &rec.CheckOutTime,
		&rec.WorkingHours, &rec.Remark, &rec.LocationName, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing record for that day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &rec, nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.DailyAttendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, status, check_in_time, check_out_time,
		       working_hours, remark, location_name, created_at, updated_at
		FROM daily_attendances
		WHERE employee_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance range: %w", err)
	}
	defer rows.Close()

	var records []attendance.DailyAttendance
	for rows.Next() {
		var rec attendance.DailyAttendance
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CheckInTime, &rec.CheckOutTime,
			&rec.WorkingHours, &rec.Remark, &rec.LocationName, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}

	return records, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.DailyAttendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (e.full_name ILIKE $%d OR e.employee_code ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM daily_attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	// Build ORDER BY
	orderByField := "a.date"
	switch filter.SortBy {
	case "employee_name":
		orderByField = "e.full_name"
	case "status":
		orderByField = "a.status"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT
			a.id, a.employee_id, a.date, a.status, a.check_in_time, a.check_out_time,
			a.working_hours, a.remark, a.location_name, a.created_at, a.updated_at,
			e.full_name AS employee_name,
			e.employee_code AS employee_code
		FROM daily_attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.DailyAttendance
	for rows.Next() {
		var rec attendance.DailyAttendance
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CheckInTime, &rec.CheckOutTime,
			&rec.WorkingHours, &rec.Remark, &rec.LocationName, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.EmployeeCode,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating attendance rows: %w", err)
	}

	return records, total, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

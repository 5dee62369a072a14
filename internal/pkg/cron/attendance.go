package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atlashr/workforce-backend-go/internal/domain/attendance"
	"github.com/atlashr/workforce-backend-go/internal/domain/employee"
	"github.com/atlashr/workforce-backend-go/internal/pkg/calendar"
)

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	employeeRepo      employee.EmployeeRepository
	cal               *calendar.Calendar
}

func NewAttendanceJobs(
	attendanceService attendance.AttendanceService,
	employeeRepo employee.EmployeeRepository,
	cal *calendar.Calendar,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceService: attendanceService,
		employeeRepo:      employeeRepo,
		cal:               cal,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	// Hourly tick, gated to local midnight
	scheduler.AddJob("reconcile_yesterday_attendance", 1*time.Hour,
		AtHour(0, j.cal.Location(), j.ReconcileYesterday))
}

// ReconcileYesterday regenerates yesterday's attendance for every active
// employee. Regenerating an already reconciled day is a no-op upsert, so
// repeated runs never double-count.
func (j *AttendanceJobs) ReconcileYesterday(ctx context.Context) error {
	slog.Info("Cron: Starting nightly attendance reconciliation")

	yesterday := j.cal.Today(time.Now()).AddDate(0, 0, -1)
	dateStr := yesterday.Format("2006-01-02")

	employees, err := j.employeeRepo.ListActive(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	generated := 0
	failed := 0
	for _, emp := range employees {
		req := attendance.GenerateRequest{
			EmployeeID: emp.ID,
			StartDate:  dateStr,
			EndDate:    dateStr,
		}

		result, err := j.attendanceService.Generate(ctx, req)
		if err != nil {
			slog.Error("Cron: Failed to reconcile attendance",
				"employee_id", emp.ID,
				"date", dateStr,
				"error", err)
			failed++
			continue
		}
		if len(result.Errors) > 0 {
			slog.Warn("Cron: Attendance reconciled with errors",
				"employee_id", emp.ID,
				"date", dateStr,
				"errors", len(result.Errors))
		}
		generated += result.Generated + result.Updated
	}

	slog.Info("Cron: Nightly attendance reconciliation finished",
		"date", dateStr,
		"employees", len(employees),
		"records", generated,
		"failed", failed)
	return nil
}

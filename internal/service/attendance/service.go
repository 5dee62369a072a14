package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/atlashr/workforce-backend-go/internal/config"
	"github.com/atlashr/workforce-backend-go/internal/domain/attendance"
	"github.com/atlashr/workforce-backend-go/internal/domain/employee"
	"github.com/atlashr/workforce-backend-go/internal/domain/geofence"
	"github.com/atlashr/workforce-backend-go/internal/domain/holiday"
	"github.com/atlashr/workforce-backend-go/internal/domain/punch"
	"github.com/atlashr/workforce-backend-go/internal/pkg/calendar"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	punch.PunchRepository
	holiday.HolidayRepository
	employee.EmployeeRepository
	areaRepo geofence.AreaRepository

	cal     *calendar.Calendar
	weekOff calendar.WeekOffRule
	cfg     config.AttendanceConfig
	now     func() time.Time
}

// Generate implements attendance.AttendanceService.
// The range is walked date by date in the canonical local zone; each date is
// an independent unit of work, so one failed date is reported and skipped
// while the rest of the batch continues.
func (s *AttendanceServiceImpl) Generate(ctx context.Context, req attendance.GenerateRequest) (attendance.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.GenerateResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.GenerateResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.GenerateResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	loc := s.cal.Location()
	start := time.Date(req.Start.Year(), req.Start.Month(), req.Start.Day(), 0, 0, 0, 0, loc)
	end := time.Date(req.End.Year(), req.End.Month(), req.End.Day(), 0, 0, 0, 0, loc)

	// Future dates are never generated.
	if today := s.cal.Today(s.now()); end.After(today) {
		end = today
	}

	holidaysByYear, err := s.loadHolidays(ctx, start.Year(), end.Year())
	if err != nil {
		return attendance.GenerateResponse{}, err
	}

	resp := attendance.GenerateResponse{Records: []attendance.AttendanceResponse{}}

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		rec, created, dayErr := s.syncDay(ctx, emp.ID, date, holidaysByYear[date.Year()])
		if dayErr != nil {
			slog.Warn("attendance sync failed for date",
				"employee_id", emp.ID,
				"date", date.Format("2006-01-02"),
				"error", dayErr)
			resp.Errors = append(resp.Errors, attendance.DateError{
				Date:  date.Format("2006-01-02"),
				Error: dayErr.Error(),
			})
			continue
		}

		if created {
			resp.Generated++
		} else {
			resp.Updated++
		}
		resp.Records = append(resp.Records, attendance.ToResponse(rec))
	}

	resp.Message = fmt.Sprintf("Attendance processed: %d generated, %d updated", resp.Generated, resp.Updated)
	return resp, nil
}

// syncDay reconciles a single (employee, local date) pair: resolver,
// aggregator and classifier feed the idempotent upsert keyed on that pair.
func (s *AttendanceServiceImpl) syncDay(ctx context.Context, employeeID string, date time.Time, holidays []calendar.Holiday) (attendance.DailyAttendance, bool, error) {
	fromUTC, toUTC := s.cal.DayRangeUTC(date)
	punches, err := s.PunchRepository.ListByEmployeeAndRange(ctx, employeeID, fromUTC, toUTC)
	if err != nil {
		return attendance.DailyAttendance{}, false, fmt.Errorf("failed to list punches: %w", err)
	}

	kind := calendar.Resolve(date, holidays, s.weekOff)
	cls := classifyDay(kind, aggregatePunches(punches), s.cal)

	rec := attendance.DailyAttendance{
		EmployeeID:   employeeID,
		Date:         date,
		Status:       cls.Status,
		CheckInTime:  cls.CheckInTime,
		CheckOutTime: cls.CheckOutTime,
		WorkingHours: cls.WorkingHours,
		Remark:       cls.Remark,
		LocationName: s.punchLocation(ctx, punches),
	}

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.DailyAttendance{}, false, fmt.Errorf("failed to look up existing record: %w", err)
	}

	// An externally set ON_LEAVE day is never reclassified; punches may
	// still augment its recorded times.
	if existing != nil && existing.Status == attendance.StatusOnLeave {
		rec.Status = attendance.StatusOnLeave
		rec.Remark = nil
	}

	upserted, err := s.AttendanceRepository.Upsert(ctx, rec)
	if err != nil {
		return attendance.DailyAttendance{}, false, fmt.Errorf("failed to upsert record: %w", err)
	}

	return upserted, existing == nil, nil
}

// punchLocation resolves the geofenced-area name of the first IN punch, if
// any. Best effort: the day still syncs when the lookup fails.
func (s *AttendanceServiceImpl) punchLocation(ctx context.Context, punches []punch.Punch) *string {
	for _, p := range punches {
		if p.Type != punch.TypeIn || p.GeofenceAreaID == nil {
			continue
		}
		area, err := s.areaRepo.GetByID(ctx, *p.GeofenceAreaID)
		if err != nil {
			return nil
		}
		return &area.Name
	}
	return nil
}

func (s *AttendanceServiceImpl) loadHolidays(ctx context.Context, fromYear, toYear int) (map[int][]calendar.Holiday, error) {
	byYear := make(map[int][]calendar.Holiday)
	for year := fromYear; year <= toYear; year++ {
		declared, err := s.HolidayRepository.ListByYear(ctx, year, true)
		if err != nil {
			return nil, fmt.Errorf("failed to list holidays for %d: %w", year, err)
		}
		for _, h := range declared {
			byYear[year] = append(byYear[year], calendar.Holiday{Date: h.Date, Name: h.Name})
		}
	}
	return byYear, nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}

	records, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Attendances: responses,
	}, nil
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	punchRepo punch.PunchRepository,
	holidayRepo holiday.HolidayRepository,
	employeeRepo employee.EmployeeRepository,
	areaRepo geofence.AreaRepository,
	cal *calendar.Calendar,
	weekOff calendar.WeekOffRule,
	cfg config.AttendanceConfig,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		PunchRepository:      punchRepo,
		HolidayRepository:    holidayRepo,
		EmployeeRepository:   employeeRepo,
		areaRepo:             areaRepo,
		cal:                  cal,
		weekOff:              weekOff,
		cfg:                  cfg,
		now:                  time.Now,
	}
}

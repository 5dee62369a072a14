package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/atlashr/workforce-backend-go/internal/domain/attendance"
)

// Statistics implements attendance.AttendanceService.
// Stored PRESENT records are reclassified on the fly into late /
// early-departure buckets against the configured standard workday. The
// persisted status never changes.
func (s *AttendanceServiceImpl) Statistics(ctx context.Context, req attendance.StatisticsRequest) (attendance.StatisticsResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.StatisticsResponse{}, err
	}

	first, last, err := s.cal.MonthRange(req.Month)
	if err != nil {
		return attendance.StatisticsResponse{}, err
	}

	records, err := s.AttendanceRepository.ListByEmployeeAndRange(ctx, req.EmployeeID, first, last)
	if err != nil {
		return attendance.StatisticsResponse{}, fmt.Errorf("failed to list month records: %w", err)
	}

	resp := attendance.StatisticsResponse{EmployeeID: req.EmployeeID, Month: req.Month}
	days := 0.0

	for _, rec := range records {
		days += rec.Status.DayWeight()
		if rec.WorkingHours != nil {
			resp.TotalHours += *rec.WorkingHours
		}

		switch rec.Status {
		case attendance.StatusPresent:
			switch {
			case s.isLate(rec.CheckInTime):
				resp.Late++
			case s.isEarlyDeparture(rec.CheckOutTime):
				resp.EarlyDeparture++
			default:
				resp.Present++
			}
		case attendance.StatusAbsent:
			resp.Absent++
		case attendance.StatusHalfDay:
			resp.HalfDay++
		case attendance.StatusHoliday:
			resp.Holiday++
		case attendance.StatusWeekOff:
			resp.WeekOff++
		case attendance.StatusOnLeave:
			resp.OnLeave++
		}
	}

	resp.AttendanceDays = math.Round(days*2) / 2
	resp.TotalHours = math.Round(resp.TotalHours*100) / 100
	return resp, nil
}

// isLate reports a check-in strictly more than the grace period after the
// standard start: with 09:00 and 15 minutes, 09:15 is on time and 09:16 is
// late.
func (s *AttendanceServiceImpl) isLate(checkIn *string) bool {
	if checkIn == nil {
		return false
	}
	in, ok := minutesOfDay(*checkIn)
	if !ok {
		return false
	}
	start, ok := minutesOfDay(s.cfg.WorkdayStart)
	if !ok {
		return false
	}
	return in > start+s.cfg.LateGraceMinutes
}

// isEarlyDeparture reports a check-out strictly more than the grace period
// before the standard end.
func (s *AttendanceServiceImpl) isEarlyDeparture(checkOut *string) bool {
	if checkOut == nil {
		return false
	}
	out, ok := minutesOfDay(*checkOut)
	if !ok {
		return false
	}
	end, ok := minutesOfDay(s.cfg.WorkdayEnd)
	if !ok {
		return false
	}
	return out < end-s.cfg.EarlyLeaveGraceMinutes
}

func minutesOfDay(clock string) (int, bool) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

package attendance

import (
	"github.com/atlashr/workforce-backend-go/internal/domain/attendance"
	"github.com/atlashr/workforce-backend-go/internal/pkg/calendar"
)

const remarkNoPunch = "No punch recorded."

// dayClassification is the classifier verdict for one employee-day.
type dayClassification struct {
	Status       attendance.Status
	CheckInTime  *string
	CheckOutTime *string
	WorkingHours *float64
	Remark       *string
}

// classifyDay combines the calendar verdict and the punch aggregate into one
// attendance status, in strict precedence order: holiday, then week-off,
// then punch-derived presence, then absence. Pure function of its inputs.
// The generator emits plain PRESENT; the late / early-departure
// sub-classification belongs to the statistics view.
func classifyDay(kind calendar.DayKind, agg dayAggregate, cal *calendar.Calendar) dayClassification {
	if kind.IsHoliday {
		remark := kind.HolidayName
		return dayClassification{Status: attendance.StatusHoliday, Remark: &remark}
	}

	if kind.IsWeekOff {
		remark := kind.WeekOffReason
		return dayClassification{Status: attendance.StatusWeekOff, Remark: &remark}
	}

	if agg.FirstIn != nil {
		checkIn := cal.LocalTimeOfDay(agg.FirstIn.PunchedAt)
		cls := dayClassification{
			Status:       attendance.StatusPresent,
			CheckInTime:  &checkIn,
			WorkingHours: agg.workedHours(),
		}
		if agg.LastOut != nil {
			checkOut := cal.LocalTimeOfDay(agg.LastOut.PunchedAt)
			cls.CheckOutTime = &checkOut
		}
		return cls
	}

	remark := remarkNoPunch
	return dayClassification{Status: attendance.StatusAbsent, Remark: &remark}
}

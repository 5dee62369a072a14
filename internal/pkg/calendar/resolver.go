package calendar

import (
	"strconv"
	"time"
)

// Holiday is the minimal holiday shape the resolver needs.
type Holiday struct {
	Date time.Time
	Name string
}

// WeekOffRule decides whether a local date is a recurring rest day and, if
// so, names the reason ("Sunday", "2nd Saturday", ...). Deployments vary the
// policy, so it is a predicate rather than a constant.
type WeekOffRule func(localDate time.Time) (bool, string)

// WeekOff builds the stock rule: weeklyRest every week, plus the nth
// occurrence of occasionalRest in each month.
func WeekOff(weeklyRest time.Weekday, occasionalRest time.Weekday, occurrence int) WeekOffRule {
	return func(localDate time.Time) (bool, string) {
		switch {
		case localDate.Weekday() == weeklyRest:
			return true, weeklyRest.String()
		case localDate.Weekday() == occasionalRest && (localDate.Day()+6)/7 == occurrence:
			return true, ordinal(occurrence) + " " + occasionalRest.String()
		}
		return false, ""
	}
}

// DefaultWeekOff is every Sunday plus the 2nd Saturday of the month.
var DefaultWeekOff = WeekOff(time.Sunday, time.Saturday, 2)

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return strconv.Itoa(n) + "th"
	}
}

// DayKind is the resolver verdict for one local date.
type DayKind struct {
	IsHoliday     bool
	HolidayName   string
	IsWeekOff     bool
	WeekOffReason string
}

// Resolve checks a local date against declared holidays and the week-off
// rule. Holiday wins and short-circuits, so a Sunday holiday is a holiday.
// Pure function of its inputs.
func Resolve(localDate time.Time, holidays []Holiday, rule WeekOffRule) DayKind {
	y, m, d := localDate.Date()
	for _, h := range holidays {
		hy, hm, hd := h.Date.Date()
		if hy == y && hm == m && hd == d {
			return DayKind{IsHoliday: true, HolidayName: h.Name}
		}
	}
	if rule != nil {
		if off, reason := rule(localDate); off {
			return DayKind{IsWeekOff: true, WeekOffReason: reason}
		}
	}
	return DayKind{}
}

package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func localDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDefaultWeekOff_Sunday(t *testing.T) {
	// 2024-06-09 is a Sunday
	off, reason := DefaultWeekOff(localDay(2024, time.June, 9))
	assert.True(t, off)
	assert.Equal(t, "Sunday", reason)
}

func TestDefaultWeekOff_SecondSaturday(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		off  bool
	}{
		{"first saturday", localDay(2024, time.June, 1), false},
		{"second saturday", localDay(2024, time.June, 8), true},
		{"third saturday", localDay(2024, time.June, 15), false},
		{"fourth saturday", localDay(2024, time.June, 22), false},
		{"fifth saturday", localDay(2024, time.June, 29), false},
		{"weekday", localDay(2024, time.June, 12), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, reason := DefaultWeekOff(tt.date)
			assert.Equal(t, tt.off, off)
			if tt.off {
				assert.Equal(t, "2nd Saturday", reason)
			}
		})
	}
}

func TestWeekOff_CustomOccurrence(t *testing.T) {
	rule := WeekOff(time.Friday, time.Saturday, 4)

	// 2024-06-22 is the 4th Saturday
	off, reason := rule(localDay(2024, time.June, 22))
	assert.True(t, off)
	assert.Equal(t, "4th Saturday", reason)

	// 2024-06-21 is a Friday
	off, reason = rule(localDay(2024, time.June, 21))
	assert.True(t, off)
	assert.Equal(t, "Friday", reason)
}

func TestResolve_HolidayBeatsWeekOff(t *testing.T) {
	// 2024-03-10 is a Sunday; a holiday declared that day wins
	holidays := []Holiday{
		{Date: localDay(2024, time.March, 10), Name: "Festival"},
	}

	kind := Resolve(localDay(2024, time.March, 10), holidays, DefaultWeekOff)

	assert.True(t, kind.IsHoliday)
	assert.Equal(t, "Festival", kind.HolidayName)
	assert.False(t, kind.IsWeekOff)
}

func TestResolve_HolidayMatchesByDateOnly(t *testing.T) {
	// Declared holiday carries a non-midnight timestamp; the match is on
	// year/month/day.
	holidays := []Holiday{
		{Date: time.Date(2024, 8, 15, 10, 30, 0, 0, time.UTC), Name: "Independence Day"},
	}

	kind := Resolve(localDay(2024, time.August, 15), holidays, DefaultWeekOff)

	assert.True(t, kind.IsHoliday)
	assert.Equal(t, "Independence Day", kind.HolidayName)
}

func TestResolve_WeekOff(t *testing.T) {
	kind := Resolve(localDay(2024, time.June, 9), nil, DefaultWeekOff)

	assert.False(t, kind.IsHoliday)
	assert.True(t, kind.IsWeekOff)
	assert.Equal(t, "Sunday", kind.WeekOffReason)
}

func TestResolve_PlainWorkday(t *testing.T) {
	kind := Resolve(localDay(2024, time.June, 12), nil, DefaultWeekOff)

	assert.False(t, kind.IsHoliday)
	assert.False(t, kind.IsWeekOff)
}

func TestResolve_NilRule(t *testing.T) {
	kind := Resolve(localDay(2024, time.June, 9), nil, nil)
	assert.False(t, kind.IsWeekOff)
}

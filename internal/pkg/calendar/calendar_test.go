package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kolkata(t *testing.T) *Calendar {
	t.Helper()
	cal, err := Load("Asia/Kolkata")
	require.NoError(t, err)
	return cal
}

func TestLoad_InvalidZone(t *testing.T) {
	_, err := Load("Not/AZone")
	assert.Error(t, err)
}

func TestLocalDate_CrossesMidnight(t *testing.T) {
	cal := kolkata(t)

	// 20:00 UTC on Jan 15 is already Jan 16 in Asia/Kolkata (UTC+05:30)
	instant := time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC)
	local := cal.LocalDate(instant)

	assert.Equal(t, 2024, local.Year())
	assert.Equal(t, time.January, local.Month())
	assert.Equal(t, 16, local.Day())
	assert.Equal(t, 0, local.Hour())
	assert.Equal(t, cal.Location(), local.Location())
}

func TestLocalTimeOfDay(t *testing.T) {
	cal := kolkata(t)

	instant := time.Date(2024, 1, 15, 3, 35, 0, 0, time.UTC)
	assert.Equal(t, "09:05", cal.LocalTimeOfDay(instant))

	instant = time.Date(2024, 1, 15, 12, 10, 0, 0, time.UTC)
	assert.Equal(t, "17:40", cal.LocalTimeOfDay(instant))
}

func TestDayRangeUTC(t *testing.T) {
	cal := kolkata(t)

	localDate := time.Date(2024, 1, 16, 0, 0, 0, 0, cal.Location())
	from, to := cal.DayRangeUTC(localDate)

	// Local Jan 16 starts at Jan 15 18:30 UTC and ends before Jan 16 18:30 UTC
	assert.Equal(t, time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 1, 16, 18, 30, 0, 0, time.UTC), to)
}

func TestToday(t *testing.T) {
	cal := kolkata(t)

	now := time.Date(2024, 3, 31, 19, 0, 0, 0, time.UTC)
	today := cal.Today(now)

	assert.Equal(t, time.April, today.Month())
	assert.Equal(t, 1, today.Day())
}

func TestMonthRange(t *testing.T) {
	cal := kolkata(t)

	first, last, err := cal.MonthRange("2024-02")
	require.NoError(t, err)

	assert.Equal(t, 1, first.Day())
	assert.Equal(t, time.February, first.Month())
	// 2024 is a leap year
	assert.Equal(t, 29, last.Day())
	assert.Equal(t, time.February, last.Month())
}

func TestMonthRange_Invalid(t *testing.T) {
	cal := kolkata(t)

	_, _, err := cal.MonthRange("02-2024")
	assert.Error(t, err)
}

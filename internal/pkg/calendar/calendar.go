package calendar

import (
	"fmt"
	"time"
)

// Calendar converts UTC instants into the one server-configured local zone.
// Every "which day does this belong to" decision in the engine goes through
// this type; callers must never bucket by a device-supplied local time.
type Calendar struct {
	loc *time.Location
}

func New(loc *time.Location) *Calendar {
	return &Calendar{loc: loc}
}

// Load builds a Calendar for an IANA zone name, e.g. "Asia/Kolkata".
func Load(name string) (*Calendar, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return &Calendar{loc: loc}, nil
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}

// LocalDate returns the canonical local calendar date of an instant,
// as midnight in the target zone.
func (c *Calendar) LocalDate(instant time.Time) time.Time {
	local := instant.In(c.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
}

// LocalTimeOfDay returns the "15:04" time-of-day of an instant in the target zone.
func (c *Calendar) LocalTimeOfDay(instant time.Time) string {
	return instant.In(c.loc).Format("15:04")
}

// DayRangeUTC returns the UTC half-open window [start, end) covering one
// local calendar day. Used to query punches for that day.
func (c *Calendar) DayRangeUTC(localDate time.Time) (time.Time, time.Time) {
	start := time.Date(localDate.Year(), localDate.Month(), localDate.Day(), 0, 0, 0, 0, c.loc)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

// Today returns the local calendar date of now.
func (c *Calendar) Today(now time.Time) time.Time {
	return c.LocalDate(now)
}

// MonthRange returns the first and last local dates of a "2006-01" month.
func (c *Calendar) MonthRange(month string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01", month, c.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, c.loc)
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}

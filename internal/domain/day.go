package domain

import (
	"fmt"
	"time"
)

// DueDay is the calendar day an item is next due
type DueDay struct {
	Date time.Time
}

// DisplayString returns a user-friendly label relative to now
func (d DueDay) DisplayString(now time.Time) string {
	date := d.Date.In(now.Location())
	days := calendarDaysBetween(now, date)

	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days < 7:
		return fmt.Sprintf("in %d days", days)
	}

	return date.Format("2 Jan 2006")
}

func calendarDaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

package domain

import (
	"time"

	"familiaconnect/internal/calendar"
)

// DayLabel returns a user-friendly label for d relative to now
func DayLabel(d calendar.Date, now time.Time) string {
	today := calendar.FromTime(now)

	switch d {
	case today:
		return "Today"
	case today.AddDays(1):
		return "Tomorrow"
	case today.AddDays(-1):
		return "Yesterday"
	}

	label := d.Time(time.UTC).Format("Mon, Jan 2")
	if d.Year != today.Year {
		label += ", " + d.Time(time.UTC).Format("2006")
	}
	return label
}

// LongLabel returns e.g. "Thursday, February 15"
func LongLabel(d calendar.Date) string {
	return d.Time(time.UTC).Format("Monday, January 2")
}

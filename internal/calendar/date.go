package calendar

import (
	"fmt"
	"time"
)

// Date is a calendar day without a time component
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns a normalized date. Out-of-range values roll over the way
// time.Date does: month 13 is January of the next year, day 0 is the last
// day of the previous month.
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar day of t in t's location
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Parse reads a date in YYYYMMDD or YYYY-MM-DD format
func Parse(s string) (Date, error) {
	for _, layout := range []string{"20060102", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

// ParseMonth reads a month in YYYYMM or YYYY-MM format and returns its first day
func ParseMonth(s string) (Date, error) {
	for _, layout := range []string{"200601", "2006-01"} {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid month %q", s)
}

// IsZero reports whether d is the zero Date, used for "no selection"
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight of the date in loc
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n days later (or earlier when n is negative)
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Weekday returns the day of the week, Sunday = 0
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// FirstOfMonth returns the 1st of d's month
func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// Before reports whether d is strictly earlier than other
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// String returns the date as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compact returns the date as YYYYMMDD, used in callback data
func (d Date) Compact() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler so dates render as YYYY-MM-DD in JSON
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysIn returns the number of days in the given month
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ShiftMonth returns the first day of the month n months away from ref
func ShiftMonth(ref Date, n int) Date {
	return NewDate(ref.Year, ref.Month+time.Month(n), 1)
}

// IsToday reports whether d is the calendar day of now
func IsToday(d Date, now time.Time) bool {
	return d == FromTime(now)
}

// IsSelected reports whether d is the selected day
func IsSelected(d, selected Date) bool {
	return d == selected
}

package domain

import (
	"strconv"
	"strings"
	"time"

	"familiaconnect/internal/calendar"
)

// Event represents a family calendar event
type Event struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location,omitempty"`
	Color     string    `json:"color,omitempty"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	AllDay    bool      `json:"all_day"`
	Members   []string  `json:"members,omitempty"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// FormatTime returns the time range for display
func (e *Event) FormatTime() string {
	if e.AllDay {
		return "All day"
	}
	if e.EndsAt.IsZero() || e.EndsAt.Equal(e.StartsAt) {
		return e.StartsAt.Format("3:04 PM")
	}
	return e.StartsAt.Format("3:04 PM") + " - " + e.EndsAt.Format("3:04 PM")
}

// In returns a copy of the event with its times expressed in loc
func (e Event) In(loc *time.Location) Event {
	e.StartsAt = e.StartsAt.In(loc)
	e.EndsAt = e.EndsAt.In(loc)
	return e
}

// MembersString returns attending members joined for display
func (e *Event) MembersString() string {
	return strings.Join(e.Members, ", ")
}

// Day returns the calendar day the event starts on
func (e *Event) Day() calendar.Date {
	return calendar.FromTime(e.StartsAt)
}

// MonthCell is a grid cell annotated for display
type MonthCell struct {
	calendar.DayCell
	IsToday    bool `json:"is_today"`
	IsSelected bool `json:"is_selected"`
	EventCount int  `json:"event_count"`
}

// HasEvents reports whether any event starts on the cell's day
func (c MonthCell) HasEvents() bool {
	return c.EventCount > 0
}

// Label renders the cell for a text grid: "[d]" selected, "•d" today, "·d"
// outside the month, with "*" after the day number when it has events
func (c MonthCell) Label() string {
	label := strconv.Itoa(c.Date.Day)
	if c.HasEvents() {
		label += "*"
	}

	switch {
	case c.IsSelected:
		return "[" + label + "]"
	case c.IsToday:
		return "•" + label
	case !c.InCurrentMonth:
		return "·" + label
	}
	return label
}

// MonthView is a month grid with selection, today marker and event indicators
type MonthView struct {
	Month    calendar.Date                `json:"month"`
	Selected calendar.Date                `json:"selected"`
	Cells    [calendar.GridSize]MonthCell `json:"cells"`
}

// Title returns e.g. "February 2024"
func (v *MonthView) Title() string {
	return v.Month.Month.String() + " " + strconv.Itoa(v.Month.Year)
}

// NewMonthView annotates ref's grid with today, the selection and per-day event
// counts. now must already be in the family's time zone.
func NewMonthView(ref, selected calendar.Date, now time.Time, counts map[calendar.Date]int) *MonthView {
	view := &MonthView{
		Month:    calendar.ShiftMonth(ref, 0),
		Selected: selected,
	}
	for i, cell := range calendar.Build(ref) {
		view.Cells[i] = MonthCell{
			DayCell:    cell,
			IsToday:    calendar.IsToday(cell.Date, now),
			IsSelected: calendar.IsSelected(cell.Date, selected),
			EventCount: counts[cell.Date],
		}
	}
	return view
}

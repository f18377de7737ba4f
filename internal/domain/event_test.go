package domain

import (
	"testing"
	"time"

	"familiaconnect/internal/calendar"

	"github.com/stretchr/testify/assert"
)

func TestEvent_FormatTime(t *testing.T) {
	start := time.Date(2024, time.February, 15, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		event    Event
		expected string
	}{
		{
			name:     "time range",
			event:    Event{StartsAt: start, EndsAt: start.Add(90 * time.Minute)},
			expected: "3:30 PM - 5:00 PM",
		},
		{
			name:     "no end time",
			event:    Event{StartsAt: start},
			expected: "3:30 PM",
		},
		{
			name:     "all day",
			event:    Event{StartsAt: start, AllDay: true},
			expected: "All day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.FormatTime())
		})
	}
}

func TestEvent_Day(t *testing.T) {
	e := Event{StartsAt: time.Date(2024, time.February, 15, 23, 0, 0, 0, time.UTC)}
	assert.Equal(t, calendar.Date{Year: 2024, Month: time.February, Day: 15}, e.Day())
}

func TestMonthCell_Label(t *testing.T) {
	day := func(d int) calendar.DayCell {
		return calendar.DayCell{Date: calendar.NewDate(2024, time.February, d), InCurrentMonth: true}
	}

	tests := []struct {
		name     string
		cell     MonthCell
		expected string
	}{
		{name: "plain", cell: MonthCell{DayCell: day(5)}, expected: "5"},
		{name: "has events", cell: MonthCell{DayCell: day(5), EventCount: 2}, expected: "5*"},
		{name: "today", cell: MonthCell{DayCell: day(10), IsToday: true}, expected: "•10"},
		{name: "today with events", cell: MonthCell{DayCell: day(10), IsToday: true, EventCount: 1}, expected: "•10*"},
		{name: "selected", cell: MonthCell{DayCell: day(14), IsSelected: true}, expected: "[14]"},
		{name: "selected today with events", cell: MonthCell{DayCell: day(14), IsSelected: true, IsToday: true, EventCount: 1}, expected: "[14*]"},
		{
			name:     "outside month",
			cell:     MonthCell{DayCell: calendar.DayCell{Date: calendar.NewDate(2024, time.January, 28)}},
			expected: "·28",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cell.Label())
		})
	}
}

func TestNewMonthView(t *testing.T) {
	now := time.Date(2024, time.February, 10, 23, 30, 0, 0, time.UTC)
	selected := calendar.NewDate(2024, time.March, 1)
	counts := map[calendar.Date]int{selected: 2}

	v := NewMonthView(calendar.NewDate(2024, time.February, 20), selected, now, counts)

	assert.Equal(t, calendar.NewDate(2024, time.February, 1), v.Month)
	assert.Equal(t, selected, v.Selected)
	// Feb 1 2024 is a Thursday, so day d sits at index 3+d.
	assert.True(t, v.Cells[13].IsToday)
	assert.Equal(t, "•10", v.Cells[13].Label())
	assert.True(t, v.Cells[33].IsSelected)
	assert.Equal(t, "[1*]", v.Cells[33].Label())
	assert.Equal(t, "·28", v.Cells[0].Label())
}

func TestMonthView_Title(t *testing.T) {
	v := MonthView{Month: calendar.Date{Year: 2024, Month: time.February, Day: 1}}
	assert.Equal(t, "February 2024", v.Title())
}

func TestEvent_In(t *testing.T) {
	madrid := time.FixedZone("CET", 60*60)
	e := Event{
		StartsAt: time.Date(2024, time.February, 15, 23, 30, 0, 0, time.UTC),
		EndsAt:   time.Date(2024, time.February, 16, 0, 30, 0, 0, time.UTC),
	}

	local := e.In(madrid)
	assert.Equal(t, calendar.Date{Year: 2024, Month: time.February, Day: 16}, local.Day())
	assert.Equal(t, "12:30 AM - 1:30 AM", local.FormatTime())
	assert.Equal(t, time.UTC, e.StartsAt.Location())
}

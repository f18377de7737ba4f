package domain

import (
	"testing"
	"time"

	"familiaconnect/internal/calendar"

	"github.com/stretchr/testify/assert"
)

func TestDayLabel(t *testing.T) {
	now := time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     calendar.Date
		expected string
	}{
		{
			name:     "today",
			date:     calendar.Date{Year: 2024, Month: time.February, Day: 15},
			expected: "Today",
		},
		{
			name:     "tomorrow",
			date:     calendar.Date{Year: 2024, Month: time.February, Day: 16},
			expected: "Tomorrow",
		},
		{
			name:     "yesterday",
			date:     calendar.Date{Year: 2024, Month: time.February, Day: 14},
			expected: "Yesterday",
		},
		{
			name:     "same year",
			date:     calendar.Date{Year: 2024, Month: time.June, Day: 15},
			expected: "Sat, Jun 15",
		},
		{
			name:     "other year",
			date:     calendar.Date{Year: 2023, Month: time.December, Day: 31},
			expected: "Sun, Dec 31, 2023",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DayLabel(tt.date, now))
		})
	}
}

func TestDayLabel_AcrossMonthBoundary(t *testing.T) {
	now := time.Date(2024, time.February, 29, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, "Tomorrow", DayLabel(calendar.Date{Year: 2024, Month: time.March, Day: 1}, now))
	assert.Equal(t, "Yesterday", DayLabel(calendar.Date{Year: 2024, Month: time.February, Day: 28}, now))
}

func TestLongLabel(t *testing.T) {
	assert.Equal(t, "Thursday, February 15", LongLabel(calendar.Date{Year: 2024, Month: time.February, Day: 15}))
}

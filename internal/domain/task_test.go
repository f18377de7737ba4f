package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTaskFilter(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      TaskFilter
		expectedError bool
	}{
		{name: "empty means all", input: "", expected: FilterAll},
		{name: "exact label", input: "Pending", expected: FilterPending},
		{name: "case insensitive", input: "high priority", expected: FilterHighPriority},
		{name: "surrounding spaces", input: "  My Tasks ", expected: FilterMine},
		{name: "unknown", input: "Overdue", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseTaskFilter(tt.input)
			if tt.expectedError {
				assert.ErrorIs(t, err, ErrUnknownFilter)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority(" HIGH ")
	assert.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	_, err = ParsePriority("urgent")
	assert.ErrorIs(t, err, ErrUnknownPriority)
}

func TestTaskFilter_Match(t *testing.T) {
	task := &Task{
		Title:      "Clean your room",
		AssignedBy: "Dad",
		AssignedTo: "Sarah",
		Priority:   PriorityHigh,
		Status:     StatusPending,
	}

	tests := []struct {
		name     string
		filter   TaskFilter
		member   string
		viewer   string
		expected bool
	}{
		{name: "all tasks everyone", filter: FilterAll, member: Everyone, expected: true},
		{name: "all tasks no member selector", filter: FilterAll, member: "", expected: true},
		{name: "pending matches", filter: FilterPending, member: Everyone, expected: true},
		{name: "completed excludes pending", filter: FilterCompleted, member: Everyone, expected: false},
		{name: "high priority matches", filter: FilterHighPriority, member: Everyone, expected: true},
		{name: "my tasks for assignee", filter: FilterMine, member: Everyone, viewer: "Sarah", expected: true},
		{name: "my tasks for someone else", filter: FilterMine, member: Everyone, viewer: "Max", expected: false},
		{name: "assigned by me", filter: FilterAssignedByMe, member: Everyone, viewer: "dad", expected: true},
		{name: "assigned by someone else", filter: FilterAssignedByMe, member: Everyone, viewer: "Mom", expected: false},
		{name: "member selector matches", filter: FilterAll, member: "Sarah", expected: true},
		{name: "member selector excludes", filter: FilterAll, member: "Max", expected: false},
		{name: "filter and member combined", filter: FilterPending, member: "Max", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Match(task, tt.member, tt.viewer))
		})
	}
}

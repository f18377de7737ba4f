package domain

import (
	"strings"

	"familiaconnect/internal/calendar"
)

// Priority is the urgency of a task
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority accepts a priority name in any case
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityHigh:
		return PriorityHigh, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityLow:
		return PriorityLow, nil
	}
	return "", ErrUnknownPriority
}

// Icon returns a marker for the priority
func (p Priority) Icon() string {
	switch p {
	case PriorityHigh:
		return "🔴"
	case PriorityMedium:
		return "🟠"
	default:
		return "🟢"
	}
}

// TaskStatus is the completion state of a task
type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

// Task is a chore assigned from one family member to another
type Task struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	AssignedBy  string        `json:"assigned_by"`
	AssignedTo  string        `json:"assigned_to"`
	Due         calendar.Date `json:"due"`
	Priority    Priority      `json:"priority"`
	Status      TaskStatus    `json:"status"`
}

// IsPending reports whether the task is still open
func (t *Task) IsPending() bool {
	return t.Status == StatusPending
}

// TaskFilter selects a subset of tasks
type TaskFilter string

const (
	FilterAll          TaskFilter = "All Tasks"
	FilterPending      TaskFilter = "Pending"
	FilterCompleted    TaskFilter = "Completed"
	FilterHighPriority TaskFilter = "High Priority"
	FilterMine         TaskFilter = "My Tasks"
	FilterAssignedByMe TaskFilter = "Assigned by Me"
)

// Everyone disables the member selector
const Everyone = "Everyone"

// TaskFilters lists the filters in menu order
var TaskFilters = []TaskFilter{
	FilterAll,
	FilterPending,
	FilterCompleted,
	FilterHighPriority,
	FilterMine,
	FilterAssignedByMe,
}

// ParseTaskFilter accepts a filter label in any case; empty means all tasks
func ParseTaskFilter(s string) (TaskFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range TaskFilters {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", ErrUnknownFilter
}

// Match reports whether a task passes the filter and member selector.
// viewer is the name of the member looking at the list.
func (f TaskFilter) Match(t *Task, member, viewer string) bool {
	switch f {
	case FilterPending:
		if t.Status != StatusPending {
			return false
		}
	case FilterCompleted:
		if t.Status != StatusCompleted {
			return false
		}
	case FilterHighPriority:
		if t.Priority != PriorityHigh {
			return false
		}
	case FilterMine:
		if !strings.EqualFold(t.AssignedTo, viewer) {
			return false
		}
	case FilterAssignedByMe:
		if !strings.EqualFold(t.AssignedBy, viewer) {
			return false
		}
	}

	if member != "" && member != Everyone && !strings.EqualFold(t.AssignedTo, member) {
		return false
	}

	return true
}

package service

import (
	"testing"
	"time"

	"familiaconnect/internal/calendar"
	"familiaconnect/internal/domain"
	"familiaconnect/internal/repository/memory"
	"familiaconnect/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var taskNow = time.Date(2024, time.February, 14, 9, 0, 0, 0, time.UTC)

func newSeededTaskService() *TaskService {
	return NewTaskService(memory.NewSeededTaskStore(taskNow), testutil.NewTestLogger())
}

func taskIDs(tasks []domain.Task) []int {
	ids := make([]int, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestTaskService_ListTasks(t *testing.T) {
	tests := []struct {
		name     string
		filter   domain.TaskFilter
		member   string
		viewer   string
		expected []int
	}{
		{name: "all tasks", filter: domain.FilterAll, member: domain.Everyone, expected: []int{1, 2, 3, 4, 5}},
		{name: "pending", filter: domain.FilterPending, member: domain.Everyone, expected: []int{1, 2, 3}},
		{name: "completed", filter: domain.FilterCompleted, member: domain.Everyone, expected: []int{4, 5}},
		{name: "high priority", filter: domain.FilterHighPriority, member: domain.Everyone, expected: []int{1, 3}},
		{name: "my tasks", filter: domain.FilterMine, member: domain.Everyone, viewer: "Max", expected: []int{2, 3}},
		{name: "assigned by me", filter: domain.FilterAssignedByMe, member: domain.Everyone, viewer: "Mom", expected: []int{2, 3, 5}},
		{name: "pending for one member", filter: domain.FilterPending, member: "Max", expected: []int{2, 3}},
		{name: "no match", filter: domain.FilterCompleted, member: "Sarah", expected: []int{}},
	}

	service := newSeededTaskService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.ListTasks(tt.filter, tt.member, tt.viewer)
			assert.Equal(t, tt.expected, taskIDs(got))
		})
	}
}

func TestTaskService_CompleteAndReopen(t *testing.T) {
	service := newSeededTaskService()

	require.NoError(t, service.CompleteTask(2))
	task, err := service.GetTask(2)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, task.Status)
	assert.Equal(t, 1, service.PendingCounts()["Max"])

	require.NoError(t, service.ReopenTask(2))
	assert.Equal(t, 2, service.PendingCounts()["Max"])

	assert.ErrorIs(t, service.CompleteTask(99), domain.ErrNotFound)
	assert.ErrorIs(t, service.ReopenTask(99), domain.ErrNotFound)
}

func TestTaskService_PendingCounts(t *testing.T) {
	counts := newSeededTaskService().PendingCounts()

	assert.Equal(t, map[string]int{"Sarah": 1, "Max": 2}, counts)
}

func TestTaskService_DueSoon(t *testing.T) {
	service := newSeededTaskService()

	assert.Equal(t, []int{1, 2, 3}, taskIDs(service.DueSoon(3)))
	assert.Equal(t, []int{1, 2}, taskIDs(service.DueSoon(2)))

	require.NoError(t, service.CompleteTask(1))
	assert.Equal(t, []int{2, 3}, taskIDs(service.DueSoon(3)))
}

func TestParseTask(t *testing.T) {
	today := calendar.NewDate(2024, time.February, 14)

	tests := []struct {
		name       string
		input      string
		title      string
		assignedTo string
		priority   domain.Priority
		due        calendar.Date
		err        error
	}{
		{
			name:       "full description",
			input:      "Wash the car; Max; high; tomorrow",
			title:      "Wash the car",
			assignedTo: "Max",
			priority:   domain.PriorityHigh,
			due:        today.AddDays(1),
		},
		{
			name:       "defaults",
			input:      "Water the plants",
			title:      "Water the plants",
			assignedTo: "Mom",
			priority:   domain.PriorityMedium,
			due:        today,
		},
		{
			name:       "blank assignee and explicit date",
			input:      "Book flights; ; LOW; 2024-03-01",
			title:      "Book flights",
			assignedTo: "Mom",
			priority:   domain.PriorityLow,
			due:        calendar.NewDate(2024, time.March, 1),
		},
		{
			name:  "unknown priority",
			input: "Vacuum; Max; urgent",
			err:   domain.ErrUnknownPriority,
		},
		{
			name:  "bad due date",
			input: "Vacuum; Max; high; someday",
			err:   domain.ErrInvalidDate,
		},
		{
			name:  "empty title",
			input: "  ; Max",
			err:   domain.ErrEmptyTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := ParseTask("Mom", tt.input, today)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.title, task.Title)
			assert.Equal(t, "Mom", task.AssignedBy)
			assert.Equal(t, tt.assignedTo, task.AssignedTo)
			assert.Equal(t, tt.priority, task.Priority)
			assert.Equal(t, tt.due, task.Due)
			assert.True(t, task.IsPending())
		})
	}
}

func TestTaskService_AddTask(t *testing.T) {
	service := newSeededTaskService()
	today := calendar.FromTime(taskNow)

	task, err := service.AddTask("Dad", "Feed the dog; Sarah; high", today)
	require.NoError(t, err)
	assert.Equal(t, 6, task.ID)

	mine := service.ListTasks(domain.FilterMine, domain.Everyone, "Sarah")
	assert.Equal(t, []int{1, 6}, taskIDs(mine))

	_, err = service.AddTask("Dad", "", today)
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

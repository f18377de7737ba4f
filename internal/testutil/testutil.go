package testutil

import (
	"time"

	"familiaconnect/internal/calendar"
	"familiaconnect/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestMember creates a test member
func NewTestMember(userID int64, name, role string) *domain.Member {
	return &domain.Member{
		ID:        int(userID),
		UserID:    userID,
		Name:      name,
		Role:      role,
		CreatedAt: time.Now(),

		ParentalControls: true,
		Notifications:    true,
	}
}

// NewTestEvent creates a test event lasting an hour
func NewTestEvent(id int, title string, start time.Time) domain.Event {
	return domain.Event{
		ID:       id,
		Title:    title,
		StartsAt: start,
		EndsAt:   start.Add(time.Hour),
	}
}

// NewTestTask creates a pending test task
func NewTestTask(title, assignedBy, assignedTo string, priority domain.Priority, due calendar.Date) domain.Task {
	return domain.Task{
		Title:      title,
		AssignedBy: assignedBy,
		AssignedTo: assignedTo,
		Priority:   priority,
		Due:        due,
		Status:     domain.StatusPending,
	}
}

// FixedClock returns a clock function that always reports t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

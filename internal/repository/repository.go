package repository

import (
	"time"

	"familiaconnect/internal/calendar"
	"familiaconnect/internal/domain"
)

// MemberRepository defines family member operations
type MemberRepository interface {
	EnsureMemberExists(userID int64, name string) error
	GetMember(userID int64) (*domain.Member, error)
	ListMembers() ([]domain.Member, error)
	SetRole(userID int64, role string) error
	SetSetting(userID int64, setting domain.Setting, enabled bool) error
	AddPoints(userIDs []int64, points int) error
}

// EventRepository defines calendar event operations
type EventRepository interface {
	SaveEvent(event *domain.Event) (int, error)
	DeleteEvent(id int) error
	GetEventsByDate(date calendar.Date, loc *time.Location) ([]domain.Event, error)
	GetEventsBetween(from, to calendar.Date, loc *time.Location) ([]domain.Event, error)
	GetEventCounts(from, to calendar.Date, loc *time.Location) (map[calendar.Date]int, error)
	GetUpcomingEvents(from time.Time, limit int) ([]domain.Event, error)
	CleanOldEvents(days int) (int64, error)
}

// EmergencyRepository defines emergency sheet operations
type EmergencyRepository interface {
	ListContacts() ([]domain.EmergencyContact, error)
	ListMedicalInfo() ([]domain.MedicalInfo, error)
}

// TaskRepository defines task operations. Tasks are kept in process memory.
type TaskRepository interface {
	ListTasks() []domain.Task
	GetTask(id int) (*domain.Task, error)
	SaveTask(task domain.Task) domain.Task
	SetStatus(id int, status domain.TaskStatus) error
}

// ChatRepository defines read-only conversation access
type ChatRepository interface {
	ListConversations() []domain.Conversation
	GetConversation(id int) (*domain.Conversation, error)
}

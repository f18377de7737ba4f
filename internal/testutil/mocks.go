package testutil

import (
	"time"

	"familiaconnect/internal/calendar"
	"familiaconnect/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockMemberRepository is a mock for MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) EnsureMemberExists(userID int64, name string) error {
	args := m.Called(userID, name)
	return args.Error(0)
}

func (m *MockMemberRepository) GetMember(userID int64) (*domain.Member, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListMembers() ([]domain.Member, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) SetRole(userID int64, role string) error {
	args := m.Called(userID, role)
	return args.Error(0)
}

func (m *MockMemberRepository) SetSetting(userID int64, setting domain.Setting, enabled bool) error {
	args := m.Called(userID, setting, enabled)
	return args.Error(0)
}

func (m *MockMemberRepository) AddPoints(userIDs []int64, points int) error {
	args := m.Called(userIDs, points)
	return args.Error(0)
}

// MockEventRepository is a mock for EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) SaveEvent(event *domain.Event) (int, error) {
	args := m.Called(event)
	return args.Int(0), args.Error(1)
}

func (m *MockEventRepository) DeleteEvent(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockEventRepository) GetEventsByDate(date calendar.Date, loc *time.Location) ([]domain.Event, error) {
	args := m.Called(date, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) GetEventsBetween(from, to calendar.Date, loc *time.Location) ([]domain.Event, error) {
	args := m.Called(from, to, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) GetEventCounts(from, to calendar.Date, loc *time.Location) (map[calendar.Date]int, error) {
	args := m.Called(from, to, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[calendar.Date]int), args.Error(1)
}

func (m *MockEventRepository) GetUpcomingEvents(from time.Time, limit int) ([]domain.Event, error) {
	args := m.Called(from, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) CleanOldEvents(days int) (int64, error) {
	args := m.Called(days)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmergencyRepository is a mock for EmergencyRepository
type MockEmergencyRepository struct {
	mock.Mock
}

func (m *MockEmergencyRepository) ListContacts() ([]domain.EmergencyContact, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmergencyContact), args.Error(1)
}

func (m *MockEmergencyRepository) ListMedicalInfo() ([]domain.MedicalInfo, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MedicalInfo), args.Error(1)
}

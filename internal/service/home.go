package service

import (
	"fmt"
	"time"

	"familiaconnect/internal/domain"
	"familiaconnect/internal/repository"
)

const (
	dashboardEvents = 3
	dashboardTasks  = 3
)

// HomeService assembles the home dashboard
type HomeService struct {
	memberRepo repository.MemberRepository
	eventRepo  repository.EventRepository
	tasks      *TaskService
}

// NewHomeService creates a new home service
func NewHomeService(memberRepo repository.MemberRepository, eventRepo repository.EventRepository, tasks *TaskService) *HomeService {
	return &HomeService{
		memberRepo: memberRepo,
		eventRepo:  eventRepo,
		tasks:      tasks,
	}
}

// Dashboard returns members with their open task counts, the next upcoming
// events and the pending tasks due soonest
func (s *HomeService) Dashboard(now time.Time) (*domain.Dashboard, error) {
	members, err := s.memberRepo.ListMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	events, err := s.eventRepo.GetUpcomingEvents(now, dashboardEvents)
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming events: %w", err)
	}

	counts := s.tasks.PendingCounts()
	summaries := make([]domain.MemberSummary, 0, len(members))
	for _, m := range members {
		name := m.Name
		if m.Role != "" {
			name = m.Role
		}
		summaries = append(summaries, domain.MemberSummary{
			Name:         m.Name,
			Role:         m.Role,
			PendingTasks: counts[name],
		})
	}

	return &domain.Dashboard{
		Members:        summaries,
		UpcomingEvents: events,
		PendingTasks:   s.tasks.DueSoon(dashboardTasks),
	}, nil
}

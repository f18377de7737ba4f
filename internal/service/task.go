package service

import (
	"fmt"
	"sort"
	"strings"

	"familiaconnect/internal/calendar"
	"familiaconnect/internal/domain"
	"familiaconnect/internal/repository"

	"go.uber.org/zap"
)

// TaskService handles family chores
type TaskService struct {
	taskRepo repository.TaskRepository
	logger   *zap.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo repository.TaskRepository, logger *zap.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// ListTasks returns tasks passing filter and the member selector, as seen by viewer
func (s *TaskService) ListTasks(filter domain.TaskFilter, member, viewer string) []domain.Task {
	var result []domain.Task
	for _, t := range s.taskRepo.ListTasks() {
		if filter.Match(&t, member, viewer) {
			result = append(result, t)
		}
	}
	return result
}

// GetTask returns a single task
func (s *TaskService) GetTask(id int) (*domain.Task, error) {
	return s.taskRepo.GetTask(id)
}

// CompleteTask marks a task as done
func (s *TaskService) CompleteTask(id int) error {
	if err := s.taskRepo.SetStatus(id, domain.StatusCompleted); err != nil {
		return err
	}
	s.logger.Info("Task completed", zap.Int("task_id", id))
	return nil
}

// ReopenTask moves a completed task back to pending
func (s *TaskService) ReopenTask(id int) error {
	return s.taskRepo.SetStatus(id, domain.StatusPending)
}

// AddTask parses input and stores a new pending task.
// Input format: "Title; assignee; priority; due" where due is today,
// tomorrow or YYYY-MM-DD. The assignee defaults to assignedBy, the priority
// to medium and the due date to today.
func (s *TaskService) AddTask(assignedBy, input string, today calendar.Date) (*domain.Task, error) {
	task, err := ParseTask(assignedBy, input, today)
	if err != nil {
		return nil, err
	}

	saved := s.taskRepo.SaveTask(*task)

	s.logger.Info("Task created",
		zap.Int("task_id", saved.ID),
		zap.String("assigned_by", saved.AssignedBy),
		zap.String("assigned_to", saved.AssignedTo),
	)

	return &saved, nil
}

// PendingCounts returns the number of open tasks per assignee
func (s *TaskService) PendingCounts() map[string]int {
	counts := make(map[string]int)
	for _, t := range s.taskRepo.ListTasks() {
		if t.IsPending() {
			counts[t.AssignedTo]++
		}
	}
	return counts
}

// DueSoon returns up to limit pending tasks, earliest due first, higher priority first on ties
func (s *TaskService) DueSoon(limit int) []domain.Task {
	var pending []domain.Task
	for _, t := range s.taskRepo.ListTasks() {
		if t.IsPending() {
			pending = append(pending, t)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		a, b := pending[i], pending[j]
		if a.Due != b.Due {
			return a.Due.Before(b.Due)
		}
		return priorityRank(a.Priority) < priorityRank(b.Priority)
	})

	if len(pending) > limit {
		pending = pending[:limit]
	}
	return pending
}

// ParseTask reads the semicolon-separated task description
func ParseTask(assignedBy, input string, today calendar.Date) (*domain.Task, error) {
	parts := strings.Split(input, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	task := &domain.Task{
		Title:      parts[0],
		AssignedBy: assignedBy,
		AssignedTo: assignedBy,
		Priority:   domain.PriorityMedium,
		Due:        today,
		Status:     domain.StatusPending,
	}
	if task.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	if len(parts) > 1 && parts[1] != "" {
		task.AssignedTo = parts[1]
	}

	if len(parts) > 2 && parts[2] != "" {
		p, err := domain.ParsePriority(parts[2])
		if err != nil {
			return nil, err
		}
		task.Priority = p
	}

	if len(parts) > 3 && parts[3] != "" {
		due, err := parseDue(parts[3], today)
		if err != nil {
			return nil, err
		}
		task.Due = due
	}

	return task, nil
}

func parseDue(s string, today calendar.Date) (calendar.Date, error) {
	switch strings.ToLower(s) {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	}
	d, err := calendar.Parse(s)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return d, nil
}

func priorityRank(p domain.Priority) int {
	switch p {
	case domain.PriorityHigh:
		return 0
	case domain.PriorityMedium:
		return 1
	default:
		return 2
	}
}

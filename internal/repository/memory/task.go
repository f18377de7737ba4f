package memory

import (
	"sort"
	"sync"
	"time"

	"familiaconnect/internal/calendar"
	"familiaconnect/internal/domain"
)

// TaskStore implements repository.TaskRepository in process memory
type TaskStore struct {
	mu     sync.RWMutex
	tasks  map[int]domain.Task
	nextID int
}

// NewTaskStore creates an empty task store
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks:  make(map[int]domain.Task),
		nextID: 1,
	}
}

// NewSeededTaskStore creates a task store holding the sample family chores,
// with due dates relative to today
func NewSeededTaskStore(now time.Time) *TaskStore {
	s := NewTaskStore()
	today := calendar.FromTime(now)

	seed := []domain.Task{
		{Title: "Clean your room", Description: "Make your bed and organize your toys", AssignedBy: "Dad", AssignedTo: "Sarah", Due: today, Priority: domain.PriorityHigh, Status: domain.StatusPending},
		{Title: "Take out the trash", Description: "Empty all bathroom and kitchen trash", AssignedBy: "Mom", AssignedTo: "Max", Due: today, Priority: domain.PriorityMedium, Status: domain.StatusPending},
		{Title: "Finish homework", Description: "Complete math and science assignments", AssignedBy: "Mom", AssignedTo: "Max", Due: today.AddDays(1), Priority: domain.PriorityHigh, Status: domain.StatusPending},
		{Title: "Prepare dinner", Description: "Cook pasta with vegetables", AssignedBy: "Dad", AssignedTo: "Mom", Due: today, Priority: domain.PriorityMedium, Status: domain.StatusCompleted},
		{Title: "Grocery shopping", Description: "Buy items from the shopping list", AssignedBy: "Mom", AssignedTo: "Dad", Due: today.AddDays(-1), Priority: domain.PriorityLow, Status: domain.StatusCompleted},
	}
	for _, t := range seed {
		s.SaveTask(t)
	}

	return s
}

// ListTasks returns all tasks ordered by id
func (s *TaskStore) ListTasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks
}

// GetTask returns a copy of a task
func (s *TaskStore) GetTask(id int) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

// SaveTask stores a task, assigning an id when it has none
func (s *TaskStore) SaveTask(task domain.Task) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.ID == 0 {
		task.ID = s.nextID
	}
	if task.ID >= s.nextID {
		s.nextID = task.ID + 1
	}
	s.tasks[task.ID] = task
	return task
}

// SetStatus marks a task pending or completed
func (s *TaskStore) SetStatus(id int, status domain.TaskStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return domain.ErrNotFound
	}
	t.Status = status
	s.tasks[id] = t
	return nil
}

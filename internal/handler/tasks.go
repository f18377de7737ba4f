package handler

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"familiaconnect/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const taskFormatHelp = "Send it as: Title; assignee; priority; due\nPriority is high, medium or low. Due is today, tomorrow or YYYY-MM-DD.\nOnly the title is required."

// handleTasks shows the task list with the current filter and member selector
func (h *Handler) handleTasks(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)
	state.State = domain.StateIdle
	h.SetState(userID, state)

	return h.renderTasks(c, state)
}

// handleTaskFilter switches the filter; raw is the index into domain.TaskFilters
func (h *Handler) handleTaskFilter(c tele.Context, raw string) error {
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= len(domain.TaskFilters) {
		return h.notify(c, "Unknown filter")
	}

	userID := c.Sender().ID
	state := h.GetState(userID)
	state.TaskFilter = domain.TaskFilters[i]
	h.SetState(userID, state)

	return h.renderTasks(c, state)
}

// handleTaskMember switches the member selector; raw is the index into
// memberChoices, since assignee names are free text and too long for callback data
func (h *Handler) handleTaskMember(c tele.Context, raw string) error {
	choices := memberChoices(h.assignees())
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= len(choices) {
		return h.notify(c, "Unknown member")
	}
	member := choices[i]

	userID := c.Sender().ID
	state := h.GetState(userID)
	state.TaskMember = member
	h.SetState(userID, state)

	return h.renderTasks(c, state)
}

// handleTaskToggle completes a pending task or reopens a completed one
func (h *Handler) handleTaskToggle(c tele.Context, raw string) error {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return h.notify(c, "Invalid task")
	}

	task, err := h.services.Tasks.GetTask(id)
	if errors.Is(err, domain.ErrNotFound) {
		return h.notify(c, "Task not found")
	}
	if err != nil {
		h.logger.Error("Failed to load task", zap.Error(err), zap.Int("task_id", id))
		return h.notify(c, "Could not update the task")
	}

	if task.IsPending() {
		err = h.services.Tasks.CompleteTask(id)
	} else {
		err = h.services.Tasks.ReopenTask(id)
	}
	if err != nil {
		h.logger.Error("Failed to toggle task", zap.Error(err), zap.Int("task_id", id))
		return h.notify(c, "Could not update the task")
	}

	return h.renderTasks(c, h.GetState(c.Sender().ID))
}

// handleAddTask asks for the description of a new task
func (h *Handler) handleAddTask(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)
	state.State = domain.StateWaitingTask
	h.SetState(userID, state)

	return h.show(c, "✏️ New task\n\n"+taskFormatHelp, cancelMarkup())
}

func (h *Handler) renderTasks(c tele.Context, state *domain.StateData) error {
	filter := state.TaskFilter
	if filter == "" {
		filter = domain.FilterAll
	}
	member := state.TaskMember
	if member == "" {
		member = domain.Everyone
	}

	viewer := h.viewerName(c)
	tasks := h.services.Tasks.ListTasks(filter, member, viewer)
	now := h.now().In(h.services.Calendar.Location())

	return h.show(c,
		tasksText(filter, member, tasks, now),
		tasksMarkup(filter, member, h.assignees(), tasks),
	)
}

// assignees returns everyone who has a task, sorted
func (h *Handler) assignees() []string {
	seen := make(map[string]bool)
	for _, t := range h.services.Tasks.ListTasks(domain.FilterAll, domain.Everyone, "") {
		seen[t.AssignedTo] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// memberChoices lists the member selector entries in button order
func memberChoices(assignees []string) []string {
	return append([]string{domain.Everyone}, assignees...)
}

func tasksText(filter domain.TaskFilter, member string, tasks []domain.Task, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Tasks · %s · %s\n", filter, member)

	if len(tasks) == 0 {
		b.WriteString("\nNothing here.")
		return b.String()
	}

	for _, t := range tasks {
		check := "☐"
		if !t.IsPending() {
			check = "☑"
		}
		fmt.Fprintf(&b, "\n%s %s %s\n    %s → %s · due %s",
			check, t.Priority.Icon(), t.Title,
			t.AssignedBy, t.AssignedTo,
			domain.DayLabel(t.Due, now),
		)
	}
	return b.String()
}

func tasksMarkup(filter domain.TaskFilter, member string, assignees []string, tasks []domain.Task) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	var rows []tele.Row

	var row tele.Row
	for i, f := range domain.TaskFilters {
		label := string(f)
		if f == filter {
			label = "✓ " + label
		}
		row = append(row, markup.Data(label, prefixTaskFilter+strconv.Itoa(i)))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	row = nil
	for i, name := range memberChoices(assignees) {
		label := name
		if name == member {
			label = "✓ " + label
		}
		row = append(row, markup.Data(label, prefixTaskMember+strconv.Itoa(i)))
		if len(row) == 4 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	for _, t := range tasks {
		label := "☐ " + t.Title
		if !t.IsPending() {
			label = "☑ " + t.Title
		}
		rows = append(rows, markup.Row(markup.Data(label, prefixTaskDone+strconv.Itoa(t.ID))))
	}

	rows = append(rows, markup.Row(btnAddTask, btnMainMenu))

	markup.Inline(rows...)
	return markup
}

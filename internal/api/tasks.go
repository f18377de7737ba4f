package api

import (
	"encoding/json"
	"net/http"

	"familiaconnect/internal/domain"
)

// getTasks lists tasks. Query: filter (e.g. "Pending"), member (default Everyone), viewer.
func (a *API) getTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter, err := domain.ParseTaskFilter(q.Get("filter"))
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}
	member := q.Get("member")
	if member == "" {
		member = domain.Everyone
	}

	tasks := a.services.Tasks.ListTasks(filter, member, q.Get("viewer"))
	if tasks == nil {
		tasks = []domain.Task{}
	}

	respondWithJSON(w, http.StatusOK, tasks)
}

type createTaskRequest struct {
	AssignedBy string `json:"assigned_by"`
	Text       string `json:"text"`
}

// createTask adds a task from the same "Title; assignee; priority; due" text the bot accepts
func (a *API) createTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.AssignedBy == "" {
		respondWithError(w, http.StatusBadRequest, "assigned_by is required")
		return
	}

	task, err := a.services.Tasks.AddTask(req.AssignedBy, req.Text, a.services.Calendar.Today(a.now()))
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, task)
}

func (a *API) completeTask(w http.ResponseWriter, r *http.Request) {
	a.setTaskStatus(w, r, a.services.Tasks.CompleteTask)
}

func (a *API) reopenTask(w http.ResponseWriter, r *http.Request) {
	a.setTaskStatus(w, r, a.services.Tasks.ReopenTask)
}

func (a *API) setTaskStatus(w http.ResponseWriter, r *http.Request, update func(id int) error) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := update(id); err != nil {
		a.respondWithServiceError(w, err)
		return
	}

	task, err := a.services.Tasks.GetTask(id)
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, task)
}

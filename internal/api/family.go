package api

import (
	"net/http"

	"familiaconnect/internal/domain"
	"familiaconnect/internal/service"
)

func (a *API) getHome(w http.ResponseWriter, r *http.Request) {
	dashboard, err := a.services.Home.Dashboard(a.now())
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, dashboard)
}

type chatsResponse struct {
	Family []domain.Conversation `json:"family"`
	Global []domain.Conversation `json:"global"`
}

// getChats lists conversations without their messages
func (a *API) getChats(w http.ResponseWriter, r *http.Request) {
	family, global := a.services.Chats.Conversations()

	respondWithJSON(w, http.StatusOK, chatsResponse{
		Family: withoutMessages(family),
		Global: withoutMessages(global),
	})
}

func withoutMessages(convs []domain.Conversation) []domain.Conversation {
	out := make([]domain.Conversation, 0, len(convs))
	for _, c := range convs {
		c.Messages = nil
		out = append(out, c)
	}
	return out
}

func (a *API) getChat(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid chat id")
		return
	}

	conv, err := a.services.Chats.Conversation(id)
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, conv)
}

func (a *API) getEmergency(w http.ResponseWriter, r *http.Request) {
	info, err := a.services.Profiles.EmergencyInfo()
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, info)
}

type activityResponse struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (a *API) getActivities(w http.ResponseWriter, r *http.Request) {
	activities := make([]activityResponse, 0, len(service.Activities))
	for _, act := range service.Activities {
		activities = append(activities, activityResponse{
			ID:              act.ID,
			Title:           act.Title,
			Description:     act.Description,
			DurationMinutes: int(act.Duration.Minutes()),
		})
	}

	respondWithJSON(w, http.StatusOK, activities)
}

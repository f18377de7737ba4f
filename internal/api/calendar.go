package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"familiaconnect/internal/calendar"
	"familiaconnect/internal/domain"
)

type calendarResponse struct {
	Title    string    `json:"title"`
	Weekdays [7]string `json:"weekdays"`
	*domain.MonthView
}

// memberFilter reads the members query parameter: a comma-separated list of
// family members whose events are shown. Absent means everyone.
func memberFilter(q url.Values) domain.MemberFilter {
	values, ok := q["members"]
	if !ok {
		return domain.MemberFilter{}
	}
	var names []string
	for _, v := range values {
		names = append(names, strings.Split(v, ",")...)
	}
	return domain.OnlyMembers(names...)
}

// getCalendar returns the month grid. Query: year, month (1-12), selected (YYYY-MM-DD), members.
// Without year and month the current month is shown.
func (a *API) getCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ref := a.services.Calendar.Today(a.now())

	if q.Get("year") != "" || q.Get("month") != "" {
		year, err := strconv.Atoi(q.Get("year"))
		if err != nil || year < 1 || year > 9999 {
			respondWithError(w, http.StatusBadRequest, "year must be between 1 and 9999")
			return
		}
		month, err := strconv.Atoi(q.Get("month"))
		if err != nil || month < 1 || month > 12 {
			respondWithError(w, http.StatusBadRequest, "month must be between 1 and 12")
			return
		}
		ref = calendar.NewDate(year, time.Month(month), 1)
	}

	var selected calendar.Date
	if s := q.Get("selected"); s != "" {
		d, err := calendar.Parse(s)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "selected must be YYYY-MM-DD")
			return
		}
		selected = d
	}

	view, err := a.services.Calendar.MonthView(ref, selected, a.now(), memberFilter(q))
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, calendarResponse{
		Title:     view.Title(),
		Weekdays:  calendar.WeekdayInitials,
		MonthView: view,
	})
}

// getEvents returns the events of one day. Query: date (YYYY-MM-DD), members.
func (a *API) getEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date, err := calendar.Parse(q.Get("date"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	events, err := a.services.Calendar.EventsOn(date, memberFilter(q))
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}
	if events == nil {
		events = []domain.Event{}
	}

	respondWithJSON(w, http.StatusOK, events)
}

type createEventRequest struct {
	Date      calendar.Date `json:"date"`
	Text      string        `json:"text"`
	CreatedBy int64         `json:"created_by"`
}

// createEvent adds an event from the same "Title; 15:30-17:00; Location; Members" text the bot accepts
func (a *API) createEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Date.IsZero() {
		respondWithError(w, http.StatusBadRequest, "date is required")
		return
	}

	event, err := a.services.Calendar.AddEvent(req.CreatedBy, req.Date, req.Text)
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, event)
}

func (a *API) deleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	if err := a.services.Calendar.DeleteEvent(id); err != nil {
		a.respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

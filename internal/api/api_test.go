package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"familiaconnect/internal/calendar"
	"familiaconnect/internal/domain"
	"familiaconnect/internal/metrics"
	"familiaconnect/internal/middleware"
	"familiaconnect/internal/repository/memory"
	"familiaconnect/internal/service"
	"familiaconnect/internal/testutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error {
	return p.err
}

type testEnv struct {
	router    http.Handler
	members   *testutil.MockMemberRepository
	events    *testutil.MockEventRepository
	emergency *testutil.MockEmergencyRepository
}

func newTestEnv(pingErr error, opts Options) *testEnv {
	members := new(testutil.MockMemberRepository)
	events := new(testutil.MockEventRepository)
	emergency := new(testutil.MockEmergencyRepository)
	logger := testutil.NewTestLogger()

	tasks := service.NewTaskService(memory.NewSeededTaskStore(testNow), logger)
	services := service.Services{
		Members:    service.NewMemberService(members),
		Calendar:   service.NewCalendarService(events, time.UTC, logger),
		Tasks:      tasks,
		Chats:      service.NewChatService(memory.NewSampleChatStore(testNow)),
		Profiles:   service.NewProfileService(members, emergency),
		Home:       service.NewHomeService(members, events, tasks),
		Activities: service.NewActivityService(members, logger),
	}

	a := New(services, fakePinger{pingErr}, logger)
	a.now = testutil.FixedClock(testNow)

	return &testEnv{router: a.Router(opts), members: members, events: events, emergency: emergency}
}

func (env *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	rec := newTestEnv(nil, Options{}).do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"familiaconnect"}`, rec.Body.String())

	rec = newTestEnv(errors.New("connection refused"), Options{}).do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unhealthy")
}

func TestGetCalendar(t *testing.T) {
	env := newTestEnv(nil, Options{})
	env.events.On("GetEventCounts",
		calendar.NewDate(2024, time.January, 28),
		calendar.NewDate(2024, time.March, 9),
		time.UTC,
	).Return(map[calendar.Date]int{calendar.NewDate(2024, time.February, 14): 3}, nil)

	rec := env.do(http.MethodGet, "/api/v1/calendar?year=2024&month=2&selected=2024-02-14", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Title    string   `json:"title"`
		Weekdays []string `json:"weekdays"`
		Month    string   `json:"month"`
		Selected string   `json:"selected"`
		Cells    []struct {
			Date           string `json:"date"`
			InCurrentMonth bool   `json:"in_current_month"`
			IsToday        bool   `json:"is_today"`
			IsSelected     bool   `json:"is_selected"`
			EventCount     int    `json:"event_count"`
		} `json:"cells"`
	}
	decode(t, rec, &body)

	assert.Equal(t, "February 2024", body.Title)
	assert.Equal(t, []string{"S", "M", "T", "W", "T", "F", "S"}, body.Weekdays)
	assert.Equal(t, "2024-02-01", body.Month)
	assert.Equal(t, "2024-02-14", body.Selected)
	require.Len(t, body.Cells, calendar.GridSize)
	assert.Equal(t, "2024-01-28", body.Cells[0].Date)
	assert.False(t, body.Cells[0].InCurrentMonth)
	assert.True(t, body.Cells[13].IsToday)
	assert.True(t, body.Cells[17].IsSelected)
	assert.Equal(t, 3, body.Cells[17].EventCount)
}

func TestGetCalendar_DefaultsToCurrentMonth(t *testing.T) {
	env := newTestEnv(nil, Options{})
	env.events.On("GetEventCounts", mock.Anything, mock.Anything, time.UTC).Return(map[calendar.Date]int{}, nil)

	rec := env.do(http.MethodGet, "/api/v1/calendar", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Title string `json:"title"`
	}
	decode(t, rec, &body)
	assert.Equal(t, "February 2024", body.Title)
}

func TestGetCalendar_MembersFilter(t *testing.T) {
	env := newTestEnv(nil, Options{})
	at := time.Date(2024, time.February, 14, 16, 0, 0, 0, time.UTC)
	soccer := testutil.NewTestEvent(1, "Soccer Practice", at)
	soccer.Members = []string{"Sarah"}
	dentist := testutil.NewTestEvent(2, "Dentist", at)
	dentist.Members = []string{"Mom"}

	env.events.On("GetEventsBetween", mock.Anything, mock.Anything, time.UTC).Return([]domain.Event{soccer, dentist}, nil)
	env.events.On("GetEventsByDate", calendar.NewDate(2024, time.February, 14), time.UTC).Return([]domain.Event{soccer, dentist}, nil)

	rec := env.do(http.MethodGet, "/api/v1/calendar?year=2024&month=2&members=Sarah,Dad", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Cells []struct {
			EventCount int `json:"event_count"`
		} `json:"cells"`
	}
	decode(t, rec, &body)
	require.Len(t, body.Cells, calendar.GridSize)
	assert.Equal(t, 1, body.Cells[17].EventCount)

	rec = env.do(http.MethodGet, "/api/v1/events?date=2024-02-14&members=mom", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var events []domain.Event
	decode(t, rec, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "Dentist", events[0].Title)

	// An empty list keeps only family-wide events.
	rec = env.do(http.MethodGet, "/api/v1/events?date=2024-02-14&members=", "")
	require.Equal(t, http.StatusOK, rec.Code)
	events = nil
	decode(t, rec, &events)
	assert.Empty(t, events)

	env.events.AssertNotCalled(t, "GetEventCounts", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetCalendar_BadRequests(t *testing.T) {
	env := newTestEnv(nil, Options{})

	for _, target := range []string{
		"/api/v1/calendar?year=2024&month=13",
		"/api/v1/calendar?year=2024&month=0",
		"/api/v1/calendar?year=abc&month=2",
		"/api/v1/calendar?month=2",
		"/api/v1/calendar?year=2024&month=2&selected=tomorrow",
	} {
		rec := env.do(http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
	env.events.AssertNotCalled(t, "GetEventCounts", mock.Anything, mock.Anything, mock.Anything)
}

func TestEvents(t *testing.T) {
	env := newTestEnv(nil, Options{})
	date := calendar.NewDate(2024, time.February, 14)

	env.events.On("GetEventsByDate", date, time.UTC).Return([]domain.Event{
		testutil.NewTestEvent(1, "Dentist", date.Time(time.UTC).Add(9*time.Hour)),
	}, nil)
	env.events.On("SaveEvent", mock.AnythingOfType("*domain.Event")).Return(12, nil)
	env.events.On("DeleteEvent", 12).Return(nil)
	env.events.On("DeleteEvent", 13).Return(domain.ErrNotFound)

	rec := env.do(http.MethodGet, "/api/v1/events?date=2024-02-14", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var events []domain.Event
	decode(t, rec, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "Dentist", events[0].Title)

	rec = env.do(http.MethodGet, "/api/v1/events", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPost, "/api/v1/events",
		`{"date":"2024-02-14","text":"Piano lesson; 16:00-17:00; Music school; Sarah","created_by":7}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.Event
	decode(t, rec, &created)
	assert.Equal(t, 12, created.ID)
	assert.Equal(t, "Music school", created.Location)
	assert.Equal(t, []string{"Sarah"}, created.Members)
	assert.Equal(t, int64(7), created.CreatedBy)

	rec = env.do(http.MethodPost, "/api/v1/events", `{"date":"2024-02-14","text":"Piano; 17:00-16:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = env.do(http.MethodPost, "/api/v1/events", `{"text":"Piano"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = env.do(http.MethodPost, "/api/v1/events", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodDelete, "/api/v1/events/12", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = env.do(http.MethodDelete, "/api/v1/events/13", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTasks(t *testing.T) {
	env := newTestEnv(nil, Options{})

	rec := env.do(http.MethodGet, "/api/v1/tasks?filter=pending&member=Max", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var tasks []domain.Task
	decode(t, rec, &tasks)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Take out the trash", tasks[0].Title)

	rec = env.do(http.MethodGet, "/api/v1/tasks?filter=someday", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodGet, "/api/v1/tasks?filter=completed&member=Sarah", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = env.do(http.MethodPost, "/api/v1/tasks/2/complete", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var task domain.Task
	decode(t, rec, &task)
	assert.Equal(t, domain.StatusCompleted, task.Status)

	rec = env.do(http.MethodPost, "/api/v1/tasks/2/reopen", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &task)
	assert.Equal(t, domain.StatusPending, task.Status)

	rec = env.do(http.MethodPost, "/api/v1/tasks/99/complete", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(http.MethodPost, "/api/v1/tasks", `{"assigned_by":"Dad","text":"Mow the lawn; Max; low; tomorrow"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	decode(t, rec, &task)
	assert.Equal(t, 6, task.ID)
	assert.Equal(t, calendar.NewDate(2024, time.February, 11), task.Due)

	rec = env.do(http.MethodPost, "/api/v1/tasks", `{"text":"Mow the lawn"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHome(t *testing.T) {
	env := newTestEnv(nil, Options{})
	env.members.On("ListMembers").Return([]domain.Member{{Name: "Sarah"}}, nil)
	env.events.On("GetUpcomingEvents", testNow, 3).Return([]domain.Event{}, nil)

	rec := env.do(http.MethodGet, "/api/v1/home", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dashboard domain.Dashboard
	decode(t, rec, &dashboard)
	assert.Equal(t, []domain.MemberSummary{{Name: "Sarah", PendingTasks: 1}}, dashboard.Members)
	assert.Len(t, dashboard.PendingTasks, 3)
}

func TestHome_DatabaseError(t *testing.T) {
	env := newTestEnv(nil, Options{})
	env.members.On("ListMembers").Return(nil, errors.New("db error"))

	rec := env.do(http.MethodGet, "/api/v1/home", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db error")
}

func TestChats(t *testing.T) {
	env := newTestEnv(nil, Options{})

	rec := env.do(http.MethodGet, "/api/v1/chats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var chats struct {
		Family []domain.Conversation `json:"family"`
		Global []domain.Conversation `json:"global"`
	}
	decode(t, rec, &chats)
	assert.Len(t, chats.Family, 4)
	assert.Len(t, chats.Global, 3)
	assert.Empty(t, chats.Family[0].Messages)

	rec = env.do(http.MethodGet, "/api/v1/chats/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var conv domain.Conversation
	decode(t, rec, &conv)
	assert.Equal(t, "Family Group", conv.Name)
	assert.NotEmpty(t, conv.Messages)

	rec = env.do(http.MethodGet, "/api/v1/chats/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmergency(t *testing.T) {
	env := newTestEnv(nil, Options{})
	env.emergency.On("ListContacts").Return([]domain.EmergencyContact{{Name: "Dr. Smith"}}, nil)
	env.emergency.On("ListMedicalInfo").Return([]domain.MedicalInfo{{Member: "Sarah"}}, nil)

	rec := env.do(http.MethodGet, "/api/v1/emergency", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var info domain.EmergencyInfo
	decode(t, rec, &info)
	assert.Equal(t, "Dr. Smith", info.Contacts[0].Name)
	assert.Equal(t, "Sarah", info.Medical[0].Member)
}

func TestActivities(t *testing.T) {
	rec := newTestEnv(nil, Options{}).do(http.MethodGet, "/api/v1/activities", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var activities []activityResponse
	decode(t, rec, &activities)
	require.Len(t, activities, len(service.Activities))
	assert.Equal(t, 45, activities[1].DurationMinutes)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	env := newTestEnv(nil, Options{
		Metrics:     m,
		Gatherer:    reg,
		MetricsUser: "admin",
		MetricsPass: "secret",
	})

	env.do(http.MethodGet, "/health", "")

	rec := env.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.SetBasicAuth("admin", "secret")
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",path="/health",status="OK"} 1`)
}

func TestRateLimiting(t *testing.T) {
	env := newTestEnv(nil, Options{RateLimiter: middleware.NewRateLimiter(0.001, 1, nil)})

	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/v1/activities", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, env.do(http.MethodGet, "/api/v1/activities", "").Code)
}

func TestCORS(t *testing.T) {
	env := newTestEnv(nil, Options{CORSOrigins: []string{"https://family.example"}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/activities", nil)
	req.Header.Set("Origin", "https://family.example")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, "https://family.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

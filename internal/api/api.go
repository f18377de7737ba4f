package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"familiaconnect/internal/metrics"
	"familiaconnect/internal/middleware"
	"familiaconnect/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Pinger reports database health
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Options configures the router's outer layers
type Options struct {
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	RateLimiter *middleware.RateLimiter
	MetricsUser string
	MetricsPass string
	CORSOrigins []string
}

// API serves the family data over HTTP for the web client
type API struct {
	services service.Services
	db       Pinger
	logger   *zap.Logger
	now      func() time.Time
}

// New creates the API
func New(services service.Services, db Pinger, logger *zap.Logger) *API {
	return &API{
		services: services,
		db:       db,
		logger:   logger,
		now:      time.Now,
	}
}

// Router returns the HTTP handler with all routes and middleware
func (a *API) Router(opts Options) http.Handler {
	r := mux.NewRouter()

	r.Use(handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{a.logger}),
		handlers.PrintRecoveryStack(false),
	))
	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Middleware)
	}
	if opts.Metrics != nil {
		r.Use(middleware.Monitor(opts.Metrics))
	}

	r.HandleFunc("/health", a.health).Methods(http.MethodGet)

	if opts.Gatherer != nil {
		metricsHandler := promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})
		r.Handle("/metrics", middleware.BasicAuth(opts.MetricsUser, opts.MetricsPass)(metricsHandler)).
			Methods(http.MethodGet)
	}

	v1 := r.PathPrefix("/api/v1").Subrouter()

	v1.HandleFunc("/calendar", a.getCalendar).Methods(http.MethodGet)

	v1.HandleFunc("/events", a.getEvents).Methods(http.MethodGet)
	v1.HandleFunc("/events", a.createEvent).Methods(http.MethodPost)
	v1.HandleFunc("/events/{id:[0-9]+}", a.deleteEvent).Methods(http.MethodDelete)

	v1.HandleFunc("/tasks", a.getTasks).Methods(http.MethodGet)
	v1.HandleFunc("/tasks", a.createTask).Methods(http.MethodPost)
	v1.HandleFunc("/tasks/{id:[0-9]+}/complete", a.completeTask).Methods(http.MethodPost)
	v1.HandleFunc("/tasks/{id:[0-9]+}/reopen", a.reopenTask).Methods(http.MethodPost)

	v1.HandleFunc("/home", a.getHome).Methods(http.MethodGet)

	v1.HandleFunc("/chats", a.getChats).Methods(http.MethodGet)
	v1.HandleFunc("/chats/{id:[0-9]+}", a.getChat).Methods(http.MethodGet)

	v1.HandleFunc("/emergency", a.getEmergency).Methods(http.MethodGet)

	v1.HandleFunc("/activities", a.getActivities).Methods(http.MethodGet)

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return cors(r)
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := a.db.PingContext(ctx); err != nil {
		a.logger.Warn("Health check failed", zap.Error(err))
		respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  "database connection failed",
		})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "familiaconnect",
	})
}

type recoveryLogger struct {
	logger *zap.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error("Recovered from panic", zap.String("panic", fmt.Sprint(v...)))
}

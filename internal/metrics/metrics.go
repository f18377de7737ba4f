package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors shared by the bot and the HTTP API
type Metrics struct {
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	RateLimited       prometheus.Counter
	BotUpdates        *prometheus.CounterVec
	BotUpdateDuration *prometheus.HistogramVec
	BotErrors         *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
		RateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "http_rate_limited_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
		),
		BotUpdates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bot_updates_total",
				Help: "Total number of Telegram updates handled",
			},
			[]string{"kind"},
		),
		BotUpdateDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bot_update_duration_seconds",
				Help:    "Duration of Telegram update handling",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		BotErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bot_update_errors_total",
				Help: "Total number of Telegram updates whose handler failed",
			},
			[]string{"kind"},
		),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.RateLimited,
		m.BotUpdates,
		m.BotUpdateDuration,
		m.BotErrors,
	)

	return m
}

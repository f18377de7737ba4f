package middleware

import (
	"strings"
	"time"

	"familiaconnect/internal/metrics"

	tele "gopkg.in/telebot.v3"
)

// BotMetrics counts handled updates by kind and records how long they took
func BotMetrics(m *metrics.Metrics) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			kind := updateKind(c)
			start := time.Now()

			err := next(c)

			m.BotUpdates.WithLabelValues(kind).Inc()
			m.BotUpdateDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
			if err != nil {
				m.BotErrors.WithLabelValues(kind).Inc()
			}
			return err
		}
	}
}

func updateKind(c tele.Context) string {
	if c.Callback() != nil {
		return "callback"
	}
	if strings.HasPrefix(c.Text(), "/") {
		return "command"
	}
	return "text"
}

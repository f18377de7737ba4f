package handler

import (
	"fmt"
	"strings"
	"time"

	"familiaconnect/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleHome shows the family dashboard
func (h *Handler) handleHome(c tele.Context) error {
	now := h.now()

	dashboard, err := h.services.Home.Dashboard(now)
	if err != nil {
		h.logger.Error("Failed to build dashboard", zap.Error(err))
		return h.notify(c, "Could not load the dashboard")
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnCalendar, btnTasks),
		markup.Row(btnMainMenu),
	)

	return h.show(c, dashboardText(dashboard, now.In(h.services.Calendar.Location())), markup)
}

func dashboardText(d *domain.Dashboard, now time.Time) string {
	var b strings.Builder
	b.WriteString("🏠 Family\n")
	for _, m := range d.Members {
		name := m.Name
		if m.Role != "" {
			name += " (" + m.Role + ")"
		}
		fmt.Fprintf(&b, "\n%s · %d pending", name, m.PendingTasks)
	}

	b.WriteString("\n\n📅 Upcoming\n")
	if len(d.UpcomingEvents) == 0 {
		b.WriteString("\nNothing planned.")
	}
	for _, e := range d.UpcomingEvents {
		e = e.In(now.Location())
		fmt.Fprintf(&b, "\n%s %s", domain.DayLabel(e.Day(), now), formatEvent(e))
	}

	b.WriteString("\n\n✅ Due soon\n")
	if len(d.PendingTasks) == 0 {
		b.WriteString("\nAll done!")
	}
	for _, t := range d.PendingTasks {
		fmt.Fprintf(&b, "\n%s %s · %s · %s", t.Priority.Icon(), t.Title, t.AssignedTo, domain.DayLabel(t.Due, now))
	}
	return b.String()
}

package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"familiaconnect/internal/domain"
	"familiaconnect/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleInteractive lists the family activities
func (h *Handler) handleInteractive(c tele.Context) error {
	markup := &tele.ReplyMarkup{}
	var rows []tele.Row

	var b strings.Builder
	b.WriteString("🎲 Interactive mode\n")
	for _, a := range service.Activities {
		fmt.Fprintf(&b, "\n%s · %d min\n    %s", a.Title, int(a.Duration.Minutes()), a.Description)
		rows = append(rows, markup.Row(markup.Data("▶ "+a.Title, prefixActivityStart+strconv.Itoa(a.ID))))
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)

	return h.show(c, b.String(), markup)
}

func (h *Handler) handleActivityStart(c tele.Context, raw string) error {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return h.notify(c, "Unknown activity")
	}

	session, err := h.services.Activities.StartSession(id, c.Sender().ID, h.viewerName(c))
	if err != nil {
		return h.sessionError(c, err)
	}
	return h.showSession(c, session)
}

func (h *Handler) handleSessionJoin(c tele.Context, sessionID string) error {
	session, err := h.services.Activities.Join(sessionID, c.Sender().ID, h.viewerName(c))
	if err != nil {
		return h.sessionError(c, err)
	}
	return h.showSession(c, session)
}

func (h *Handler) handleSessionFinish(c tele.Context, sessionID string) error {
	session, err := h.services.Activities.Finish(sessionID)
	if err != nil {
		return h.sessionError(c, err)
	}
	return h.showSession(c, session)
}

func (h *Handler) handleSessionView(c tele.Context, sessionID string) error {
	session, err := h.services.Activities.Session(sessionID)
	if err != nil {
		return h.sessionError(c, err)
	}
	return h.showSession(c, session)
}

func (h *Handler) sessionError(c tele.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownActivity):
		return h.notify(c, "Unknown activity")
	case errors.Is(err, domain.ErrNotFound):
		return h.notify(c, "This activity is no longer running")
	case errors.Is(err, domain.ErrSessionFinished):
		return h.notify(c, "This activity has already finished")
	}
	h.logger.Error("Activity session failed", zap.Error(err))
	return h.notify(c, "Something went wrong")
}

func (h *Handler) showSession(c tele.Context, session *domain.Session) error {
	markup := &tele.ReplyMarkup{}
	if session.Finished() {
		markup.Inline(markup.Row(btnInteractive, btnMainMenu))
	} else {
		markup.Inline(
			markup.Row(
				markup.Data("🙋 Join", prefixSessionJoin+session.ID),
				markup.Data("🔄 Refresh", prefixSessionView+session.ID),
			),
			markup.Row(markup.Data("🏁 Finish", prefixSessionFinish+session.ID)),
			markup.Row(btnMainMenu),
		)
	}

	return h.show(c, sessionText(session, h.now()), markup)
}

func sessionText(s *domain.Session, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎲 %s\nStarted by %s\n", s.Activity.Title, s.StartedBy)

	if s.Finished() {
		fmt.Fprintf(&b, "\n🏁 Finished! +%d points each for:", service.ActivityPoints)
	} else {
		left := s.TimeRemaining(now).Round(time.Minute)
		fmt.Fprintf(&b, "\n⏱ %d min left\nPresent:", int(left.Minutes()))
	}

	for _, name := range s.PresentMembers() {
		b.WriteString("\n• " + name)
	}
	return b.String()
}

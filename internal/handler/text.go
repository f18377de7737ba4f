package handler

import (
	"errors"
	"strings"

	"familiaconnect/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingEvent:
		event, err := h.services.Calendar.AddEvent(userID, state.SelectedDate, text)
		if err != nil {
			if msg, ok := inputErrorMessage(err); ok {
				return c.Send(msg+"\n\n"+eventFormatHelp, cancelMarkup())
			}
			h.logger.Error("Failed to add event", zap.Error(err), zap.Int64("user_id", userID))
			return c.Send("Could not save the event. Please try again.", cancelMarkup())
		}

		state.State = domain.StateIdle
		h.SetState(userID, state)

		if err := c.Send("✅ Added: " + formatEvent(*event)); err != nil {
			return err
		}
		return h.renderCalendar(c, state)

	case domain.StateWaitingTask:
		today := h.services.Calendar.Today(h.now())
		if _, err := h.services.Tasks.AddTask(h.viewerName(c), text, today); err != nil {
			if msg, ok := inputErrorMessage(err); ok {
				return c.Send(msg+"\n\n"+taskFormatHelp, cancelMarkup())
			}
			h.logger.Error("Failed to add task", zap.Error(err), zap.Int64("user_id", userID))
			return c.Send("Could not save the task. Please try again.", cancelMarkup())
		}

		state.State = domain.StateIdle
		h.SetState(userID, state)
		return h.renderTasks(c, state)

	default:
		return c.Send(mainMenuText, mainMenuMarkup())
	}
}

// inputErrorMessage turns a validation error into a message for the user
func inputErrorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrEmptyTitle):
		return "⚠️ The title is missing.", true
	case errors.Is(err, domain.ErrInvalidTime):
		return "⚠️ Times look like 15:30 or 3:30 PM.", true
	case errors.Is(err, domain.ErrInvalidTimeRange):
		return "⚠️ The event must end after it starts.", true
	case errors.Is(err, domain.ErrUnknownPriority):
		return "⚠️ Priority is high, medium or low.", true
	case errors.Is(err, domain.ErrInvalidDate):
		return "⚠️ Due is today, tomorrow or YYYY-MM-DD.", true
	}
	return "", false
}

package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Callback data prefixes of dynamic buttons
const (
	prefixCalendarDay   = "cal_day_"
	prefixCalendarNav   = "cal_nav_"
	prefixCalendarShow  = "cal_show_"
	prefixEventDelete   = "event_del_"
	prefixTaskFilter    = "task_filter_"
	prefixTaskMember    = "task_member_"
	prefixTaskDone      = "task_done_"
	prefixSetting       = "setting_"
	prefixChat          = "chat_"
	prefixActivityStart = "act_start_"
	prefixSessionJoin   = "act_join_"
	prefixSessionFinish = "act_finish_"
	prefixSessionView   = "act_view_"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Already showing this content, e.g. a double tap on the same day
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// show edits the message behind a callback, or sends a new one for commands and text
func (h *Handler) show(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// notify reports a short message as a callback toast, or as a chat message otherwise
func (h *Handler) notify(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text})
	}
	return c.Send(text)
}

// handleCallback handles callbacks of dynamic buttons
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch {
	case strings.HasPrefix(data, prefixCalendarDay):
		return h.handleCalendarDay(c, strings.TrimPrefix(data, prefixCalendarDay))
	case strings.HasPrefix(data, prefixCalendarNav):
		return h.handleCalendarNav(c, strings.TrimPrefix(data, prefixCalendarNav))
	case strings.HasPrefix(data, prefixCalendarShow):
		return h.handleCalendarShow(c, strings.TrimPrefix(data, prefixCalendarShow))
	case strings.HasPrefix(data, prefixEventDelete):
		return h.handleDeleteEvent(c, strings.TrimPrefix(data, prefixEventDelete))
	case strings.HasPrefix(data, prefixTaskFilter):
		return h.handleTaskFilter(c, strings.TrimPrefix(data, prefixTaskFilter))
	case strings.HasPrefix(data, prefixTaskMember):
		return h.handleTaskMember(c, strings.TrimPrefix(data, prefixTaskMember))
	case strings.HasPrefix(data, prefixTaskDone):
		return h.handleTaskToggle(c, strings.TrimPrefix(data, prefixTaskDone))
	case strings.HasPrefix(data, prefixSetting):
		return h.handleSettingToggle(c, strings.TrimPrefix(data, prefixSetting))
	case strings.HasPrefix(data, prefixChat):
		return h.handleConversation(c, strings.TrimPrefix(data, prefixChat))
	case strings.HasPrefix(data, prefixActivityStart):
		return h.handleActivityStart(c, strings.TrimPrefix(data, prefixActivityStart))
	case strings.HasPrefix(data, prefixSessionJoin):
		return h.handleSessionJoin(c, strings.TrimPrefix(data, prefixSessionJoin))
	case strings.HasPrefix(data, prefixSessionFinish):
		return h.handleSessionFinish(c, strings.TrimPrefix(data, prefixSessionFinish))
	case strings.HasPrefix(data, prefixSessionView):
		return h.handleSessionView(c, strings.TrimPrefix(data, prefixSessionView))
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

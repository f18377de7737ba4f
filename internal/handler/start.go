package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.services.Members.Register(userID, senderName(c.Sender())); err != nil {
		h.logger.Error("Failed to register member", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	h.ResetState(userID)
	return h.show(c, mainMenuText, mainMenuMarkup())
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.show(c, mainMenuText, mainMenuMarkup())
}

func (h *Handler) handleNoop(c tele.Context) error {
	return c.Respond()
}

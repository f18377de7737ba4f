package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"familiaconnect/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleChats shows family chats and global chats
func (h *Handler) handleChats(c tele.Context) error {
	family, global := h.services.Chats.Conversations()

	markup := &tele.ReplyMarkup{}
	var rows []tele.Row

	rows = append(rows, markup.Row(noopButton(markup, "👪 Family")))
	for _, conv := range family {
		rows = append(rows, markup.Row(conversationButton(markup, conv)))
	}
	rows = append(rows, markup.Row(noopButton(markup, "🌍 Global")))
	for _, conv := range global {
		rows = append(rows, markup.Row(conversationButton(markup, conv)))
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)

	return h.show(c, "💬 Chats", markup)
}

func conversationButton(markup *tele.ReplyMarkup, conv domain.Conversation) tele.Btn {
	label := conv.Name
	if conv.Language != "" {
		label += " · " + conv.Language
	}
	if conv.Unread > 0 {
		label += fmt.Sprintf(" (%d)", conv.Unread)
	}
	return markup.Data(label, prefixChat+strconv.Itoa(conv.ID))
}

// handleConversation shows the messages of one chat
func (h *Handler) handleConversation(c tele.Context, raw string) error {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return h.notify(c, "Invalid chat")
	}

	conv, err := h.services.Chats.Conversation(id)
	if errors.Is(err, domain.ErrNotFound) {
		return h.notify(c, "Chat not found")
	}
	if err != nil {
		h.logger.Error("Failed to load conversation", zap.Error(err), zap.Int("chat_id", id))
		return h.notify(c, "Could not load the chat")
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnChats, btnMainMenu))

	return h.show(c, conversationText(conv), markup)
}

func conversationText(conv *domain.Conversation) string {
	var b strings.Builder
	b.WriteString("💬 " + conv.Name + "\n")

	if len(conv.Messages) == 0 {
		b.WriteString("\nNo messages yet.")
		return b.String()
	}

	for _, m := range conv.Messages {
		fmt.Fprintf(&b, "\n%s %s: %s", m.SentAt.Format("15:04"), m.Sender, m.Text)
		if m.Translation != "" {
			b.WriteString("\n    ↳ " + m.Translation)
		}
	}
	return b.String()
}

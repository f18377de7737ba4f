package handler

import (
	"errors"
	"fmt"
	"strings"

	"familiaconnect/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleProfile shows the sender's member card
func (h *Handler) handleProfile(c tele.Context) error {
	member, err := h.services.Profiles.Profile(c.Sender().ID)
	if errors.Is(err, domain.ErrNotFound) {
		return h.notify(c, "Send /start to join the family first")
	}
	if err != nil {
		h.logger.Error("Failed to load profile", zap.Error(err))
		return h.notify(c, "Could not load the profile")
	}

	return h.show(c, profileText(member), profileMarkup(member))
}

// handleSettingToggle flips a profile switch, raw is the setting key
func (h *Handler) handleSettingToggle(c tele.Context, raw string) error {
	userID := c.Sender().ID
	member, err := h.services.Profiles.ToggleSetting(userID, domain.Setting(raw))
	switch {
	case errors.Is(err, domain.ErrUnknownSetting):
		return h.notify(c, "Unknown setting")
	case errors.Is(err, domain.ErrNotFound):
		return h.notify(c, "Send /start to join the family first")
	case err != nil:
		h.logger.Error("Failed to toggle setting", zap.Error(err), zap.Int64("user_id", userID), zap.String("setting", raw))
		return h.notify(c, "Could not save the setting")
	}

	h.logger.Info("Member setting changed", zap.Int64("user_id", userID), zap.String("setting", raw))
	return h.show(c, profileText(member), profileMarkup(member))
}

func profileMarkup(m *domain.Member) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(domain.Settings)+2)
	for _, info := range domain.Settings {
		on, _ := m.Enabled(info.Setting)
		rows = append(rows, markup.Row(markup.Data(settingIcon(on)+" "+info.Label, prefixSetting+string(info.Setting))))
	}
	rows = append(rows, markup.Row(btnEmergency), markup.Row(btnMainMenu))

	markup.Inline(rows...)
	return markup
}

func settingIcon(on bool) string {
	if on {
		return "✅"
	}
	return "⬜"
}

// handleRole handles "/role Mom": the role replaces the name when matching tasks
func (h *Handler) handleRole(c tele.Context) error {
	fields := strings.Fields(c.Text())
	if len(fields) < 2 {
		return c.Send("Usage: /role <family role>, e.g. /role Mom")
	}
	role := strings.Join(fields[1:], " ")

	err := h.services.Members.SetRole(c.Sender().ID, role)
	if errors.Is(err, domain.ErrNotFound) {
		return c.Send("Send /start to join the family first")
	}
	if err != nil {
		h.logger.Error("Failed to set role", zap.Error(err), zap.Int64("user_id", c.Sender().ID))
		return c.Send("Something went wrong. Please try again later.")
	}

	h.logger.Info("Member role set", zap.Int64("user_id", c.Sender().ID), zap.String("role", role))
	return c.Send("✅ Your role is now " + role)
}

func profileText(m *domain.Member) string {
	role := m.Role
	if role == "" {
		role = "not set"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "👤 %s\n\nRole: %s\nPoints: %d\nMember since %s\n\n⚙️ Settings",
		m.Name, role, m.Points, m.CreatedAt.Format("January 2006"))
	for _, info := range domain.Settings {
		on, _ := m.Enabled(info.Setting)
		state := "Off"
		if on {
			state = "On"
		}
		fmt.Fprintf(&b, "\n%s: %s · %s", info.Label, state, info.Description)
	}
	return b.String()
}

// handleEmergency shows emergency contacts and medical notes
func (h *Handler) handleEmergency(c tele.Context) error {
	info, err := h.services.Profiles.EmergencyInfo()
	if err != nil {
		h.logger.Error("Failed to load emergency info", zap.Error(err))
		return h.notify(c, "Could not load emergency info")
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnProfile, btnMainMenu))

	return h.show(c, emergencyText(info), markup)
}

func emergencyText(info *domain.EmergencyInfo) string {
	var b strings.Builder
	b.WriteString("🚑 Emergency contacts\n")
	for _, contact := range info.Contacts {
		fmt.Fprintf(&b, "\n%s (%s): %s", contact.Name, contact.Relationship, contact.Phone)
	}

	b.WriteString("\n\n🩺 Medical information\n")
	for _, m := range info.Medical {
		fmt.Fprintf(&b, "\n%s · blood type %s", m.Member, m.BloodType)
		if m.Allergies != "" {
			b.WriteString("\n    Allergies: " + m.Allergies)
		}
		if m.Medications != "" {
			b.WriteString("\n    Medications: " + m.Medications)
		}
		if m.Notes != "" {
			b.WriteString("\n    " + m.Notes)
		}
	}
	return b.String()
}

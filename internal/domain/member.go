package domain

import (
	"time"

	"familiaconnect/internal/calendar"
)

// Member represents a family member registered through the bot
type Member struct {
	ID        int
	UserID    int64
	Name      string
	Role      string
	Points    int
	CreatedAt time.Time

	ParentalControls bool
	Notifications    bool
}

// Setting is a per-member switch on the profile screen
type Setting string

const (
	SettingParentalControls Setting = "parental_controls"
	SettingNotifications    Setting = "notifications"
)

// SettingInfo describes a setting for display
type SettingInfo struct {
	Setting     Setting
	Label       string
	Description string
}

// Settings lists the profile switches in display order
var Settings = []SettingInfo{
	{Setting: SettingParentalControls, Label: "Parental Controls", Description: "Manage app blocking and time limits"},
	{Setting: SettingNotifications, Label: "Notifications", Description: "Manage alert preferences"},
}

// Enabled reports the member's value of s
func (m *Member) Enabled(s Setting) (bool, error) {
	switch s {
	case SettingParentalControls:
		return m.ParentalControls, nil
	case SettingNotifications:
		return m.Notifications, nil
	}
	return false, ErrUnknownSetting
}

// DefaultMemberName is used when a chat account has no usable name
const DefaultMemberName = "Member"

// MemberName picks the name a member registers under from their chat account:
// full name, then first name, then username
func MemberName(firstName, lastName, username string) string {
	switch {
	case firstName != "" && lastName != "":
		return firstName + " " + lastName
	case firstName != "":
		return firstName
	case username != "":
		return username
	}
	return DefaultMemberName
}

// SetEnabled sets the member's value of s
func (m *Member) SetEnabled(s Setting, on bool) error {
	switch s {
	case SettingParentalControls:
		m.ParentalControls = on
	case SettingNotifications:
		m.Notifications = on
	default:
		return ErrUnknownSetting
	}
	return nil
}

// MemberSummary is a member card on the home screen
type MemberSummary struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	PendingTasks int    `json:"pending_tasks"`
}

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle         UserState = "idle"
	StateWaitingEvent UserState = "waiting_event"
	StateWaitingTask  UserState = "waiting_task"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State        UserState
	ViewMonth    calendar.Date
	SelectedDate calendar.Date
	TaskFilter   TaskFilter
	TaskMember   string
	EventFilter  MemberFilter
}

package handler

import (
	"sync"
	"time"

	"familiaconnect/internal/domain"
	"familiaconnect/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	services service.Services
	logger   *zap.Logger
	now      func() time.Time

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, services service.Services, logger *zap.Logger) *Handler {
	return &Handler{
		bot:      bot,
		services: services,
		logger:   logger,
		now:      time.Now,
		states:   make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/calendar", h.handleCalendar)
	h.bot.Handle("/tasks", h.handleTasks)
	h.bot.Handle("/home", h.handleHome)
	h.bot.Handle("/role", h.handleRole)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnCalendar, h.handleCalendar)
	h.bot.Handle(&btnTasks, h.handleTasks)
	h.bot.Handle(&btnChats, h.handleChats)
	h.bot.Handle(&btnProfile, h.handleProfile)
	h.bot.Handle(&btnHome, h.handleHome)
	h.bot.Handle(&btnInteractive, h.handleInteractive)
	h.bot.Handle(&btnEmergency, h.handleEmergency)
	h.bot.Handle(&btnAddEvent, h.handleAddEvent)
	h.bot.Handle(&btnAddTask, h.handleAddTask)
	h.bot.Handle(&btnToday, h.handleCalendarToday)
	h.bot.Handle(&btnCalendarFilter, h.handleCalendarFilter)
	h.bot.Handle(&btnCalendarShowAll, h.handleCalendarShowAll)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnMainMenu, h.handleStart)
	h.bot.Handle(&btnNoop, h.handleNoop)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns a copy of the user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	s := *state
	return &s
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState returns the user to idle, keeping calendar and task view settings
func (h *Handler) ResetState(userID int64) {
	state := h.GetState(userID)
	state.State = domain.StateIdle
	h.SetState(userID, state)
}

// Inline keyboard buttons
var (
	btnCalendar = tele.Btn{
		Unique: "calendar",
		Text:   "📅 Calendar",
	}
	btnTasks = tele.Btn{
		Unique: "tasks",
		Text:   "✅ Tasks",
	}
	btnChats = tele.Btn{
		Unique: "chats",
		Text:   "💬 Chat",
	}
	btnProfile = tele.Btn{
		Unique: "profile",
		Text:   "👤 Profile",
	}
	btnHome = tele.Btn{
		Unique: "home",
		Text:   "🏠 Home",
	}
	btnInteractive = tele.Btn{
		Unique: "interactive",
		Text:   "🎲 Interactive mode",
	}
	btnEmergency = tele.Btn{
		Unique: "emergency",
		Text:   "🚑 Emergency info",
	}
	btnAddEvent = tele.Btn{
		Unique: "cal_add",
		Text:   "+ Add event",
	}
	btnAddTask = tele.Btn{
		Unique: "task_add",
		Text:   "+ Add task",
	}
	btnToday = tele.Btn{
		Unique: "cal_today",
		Text:   "Today",
	}
	btnCalendarFilter = tele.Btn{
		Unique: "cal_filter",
		Text:   "👪 Filter",
	}
	btnCalendarShowAll = tele.Btn{
		Unique: "cal_everyone",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "☰ Menu",
	}
	btnNoop = tele.Btn{
		Unique: "noop",
	}
)

const mainMenuText = "🏠 FamiliaConnect\n\nChoose a section:"

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnHome, btnCalendar),
		menu.Row(btnTasks, btnChats),
		menu.Row(btnProfile, btnInteractive),
	)
	return menu
}

func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}

// noopButton is a label cell in an inline grid
func noopButton(markup *tele.ReplyMarkup, text string) tele.Btn {
	return markup.Data(text, btnNoop.Unique)
}

// viewerName returns the name tasks are matched against for the sender
func (h *Handler) viewerName(c tele.Context) string {
	name, err := h.services.Members.DisplayName(c.Sender().ID)
	if err != nil {
		return senderName(c.Sender())
	}
	return name
}

func senderName(u *tele.User) string {
	if u == nil {
		return domain.DefaultMemberName
	}
	return domain.MemberName(u.FirstName, u.LastName, u.Username)
}

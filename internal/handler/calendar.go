package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"familiaconnect/internal/calendar"
	"familiaconnect/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const eventFormatHelp = "Send it as: Title; 15:30-17:00; Location; Mom, Sarah\nOnly the title is required, no time means all day."

// handleCalendar shows the month view, starting on today
func (h *Handler) handleCalendar(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.ViewMonth.IsZero() {
		today := h.services.Calendar.Today(h.now())
		state.ViewMonth = calendar.ShiftMonth(today, 0)
		state.SelectedDate = today
	}
	state.State = domain.StateIdle
	h.SetState(userID, state)

	return h.renderCalendar(c, state)
}

// handleCalendarToday jumps back to the current month and selects today
func (h *Handler) handleCalendarToday(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	today := h.services.Calendar.Today(h.now())
	state.ViewMonth = calendar.ShiftMonth(today, 0)
	state.SelectedDate = today
	h.SetState(userID, state)

	return h.renderCalendar(c, state)
}

// handleCalendarDay selects a day. Days of adjacent months switch the view to that month.
func (h *Handler) handleCalendarDay(c tele.Context, raw string) error {
	date, err := calendar.Parse(raw)
	if err != nil {
		return h.notify(c, "Invalid date")
	}

	userID := c.Sender().ID
	state := h.GetState(userID)
	state.SelectedDate = date
	state.ViewMonth = calendar.ShiftMonth(date, 0)
	h.SetState(userID, state)

	return h.renderCalendar(c, state)
}

// handleCalendarNav moves the view to another month, keeping the selection
func (h *Handler) handleCalendarNav(c tele.Context, raw string) error {
	month, err := calendar.ParseMonth(raw)
	if err != nil {
		return h.notify(c, "Invalid month")
	}

	userID := c.Sender().ID
	state := h.GetState(userID)
	state.ViewMonth = month
	h.SetState(userID, state)

	return h.renderCalendar(c, state)
}

// handleAddEvent asks for the description of an event on the selected day
func (h *Handler) handleAddEvent(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.SelectedDate.IsZero() {
		return h.notify(c, "Pick a day first")
	}

	state.State = domain.StateWaitingEvent
	h.SetState(userID, state)

	text := fmt.Sprintf("✏️ New event on %s\n\n%s", domain.LongLabel(state.SelectedDate), eventFormatHelp)
	return h.show(c, text, cancelMarkup())
}

// handleDeleteEvent removes an event listed under the selected day
func (h *Handler) handleDeleteEvent(c tele.Context, raw string) error {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return h.notify(c, "Invalid event")
	}

	if err := h.services.Calendar.DeleteEvent(id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			h.logger.Error("Failed to delete event", zap.Error(err), zap.Int("event_id", id))
			return h.notify(c, "Could not delete the event")
		}
	}

	return h.renderCalendar(c, h.GetState(c.Sender().ID))
}

// renderCalendar shows the month grid for state with the selected day's events
func (h *Handler) renderCalendar(c tele.Context, state *domain.StateData) error {
	view, err := h.services.Calendar.MonthView(state.ViewMonth, state.SelectedDate, h.now(), state.EventFilter)
	if err != nil {
		h.logger.Error("Failed to build month view", zap.Error(err))
		return h.notify(c, "Could not load the calendar")
	}

	var events []domain.Event
	if !state.SelectedDate.IsZero() {
		events, err = h.services.Calendar.EventsOn(state.SelectedDate, state.EventFilter)
		if err != nil {
			h.logger.Error("Failed to load events", zap.Error(err))
			return h.notify(c, "Could not load events")
		}
	}

	return h.show(c, calendarText(view, events, state.EventFilter), calendarMarkup(view, events))
}

// handleCalendarFilter shows the "Show events for" member panel
func (h *Handler) handleCalendarFilter(c tele.Context) error {
	return h.renderCalendarFilter(c, h.GetState(c.Sender().ID))
}

// handleCalendarShow toggles one member of the filter, raw is the index in the panel
func (h *Handler) handleCalendarShow(c tele.Context, raw string) error {
	names, err := h.services.Members.FamilyNames()
	if err != nil {
		h.logger.Error("Failed to load family names", zap.Error(err))
		return h.notify(c, "Could not load family members")
	}

	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= len(names) {
		return h.notify(c, "Unknown member")
	}

	userID := c.Sender().ID
	state := h.GetState(userID)
	state.EventFilter = state.EventFilter.Toggle(names[i], names)
	h.SetState(userID, state)

	return h.renderCalendarFilter(c, state)
}

// handleCalendarShowAll selects or deselects every member
func (h *Handler) handleCalendarShowAll(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)
	state.EventFilter = state.EventFilter.ToggleAll()
	h.SetState(userID, state)

	return h.renderCalendarFilter(c, state)
}

func (h *Handler) renderCalendarFilter(c tele.Context, state *domain.StateData) error {
	names, err := h.services.Members.FamilyNames()
	if err != nil {
		h.logger.Error("Failed to load family names", zap.Error(err))
		return h.notify(c, "Could not load family members")
	}

	text := "👪 Show events for:"
	if len(names) == 0 {
		text += "\n\nNo family members yet. Everyone who sends /start appears here."
	}
	return h.show(c, text, calendarFilterMarkup(names, state.EventFilter))
}

// calendarFilterMarkup lists members two per row, ticked when shown. Buttons
// carry the member's index so long names stay within callback limits.
func calendarFilterMarkup(names []string, filter domain.MemberFilter) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(names)/2+3)

	var row tele.Row
	for i, name := range names {
		label := name
		if filter.Shows(name) {
			label = "✓ " + name
		}
		row = append(row, markup.Data(label, prefixCalendarShow+strconv.Itoa(i)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	if len(names) > 0 {
		rows = append(rows, markup.Row(markup.Data(filter.ToggleAllLabel(), btnCalendarShowAll.Unique)))
	}
	rows = append(rows, markup.Row(btnCalendar, btnMainMenu))

	markup.Inline(rows...)
	return markup
}

func monthKey(d calendar.Date) string {
	return fmt.Sprintf("%04d%02d", d.Year, int(d.Month))
}

// calendarMarkup builds the inline month grid: title, weekday initials, six
// weeks, navigation and actions for the selected day
func calendarMarkup(view *domain.MonthView, events []domain.Event) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, 10+len(events))

	rows = append(rows, markup.Row(noopButton(markup, view.Title())))

	header := make(tele.Row, 0, len(calendar.WeekdayInitials))
	for _, initial := range calendar.WeekdayInitials {
		header = append(header, noopButton(markup, initial))
	}
	rows = append(rows, header)

	for week := 0; week < calendar.GridSize/7; week++ {
		row := make(tele.Row, 0, 7)
		for _, cell := range view.Cells[week*7 : week*7+7] {
			row = append(row, markup.Data(cell.Label(), prefixCalendarDay+cell.Date.Compact()))
		}
		rows = append(rows, row)
	}

	rows = append(rows, markup.Row(
		markup.Data("◀", prefixCalendarNav+monthKey(calendar.ShiftMonth(view.Month, -1))),
		btnToday,
		markup.Data("▶", prefixCalendarNav+monthKey(calendar.ShiftMonth(view.Month, 1))),
	))

	for _, e := range events {
		rows = append(rows, markup.Row(markup.Data("✖ "+e.Title, prefixEventDelete+strconv.Itoa(e.ID))))
	}

	if view.Selected.IsZero() {
		rows = append(rows, markup.Row(btnCalendarFilter, btnMainMenu))
	} else {
		rows = append(rows, markup.Row(btnAddEvent, btnCalendarFilter, btnMainMenu))
	}

	markup.Inline(rows...)
	return markup
}

func calendarText(view *domain.MonthView, events []domain.Event, filter domain.MemberFilter) string {
	var b strings.Builder
	b.WriteString("📅 " + view.Title() + "\n")
	if filter.Active() {
		shown := "nobody"
		if len(filter.Members) > 0 {
			shown = strings.Join(filter.Members, ", ")
		}
		b.WriteString("👪 Showing " + shown + "\n")
	}
	b.WriteString("\n")

	if view.Selected.IsZero() {
		b.WriteString("Tap a day to see its events.")
		return b.String()
	}

	b.WriteString(domain.LongLabel(view.Selected) + "\n")
	if len(events) == 0 {
		b.WriteString("No events.")
		return b.String()
	}

	for _, e := range events {
		b.WriteString("\n" + formatEvent(e))
	}
	return b.String()
}

func formatEvent(e domain.Event) string {
	line := fmt.Sprintf("• %s  %s", e.FormatTime(), e.Title)
	if e.Location != "" {
		line += " @ " + e.Location
	}
	if len(e.Members) > 0 {
		line += " (" + e.MembersString() + ")"
	}
	return line
}

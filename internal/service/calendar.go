package service

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"familiaconnect/internal/calendar"
	"familiaconnect/internal/domain"
	"familiaconnect/internal/repository"

	"go.uber.org/zap"
)

var eventColors = []string{"#42A5F5", "#FFA726", "#66BB6A", "#AB47BC", "#EF5350"}

var timeLayouts = []string{"15:04", "3:04PM", "3PM"}

// CalendarService builds month views and manages family events
type CalendarService struct {
	eventRepo repository.EventRepository
	loc       *time.Location
	logger    *zap.Logger
}

// NewCalendarService creates a new calendar service. Days are computed in loc.
func NewCalendarService(eventRepo repository.EventRepository, loc *time.Location, logger *zap.Logger) *CalendarService {
	if loc == nil {
		loc = time.UTC
	}
	return &CalendarService{
		eventRepo: eventRepo,
		loc:       loc,
		logger:    logger,
	}
}

// Location returns the time zone days are computed in
func (s *CalendarService) Location() *time.Location {
	return s.loc
}

// Today returns the current calendar day in the family's time zone
func (s *CalendarService) Today(now time.Time) calendar.Date {
	return calendar.FromTime(now.In(s.loc))
}

// MonthView returns the grid for ref's month with today, selection and event
// markers. Only events passing filter are counted.
func (s *CalendarService) MonthView(ref, selected calendar.Date, now time.Time, filter domain.MemberFilter) (*domain.MonthView, error) {
	grid := calendar.Build(ref)

	counts, err := s.eventCounts(grid.First(), grid.Last(), filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load event counts: %w", err)
	}

	return domain.NewMonthView(ref, selected, now.In(s.loc), counts), nil
}

func (s *CalendarService) eventCounts(from, to calendar.Date, filter domain.MemberFilter) (map[calendar.Date]int, error) {
	if !filter.Active() {
		return s.eventRepo.GetEventCounts(from, to, s.loc)
	}

	events, err := s.eventRepo.GetEventsBetween(from, to, s.loc)
	if err != nil {
		return nil, err
	}
	counts := make(map[calendar.Date]int)
	for _, e := range events {
		if filter.Match(&e) {
			e = e.In(s.loc)
			counts[e.Day()]++
		}
	}
	return counts, nil
}

// EventsOn returns the events starting on date that pass filter, times in the family's zone
func (s *CalendarService) EventsOn(date calendar.Date, filter domain.MemberFilter) ([]domain.Event, error) {
	events, err := s.eventRepo.GetEventsByDate(date, s.loc)
	if err != nil {
		return nil, err
	}

	shown := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if filter.Match(&e) {
			shown = append(shown, e.In(s.loc))
		}
	}
	return shown, nil
}

// AddEvent parses input and stores the event on date.
// Input format: "Title; 15:30-17:00; Location; Mom, Sarah", everything after
// the title is optional.
func (s *CalendarService) AddEvent(createdBy int64, date calendar.Date, input string) (*domain.Event, error) {
	event, err := ParseEvent(date, input, s.loc)
	if err != nil {
		return nil, err
	}
	event.CreatedBy = createdBy

	id, err := s.eventRepo.SaveEvent(event)
	if err != nil {
		return nil, fmt.Errorf("failed to save event: %w", err)
	}
	event.ID = id

	s.logger.Info("Event created",
		zap.Int("event_id", id),
		zap.Int64("user_id", createdBy),
		zap.String("date", date.String()),
	)

	return event, nil
}

// DeleteEvent removes an event
func (s *CalendarService) DeleteEvent(id int) error {
	return s.eventRepo.DeleteEvent(id)
}

// ParseEvent reads the semicolon-separated event description for date
func ParseEvent(date calendar.Date, input string, loc *time.Location) (*domain.Event, error) {
	parts := strings.Split(input, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	event := &domain.Event{Title: parts[0]}
	if event.Title == "" {
		return nil, domain.ErrEmptyTitle
	}
	event.Color = eventColor(event.Title)

	timeRange := ""
	if len(parts) > 1 {
		timeRange = parts[1]
	}
	if err := applyTimeRange(event, date, timeRange, loc); err != nil {
		return nil, err
	}

	if len(parts) > 2 {
		event.Location = parts[2]
	}
	if len(parts) > 3 {
		for _, name := range strings.Split(parts[3], ",") {
			if name = strings.TrimSpace(name); name != "" {
				event.Members = append(event.Members, name)
			}
		}
	}

	return event, nil
}

func applyTimeRange(event *domain.Event, date calendar.Date, timeRange string, loc *time.Location) error {
	if timeRange == "" || strings.EqualFold(timeRange, "all day") {
		event.AllDay = true
		event.StartsAt = date.Time(loc)
		event.EndsAt = date.AddDays(1).Time(loc)
		return nil
	}

	startStr, endStr, hasEnd := strings.Cut(timeRange, "-")

	start, err := parseClock(date, startStr, loc)
	if err != nil {
		return err
	}
	event.StartsAt = start
	event.EndsAt = start

	if hasEnd {
		end, err := parseClock(date, endStr, loc)
		if err != nil {
			return err
		}
		if !end.After(start) {
			return domain.ErrInvalidTimeRange
		}
		event.EndsAt = end
	}

	return nil
}

func parseClock(date calendar.Date, s string, loc *time.Location) (time.Time, error) {
	s = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(date.Year, date.Month, date.Day, t.Hour(), t.Minute(), 0, 0, loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidTime, s)
}

func eventColor(title string) string {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(title)))
	return eventColors[h.Sum32()%uint32(len(eventColors))]
}

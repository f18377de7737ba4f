package postgres

import (
	"database/sql"
	"time"

	"familiaconnect/internal/calendar"
	"familiaconnect/internal/domain"

	"github.com/lib/pq"
)

const eventColumns = `id, title, location, color, starts_at, ends_at, all_day, members, created_by, created_at`

// EventRepo implements repository.EventRepository
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo creates a new event repository
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// SaveEvent inserts an event and returns its id
func (r *EventRepo) SaveEvent(event *domain.Event) (int, error) {
	query := `
		INSERT INTO events (title, location, color, starts_at, ends_at, all_day, members, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(query,
		event.Title,
		event.Location,
		event.Color,
		event.StartsAt,
		event.EndsAt,
		event.AllDay,
		pq.Array(event.Members),
		event.CreatedBy,
	).Scan(&id)
	return id, err
}

// DeleteEvent removes an event
func (r *EventRepo) DeleteEvent(id int) error {
	res, err := r.db.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetEventsByDate returns events starting on the given day in loc
func (r *EventRepo) GetEventsByDate(date calendar.Date, loc *time.Location) ([]domain.Event, error) {
	return r.GetEventsBetween(date, date, loc)
}

// GetEventsBetween returns events starting on any day in [from, to] in loc
func (r *EventRepo) GetEventsBetween(from, to calendar.Date, loc *time.Location) ([]domain.Event, error) {
	rangeStart := from.Time(loc)
	rangeEnd := to.AddDays(1).Time(loc)

	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE starts_at >= $1 AND starts_at < $2
		ORDER BY starts_at, id
	`

	rows, err := r.db.Query(query, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// GetEventCounts returns the number of events starting on each day in [from, to]
func (r *EventRepo) GetEventCounts(from, to calendar.Date, loc *time.Location) (map[calendar.Date]int, error) {
	rangeStart := from.Time(loc)
	rangeEnd := to.AddDays(1).Time(loc)

	query := `
		SELECT starts_at
		FROM events
		WHERE starts_at >= $1 AND starts_at < $2
	`

	rows, err := r.db.Query(query, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[calendar.Date]int)
	for rows.Next() {
		var startsAt time.Time
		if err := rows.Scan(&startsAt); err != nil {
			return nil, err
		}
		counts[calendar.FromTime(startsAt.In(rangeStart.Location()))]++
	}

	return counts, rows.Err()
}

// GetUpcomingEvents returns the next events that have not ended by from
func (r *EventRepo) GetUpcomingEvents(from time.Time, limit int) ([]domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE ends_at >= $1
		ORDER BY starts_at, id
		LIMIT $2
	`

	rows, err := r.db.Query(query, from, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CleanOldEvents deletes events that ended more than the given number of days ago
func (r *EventRepo) CleanOldEvents(days int) (int64, error) {
	query := `
		DELETE FROM events
		WHERE ends_at < NOW() - INTERVAL '1 day' * $1
	`
	res, err := r.db.Exec(query, days)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanEvents(rows *sql.Rows) ([]domain.Event, error) {
	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Location, &e.Color, &e.StartsAt, &e.EndsAt,
			&e.AllDay, pq.Array(&e.Members), &e.CreatedBy, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

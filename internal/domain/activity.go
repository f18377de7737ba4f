package domain

import (
	"sort"
	"time"
)

// Activity is a family game offered in interactive mode
type Activity struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Duration    time.Duration `json:"duration"`
}

// Session is a running interactive-mode activity.
// Present maps the user IDs of members who joined to their display names.
type Session struct {
	ID         string
	Activity   Activity
	StartedBy  string
	StartedAt  time.Time
	Present    map[int64]string
	FinishedAt *time.Time
}

// Finished reports whether points were already awarded
func (s *Session) Finished() bool {
	return s.FinishedAt != nil
}

// TimeRemaining returns how much of the activity is left at now, never negative
func (s *Session) TimeRemaining(now time.Time) time.Duration {
	left := s.StartedAt.Add(s.Activity.Duration).Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// PresentMembers returns the names of the members who joined, sorted
func (s *Session) PresentMembers() []string {
	names := make([]string, 0, len(s.Present))
	for _, name := range s.Present {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresentIDs returns the user IDs of the members who joined, ascending
func (s *Session) PresentIDs() []int64 {
	ids := make([]int64, 0, len(s.Present))
	for id := range s.Present {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

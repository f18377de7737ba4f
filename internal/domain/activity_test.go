package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_TimeRemaining(t *testing.T) {
	start := time.Date(2024, time.February, 15, 19, 0, 0, 0, time.UTC)
	s := &Session{
		Activity:  Activity{Duration: 30 * time.Minute},
		StartedAt: start,
	}

	assert.Equal(t, 30*time.Minute, s.TimeRemaining(start))
	assert.Equal(t, 10*time.Minute, s.TimeRemaining(start.Add(20*time.Minute)))
	assert.Equal(t, time.Duration(0), s.TimeRemaining(start.Add(time.Hour)))
}

func TestSession_PresentMembers(t *testing.T) {
	s := &Session{Present: map[int64]string{30: "Max", 7: "Dad", 12: "Max"}}

	assert.Equal(t, []string{"Dad", "Max", "Max"}, s.PresentMembers())
	assert.Equal(t, []int64{7, 12, 30}, s.PresentIDs())
	assert.False(t, s.Finished())

	empty := &Session{}
	assert.Empty(t, empty.PresentMembers())
	assert.Empty(t, empty.PresentIDs())
}

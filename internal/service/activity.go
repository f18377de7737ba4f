package service

import (
	"sync"
	"time"

	"familiaconnect/internal/domain"
	"familiaconnect/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ActivityPoints is awarded to every member present when a session finishes
const ActivityPoints = 50

// Activities is the interactive-mode catalogue
var Activities = []domain.Activity{
	{ID: 1, Title: "Family Quiz Night", Description: "Test your knowledge with fun questions about family history", Duration: 30 * time.Minute},
	{ID: 2, Title: "Photo Scavenger Hunt", Description: "Find and photograph items around the house", Duration: 45 * time.Minute},
	{ID: 3, Title: "Story Creator", Description: "Build a story together, one sentence at a time", Duration: 30 * time.Minute},
}

// ActivityService runs interactive-mode sessions
type ActivityService struct {
	memberRepo repository.MemberRepository
	logger     *zap.Logger
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*domain.Session
}

// NewActivityService creates a new activity service
func NewActivityService(memberRepo repository.MemberRepository, logger *zap.Logger) *ActivityService {
	return &ActivityService{
		memberRepo: memberRepo,
		logger:     logger,
		now:        time.Now,
		sessions:   make(map[string]*domain.Session),
	}
}

// Activity looks up a catalogue entry
func (s *ActivityService) Activity(id int) (domain.Activity, error) {
	for _, a := range Activities {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Activity{}, domain.ErrUnknownActivity
}

// StartSession starts an activity with its starter marked present
func (s *ActivityService) StartSession(activityID int, userID int64, startedBy string) (*domain.Session, error) {
	activity, err := s.Activity(activityID)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		Activity:  activity,
		StartedBy: startedBy,
		StartedAt: s.now(),
		Present:   map[int64]string{userID: startedBy},
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Info("Activity started",
		zap.String("session_id", session.ID),
		zap.String("activity", activity.Title),
		zap.String("started_by", startedBy),
	)

	return copySession(session), nil
}

// Join marks a member present in a running session. Joining twice is a no-op.
func (s *ActivityService) Join(sessionID string, userID int64, name string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if session.Finished() {
		return nil, domain.ErrSessionFinished
	}

	session.Present[userID] = name
	return copySession(session), nil
}

// Session returns a snapshot of a session
func (s *ActivityService) Session(sessionID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copySession(session), nil
}

// Finish closes a session and awards points to every present member
func (s *ActivityService) Finish(sessionID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if session.Finished() {
		return nil, domain.ErrSessionFinished
	}

	present := session.PresentIDs()
	if len(present) > 0 {
		if err := s.memberRepo.AddPoints(present, ActivityPoints); err != nil {
			return nil, err
		}
	}

	finishedAt := s.now()
	session.FinishedAt = &finishedAt

	s.logger.Info("Activity finished",
		zap.String("session_id", sessionID),
		zap.Int64s("user_ids", present),
	)

	return copySession(session), nil
}

func copySession(s *domain.Session) *domain.Session {
	c := *s
	c.Present = make(map[int64]string, len(s.Present))
	for k, v := range s.Present {
		c.Present[k] = v
	}
	if s.FinishedAt != nil {
		t := *s.FinishedAt
		c.FinishedAt = &t
	}
	return &c
}

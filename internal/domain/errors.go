package domain

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("not found")

	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTimeRange = errors.New("event must end after it starts")
	ErrUnknownFilter    = errors.New("unknown task filter")
	ErrUnknownPriority  = errors.New("unknown task priority")
	ErrUnknownActivity  = errors.New("unknown activity")
	ErrUnknownSetting   = errors.New("unknown setting")
	ErrSessionFinished  = errors.New("session already finished")
	ErrEmptyMemberName  = errors.New("member name cannot be empty")
	ErrInvalidTime      = errors.New("invalid time, expected HH:MM")
)

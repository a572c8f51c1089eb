package repository

import "time"

type CreateSessionOptions struct {
	UserID          string
	Subject         string
	StartedAt       time.Time
	DurationMinutes int
}

// ListSessionsOptions selects sessions with From <= started_at < To.
type ListSessionsOptions struct {
	UserID string
	From   time.Time
	To     time.Time
}

type UpsertSettingsOptions struct {
	UserID           string
	DayOffsetMinutes int
}

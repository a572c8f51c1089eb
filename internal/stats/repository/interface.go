package repository

import (
	"context"

	"study-tracker/internal/model"
)

// Repository is the composed interface for the stats data store.
type Repository interface {
	SessionRepository
	SettingsRepository
}

// SessionRepository defines data access for study sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, opt CreateSessionOptions) (model.StudySession, error)
	ListSessions(ctx context.Context, opt ListSessionsOptions) ([]model.StudySession, error)
}

// SettingsRepository defines data access for per-user settings.
type SettingsRepository interface {
	// GetSettings returns ErrNotFound when the user has no stored settings.
	GetSettings(ctx context.Context, userID string) (model.UserSettings, error)
	UpsertSettings(ctx context.Context, opt UpsertSettingsOptions) (model.UserSettings, error)
}

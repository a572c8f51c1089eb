package stats

import (
	"context"

	"study-tracker/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// LogSession records a completed focus block.
	LogSession(ctx context.Context, sc model.Scope, input LogSessionInput) (model.StudySession, error)
	// Summary aggregates the caller's sessions over one study window, per study day.
	Summary(ctx context.Context, sc model.Scope, input SummaryInput) (SummaryOutput, error)

	// GetSettings returns the caller's settings, falling back to process defaults.
	GetSettings(ctx context.Context, sc model.Scope) (model.UserSettings, error)
	// UpdateSettings stores the caller's study-day offset.
	UpdateSettings(ctx context.Context, sc model.Scope, input UpdateSettingsInput) (model.UserSettings, error)
	// DayOffset returns the caller's study-day offset in minutes.
	DayOffset(ctx context.Context, sc model.Scope) (int, error)
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"study-tracker/internal/model"
	repo "study-tracker/internal/stats/repository"
	pkgSqlite "study-tracker/pkg/sqlite"
)

// GetSettings loads a user's settings row.
func (r *implRepository) GetSettings(ctx context.Context, userID string) (model.UserSettings, error) {
	const query = `SELECT user_id, day_offset_minutes, updated_at FROM user_settings WHERE user_id = ?`

	var (
		s         model.UserSettings
		updatedAt string
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&s.UserID, &s.DayOffsetMinutes, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.UserSettings{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSettings"), err)
		return model.UserSettings{}, repo.ErrFailedToGet
	}
	s.UpdatedAt, _ = pkgSqlite.ParseTime(updatedAt)

	return s, nil
}

// UpsertSettings creates or replaces a user's settings row.
func (r *implRepository) UpsertSettings(ctx context.Context, opt repo.UpsertSettingsOptions) (model.UserSettings, error) {
	const query = `
		INSERT INTO user_settings (user_id, day_offset_minutes, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			day_offset_minutes = excluded.day_offset_minutes,
			updated_at = excluded.updated_at`

	s := model.UserSettings{
		UserID:           opt.UserID,
		DayOffsetMinutes: opt.DayOffsetMinutes,
		UpdatedAt:        r.now().UTC(),
	}
	if _, err := r.db.ExecContext(ctx, query, s.UserID, s.DayOffsetMinutes, pkgSqlite.FormatTime(s.UpdatedAt)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSettings"), err)
		return model.UserSettings{}, repo.ErrFailedToInsert
	}

	return s, nil
}

package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"study-tracker/internal/model"
	repo "study-tracker/internal/stats/repository"
	pkgSqlite "study-tracker/pkg/sqlite"
)

// CreateSession inserts a study session row.
func (r *implRepository) CreateSession(ctx context.Context, opt repo.CreateSessionOptions) (model.StudySession, error) {
	const query = `
		INSERT INTO study_sessions (id, user_id, subject, started_at, duration_minutes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	s := model.StudySession{
		ID:              uuid.NewString(),
		UserID:          opt.UserID,
		Subject:         opt.Subject,
		StartedAt:       opt.StartedAt,
		DurationMinutes: opt.DurationMinutes,
		CreatedAt:       r.now().UTC(),
	}

	subject := sql.NullString{String: s.Subject, Valid: s.Subject != ""}
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.UserID, subject, pkgSqlite.FormatTime(s.StartedAt), s.DurationMinutes, pkgSqlite.FormatTime(s.CreatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSession"), err)
		return model.StudySession{}, repo.ErrFailedToInsert
	}

	return s, nil
}

// ListSessions returns sessions with From <= started_at < To, earliest first.
func (r *implRepository) ListSessions(ctx context.Context, opt repo.ListSessionsOptions) ([]model.StudySession, error) {
	const query = `
		SELECT id, user_id, subject, started_at, duration_minutes, created_at
		FROM study_sessions
		WHERE user_id = ? AND started_at >= ? AND started_at < ?
		ORDER BY started_at ASC`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, pkgSqlite.FormatTime(opt.From), pkgSqlite.FormatTime(opt.To))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSessions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var sessions []model.StudySession
	for rows.Next() {
		var (
			s                    model.StudySession
			subject              sql.NullString
			startedAt, createdAt string
		)
		if err := rows.Scan(&s.ID, &s.UserID, &subject, &startedAt, &s.DurationMinutes, &createdAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListSessions"), err)
			return nil, repo.ErrFailedToList
		}
		s.Subject = subject.String
		s.StartedAt, _ = pkgSqlite.ParseTime(startedAt)
		s.CreatedAt, _ = pkgSqlite.ParseTime(createdAt)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListSessions"), err)
		return nil, repo.ErrFailedToList
	}

	return sessions, nil
}

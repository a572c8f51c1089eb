package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"study-tracker/internal/model"
	repo "study-tracker/internal/planner/repository"
	pkgSqlite "study-tracker/pkg/sqlite"
)

// CreateReminder inserts a reminder row and returns the created entity.
func (r *implRepository) CreateReminder(ctx context.Context, opt repo.CreateReminderOptions) (model.Reminder, error) {
	const query = `
		INSERT INTO reminders (id, user_id, title, description, remind_at, calendar_link, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	rem := model.Reminder{
		ID:           uuid.NewString(),
		UserID:       opt.UserID,
		Title:        opt.Title,
		Description:  opt.Description,
		RemindAt:     opt.RemindAt,
		CalendarLink: opt.CalendarLink,
		CreatedAt:    r.now().UTC(),
	}

	_, err := r.db.ExecContext(ctx, query,
		rem.ID, rem.UserID, rem.Title, nullString(rem.Description),
		pkgSqlite.FormatTime(rem.RemindAt), nullString(rem.CalendarLink), pkgSqlite.FormatTime(rem.CreatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateReminder"), err)
		return model.Reminder{}, repo.ErrFailedToInsert
	}
	return rem, nil
}

// ListReminders returns reminders with From <= remind_at < To, earliest first.
func (r *implRepository) ListReminders(ctx context.Context, opt repo.ListRemindersOptions) ([]model.Reminder, error) {
	const query = `
		SELECT id, user_id, title, description, remind_at, calendar_link, created_at
		FROM reminders
		WHERE user_id = ? AND remind_at >= ? AND remind_at < ?
		ORDER BY remind_at ASC`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, pkgSqlite.FormatTime(opt.From), pkgSqlite.FormatTime(opt.To))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListReminders"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		var (
			rem                 model.Reminder
			description, link   sql.NullString
			remindAt, createdAt string
		)
		if err := rows.Scan(&rem.ID, &rem.UserID, &rem.Title, &description, &remindAt, &link, &createdAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListReminders"), err)
			return nil, repo.ErrFailedToList
		}
		rem.Description = description.String
		rem.CalendarLink = link.String
		rem.RemindAt, _ = pkgSqlite.ParseTime(remindAt)
		rem.CreatedAt, _ = pkgSqlite.ParseTime(createdAt)
		reminders = append(reminders, rem)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListReminders"), err)
		return nil, repo.ErrFailedToList
	}
	return reminders, nil
}

// SetReminderCalendarLink records the mirrored calendar event link.
func (r *implRepository) SetReminderCalendarLink(ctx context.Context, id, link string) error {
	const query = `UPDATE reminders SET calendar_link = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, nullString(link), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetReminderCalendarLink"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

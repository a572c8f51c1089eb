package sqlite

import (
	"context"

	"github.com/google/uuid"

	"study-tracker/internal/model"
	repo "study-tracker/internal/planner/repository"
	pkgSqlite "study-tracker/pkg/sqlite"
)

// CreateTask inserts a task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, user_id, title, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	status := opt.Status
	if status == "" {
		status = model.TaskStatusTodo
	}

	now := r.now().UTC()
	t := model.Task{
		ID:        uuid.NewString(),
		UserID:    opt.UserID,
		Title:     opt.Title,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Title, string(t.Status), pkgSqlite.FormatTime(now), pkgSqlite.FormatTime(now),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// ListTasks returns the user's tasks, newest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	query := `SELECT id, user_id, title, status, created_at, updated_at FROM tasks WHERE user_id = ?`
	args := []any{opt.UserID}
	if opt.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(opt.Status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var (
			t                    model.Task
			status               string
			createdAt, updatedAt string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &status, &createdAt, &updatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		t.Status = model.TaskStatus(status)
		t.CreatedAt, _ = pkgSqlite.ParseTime(createdAt)
		t.UpdatedAt, _ = pkgSqlite.ParseTime(updatedAt)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

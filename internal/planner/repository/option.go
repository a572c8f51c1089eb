package repository

import (
	"time"

	"study-tracker/internal/model"
)

// CreateTaskOptions holds parameters for inserting a task.
type CreateTaskOptions struct {
	UserID string
	Title  string
	Status model.TaskStatus
}

// ListTasksOptions filters tasks. Empty Status matches all.
type ListTasksOptions struct {
	UserID string
	Status model.TaskStatus
}

// CreateReminderOptions holds parameters for inserting a reminder.
type CreateReminderOptions struct {
	UserID       string
	Title        string
	Description  string
	RemindAt     time.Time
	CalendarLink string
}

// ListRemindersOptions selects reminders with From <= remind_at < To.
type ListRemindersOptions struct {
	UserID string
	From   time.Time
	To     time.Time
}

package repository

import (
	"context"

	"study-tracker/internal/model"
)

// Repository is the composed interface for the planner data store.
type Repository interface {
	TaskRepository
	ReminderRepository
}

// TaskRepository defines data access for tasks.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}

// ReminderRepository defines data access for reminders.
type ReminderRepository interface {
	CreateReminder(ctx context.Context, opt CreateReminderOptions) (model.Reminder, error)
	ListReminders(ctx context.Context, opt ListRemindersOptions) ([]model.Reminder, error)
	SetReminderCalendarLink(ctx context.Context, id, link string) error
}

package planner

import (
	"context"

	"study-tracker/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// CreateTask stores a new task with status todo.
	CreateTask(ctx context.Context, sc model.Scope, input CreateTaskInput) (model.Task, error)
	// ListTasks lists the caller's tasks, optionally filtered by status.
	ListTasks(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)

	// CreateReminder stores a reminder and mirrors it to Google Calendar when configured.
	CreateReminder(ctx context.Context, sc model.Scope, input CreateReminderInput) (model.Reminder, error)
	// ListReminders lists reminders falling inside the caller's study window.
	ListReminders(ctx context.Context, sc model.Scope, input ListRemindersInput) (ListRemindersOutput, error)
}

// OffsetResolver returns the study-day offset configured for a user.
type OffsetResolver interface {
	DayOffset(ctx context.Context, sc model.Scope) (int, error)
}

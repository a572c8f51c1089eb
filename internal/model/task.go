package model

import "time"

// TaskStatus is the lifecycle state of a Task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Task is a to-do item owned by a user.
type Task struct {
	ID        string
	UserID    string
	Title     string
	Status    TaskStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reminder is a titled notification scheduled for a specific instant.
type Reminder struct {
	ID           string
	UserID       string
	Title        string
	Description  string
	RemindAt     time.Time
	CalendarLink string // Google Calendar event link, empty when not mirrored
	CreatedAt    time.Time
}

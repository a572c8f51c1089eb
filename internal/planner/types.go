package planner

import (
	"time"

	"study-tracker/internal/model"
	"study-tracker/pkg/studyday"
)

type CreateTaskInput struct {
	Title string
}

type ListTasksInput struct {
	Status model.TaskStatus // empty means all
}

type ListTasksOutput struct {
	Tasks []model.Task
}

type CreateReminderInput struct {
	Title       string
	Description string
	When        time.Time
}

type ListRemindersInput struct {
	Period studyday.Period
	At     time.Time // reference instant; zero means now
}

type ListRemindersOutput struct {
	Window    studyday.Window
	Reminders []model.Reminder
}

package http

import (
	"time"

	"study-tracker/internal/model"
	"study-tracker/internal/planner"
)

// --- Request DTOs ---

type createTaskReq struct {
	Title string `json:"title" binding:"required,max=255"`
}

func (r createTaskReq) toInput() planner.CreateTaskInput {
	return planner.CreateTaskInput{Title: r.Title}
}

type listTasksReq struct {
	Status string `form:"status"`
}

func (r listTasksReq) toInput() planner.ListTasksInput {
	return planner.ListTasksInput{Status: model.TaskStatus(r.Status)}
}

type createReminderReq struct {
	Title       string `json:"title"       binding:"required,max=255"`
	Description string `json:"description" binding:"max=1000"`
	When        string `json:"when"        binding:"required"`
}

func (r createReminderReq) validate() (time.Time, error) {
	when, err := time.Parse(time.RFC3339, r.When)
	if err != nil {
		return time.Time{}, errInvalidWhen
	}
	return when, nil
}

type listRemindersReq struct {
	Period string `form:"period"`
	At     string `form:"at"`
}

// --- Response DTOs ---

type taskResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type listTasksResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListTasksResp(out planner.ListTasksOutput) listTasksResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listTasksResp{Tasks: tasks}
}

type reminderResp struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	When         time.Time `json:"when"`
	CalendarLink string    `json:"calendar_link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func newReminderResp(r model.Reminder) reminderResp {
	return reminderResp{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		When:         r.RemindAt,
		CalendarLink: r.CalendarLink,
		CreatedAt:    r.CreatedAt,
	}
}

type windowResp struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type listRemindersResp struct {
	Window    windowResp     `json:"window"`
	Reminders []reminderResp `json:"reminders"`
}

func (h *handler) newListRemindersResp(out planner.ListRemindersOutput) listRemindersResp {
	reminders := make([]reminderResp, len(out.Reminders))
	for i, r := range out.Reminders {
		reminders[i] = newReminderResp(r)
	}
	return listRemindersResp{
		Window:    windowResp{Start: out.Window.Start, End: out.Window.End},
		Reminders: reminders,
	}
}

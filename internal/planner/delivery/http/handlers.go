package http

import (
	"github.com/gin-gonic/gin"

	"study-tracker/internal/model"
	"study-tracker/pkg/response"
)

// CreateTask godoc
// @Summary     Create a task
// @Description Creates a todo task for the caller.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string        false "Caller identity"
// @Param       body      body   createTaskReq true  "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.CreateTask(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "planner.http.CreateTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(t))
}

// ListTasks godoc
// @Summary     List tasks
// @Description Lists the caller's tasks, newest first.
// @Tags        Planner
// @Produce     json
// @Param       X-User-ID header string false "Caller identity"
// @Param       status    query  string false "todo, in_progress or done"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	req, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ListTasks(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "planner.http.ListTasks: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListTasksResp(out))
}

// CreateReminder godoc
// @Summary     Create a reminder
// @Description Creates a reminder and mirrors it to Google Calendar when configured.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string            false "Caller identity"
// @Param       body      body   createReminderReq true  "Reminder data, when is RFC3339"
// @Success     200 {object} reminderResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders [POST]
func (h *handler) CreateReminder(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	input, err := h.processCreateReminderReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	rem, err := h.uc.CreateReminder(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "planner.http.CreateReminder: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newReminderResp(rem))
}

// ListReminders godoc
// @Summary     List reminders in a study window
// @Description Returns reminders inside the caller's daily, weekly or monthly study window.
// @Tags        Planner
// @Produce     json
// @Param       X-User-ID header string false "Caller identity"
// @Param       period    query  string false "daily (default), weekly or monthly"
// @Param       at        query  string false "Reference instant, RFC3339 (default now)"
// @Success     200 {object} listRemindersResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders [GET]
func (h *handler) ListReminders(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	input, err := h.processListRemindersReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ListReminders(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "planner.http.ListReminders: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListRemindersResp(out))
}

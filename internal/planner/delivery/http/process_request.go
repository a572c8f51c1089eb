package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"study-tracker/internal/planner"
	"study-tracker/pkg/studyday"
)

func (h *handler) processCreateTaskReq(c *gin.Context) (createTaskReq, error) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListTasksReq(c *gin.Context) (listTasksReq, error) {
	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCreateReminderReq(c *gin.Context) (planner.CreateReminderInput, error) {
	var req createReminderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return planner.CreateReminderInput{}, err
	}
	when, err := req.validate()
	if err != nil {
		return planner.CreateReminderInput{}, err
	}
	return planner.CreateReminderInput{
		Title:       req.Title,
		Description: req.Description,
		When:        when,
	}, nil
}

// processListRemindersReq binds period (default daily) and at (default now).
func (h *handler) processListRemindersReq(c *gin.Context) (planner.ListRemindersInput, error) {
	var req listRemindersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return planner.ListRemindersInput{}, err
	}

	input := planner.ListRemindersInput{Period: studyday.Daily}
	if req.Period != "" {
		p, err := studyday.ParsePeriod(req.Period)
		if err != nil {
			return input, errInvalidPeriod
		}
		input.Period = p
	}
	if req.At != "" {
		at, err := time.Parse(time.RFC3339, req.At)
		if err != nil {
			return input, errInvalidAt
		}
		input.At = at
	}
	return input, nil
}

package usecase

import (
	"context"
	"time"

	"study-tracker/internal/assistant"
	"study-tracker/internal/model"
	"study-tracker/internal/planner"
)

type plannerScheduler struct {
	uc planner.UseCase
}

// NewPlannerScheduler adapts the planner usecase to assistant.Scheduler.
func NewPlannerScheduler(uc planner.UseCase) assistant.Scheduler {
	return plannerScheduler{uc: uc}
}

func (s plannerScheduler) CreateTask(ctx context.Context, sc model.Scope, title string) (string, error) {
	t, err := s.uc.CreateTask(ctx, sc, planner.CreateTaskInput{Title: title})
	if err != nil {
		return "", err
	}
	return t.ID, nil
}

func (s plannerScheduler) CreateReminder(ctx context.Context, sc model.Scope, title, description string, when time.Time) (string, error) {
	r, err := s.uc.CreateReminder(ctx, sc, planner.CreateReminderInput{
		Title:       title,
		Description: description,
		When:        when,
	})
	if err != nil {
		return "", err
	}
	return r.ID, nil
}

package usecase

import (
	"context"
	"strings"

	"study-tracker/internal/model"
	"study-tracker/internal/planner"
	repo "study-tracker/internal/planner/repository"
)

// CreateTask stores a new todo task for the caller.
func (uc *implUseCase) CreateTask(ctx context.Context, sc model.Scope, input planner.CreateTaskInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, planner.ErrEmptyTitle
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID: userID(sc),
		Title:  title,
		Status: model.TaskStatusTodo,
	})
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.CreateTask: %v", err)
		return model.Task{}, err
	}

	return t, nil
}

// ListTasks lists the caller's tasks, optionally filtered by status.
func (uc *implUseCase) ListTasks(ctx context.Context, sc model.Scope, input planner.ListTasksInput) (planner.ListTasksOutput, error) {
	switch input.Status {
	case "", model.TaskStatusTodo, model.TaskStatusInProgress, model.TaskStatusDone:
	default:
		return planner.ListTasksOutput{}, planner.ErrInvalidStatus
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID: userID(sc),
		Status: input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.ListTasks: %v", err)
		return planner.ListTasksOutput{}, err
	}

	return planner.ListTasksOutput{Tasks: tasks}, nil
}

func userID(sc model.Scope) string {
	if sc.UserID == "" {
		return model.DefaultUserID
	}
	return sc.UserID
}

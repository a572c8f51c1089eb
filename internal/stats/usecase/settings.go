package usecase

import (
	"context"
	"errors"

	"study-tracker/internal/model"
	"study-tracker/internal/stats"
	repo "study-tracker/internal/stats/repository"
	"study-tracker/pkg/studyday"
)

// GetSettings returns stored settings or the process default.
func (uc *implUseCase) GetSettings(ctx context.Context, sc model.Scope) (model.UserSettings, error) {
	s, err := uc.repo.GetSettings(ctx, userID(sc))
	if errors.Is(err, repo.ErrNotFound) {
		return model.UserSettings{UserID: userID(sc), DayOffsetMinutes: uc.defaultOffset}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "stats.usecase.GetSettings: %v", err)
		return model.UserSettings{}, err
	}
	return s, nil
}

// UpdateSettings validates and stores the caller's study-day offset.
func (uc *implUseCase) UpdateSettings(ctx context.Context, sc model.Scope, input stats.UpdateSettingsInput) (model.UserSettings, error) {
	if err := studyday.ValidateOffset(input.DayOffsetMinutes); err != nil {
		return model.UserSettings{}, err
	}

	s, err := uc.repo.UpsertSettings(ctx, repo.UpsertSettingsOptions{
		UserID:           userID(sc),
		DayOffsetMinutes: input.DayOffsetMinutes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "stats.usecase.UpdateSettings: %v", err)
		return model.UserSettings{}, err
	}

	uc.l.Infof(ctx, "stats.usecase.UpdateSettings: %s day starts at %s", s.UserID, studyday.FormatOffset(s.DayOffsetMinutes))
	return s, nil
}

// DayOffset returns the caller's study-day offset in minutes.
func (uc *implUseCase) DayOffset(ctx context.Context, sc model.Scope) (int, error) {
	s, err := uc.GetSettings(ctx, sc)
	if err != nil {
		return 0, err
	}
	return s.DayOffsetMinutes, nil
}

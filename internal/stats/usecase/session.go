package usecase

import (
	"context"
	"strings"
	"time"

	"study-tracker/internal/model"
	"study-tracker/internal/stats"
	repo "study-tracker/internal/stats/repository"
	"study-tracker/pkg/studyday"
)

// LogSession records a completed focus block.
func (uc *implUseCase) LogSession(ctx context.Context, sc model.Scope, input stats.LogSessionInput) (model.StudySession, error) {
	if input.DurationMinutes <= 0 || input.DurationMinutes > studyday.MinutesPerDay {
		return model.StudySession{}, stats.ErrInvalidDuration
	}

	startedAt := input.StartedAt
	if startedAt.IsZero() {
		startedAt = uc.now().Add(-time.Duration(input.DurationMinutes) * time.Minute)
	}

	s, err := uc.repo.CreateSession(ctx, repo.CreateSessionOptions{
		UserID:          userID(sc),
		Subject:         strings.TrimSpace(input.Subject),
		StartedAt:       startedAt,
		DurationMinutes: input.DurationMinutes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "stats.usecase.LogSession: %v", err)
		return model.StudySession{}, err
	}

	return s, nil
}

// Summary aggregates sessions over the study window containing input.At.
// Each session counts toward the study day its start falls in, so the daily
// buckets of a week or month add up to the period total.
func (uc *implUseCase) Summary(ctx context.Context, sc model.Scope, input stats.SummaryInput) (stats.SummaryOutput, error) {
	period := input.Period
	if period == "" {
		period = studyday.Daily
	}
	at := input.At
	if at.IsZero() {
		at = uc.now()
	}

	offset, err := uc.DayOffset(ctx, sc)
	if err != nil {
		return stats.SummaryOutput{}, err
	}

	cal, err := studyday.NewCalendar(offset, uc.location)
	if err != nil {
		uc.l.Errorf(ctx, "stats.usecase.Summary NewCalendar: %v", err)
		return stats.SummaryOutput{}, err
	}

	w, err := cal.Window(at, period)
	if err != nil {
		return stats.SummaryOutput{}, err
	}

	sessions, err := uc.repo.ListSessions(ctx, repo.ListSessionsOptions{
		UserID: userID(sc),
		From:   w.Start,
		To:     w.Next(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "stats.usecase.Summary ListSessions: %v", err)
		return stats.SummaryOutput{}, err
	}

	windows := cal.Days(w)
	days := make([]stats.DayTotal, len(windows))
	index := make(map[string]int, len(windows))
	for i, dw := range windows {
		d := cal.DayOf(dw.Start)
		days[i] = stats.DayTotal{Date: d, Window: dw}
		index[d.String()] = i
	}

	out := stats.SummaryOutput{Window: w, Days: days}
	for _, s := range sessions {
		i, ok := index[cal.DayOf(s.StartedAt).String()]
		if !ok {
			uc.l.Warnf(ctx, "stats.usecase.Summary: session %s outside window %v", s.ID, w)
			continue
		}
		out.Days[i].Minutes += s.DurationMinutes
		out.Days[i].Sessions++
		out.TotalMinutes += s.DurationMinutes
		out.SessionCount++
	}

	return out, nil
}

func userID(sc model.Scope) string {
	if sc.UserID == "" {
		return model.DefaultUserID
	}
	return sc.UserID
}

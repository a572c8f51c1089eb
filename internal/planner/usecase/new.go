package usecase

import (
	"context"
	"time"

	"study-tracker/internal/planner"
	"study-tracker/internal/planner/repository"
	"study-tracker/pkg/gcalendar"
	pkgLog "study-tracker/pkg/log"
)

// CalendarClient is the subset of the Google Calendar client the planner uses.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	calendar   CalendarClient
	offsets    planner.OffsetResolver
	location   *time.Location
	calendarID string
	now        func() time.Time
}

// Config is the dependency bag for the planner usecase.
type Config struct {
	Logger     pkgLog.Logger
	Repo       repository.Repository
	Calendar   CalendarClient // nil disables calendar mirroring
	Offsets    planner.OffsetResolver
	Location   *time.Location
	CalendarID string
}

// New creates a new planner UseCase instance.
func New(cfg Config) *implUseCase {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}
	return &implUseCase{
		l:          cfg.Logger,
		repo:       cfg.Repo,
		calendar:   cfg.Calendar,
		offsets:    cfg.Offsets,
		location:   loc,
		calendarID: calendarID,
		now:        time.Now,
	}
}

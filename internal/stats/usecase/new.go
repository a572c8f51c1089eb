package usecase

import (
	"time"

	"study-tracker/internal/stats/repository"
	pkgLog "study-tracker/pkg/log"
)

type implUseCase struct {
	l             pkgLog.Logger
	repo          repository.Repository
	location      *time.Location
	defaultOffset int
	now           func() time.Time
}

// New creates a new stats UseCase instance. defaultOffset applies to users
// without stored settings.
func New(l pkgLog.Logger, repo repository.Repository, loc *time.Location, defaultOffset int) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:             l,
		repo:          repo,
		location:      loc,
		defaultOffset: defaultOffset,
		now:           time.Now,
	}
}

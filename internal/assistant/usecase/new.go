package usecase

import (
	"time"

	"study-tracker/internal/assistant"
	"study-tracker/pkg/datemath"
	pkgLog "study-tracker/pkg/log"
)

const (
	defaultMaxHistory   = 20
	defaultMaxRangeDays = 366
)

type implUseCase struct {
	l            pkgLog.Logger
	oracle       assistant.Completer
	scheduler    assistant.Scheduler
	offsets      assistant.OffsetResolver
	parser       *datemath.Parser
	maxHistory   int
	maxRangeDays int
	now          func() time.Time
}

// Config is the dependency bag for the assistant usecase.
type Config struct {
	Logger       pkgLog.Logger
	Oracle       assistant.Completer
	Scheduler    assistant.Scheduler
	Offsets      assistant.OffsetResolver // nil means midnight study days
	Parser       *datemath.Parser
	MaxHistory   int
	MaxRangeDays int
}

// New creates a new assistant UseCase instance.
func New(cfg Config) *implUseCase {
	maxHistory := cfg.MaxHistory
	if maxHistory <= 0 {
		maxHistory = defaultMaxHistory
	}
	maxRangeDays := cfg.MaxRangeDays
	if maxRangeDays <= 0 {
		maxRangeDays = defaultMaxRangeDays
	}
	return &implUseCase{
		l:            cfg.Logger,
		oracle:       cfg.Oracle,
		scheduler:    cfg.Scheduler,
		offsets:      cfg.Offsets,
		parser:       cfg.Parser,
		maxHistory:   maxHistory,
		maxRangeDays: maxRangeDays,
		now:          time.Now,
	}
}

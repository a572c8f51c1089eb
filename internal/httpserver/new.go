package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"study-tracker/internal/assistant"
	plannerUC "study-tracker/internal/planner/usecase"
	"study-tracker/pkg/datemath"
	"study-tracker/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db *sql.DB

	// Study day defaults
	location         *time.Location
	dayOffsetMinutes int

	// Planner
	calendar   plannerUC.CalendarClient
	calendarID string

	// Assistant
	oracle       assistant.Completer
	parser       *datemath.Parser
	maxHistory   int
	maxRangeDays int

	// Middleware
	chatPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB *sql.DB

	Location         *time.Location
	DayOffsetMinutes int

	// Calendar is optional; nil disables reminder mirroring.
	Calendar   plannerUC.CalendarClient
	CalendarID string

	Oracle       assistant.Completer
	Parser       *datemath.Parser
	MaxHistory   int
	MaxRangeDays int

	ChatPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		db:               cfg.DB,
		location:         loc,
		dayOffsetMinutes: cfg.DayOffsetMinutes,
		calendar:         cfg.Calendar,
		calendarID:       cfg.CalendarID,
		oracle:           cfg.Oracle,
		parser:           cfg.Parser,
		maxHistory:       cfg.MaxHistory,
		maxRangeDays:     cfg.MaxRangeDays,
		chatPerMin:       cfg.ChatPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.oracle == nil {
		return errors.New("oracle is required")
	}
	if srv.parser == nil {
		return errors.New("date parser is required")
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study-tracker/config"
	_ "study-tracker/docs" // Swagger docs
	"study-tracker/internal/httpserver"
	plannerUC "study-tracker/internal/planner/usecase"
	"study-tracker/pkg/datemath"
	"study-tracker/pkg/gcalendar"
	"study-tracker/pkg/llmprovider"
	"study-tracker/pkg/log"
	pkgSqlite "study-tracker/pkg/sqlite"
)

// @title       Study Tracker API
// @description Study sessions, reminders and a conversational scheduling assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting study tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server exited with error: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Storage
	db, err := pkgSqlite.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", cfg.SQLite.Path, err)
	}
	defer db.Close()
	logger.Infof(ctx, "SQLite database: %s", cfg.SQLite.Path)

	// 4. Study-day clock
	loc, err := time.LoadLocation(cfg.Study.Timezone)
	if err != nil {
		return fmt.Errorf("study timezone: %w", err)
	}
	parser, err := datemath.NewParser(cfg.Study.Timezone)
	if err != nil {
		return fmt.Errorf("date parser: %w", err)
	}

	// 5. Oracle (LLM providers with fallback)
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("llm providers: %w", err)
	}
	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		return err
	}
	oracle := llmprovider.NewManager(providers, managerCfg, logger)
	logger.Infof(ctx, "LLM providers (fallback order): %v", oracle.Providers())

	// 6. Google Calendar (optional)
	var calendar plannerUC.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `studyctl gcal-auth` to generate a token")
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		DB:               db,
		Location:         loc,
		DayOffsetMinutes: cfg.Study.DayOffsetMinutes,
		Calendar:         calendar,
		CalendarID:       cfg.GoogleCalendar.CalendarID,
		Oracle:           oracle,
		Parser:           parser,
		MaxHistory:       cfg.Assistant.MaxHistory,
		MaxRangeDays:     cfg.Assistant.MaxRangeDays,
		ChatPerMin:       cfg.RateLimit.ChatPerMin,
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 8. Run
	return httpServer.Run(ctx)
}

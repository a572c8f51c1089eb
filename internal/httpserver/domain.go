package httpserver

import (
	"context"

	"study-tracker/internal/assistant"
	assistantHTTP "study-tracker/internal/assistant/delivery/http"
	assistantUC "study-tracker/internal/assistant/usecase"
	"study-tracker/internal/middleware"
	"study-tracker/internal/planner"
	plannerHTTP "study-tracker/internal/planner/delivery/http"
	plannerRepo "study-tracker/internal/planner/repository/sqlite"
	plannerUC "study-tracker/internal/planner/usecase"
	"study-tracker/internal/stats"
	statsHTTP "study-tracker/internal/stats/delivery/http"
	statsRepo "study-tracker/internal/stats/repository/sqlite"
	statsUC "study-tracker/internal/stats/usecase"

	"github.com/gin-gonic/gin"
)

// Each domain is wired the same way:
//  1. Repository on the shared database
//  2. UseCase
//  3. HTTP Handler
//  4. Routes under /api/v1

// setupStatsDomain registers /sessions, /stats and /settings. Its usecase
// also resolves per-user study-day offsets for the other domains.
func (srv HTTPServer) setupStatsDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (stats.UseCase, error) {
	repo := statsRepo.New(srv.db, srv.l)
	uc := statsUC.New(srv.l, repo, srv.location, srv.dayOffsetMinutes)
	h := statsHTTP.New(srv.l, uc)
	statsHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Stats domain registered")
	return uc, nil
}

// setupPlannerDomain registers /tasks and /reminders.
func (srv HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, offsets planner.OffsetResolver) (planner.UseCase, error) {
	repo := plannerRepo.New(srv.db, srv.l)

	uc := plannerUC.New(plannerUC.Config{
		Logger:     srv.l,
		Repo:       repo,
		Calendar:   srv.calendar,
		Offsets:    offsets,
		Location:   srv.location,
		CalendarID: srv.calendarID,
	})

	h := plannerHTTP.New(srv.l, uc)
	plannerHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Planner domain registered (calendar mirror: %t)", srv.calendar != nil)
	return uc, nil
}

// setupAssistantDomain registers /assistant/chat on top of the planner.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, pl planner.UseCase, offsets assistant.OffsetResolver) error {
	uc := assistantUC.New(assistantUC.Config{
		Logger:       srv.l,
		Oracle:       srv.oracle,
		Scheduler:    assistantUC.NewPlannerScheduler(pl),
		Offsets:      offsets,
		Parser:       srv.parser,
		MaxHistory:   srv.maxHistory,
		MaxRangeDays: srv.maxRangeDays,
	})

	h := assistantHTTP.New(srv.l, uc)
	assistantHTTP.RegisterRoutes(api.Group("/assistant"), h, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}

package assistant

import (
	"context"
	"time"

	"study-tracker/internal/model"
	"study-tracker/pkg/llmprovider"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat runs one stateless turn of the scheduling conversation.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
}

// Scheduler performs the commit effects.
type Scheduler interface {
	CreateTask(ctx context.Context, sc model.Scope, title string) (string, error)
	CreateReminder(ctx context.Context, sc model.Scope, title, description string, when time.Time) (string, error)
}

// Completer is the Oracle transport. *llmprovider.Manager satisfies it.
type Completer interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// OffsetResolver returns the caller's study-day offset in minutes.
type OffsetResolver interface {
	DayOffset(ctx context.Context, sc model.Scope) (int, error)
}

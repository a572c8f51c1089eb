package model

import "context"

// Scope carries the caller identity through usecases.
type Scope struct {
	UserID string
}

// DefaultUserID is used when a request carries no identity.
const DefaultUserID = "default"

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

type scopeCtxKey struct{}

// SetScopeToContext attaches sc to ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope attached to ctx, or the default user.
func GetScopeFromContext(ctx context.Context) Scope {
	if sc, ok := ctx.Value(scopeCtxKey{}).(Scope); ok && sc.UserID != "" {
		return sc
	}
	return Scope{UserID: DefaultUserID}
}

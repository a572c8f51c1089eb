package middleware

import (
	pkgLog "study-tracker/pkg/log"
)

// Middleware bundles the gin middlewares shared by domain routes.
type Middleware struct {
	l           pkgLog.Logger
	chatLimiter *rateLimiter
}

// New creates the middleware set. chatPerMin <= 0 disables chat rate limiting.
func New(l pkgLog.Logger, chatPerMin int) Middleware {
	mw := Middleware{l: l}
	if chatPerMin > 0 {
		mw.chatLimiter = newRateLimiter(chatPerMin)
	}
	return mw
}

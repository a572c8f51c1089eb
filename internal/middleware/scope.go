package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"study-tracker/internal/model"
)

// UserIDHeader identifies the caller. Authentication happens upstream.
const UserIDHeader = "X-User-ID"

// Scope stores the caller's model.Scope in the request context.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			userID = model.DefaultUserID
		}

		ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

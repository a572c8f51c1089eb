package http

import (
	"github.com/gin-gonic/gin"

	"study-tracker/internal/middleware"
)

// RegisterRoutes maps assistant endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.Scope(), mw.RateLimit(), h.Chat)
}

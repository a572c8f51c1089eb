package http

import (
	"github.com/gin-gonic/gin"

	"study-tracker/internal/middleware"
)

// RegisterRoutes maps stats and settings endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/sessions", mw.Scope(), h.LogSession)
	rg.GET("/stats/summary", mw.Scope(), h.Summary)

	settings := rg.Group("/settings", mw.Scope())
	{
		settings.GET("/study-day", h.GetStudyDay)
		settings.PUT("/study-day", h.UpdateStudyDay)
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"study-tracker/internal/middleware"
)

// RegisterRoutes maps planner endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Scope())
	{
		tasks.POST("", h.CreateTask)
		tasks.GET("", h.ListTasks)
	}

	reminders := rg.Group("/reminders", mw.Scope())
	{
		reminders.POST("", h.CreateReminder)
		reminders.GET("", h.ListReminders)
	}
}

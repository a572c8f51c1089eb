package http

import (
	"github.com/gin-gonic/gin"

	"study-tracker/internal/planner"
	pkgLog "study-tracker/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	CreateTask(c *gin.Context)
	ListTasks(c *gin.Context)
	CreateReminder(c *gin.Context)
	ListReminders(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l pkgLog.Logger, uc planner.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

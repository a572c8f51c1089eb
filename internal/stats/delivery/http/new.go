package http

import (
	"github.com/gin-gonic/gin"

	"study-tracker/internal/stats"
	pkgLog "study-tracker/pkg/log"
)

// Handler is the public interface for the stats HTTP delivery layer.
type Handler interface {
	LogSession(c *gin.Context)
	Summary(c *gin.Context)
	GetStudyDay(c *gin.Context)
	UpdateStudyDay(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc stats.UseCase
}

// New creates a new HTTP handler for the stats domain.
func New(l pkgLog.Logger, uc stats.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

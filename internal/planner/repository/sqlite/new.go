package sqlite

import (
	"database/sql"
	"time"

	"study-tracker/internal/planner/repository"
	pkgLog "study-tracker/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   pkgLog.Logger
	now func() time.Time
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a planner repository backed by an open sqlite database.
func New(db *sql.DB, l pkgLog.Logger) *implRepository {
	return &implRepository{
		db:  db,
		l:   l,
		now: time.Now,
	}
}

func (r *implRepository) dsn(method string) string {
	return "internal.planner.repository.sqlite." + method
}

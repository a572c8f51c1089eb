package http

import (
	"errors"
	"net/http"

	"study-tracker/internal/planner"
	pkgErrors "study-tracker/pkg/errors"
	"study-tracker/pkg/studyday"
)

var (
	errInvalidPeriod = pkgErrors.NewHTTPError(http.StatusBadRequest, "period must be daily, weekly or monthly")
	errInvalidAt     = pkgErrors.NewHTTPError(http.StatusBadRequest, "at must be an RFC3339 timestamp")
	errInvalidWhen   = pkgErrors.NewHTTPError(http.StatusBadRequest, "when must be an RFC3339 timestamp")
)

// mapError translates planner errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, planner.ErrEmptyTitle):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "title is required")
	case errors.Is(err, planner.ErrMissingTime):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "when is required")
	case errors.Is(err, planner.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "status must be todo, in_progress or done")
	case errors.Is(err, studyday.ErrInvalidPeriod):
		return errInvalidPeriod
	default:
		return pkgErrors.ErrInternalServerError
	}
}

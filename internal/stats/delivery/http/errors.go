package http

import (
	"errors"
	"net/http"

	"study-tracker/internal/stats"
	pkgErrors "study-tracker/pkg/errors"
	"study-tracker/pkg/studyday"
)

var (
	errInvalidPeriod    = pkgErrors.NewHTTPError(http.StatusBadRequest, "period must be daily, weekly or monthly")
	errInvalidTimestamp = pkgErrors.NewHTTPError(http.StatusBadRequest, "timestamps must be RFC3339")
	errInvalidOffset    = pkgErrors.NewHTTPError(http.StatusBadRequest, "day_start must be HH:MM between 00:00 and 23:59")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, stats.ErrInvalidDuration):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, stats.ErrInvalidDuration.Error())
	case errors.Is(err, studyday.ErrInvalidOffset):
		return errInvalidOffset
	case errors.Is(err, studyday.ErrInvalidPeriod):
		return errInvalidPeriod
	default:
		return pkgErrors.ErrInternalServerError
	}
}

package http

import (
	"errors"
	"net/http"

	"study-tracker/internal/assistant"
	pkgErrors "study-tracker/pkg/errors"
)

var (
	errEmptyMessage      = pkgErrors.NewHTTPError(http.StatusBadRequest, "message is required")
	errInvalidRole       = pkgErrors.NewHTTPError(http.StatusBadRequest, `history roles must be "user" or "assistant"`)
	errOracleUnavailable = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Sorry, the assistant is unavailable right now. Please try again in a moment.")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage):
		return errEmptyMessage
	case errors.Is(err, assistant.ErrOracleUnavailable):
		return errOracleUnavailable
	default:
		return pkgErrors.ErrInternalServerError
	}
}

package datemath

import "errors"

var (
	ErrNoDateRange      = errors.New("no date range found")
	ErrInvalidDateRange = errors.New("invalid date range")
)

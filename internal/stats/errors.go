package stats

import "errors"

var (
	ErrInvalidDuration = errors.New("duration must be between 1 and 1440 minutes")
)

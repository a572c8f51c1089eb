package studyday

import "errors"

var (
	ErrInvalidOffset = errors.New("day offset must be within [0, 1440) minutes")
	ErrInvalidPeriod = errors.New("period must be daily, weekly or monthly")
)

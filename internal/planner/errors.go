package planner

import "errors"

var (
	ErrEmptyTitle    = errors.New("title is empty")
	ErrMissingTime   = errors.New("reminder time is required")
	ErrInvalidStatus = errors.New("invalid task status")
)

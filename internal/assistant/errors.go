package assistant

import "errors"

var (
	ErrEmptyMessage      = errors.New("message is empty")
	ErrOracleUnavailable = errors.New("assistant is unavailable")
	ErrMalformedEnvelope = errors.New("malformed confirmation envelope")
	ErrNoEnvelope        = errors.New("no confirmation envelope")
)

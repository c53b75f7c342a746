package db

import "errors"

var (
	// ErrNoDatabaseURL is returned by Connect when no URL is configured.
	ErrNoDatabaseURL = errors.New("database URL is not configured")
	// ErrInvalidInput is returned when a parse result is missing required data.
	ErrInvalidInput = errors.New("invalid parse result input")
)

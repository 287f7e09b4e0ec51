package models

import "errors"

// Custom errors
var (
	ErrInvalidIterations = errors.New("iteration count must be positive")
	ErrProfileRequired   = errors.New("team statistical profile is required")
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateKey      = errors.New("duplicate key violation")
	ErrInvalidID         = errors.New("invalid ID format")
)

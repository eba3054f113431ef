package app

import "errors"

// Sentinel errors for common application errors
var (
	ErrNotInitialized  = errors.New("application not initialized")
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

package demo

import "errors"

var (
	ErrNotFound       = errors.New("application not found")
	ErrJobNotFound    = errors.New("job not found")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrInvalidRequest = errors.New("invalid application")
)

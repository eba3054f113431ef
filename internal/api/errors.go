package api

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError is returned for any failed call to the service: transport
// failures, non-2xx responses and undecodable bodies all end up here.
type RequestError struct {
	Op         string
	StatusCode int    // 0 when no response was received
	Message    string // service-supplied message, if any
	Err        error
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: HTTP %d", e.Op, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op + ": request failed"
}

func (e *RequestError) Unwrap() error { return e.Err }

// ServiceMessage returns the message the service put in the response body
func ServiceMessage(err error) string {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Message
	}
	return ""
}

// IsNotFound reports whether the service answered 404
func IsNotFound(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && re.StatusCode == http.StatusNotFound
}

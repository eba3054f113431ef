package portal

import "errors"

// ErrBusy is returned when an action is triggered again while its previous
// request is still outstanding.
var ErrBusy = errors.New("request already in progress")

// ValidationError reports a missing required field. It is raised before any
// request is made and is never logged.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

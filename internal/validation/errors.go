// Package validation checks incoming CV documents before they are stored
// and normalizes their user-supplied template settings.
package validation

import "fmt"

// Error represents a CV validation failure. Field names the offending field
// when known.
type Error struct {
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

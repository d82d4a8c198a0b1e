package availability

import (
	"errors"
	"fmt"
)

// Error codes for contract violations. The engine has no I/O, so these are
// the only failures it can produce.
const (
	CodeInvalidRequest    = "invalidRequest"
	CodeInvalidTimeFormat = "invalidTimeFormat"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidRequestError(msg string) error {
	return &Error{
		Code:    CodeInvalidRequest,
		Message: msg,
	}
}

func NewInvalidTimeFormatError(value string) error {
	return &Error{
		Code:    CodeInvalidTimeFormat,
		Message: fmt.Sprintf("malformed time %q, expected zero-padded HH:MM", value),
	}
}

// IsInvalidRequest reports whether err is a contract-violation error from
// this package, so boundaries can map it to a 400 instead of a 500.
func IsInvalidRequest(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

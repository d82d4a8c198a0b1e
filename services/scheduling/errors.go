package scheduling

import "fmt"

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewConflictError signals that another caller booked an overlapping meeting
// first. Slot reads are non-atomic with booking, so this is an expected race.
func NewConflictError(msg string) error {
	return &BookingError{
		Code:    "bookingConflict",
		Message: msg,
	}
}

// IsConflict reports whether err is a booking conflict.
func IsConflict(err error) bool {
	e, ok := err.(*BookingError)
	return ok && e.Code == "bookingConflict"
}

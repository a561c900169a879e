package booking

import "fmt"

// BookingError reports an invalid confirm-booking request.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{
		Code:    "invalidBooking",
		Message: msg,
	}
}

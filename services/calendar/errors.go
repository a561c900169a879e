package calendar

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// Error codes reported by the calendar service.
const (
	CodeUnavailable     = "calendarUnavailable"
	CodeAuthExpired     = "authExpired"
	CodeConflict        = "conflict"
	CodeNotFound        = "notFound"
	CodeInvalidArgument = "invalidArgument"
	CodeInternal        = "internal"
)

type CalendarError struct {
	Code    string
	Message string
	Err     error
}

func (e *CalendarError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CalendarError) Unwrap() error {
	return e.Err
}

func NewCalendarError(code, msg string) error {
	return &CalendarError{Code: code, Message: msg}
}

// classifyAPIError maps a Google API failure onto the service's error codes.
// Anything that is not an HTTP-level API error is treated as a transport
// failure against the calendar endpoint.
func classifyAPIError(op string, err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return &CalendarError{Code: CodeUnavailable, Message: op + " transport failure", Err: err}
	}
	switch {
	case apiErr.Code == 401 || apiErr.Code == 403:
		return &CalendarError{Code: CodeAuthExpired, Message: op + " not authorized", Err: err}
	case apiErr.Code == 404:
		return &CalendarError{Code: CodeNotFound, Message: op + " event not found", Err: err}
	case apiErr.Code == 409:
		return &CalendarError{Code: CodeConflict, Message: op + " event id collision", Err: err}
	case apiErr.Code >= 500:
		return &CalendarError{Code: CodeUnavailable, Message: op + " calendar unavailable", Err: err}
	default:
		// Permanent client-side failures must not look transient.
		return &CalendarError{Code: CodeInternal, Message: op + " failed", Err: err}
	}
}

// ErrCode returns the calendar error code carried by err, or "" when err is
// not a CalendarError.
func ErrCode(err error) string {
	var ce *CalendarError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsNotFound reports whether err is a notFound calendar error.
func IsNotFound(err error) bool {
	return ErrCode(err) == CodeNotFound
}

package profile

import (
	"errors"
	"fmt"
)

// Error codes reported by the profile service.
const (
	CodeInvalidArgument = "invalidArgument"
	CodeNotFound        = "notFound"
	CodeInternal        = "internal"
)

type ProfileError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProfileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

func NewProfileError(code, msg string) error {
	return &ProfileError{Code: code, Message: msg}
}

// ErrCode returns the profile error code carried by err, or "" when err is
// not a ProfileError.
func ErrCode(err error) string {
	var pe *ProfileError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

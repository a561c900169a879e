package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	bookingErr "studiobook/services/booking"
	"studiobook/services/calendar"
	"studiobook/services/profile"
)

// HandlerBundle aggregates the route handlers and shared middleware wired in
// main, so route registration needs a single value.
type HandlerBundle struct {
	AuthMiddleware gin.HandlerFunc

	UpdateUserProfileHandler gin.HandlerFunc

	ConfirmBookingHandler gin.HandlerFunc
	GetBookingHandler     gin.HandlerFunc
	CancelBookingHandler  gin.HandlerFunc
}

// httpStatusForError maps service error kinds onto HTTP status codes.
func httpStatusForError(err error) int {
	switch profile.ErrCode(err) {
	case profile.CodeInvalidArgument:
		return http.StatusBadRequest
	case profile.CodeNotFound:
		return http.StatusNotFound
	case profile.CodeInternal:
		return http.StatusInternalServerError
	}

	switch calendar.ErrCode(err) {
	case calendar.CodeInvalidArgument:
		return http.StatusBadRequest
	case calendar.CodeNotFound:
		return http.StatusNotFound
	case calendar.CodeConflict:
		return http.StatusConflict
	case calendar.CodeAuthExpired:
		return http.StatusBadGateway
	case calendar.CodeUnavailable:
		return http.StatusServiceUnavailable
	case calendar.CodeInternal:
		return http.StatusInternalServerError
	}

	var be *bookingErr.BookingError
	if errors.As(err, &be) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

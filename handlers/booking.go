package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingRepo "studiobook/database/repository/booking"
	"studiobook/models"
	"studiobook/services/booking"
	"studiobook/utils"
)

// BookingHandler exposes the booking confirmation and cancellation endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// ConfirmBookingHandler creates or updates a booking and its calendar event.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required. Please sign in.", "")
		return
	}
	userName := c.GetString("userName")

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	conf, err := h.Service.ConfirmBooking(c.Request.Context(), userID, userName, &req)
	if err != nil {
		logger.Error("Booking confirmation failed", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, httpStatusForError(err), "booking confirmation failed", err.Error())
		return
	}

	status := http.StatusCreated
	if req.EditingBookingID != "" {
		status = http.StatusOK
	}
	c.JSON(status, conf)
}

// GetBookingHandler returns a single booking document owned by the caller.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required. Please sign in.", "")
		return
	}

	b, err := h.Service.GetBooking(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler removes the calendar event mirroring a booking.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required. Please sign in.", "")
		return
	}

	bookingID := c.Param("id")
	if err := h.Service.CancelBooking(c.Request.Context(), userID, bookingID); err != nil {
		logger.Error("Booking cancellation failed",
			zap.String("userID", userID),
			zap.String("bookingID", bookingID),
			zap.Error(err))
		utils.JSONError(c, httpStatusForError(err), "booking cancellation failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Calendar event deleted successfully."})
}

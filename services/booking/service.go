package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "studiobook/database/repository/booking"
	"studiobook/models"
	"studiobook/services/calendar"
	"studiobook/utils"
)

// BookingService confirms and cancels studio bookings, keeping the booking
// document and its calendar event in step.
type BookingService interface {
	ConfirmBooking(ctx context.Context, uid, userName string, req *models.BookingRequest) (*models.BookingConfirmation, error)
	CancelBooking(ctx context.Context, uid, bookingID string) error
	GetBooking(ctx context.Context, uid, bookingID string) (*models.Booking, error)
}

type DefaultBookingService struct {
	Calendar calendar.Service
	Repo     bookingRepo.Repository
}

func validateRequest(req *models.BookingRequest) error {
	if req.Date == "" || req.Time == "" {
		return NewValidationError("booking date and time are required")
	}
	if req.Duration <= 0 {
		return NewValidationError("booking duration must be positive")
	}
	if req.UserTimeZone == "" {
		return NewValidationError("userTimeZone is required")
	}
	return nil
}

// ConfirmBooking writes the calendar event first and the booking document
// second, so the stored calendarEventId always refers to an event that
// exists. Editing a booking overwrites its event in place; an event that
// went missing since the original confirmation is recreated.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, uid, userName string, req *models.BookingRequest) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	bookingID := req.EditingBookingID
	editing := bookingID != ""
	if !editing {
		bookingID = uuid.New().String()
	}

	b := &models.Booking{
		ID:           bookingID,
		UserID:       uid,
		UserName:     userName,
		Date:         req.Date,
		Time:         req.Time,
		Duration:     req.Duration,
		Equipment:    req.Equipment,
		Total:        req.Total,
		UserTimeZone: req.UserTimeZone,
	}

	var eventID string
	var err error
	if editing {
		if _, getErr := s.Repo.GetByID(ctx, uid, bookingID); errors.Is(getErr, bookingRepo.ErrNotFound) {
			logger.Warn("Editing a booking with no stored document",
				zap.String("uid", uid), zap.String("bookingID", bookingID))
		}
		err = s.Calendar.UpdateEvent(ctx, bookingID, b)
		if calendar.IsNotFound(err) {
			logger.Warn("Calendar event missing on edit, recreating",
				zap.String("bookingID", bookingID))
			_, err = s.Calendar.CreateEvent(ctx, bookingID, b)
		}
		eventID = calendar.SanitizeEventID(bookingID)
	} else {
		eventID, err = s.Calendar.CreateEvent(ctx, bookingID, b)
	}
	if err != nil {
		return nil, err
	}

	b.CalendarEventID = eventID
	if err := s.Repo.Save(ctx, uid, b); err != nil {
		logger.Error("Calendar event written but booking document save failed",
			zap.String("uid", uid),
			zap.String("bookingID", bookingID),
			zap.Error(err))
		return nil, err
	}

	message := "Booking and calendar event confirmed successfully!"
	if editing {
		message = "Booking and calendar event updated successfully!"
	}
	return &models.BookingConfirmation{
		BookingID:       bookingID,
		CalendarEventID: eventID,
		Message:         message,
	}, nil
}

// CancelBooking removes the booking's calendar event. The booking document
// lifecycle belongs to the enclosing system, so nothing else is touched.
// Cancelling twice succeeds both times.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, uid, bookingID string) error {
	if bookingID == "" {
		return NewValidationError("bookingId is required")
	}
	return s.Calendar.DeleteEvent(ctx, bookingID)
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, uid, bookingID string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, uid, bookingID)
}

package calendar

import (
	"context"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"

	"studiobook/models"
	"studiobook/utils"
)

// DefaultCalendarService applies booking mutations to one Google Calendar.
// It performs no retries; the provider's own client handles low-level
// retry, and anything beyond that is the caller's concern.
type DefaultCalendarService struct {
	Service    *gcal.Service
	CalendarID string
}

func NewDefaultCalendarService(service *gcal.Service, calendarID string) *DefaultCalendarService {
	return &DefaultCalendarService{Service: service, CalendarID: calendarID}
}

func (s *DefaultCalendarService) CreateEvent(ctx context.Context, bookingID string, b *models.Booking) (string, error) {
	logger := utils.GetLogger()

	event, err := buildEvent(bookingID, b)
	if err != nil {
		return "", err
	}

	created, err := s.Service.Events.Insert(s.CalendarID, event).Context(ctx).Do()
	if err != nil {
		logger.Error("Failed to insert calendar event",
			zap.String("bookingID", bookingID),
			zap.String("eventID", event.Id),
			zap.Error(err))
		return "", classifyAPIError("insert", err)
	}

	logger.Debug("Calendar event created",
		zap.String("bookingID", bookingID),
		zap.String("eventID", created.Id))
	return created.Id, nil
}

func (s *DefaultCalendarService) UpdateEvent(ctx context.Context, bookingID string, b *models.Booking) error {
	logger := utils.GetLogger()

	event, err := buildEvent(bookingID, b)
	if err != nil {
		return err
	}

	// Full replacement addressed by the derived id; the body carries the id
	// as well so the provider cannot reinterpret a missing one.
	if _, err := s.Service.Events.Update(s.CalendarID, event.Id, event).Context(ctx).Do(); err != nil {
		logger.Error("Failed to update calendar event",
			zap.String("bookingID", bookingID),
			zap.String("eventID", event.Id),
			zap.Error(err))
		return classifyAPIError("update", err)
	}

	logger.Debug("Calendar event updated",
		zap.String("bookingID", bookingID),
		zap.String("eventID", event.Id))
	return nil
}

func (s *DefaultCalendarService) DeleteEvent(ctx context.Context, bookingID string) error {
	logger := utils.GetLogger()
	eventID := SanitizeEventID(bookingID)

	if err := s.Service.Events.Delete(s.CalendarID, eventID).Context(ctx).Do(); err != nil {
		classified := classifyAPIError("delete", err)
		// An already deleted event is a success: delete is idempotent.
		if IsNotFound(classified) {
			logger.Debug("Calendar event already gone", zap.String("eventID", eventID))
			return nil
		}
		logger.Error("Failed to delete calendar event",
			zap.String("bookingID", bookingID),
			zap.String("eventID", eventID),
			zap.Error(err))
		return classified
	}

	logger.Debug("Calendar event deleted",
		zap.String("bookingID", bookingID),
		zap.String("eventID", eventID))
	return nil
}

package calendar

import (
	"context"

	"studiobook/models"
)

// Service keeps one Google Calendar in 1:1 correspondence with booking
// records. Event ids are a pure function of the booking id, so repeated
// calls for the same booking always address the same event. Calls for the
// same booking id must be serialized by the caller.
type Service interface {
	// CreateEvent inserts an event for the booking and returns the event id
	// assigned by the provider (equal to the sanitized booking id).
	CreateEvent(ctx context.Context, bookingID string, b *models.Booking) (string, error)
	// UpdateEvent overwrites the full event body derived from the current
	// booking fields. Returns a notFound error when the event is missing;
	// callers decide whether to upgrade that to a create.
	UpdateEvent(ctx context.Context, bookingID string, b *models.Booking) error
	// DeleteEvent removes the event for the booking. Deleting an already
	// deleted event succeeds.
	DeleteEvent(ctx context.Context, bookingID string) error
}

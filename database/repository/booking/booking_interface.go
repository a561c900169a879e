package booking

import (
	"context"

	"studiobook/models"
)

// Repository persists per-user booking documents.
type Repository interface {
	// Save merge-writes the booking document under the owning user.
	Save(ctx context.Context, uid string, b *models.Booking) error
	// GetByID fetches a booking document; returns ErrNotFound when the
	// document does not exist.
	GetByID(ctx context.Context, uid, bookingID string) (*models.Booking, error)
}

package booking

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"studiobook/config"
	"studiobook/models"
)

// ErrNotFound is returned when a booking document does not exist.
var ErrNotFound = errors.New("booking not found")

// FirestoreBookingRepo is the Firestore-backed booking repository.
type FirestoreBookingRepo struct {
	Client *firestore.Client
}

func NewFirestoreBookingRepo(client *firestore.Client) *FirestoreBookingRepo {
	return &FirestoreBookingRepo{Client: client}
}

// DocPath returns the booking document path under the owning user.
func DocPath(uid, bookingID string) string {
	return fmt.Sprintf("artifacts/%s/users/%s/bookings/%s", config.FirestoreAppID, uid, bookingID)
}

// docData builds the merge-set payload for the booking document.
func docData(b *models.Booking) map[string]interface{} {
	return map[string]interface{}{
		"id":              b.ID,
		"userId":          b.UserID,
		"userName":        b.UserName,
		"date":            b.Date,
		"time":            b.Time,
		"duration":        b.Duration,
		"equipment":       b.Equipment,
		"total":           b.Total,
		"userTimeZone":    b.UserTimeZone,
		"calendarEventId": b.CalendarEventID,
		"timestamp":       firestore.ServerTimestamp,
	}
}

func (r *FirestoreBookingRepo) Save(ctx context.Context, uid string, b *models.Booking) error {
	_, err := r.Client.Doc(DocPath(uid, b.ID)).Set(ctx, docData(b), firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to write booking document: %w", err)
	}
	return nil
}

func (r *FirestoreBookingRepo) GetByID(ctx context.Context, uid, bookingID string) (*models.Booking, error) {
	snap, err := r.Client.Doc(DocPath(uid, bookingID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking document: %w", err)
	}

	var b models.Booking
	if err := snap.DataTo(&b); err != nil {
		return nil, fmt.Errorf("failed to decode booking document: %w", err)
	}
	return &b, nil
}

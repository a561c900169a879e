package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "studiobook/database/repository/booking"
	"studiobook/models"
	"studiobook/services/calendar"
)

type calendarCall struct {
	op        string
	bookingID string
}

type fakeCalendar struct {
	calls     []calendarCall
	updateErr error
	createErr error
	deleteErr error
}

func (f *fakeCalendar) CreateEvent(_ context.Context, bookingID string, _ *models.Booking) (string, error) {
	f.calls = append(f.calls, calendarCall{"create", bookingID})
	if f.createErr != nil {
		return "", f.createErr
	}
	return calendar.SanitizeEventID(bookingID), nil
}

func (f *fakeCalendar) UpdateEvent(_ context.Context, bookingID string, _ *models.Booking) error {
	f.calls = append(f.calls, calendarCall{"update", bookingID})
	return f.updateErr
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, bookingID string) error {
	f.calls = append(f.calls, calendarCall{"delete", bookingID})
	return f.deleteErr
}

type fakeBookingRepo struct {
	saved   []*models.Booking
	stored  map[string]*models.Booking
	saveErr error
}

func (f *fakeBookingRepo) Save(_ context.Context, _ string, b *models.Booking) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, b)
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _, bookingID string) (*models.Booking, error) {
	if b, ok := f.stored[bookingID]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrNotFound
}

func confirmRequest() *models.BookingRequest {
	return &models.BookingRequest{
		Date:         "2025-01-10",
		Time:         "09:00",
		Duration:     2,
		Equipment:    []models.EquipmentItem{{Name: "Camera"}},
		Total:        40,
		UserTimeZone: "UTC",
	}
}

func TestConfirmBookingCreatesEventAndDocument(t *testing.T) {
	cal := &fakeCalendar{}
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Calendar: cal, Repo: repo}

	conf, err := svc.ConfirmBooking(context.Background(), "u-7", "Alice", confirmRequest())
	require.NoError(t, err)

	require.Len(t, cal.calls, 1)
	assert.Equal(t, "create", cal.calls[0].op)
	assert.Equal(t, conf.BookingID, cal.calls[0].bookingID)
	assert.Equal(t, calendar.SanitizeEventID(conf.BookingID), conf.CalendarEventID)

	require.Len(t, repo.saved, 1)
	saved := repo.saved[0]
	assert.Equal(t, "u-7", saved.UserID)
	assert.Equal(t, "Alice", saved.UserName)
	assert.Equal(t, conf.CalendarEventID, saved.CalendarEventID)
}

func TestConfirmBookingEditUpdatesExistingEvent(t *testing.T) {
	cal := &fakeCalendar{}
	repo := &fakeBookingRepo{stored: map[string]*models.Booking{"b-001": {ID: "b-001"}}}
	svc := &DefaultBookingService{Calendar: cal, Repo: repo}

	req := confirmRequest()
	req.EditingBookingID = "b-001"
	req.Duration = 3

	conf, err := svc.ConfirmBooking(context.Background(), "u-7", "Alice", req)
	require.NoError(t, err)
	assert.Equal(t, "b-001", conf.BookingID)
	assert.Equal(t, "b001", conf.CalendarEventID)

	require.Len(t, cal.calls, 1)
	assert.Equal(t, calendarCall{"update", "b-001"}, cal.calls[0])
}

func TestConfirmBookingEditRecreatesMissingEvent(t *testing.T) {
	cal := &fakeCalendar{updateErr: calendar.NewCalendarError(calendar.CodeNotFound, "gone")}
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Calendar: cal, Repo: repo}

	req := confirmRequest()
	req.EditingBookingID = "b-001"

	conf, err := svc.ConfirmBooking(context.Background(), "u-7", "Alice", req)
	require.NoError(t, err)
	assert.Equal(t, "b001", conf.CalendarEventID)

	require.Len(t, cal.calls, 2)
	assert.Equal(t, calendarCall{"update", "b-001"}, cal.calls[0])
	assert.Equal(t, calendarCall{"create", "b-001"}, cal.calls[1])
}

func TestConfirmBookingValidation(t *testing.T) {
	cal := &fakeCalendar{}
	svc := &DefaultBookingService{Calendar: cal, Repo: &fakeBookingRepo{}}

	bad := confirmRequest()
	bad.Duration = 0
	_, err := svc.ConfirmBooking(context.Background(), "u-7", "Alice", bad)
	require.Error(t, err)
	assert.Empty(t, cal.calls)

	bad = confirmRequest()
	bad.UserTimeZone = ""
	_, err = svc.ConfirmBooking(context.Background(), "u-7", "Alice", bad)
	require.Error(t, err)
	assert.Empty(t, cal.calls)
}

func TestConfirmBookingCalendarFailureSkipsDocumentWrite(t *testing.T) {
	cal := &fakeCalendar{createErr: calendar.NewCalendarError(calendar.CodeUnavailable, "down")}
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Calendar: cal, Repo: repo}

	_, err := svc.ConfirmBooking(context.Background(), "u-7", "Alice", confirmRequest())
	require.Error(t, err)
	assert.Empty(t, repo.saved)
}

func TestCancelBookingIdempotent(t *testing.T) {
	cal := &fakeCalendar{}
	svc := &DefaultBookingService{Calendar: cal, Repo: &fakeBookingRepo{}}

	require.NoError(t, svc.CancelBooking(context.Background(), "u-7", "b-001"))
	require.NoError(t, svc.CancelBooking(context.Background(), "u-7", "b-001"))
	assert.Len(t, cal.calls, 2)
}

package calendar

import (
	"regexp"
	"strings"
	"time"

	gcal "google.golang.org/api/calendar/v3"

	"studiobook/models"
)

// wallClockLayout matches the "YYYY-MM-DDTHH:MM" string assembled from the
// booking's date and time fields.
const wallClockLayout = "2006-01-02T15:04"

var eventIDFilter = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SanitizeEventID derives the calendar event id from a booking id by
// stripping every character outside [A-Za-z0-9], preserving order. The
// provider rejects ids outside that alphabet. Two booking ids that collapse
// to the same sanitized form are a caller bug; this package does not detect
// the collision.
func SanitizeEventID(bookingID string) string {
	return eventIDFilter.ReplaceAllString(bookingID, "")
}

// eventTimes parses the booking's wall-clock date and time in the user's
// IANA zone and derives the end instant by adding the duration. The parse
// must be zone-aware: interpreting the wall clock in UTC or the process
// zone shifts the event for every user outside that zone.
func eventTimes(b *models.Booking) (start, end time.Time, err error) {
	loc, err := time.LoadLocation(b.UserTimeZone)
	if err != nil {
		return time.Time{}, time.Time{}, &CalendarError{
			Code:    CodeInvalidArgument,
			Message: "unknown time zone " + b.UserTimeZone,
			Err:     err,
		}
	}

	start, err = time.ParseInLocation(wallClockLayout, b.Date+"T"+b.Time, loc)
	if err != nil {
		return time.Time{}, time.Time{}, &CalendarError{
			Code:    CodeInvalidArgument,
			Message: "invalid booking date/time " + b.Date + "T" + b.Time,
			Err:     err,
		}
	}

	end = start.Add(time.Duration(b.Duration * float64(time.Hour)))
	return start, end, nil
}

// buildEvent assembles the full calendar event body for a booking. The id
// is always set explicitly so updates cannot drop it.
func buildEvent(bookingID string, b *models.Booking) (*gcal.Event, error) {
	if b.Duration <= 0 {
		return nil, NewCalendarError(CodeInvalidArgument, "booking duration must be positive")
	}

	start, end, err := eventTimes(b)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(b.Equipment))
	for _, item := range b.Equipment {
		names = append(names, item.Name)
	}

	return &gcal.Event{
		Id:          SanitizeEventID(bookingID),
		Summary:     "Booking: " + b.UserName,
		Description: "Equipment: " + strings.Join(names, ", "),
		Start: &gcal.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: b.UserTimeZone,
		},
		End: &gcal.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: b.UserTimeZone,
		},
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 60},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}, nil
}

package calendar

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiobook/models"
)

func TestSanitizeEventID(t *testing.T) {
	assert.Equal(t, "booking123x", SanitizeEventID("booking-123_x#"))
	assert.Equal(t, "b001", SanitizeEventID("b-001"))
	assert.Equal(t, "", SanitizeEventID("___"))

	// Deterministic and alphanumeric-only for arbitrary input.
	alnum := regexp.MustCompile(`^[A-Za-z0-9]*$`)
	for _, s := range []string{"", "abc", "a b c", "Ünïcode-42", "x/y\\z", "b-001"} {
		first := SanitizeEventID(s)
		assert.Equal(t, first, SanitizeEventID(s))
		assert.True(t, alnum.MatchString(first), "sanitized %q -> %q", s, first)
	}
}

func TestBuildEventBody(t *testing.T) {
	b := &models.Booking{
		UserName:     "Alice",
		Equipment:    []models.EquipmentItem{{Name: "Camera"}},
		Date:         "2025-01-10",
		Time:         "09:00",
		Duration:     2,
		UserTimeZone: "UTC",
	}

	event, err := buildEvent("b-001", b)
	require.NoError(t, err)

	assert.Equal(t, "b001", event.Id)
	assert.Equal(t, "Booking: Alice", event.Summary)
	assert.Equal(t, "Equipment: Camera", event.Description)
	assert.Equal(t, "2025-01-10T09:00:00Z", event.Start.DateTime)
	assert.Equal(t, "2025-01-10T11:00:00Z", event.End.DateTime)
	assert.Equal(t, "UTC", event.Start.TimeZone)
	assert.Equal(t, "UTC", event.End.TimeZone)
}

func TestBuildEventDescription(t *testing.T) {
	b := &models.Booking{
		UserName:     "Alice",
		Equipment:    []models.EquipmentItem{{Name: "A"}, {Name: "B"}},
		Date:         "2025-01-10",
		Time:         "09:00",
		Duration:     1,
		UserTimeZone: "UTC",
	}

	event, err := buildEvent("b-001", b)
	require.NoError(t, err)
	assert.Equal(t, "Equipment: A, B", event.Description)

	b.Equipment = nil
	event, err = buildEvent("b-001", b)
	require.NoError(t, err)
	assert.Equal(t, "Equipment: ", event.Description)
}

func TestEventTimesAcrossDSTTransition(t *testing.T) {
	// 2025-03-30 is the spring-forward day in Europe/Berlin. The duration
	// arithmetic must hold in absolute time regardless.
	b := &models.Booking{
		Date:         "2025-03-30",
		Time:         "02:30",
		Duration:     1,
		UserTimeZone: "Europe/Berlin",
	}

	start, end, err := eventTimes(b)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, end.Sub(start))
}

func TestEventTimesFractionalDuration(t *testing.T) {
	b := &models.Booking{
		Date:         "2025-01-10",
		Time:         "09:00",
		Duration:     1.5,
		UserTimeZone: "UTC",
	}

	start, end, err := eventTimes(b)
	require.NoError(t, err)
	assert.Equal(t, 5400*time.Second, end.Sub(start))
}

func TestEventTimesZoneAware(t *testing.T) {
	// 09:00 in Berlin in January is 08:00 UTC; a process-local or UTC parse
	// would get this wrong on any machine outside that zone.
	b := &models.Booking{
		Date:         "2025-01-10",
		Time:         "09:00",
		Duration:     1,
		UserTimeZone: "Europe/Berlin",
	}

	start, _, err := eventTimes(b)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-10T08:00:00Z", start.UTC().Format(time.RFC3339))
}

func TestBuildEventInvalidInput(t *testing.T) {
	base := models.Booking{
		UserName:     "Alice",
		Date:         "2025-01-10",
		Time:         "09:00",
		Duration:     1,
		UserTimeZone: "UTC",
	}

	badZone := base
	badZone.UserTimeZone = "Mars/Olympus_Mons"
	_, err := buildEvent("b-001", &badZone)
	assert.Equal(t, CodeInvalidArgument, ErrCode(err))

	badDate := base
	badDate.Date = "10.01.2025"
	_, err = buildEvent("b-001", &badDate)
	assert.Equal(t, CodeInvalidArgument, ErrCode(err))

	badDuration := base
	badDuration.Duration = 0
	_, err = buildEvent("b-001", &badDuration)
	assert.Equal(t, CodeInvalidArgument, ErrCode(err))
}

package booking

import (
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"

	"studiobook/models"
)

func TestDocPath(t *testing.T) {
	assert.Equal(t, "artifacts/default-app-id/users/u-7/bookings/b-001", DocPath("u-7", "b-001"))
}

func TestDocData(t *testing.T) {
	b := &models.Booking{
		ID:              "b-001",
		UserID:          "u-7",
		UserName:        "Alice",
		Date:            "2025-01-10",
		Time:            "09:00",
		Duration:        2,
		Equipment:       []models.EquipmentItem{{Name: "Camera"}},
		Total:           40,
		UserTimeZone:    "UTC",
		CalendarEventID: "b001",
	}

	data := docData(b)
	assert.Equal(t, "b-001", data["id"])
	assert.Equal(t, "b001", data["calendarEventId"])
	assert.Equal(t, "UTC", data["userTimeZone"])
	assert.Equal(t, firestore.ServerTimestamp, data["timestamp"])
}

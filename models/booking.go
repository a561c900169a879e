package models

// EquipmentItem is a single piece of studio equipment attached to a booking.
type EquipmentItem struct {
	Name string `json:"name" firestore:"name"`
}

// Booking represents a confirmed studio booking record.
type Booking struct {
	ID              string          `json:"id" firestore:"id"`                           // Unique booking identifier
	UserID          string          `json:"userId" firestore:"userId"`                   // User who made the booking
	UserName        string          `json:"userName" firestore:"userName"`               // Display name used in the calendar summary
	Date            string          `json:"date" firestore:"date"`                       // Booking date in "YYYY-MM-DD" form (user's wall clock)
	Time            string          `json:"time" firestore:"time"`                       // Start time in "HH:MM" form (user's wall clock)
	Duration        float64         `json:"duration" firestore:"duration"`               // Duration in hours, may be fractional
	Equipment       []EquipmentItem `json:"equipment" firestore:"equipment"`             // Ordered equipment list
	Total           float64         `json:"total" firestore:"total"`                     // Total price charged
	UserTimeZone    string          `json:"userTimeZone" firestore:"userTimeZone"`       // IANA zone name, e.g. "Europe/Berlin"
	CalendarEventID string          `json:"calendarEventId" firestore:"calendarEventId"` // Google Calendar event id mirroring this booking
}

// BookingRequest is the payload accepted by the confirm-booking endpoint.
// EditingBookingID is set when the client is editing an existing booking.
type BookingRequest struct {
	EditingBookingID string          `json:"editingBookingId"`
	Date             string          `json:"date"`
	Time             string          `json:"time"`
	Duration         float64         `json:"duration"`
	Equipment        []EquipmentItem `json:"equipment"`
	Total            float64         `json:"total"`
	UserTimeZone     string          `json:"userTimeZone"`
}

// BookingConfirmation is returned once the booking document and calendar
// event have both been written.
type BookingConfirmation struct {
	BookingID       string `json:"bookingId"`
	CalendarEventID string `json:"calendarEventId"`
	Message         string `json:"message"`
}

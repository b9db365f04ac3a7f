package domain

import "fmt"

// DateLayout is the calendar date format used by bookings, events and lost/found reports.
const DateLayout = "2006-01-02"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Booking reserves a room for a time slot on a given date.
type Booking struct {
	Base      `bson:",inline"`
	RoomID    string        `json:"room_id" bson:"room_id" validate:"required"`
	RoomName  string        `json:"room_name" bson:"room_name" validate:"required"`
	Date      string        `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`
	StartTime string        `json:"start_time" bson:"start_time" validate:"required,datetime=15:04"`
	EndTime   string        `json:"end_time" bson:"end_time" validate:"required,datetime=15:04"`
	Purpose   string        `json:"purpose" bson:"purpose" validate:"required"`
	Status    BookingStatus `json:"status" bson:"status" validate:"oneof=pending confirmed cancelled completed"`
	BookedBy  string        `json:"booked_by" bson:"booked_by"`
	Attendees int           `json:"attendees" bson:"attendees" validate:"gte=0"`
	Equipment []string      `json:"equipment,omitempty" bson:"equipment,omitempty"`
}

func (Booking) RecordKind() Kind { return KindBooking }

func (b *Booking) ApplyDefaults() {
	if b.Status == "" {
		b.Status = BookingPending
	}
}

func (b Booking) SearchFields() []string {
	return []string{b.RoomName, b.Purpose, b.BookedBy}
}

func (b Booking) ToSearchResult() SearchResult {
	return SearchResult{
		ID:          b.ID,
		Title:       fmt.Sprintf("%s - %s", b.RoomName, b.Purpose),
		Description: fmt.Sprintf("Booked by %s on %s", b.BookedBy, b.Date),
		Kind:        KindBooking,
		Module:      "room-booking",
		URL:         "/room-booking",
		Metadata:    map[string]any{"status": b.Status, "date": b.Date},
	}
}

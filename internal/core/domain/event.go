package domain

import (
	"fmt"
	"slices"
)

type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// Event is a scheduled campus event users can register for.
type Event struct {
	Base            `bson:",inline"`
	Title           string      `json:"title" bson:"title" validate:"required"`
	Description     string      `json:"description" bson:"description"`
	Date            string      `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`
	Time            string      `json:"time" bson:"time" validate:"omitempty,datetime=15:04"`
	Location        string      `json:"location" bson:"location" validate:"required"`
	Category        string      `json:"category" bson:"category" validate:"required,oneof=academic cultural sports technical social workshop"`
	Organizer       string      `json:"organizer" bson:"organizer"`
	MaxAttendees    int         `json:"max_attendees" bson:"max_attendees" validate:"gte=0"`
	RegisteredCount int         `json:"registered_count" bson:"registered_count" validate:"gte=0"`
	Status          EventStatus `json:"status" bson:"status" validate:"oneof=upcoming ongoing completed cancelled"`
	Registrants     []string    `json:"registrants" bson:"registrants"`
}

func (Event) RecordKind() Kind { return KindEvent }

func (e *Event) ApplyDefaults() {
	e.RegisteredCount = 0
	e.Registrants = []string{}
	if e.Status == "" {
		e.Status = EventUpcoming
	}
}

func (Event) GuardedFields() []string { return []string{"registrants"} }

// IsRegistered reports whether userID holds a place at the event.
func (e Event) IsRegistered(userID string) bool {
	return slices.Contains(e.Registrants, userID)
}

// Register takes a place at the event for userID.
func (e *Event) Register(userID string) error {
	if e.Status == EventCompleted || e.Status == EventCancelled {
		return ErrRegistrationClosed
	}
	if e.IsRegistered(userID) {
		return ErrAlreadyRegistered
	}
	if e.MaxAttendees > 0 && e.RegisteredCount >= e.MaxAttendees {
		return ErrCapacityReached
	}
	e.RegisteredCount++
	e.Registrants = append(e.Registrants, userID)
	return nil
}

func (e Event) SearchFields() []string {
	return []string{e.Title, e.Description, e.Location, e.Organizer}
}

func (e Event) ToSearchResult() SearchResult {
	return SearchResult{
		ID:          e.ID,
		Title:       e.Title,
		Description: fmt.Sprintf("%s - %s", e.Location, e.Organizer),
		Kind:        KindEvent,
		Module:      "events",
		URL:         "/events",
		Metadata:    map[string]any{"date": e.Date, "category": e.Category},
	}
}

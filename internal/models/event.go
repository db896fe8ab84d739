package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultEventName    = "Event"
	DefaultEventSummary = "This is an event for people to gather."
)

// EventCategories is the fixed set an event category must belong to. The first entry is the default.
var EventCategories = []string{
	"Category 1",
	"Category 2",
	"Category 3",
	"Category 4",
	"Category 5",
}

type Attendee struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	Name    string             `bson:"attendeeName" json:"attendeeName" validate:"max=100"`
	Country string             `bson:"attendeeCountry" json:"attendeeCountry" validate:"max=100"`
}

type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"eventName" json:"eventName" validate:"min=5,max=100"`
	DateAndTime time.Time          `bson:"eventDateAndTime" json:"eventDateAndTime"`
	Venue       string             `bson:"eventVenue" json:"eventVenue"`
	Address     string             `bson:"eventAddress" json:"eventAddress"`
	Category    string             `bson:"eventCategory" json:"eventCategory" validate:"eventcategory"`
	Summary     string             `bson:"eventSummary" json:"eventSummary" validate:"min=20,max=280"`
	// nil means the sequence was never set, which is distinct from an empty one.
	Attendees []Attendee `bson:"eventAttendees,omitempty" json:"eventAttendees" validate:"omitempty,dive"`
}

// NewEvent returns an event carrying every schema default.
func NewEvent(now time.Time) *Event {
	return &Event{
		Name:        DefaultEventName,
		DateAndTime: now,
		Category:    EventCategories[0],
		Summary:     DefaultEventSummary,
	}
}

func (e *Event) BeforeCreate() error {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	for i := range e.Attendees {
		if e.Attendees[i].ID.IsZero() {
			e.Attendees[i].ID = primitive.NewObjectID()
		}
	}
	return nil
}

func NewAttendee(name, country string) Attendee {
	return Attendee{
		ID:      primitive.NewObjectID(),
		Name:    name,
		Country: country,
	}
}

// AddAttendee appends a to the event, assigning an id if it has none, and
// returns the stored attendee.
func (e *Event) AddAttendee(a Attendee) Attendee {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	e.Attendees = append(e.Attendees, a)
	return a
}

// RemoveAttendee drops the attendee with the given id, keeping the order of the rest.
// It reports whether an attendee was removed.
func (e *Event) RemoveAttendee(id primitive.ObjectID) bool {
	for i, a := range e.Attendees {
		if a.ID == id {
			kept := make([]Attendee, 0, len(e.Attendees)-1)
			kept = append(kept, e.Attendees[:i]...)
			e.Attendees = append(kept, e.Attendees[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Event) HasAttendee(id primitive.ObjectID) bool {
	for _, a := range e.Attendees {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers never share the attendee slice.
func (e *Event) Clone() *Event {
	c := *e
	if e.Attendees != nil {
		c.Attendees = make([]Attendee, len(e.Attendees))
		copy(c.Attendees, e.Attendees)
	}
	return &c
}

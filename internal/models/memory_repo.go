package models

import (
	"context"
	"sync"

	"github.com/joshua-takyi/events/internal/errdef"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in memory EventRepo. Events are returned in insertion order.
type MemoryRepo struct {
	db   map[primitive.ObjectID]*Event
	dbMu sync.RWMutex

	// Only the order is used.
	ids []primitive.ObjectID
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		db: map[primitive.ObjectID]*Event{},
	}
}

func (r *MemoryRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	if err := event.BeforeCreate(); err != nil {
		return nil, err
	}

	r.dbMu.Lock()
	defer r.dbMu.Unlock()

	if _, ok := r.db[event.ID]; !ok {
		r.ids = append(r.ids, event.ID)
	}
	r.db[event.ID] = event.Clone()

	return event, nil
}

func (r *MemoryRepo) ListEvents(ctx context.Context) ([]*Event, error) {
	r.dbMu.RLock()
	defer r.dbMu.RUnlock()

	all := make([]*Event, 0, len(r.ids))
	for _, id := range r.ids {
		if e, ok := r.db[id]; ok {
			all = append(all, e.Clone())
		}
	}
	return all, nil
}

func (r *MemoryRepo) GetEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	r.dbMu.RLock()
	defer r.dbMu.RUnlock()

	e, ok := r.db[id]
	if !ok {
		return nil, eventNotFound(id)
	}
	return e.Clone(), nil
}

func (r *MemoryRepo) UpdateEvent(ctx context.Context, event *Event) (*Event, error) {
	return r.modify(event.ID, func(stored *Event) error {
		stored.Name = event.Name
		stored.DateAndTime = event.DateAndTime
		stored.Venue = event.Venue
		stored.Address = event.Address
		stored.Category = event.Category
		stored.Summary = event.Summary
		return nil
	})
}

func (r *MemoryRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	r.dbMu.Lock()
	defer r.dbMu.Unlock()

	if _, ok := r.db[id]; !ok {
		return eventNotFound(id)
	}
	delete(r.db, id)

	index := -1
	for i, d := range r.ids {
		if id == d {
			index = i
			break
		}
	}
	r.ids = append(r.ids[:index], r.ids[index+1:]...)

	return nil
}

func (r *MemoryRepo) PushAttendee(ctx context.Context, eventID primitive.ObjectID, attendee Attendee) (*Event, error) {
	return r.modify(eventID, func(stored *Event) error {
		stored.AddAttendee(attendee)
		return nil
	})
}

func (r *MemoryRepo) PullAttendee(ctx context.Context, eventID, attendeeID primitive.ObjectID) (*Event, error) {
	return r.modify(eventID, func(stored *Event) error {
		if !stored.RemoveAttendee(attendeeID) {
			return errdef.NewNotFound("There is no event or attendee with that ID: %s/%s", eventID.Hex(), attendeeID.Hex())
		}
		return nil
	})
}

func (r *MemoryRepo) SetAttendees(ctx context.Context, eventID primitive.ObjectID, attendees []Attendee) (*Event, error) {
	replacement := make([]Attendee, len(attendees))
	copy(replacement, attendees)
	return r.modify(eventID, func(stored *Event) error {
		stored.Attendees = replacement
		return nil
	})
}

// modify applies f to the stored event under the write lock. Nothing is changed if f fails.
func (r *MemoryRepo) modify(id primitive.ObjectID, f func(stored *Event) error) (*Event, error) {
	r.dbMu.Lock()
	defer r.dbMu.Unlock()

	e, ok := r.db[id]
	if !ok {
		return nil, eventNotFound(id)
	}
	updated := e.Clone()
	if err := f(updated); err != nil {
		return nil, err
	}
	r.db[id] = updated
	return updated.Clone(), nil
}

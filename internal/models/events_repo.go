package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshua-takyi/events/internal/errdef"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const EventsColName = "events"

// EventRepo persists events together with their embedded attendees.
// Lookups of an unknown id return an errdef not-found error.
type EventRepo interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error)
	// UpdateEvent overwrites the scalar fields of the stored event; the attendee sequence is left alone.
	UpdateEvent(ctx context.Context, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, id primitive.ObjectID) error
	PushAttendee(ctx context.Context, eventID primitive.ObjectID, attendee Attendee) (*Event, error)
	PullAttendee(ctx context.Context, eventID, attendeeID primitive.ObjectID) (*Event, error)
	SetAttendees(ctx context.Context, eventID primitive.ObjectID, attendees []Attendee) (*Event, error)
}

func eventNotFound(id primitive.ObjectID) error {
	return errdef.NewNotFound("There is no event with that ID: %s", id.Hex())
}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	if err := event.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare event for creation: %w", err)
	}
	col, err := mdb.GetCollection(ctx, EventsColName)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	if _, err := col.InsertOne(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to insert event into database: %w", err)
	}
	return event, nil
}

func (mdb *MongodbRepo) ListEvents(ctx context.Context) ([]*Event, error) {
	col, err := mdb.GetCollection(ctx, EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []*Event{}
	for cursor.Next(ctx) {
		var event Event
		if err := cursor.Decode(&event); err != nil {
			return nil, fmt.Errorf("error decoding event: %w", err)
		}
		events = append(events, &event)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return events, nil
}

func (mdb *MongodbRepo) GetEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	col, err := mdb.GetCollection(ctx, EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	var event Event
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, eventNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("error finding event by ID: %w", err)
	}
	return &event, nil
}

func (mdb *MongodbRepo) UpdateEvent(ctx context.Context, event *Event) (*Event, error) {
	update := bson.M{
		"$set": bson.M{
			"eventName":        event.Name,
			"eventDateAndTime": event.DateAndTime,
			"eventVenue":       event.Venue,
			"eventAddress":     event.Address,
			"eventCategory":    event.Category,
			"eventSummary":     event.Summary,
		},
	}
	return mdb.findOneAndUpdate(ctx, bson.M{"_id": event.ID}, update, eventNotFound(event.ID))
}

func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, EventsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if res.DeletedCount == 0 {
		return eventNotFound(id)
	}
	return nil
}

func (mdb *MongodbRepo) PushAttendee(ctx context.Context, eventID primitive.ObjectID, attendee Attendee) (*Event, error) {
	if attendee.ID.IsZero() {
		attendee.ID = primitive.NewObjectID()
	}
	update := bson.M{
		"$push": bson.M{"eventAttendees": attendee},
	}
	return mdb.findOneAndUpdate(ctx, bson.M{"_id": eventID}, update, eventNotFound(eventID))
}

func (mdb *MongodbRepo) PullAttendee(ctx context.Context, eventID, attendeeID primitive.ObjectID) (*Event, error) {
	filter := bson.M{
		"_id":                eventID,
		"eventAttendees._id": attendeeID,
	}
	update := bson.M{
		"$pull": bson.M{"eventAttendees": bson.M{"_id": attendeeID}},
	}
	notFound := errdef.NewNotFound("There is no event or attendee with that ID: %s/%s", eventID.Hex(), attendeeID.Hex())
	return mdb.findOneAndUpdate(ctx, filter, update, notFound)
}

func (mdb *MongodbRepo) SetAttendees(ctx context.Context, eventID primitive.ObjectID, attendees []Attendee) (*Event, error) {
	if attendees == nil {
		attendees = []Attendee{}
	}
	update := bson.M{
		"$set": bson.M{"eventAttendees": attendees},
	}
	return mdb.findOneAndUpdate(ctx, bson.M{"_id": eventID}, update, eventNotFound(eventID))
}

func (mdb *MongodbRepo) findOneAndUpdate(ctx context.Context, filter, update bson.M, notFound error) (*Event, error) {
	col, err := mdb.GetCollection(ctx, EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var result Event
	err = col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating event: %w", err)
	}
	return &result, nil
}

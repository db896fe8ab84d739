package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/joshua-takyi/events/internal/errdef"
	"github.com/joshua-takyi/events/internal/helpers"
	"github.com/joshua-takyi/events/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventService struct {
	eventsRepo models.EventRepo
	logger     *slog.Logger
	now        func() time.Time
}

func NewEventService(eventsRepo models.EventRepo, logger *slog.Logger) *EventService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventService{
		eventsRepo: eventsRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (es *EventService) CreateEvent(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	event := models.NewEvent(es.now())
	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.DateAndTime.Set {
		event.DateAndTime = req.DateAndTime.Time
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.Address != nil {
		event.Address = *req.Address
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.Summary != nil {
		event.Summary = *req.Summary
	}

	if err := models.ValidateEvent(event); err != nil {
		return nil, err
	}

	created, err := es.eventsRepo.CreateEvent(ctx, event)
	if err != nil {
		return nil, err
	}
	es.logger.InfoContext(ctx, "event created", "event_id", created.ID.Hex(), "category", created.Category)
	return created, nil
}

func (es *EventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return es.eventsRepo.ListEvents(ctx)
}

// UpdateEvent overwrites each provided field that carries a non-empty value.
// Empty strings and zero timestamps leave the stored value untouched, so a
// field cannot be cleared through this operation.
func (es *EventService) UpdateEvent(ctx context.Context, eventID string, req models.UpdateEventRequest) (*models.Event, error) {
	id, err := helpers.ParseObjectID(eventID, "event")
	if err != nil {
		return nil, err
	}

	event, err := es.eventsRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	overwrite(&event.Name, req.Name)
	overwrite(&event.Venue, req.Venue)
	overwrite(&event.Address, req.Address)
	overwrite(&event.Category, req.Category)
	overwrite(&event.Summary, req.Summary)
	if req.DateAndTime.Set && !req.DateAndTime.Time.IsZero() {
		event.DateAndTime = req.DateAndTime.Time
	}

	if err := models.ValidateEvent(event); err != nil {
		return nil, err
	}

	updated, err := es.eventsRepo.UpdateEvent(ctx, event)
	if err != nil {
		return nil, err
	}
	es.logger.InfoContext(ctx, "event updated", "event_id", updated.ID.Hex())
	return updated, nil
}

func overwrite(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

func (es *EventService) DeleteEvent(ctx context.Context, eventID string) error {
	id, err := helpers.ParseObjectID(eventID, "event")
	if err != nil {
		return err
	}

	if err := es.eventsRepo.DeleteEvent(ctx, id); err != nil {
		return err
	}
	es.logger.InfoContext(ctx, "event deleted", "event_id", id.Hex())
	return nil
}

// AddAttendee appends exactly one attendee with a freshly assigned id.
func (es *EventService) AddAttendee(ctx context.Context, eventID string, req models.AddAttendeeRequest) (*models.Event, error) {
	id, err := helpers.ParseObjectID(eventID, "event")
	if err != nil {
		return nil, err
	}

	name := helpers.StringTrim(req.Name)
	if name == "" {
		return nil, errdef.NewValidation("attendeeName is required")
	}

	attendee := models.NewAttendee(name, helpers.StringTrim(req.Country))
	if err := models.Validate.Struct(attendee); err != nil {
		return nil, errdef.NewValidation("invalid attendee: %v", err)
	}

	updated, err := es.eventsRepo.PushAttendee(ctx, id, attendee)
	if err != nil {
		return nil, err
	}
	es.logger.InfoContext(ctx, "attendee added", "event_id", id.Hex(), "attendee_id", attendee.ID.Hex())
	return updated, nil
}

// ReplaceAttendees swaps the whole attendee sequence for the one supplied.
// Concurrent replacements are not serialized: the last write wins.
func (es *EventService) ReplaceAttendees(ctx context.Context, eventID string, req models.ReplaceAttendeesRequest) (*models.Event, error) {
	id, err := helpers.ParseObjectID(eventID, "event")
	if err != nil {
		return nil, err
	}

	attendees := make([]models.Attendee, 0, len(req.Attendees))
	seen := make(map[primitive.ObjectID]struct{}, len(req.Attendees))
	for i, in := range req.Attendees {
		attendee := models.NewAttendee(helpers.StringTrim(in.Name), helpers.StringTrim(in.Country))
		if raw := helpers.NormalizeParam(in.ID); raw != "" {
			parsed, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				return nil, errdef.NewValidation("eventAttendees[%d].id is not a valid identifier: %q", i, in.ID)
			}
			attendee.ID = parsed
		}
		if _, dup := seen[attendee.ID]; dup {
			return nil, errdef.NewValidation("eventAttendees[%d].id %s is used more than once", i, attendee.ID.Hex())
		}
		seen[attendee.ID] = struct{}{}
		if attendee.Name == "" {
			return nil, errdef.NewValidation("eventAttendees[%d].attendeeName is required", i)
		}
		if err := models.Validate.Struct(attendee); err != nil {
			return nil, errdef.NewValidation("invalid attendee at index %d: %v", i, err)
		}
		attendees = append(attendees, attendee)
	}

	updated, err := es.eventsRepo.SetAttendees(ctx, id, attendees)
	if err != nil {
		return nil, err
	}
	es.logger.InfoContext(ctx, "attendees replaced", "event_id", id.Hex(), "count", len(attendees))
	return updated, nil
}

// RemoveAttendee deletes the attendee with the given id from the event's sequence.
func (es *EventService) RemoveAttendee(ctx context.Context, eventID, attendeeID string) (*models.Event, error) {
	id, err := helpers.ParseObjectID(eventID, "event")
	if err != nil {
		return nil, err
	}

	event, err := es.eventsRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attID, err := helpers.ParseObjectID(attendeeID, "attendee")
	if err != nil {
		return nil, err
	}
	if !event.HasAttendee(attID) {
		return nil, errdef.NewNotFound("There is no attendee with that ID: %s", helpers.StringTrim(attendeeID))
	}

	updated, err := es.eventsRepo.PullAttendee(ctx, id, attID)
	if err != nil {
		return nil, err
	}
	es.logger.InfoContext(ctx, "attendee removed", "event_id", id.Hex(), "attendee_id", attID.Hex())
	return updated, nil
}

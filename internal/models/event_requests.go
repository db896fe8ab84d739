package models

// CreateEventRequest carries any subset of event fields; nil fields fall back to the schema defaults.
type CreateEventRequest struct {
	Name        *string      `json:"eventName"`
	DateAndTime OptionalTime `json:"eventDateAndTime"`
	Venue       *string      `json:"eventVenue"`
	Address     *string      `json:"eventAddress"`
	Category    *string      `json:"eventCategory"`
	Summary     *string      `json:"eventSummary"`
}

// UpdateEventRequest carries the fields to overwrite. Only non-empty values replace stored ones.
type UpdateEventRequest struct {
	Name        *string      `json:"eventName"`
	DateAndTime OptionalTime `json:"eventDateAndTime"`
	Venue       *string      `json:"eventVenue"`
	Address     *string      `json:"eventAddress"`
	Category    *string      `json:"eventCategory"`
	Summary     *string      `json:"eventSummary"`
}

type AddAttendeeRequest struct {
	Name    string `json:"attendeeName" binding:"required,max=100"`
	Country string `json:"attendeeCountry" binding:"max=100"`
}

type AttendeeInput struct {
	ID      string `json:"id"`
	Name    string `json:"attendeeName" binding:"required,max=100"`
	Country string `json:"attendeeCountry" binding:"max=100"`
}

// ReplaceAttendeesRequest holds the complete desired attendee sequence.
type ReplaceAttendeesRequest struct {
	Attendees []AttendeeInput `json:"eventAttendees" binding:"required,dive"`
}

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Layouts accepted for eventDateAndTime, tried in order. Values without a zone
// are read in the server's local time, date-only values as UTC midnight.
var (
	zonedTimeLayouts = []string{time.RFC3339Nano}
	localTimeLayouts = []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04"}
	dateLayout       = "2006-01-02"
)

// OptionalTime is a request timestamp where a missing field, null and "" all
// mean "not provided".
type OptionalTime struct {
	Time time.Time
	Set  bool
}

func NewOptionalTime(t time.Time) OptionalTime {
	return OptionalTime{Time: t, Set: true}
}

func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	*o = OptionalTime{}

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	// Numbers are milliseconds since the epoch.
	var millis json.Number
	if err := json.Unmarshal(data, &millis); err == nil && len(data) > 0 && data[0] != '"' {
		ms, err := millis.Int64()
		if err != nil {
			return fmt.Errorf("eventDateAndTime: %q is not a whole number of milliseconds", millis)
		}
		*o = NewOptionalTime(time.UnixMilli(ms).UTC())
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("eventDateAndTime must be a string or a number of milliseconds")
	}
	if s == "" {
		return nil
	}

	t, err := ParseEventTime(s)
	if err != nil {
		return err
	}
	*o = NewOptionalTime(t)
	return nil
}

// ParseEventTime reads RFC 3339 timestamps, zone-less date-times and plain dates.
func ParseEventTime(s string) (time.Time, error) {
	for _, layout := range zonedTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range localTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("eventDateAndTime: cannot parse %q as a date or date-time", s)
}

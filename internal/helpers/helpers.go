package helpers

import (
	"strings"

	"github.com/joshua-takyi/events/internal/errdef"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func StringTrim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeParam trims spaces and surrounding quotes which may occur
// when clients pass values as JSON strings or templates.
func NormalizeParam(s string) string {
	return strings.Trim(StringTrim(s), "\"'")
}

// ParseObjectID parses a path identifier. A malformed id can never match a
// stored document, so it is reported as not found.
func ParseObjectID(raw, kind string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(NormalizeParam(raw))
	if err != nil {
		return primitive.NilObjectID, errdef.NewNotFound("There is no %s with that ID: %q", kind, raw)
	}
	return id, nil
}

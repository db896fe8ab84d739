package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/events/internal/errdef"
	"github.com/joshua-takyi/events/internal/models"
	"github.com/joshua-takyi/events/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errUnreachable = errors.New("server selection error: context deadline exceeded")

// unreachableRepo fails every call the way a lost MongoDB connection would.
type unreachableRepo struct{}

func (unreachableRepo) CreateEvent(context.Context, *models.Event) (*models.Event, error) {
	return nil, errUnreachable
}

func (unreachableRepo) ListEvents(context.Context) ([]*models.Event, error) {
	return nil, errUnreachable
}

func (unreachableRepo) GetEventByID(context.Context, primitive.ObjectID) (*models.Event, error) {
	return nil, errUnreachable
}

func (unreachableRepo) UpdateEvent(context.Context, *models.Event) (*models.Event, error) {
	return nil, errUnreachable
}

func (unreachableRepo) DeleteEvent(context.Context, primitive.ObjectID) error {
	return errUnreachable
}

func (unreachableRepo) PushAttendee(context.Context, primitive.ObjectID, models.Attendee) (*models.Event, error) {
	return nil, errUnreachable
}

func (unreachableRepo) PullAttendee(context.Context, primitive.ObjectID, primitive.ObjectID) (*models.Event, error) {
	return nil, errUnreachable
}

func (unreachableRepo) SetAttendees(context.Context, primitive.ObjectID, []models.Attendee) (*models.Event, error) {
	return nil, errUnreachable
}

func newContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) models.ApiResponse {
	t.Helper()
	var res models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestListEvents_StoreErrorIs500(t *testing.T) {
	es := services.NewEventService(unreachableRepo{}, nil)
	c, w := newContext(http.MethodGet, "")

	ListEvents(es)(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, decode(t, w).Success)
	require.Len(t, c.Errors, 1)
	assert.ErrorIs(t, c.Errors.Last().Err, errUnreachable)
}

func TestWriteStoreErrorsAre400(t *testing.T) {
	es := services.NewEventService(unreachableRepo{}, nil)
	id := primitive.NewObjectID().Hex()

	tests := map[string]struct {
		handler gin.HandlerFunc
		body    string
		params  gin.Params
	}{
		"create": {handler: CreateEvent(es), body: `{}`},
		"update": {handler: UpdateEvent(es), body: `{}`, params: gin.Params{{Key: "eventId", Value: id}}},
		"delete": {handler: DeleteEvent(es), params: gin.Params{{Key: "eventId", Value: id}}},
		"add attendee": {
			handler: AddAttendee(es),
			body:    `{"attendeeName":"Ada"}`,
			params:  gin.Params{{Key: "eventId", Value: id}},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c, w := newContext(http.MethodPost, test.body)
			c.Params = test.params

			test.handler(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, decode(t, w).Success)
		})
	}
}

func TestRespondError(t *testing.T) {
	tests := map[string]struct {
		err    error
		status int
	}{
		"not found":  {err: errdef.NewNotFound("There is no event with that ID"), status: http.StatusBadRequest},
		"validation": {err: errdef.NewValidation("invalid event"), status: http.StatusBadRequest},
		"store":      {err: errUnreachable, status: http.StatusInternalServerError},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c, w := newContext(http.MethodGet, "")

			respondError(c, test.err, http.StatusInternalServerError)

			assert.Equal(t, test.status, w.Code)
			res := decode(t, w)
			assert.False(t, res.Success)
			assert.Equal(t, map[string]any{"message": test.err.Error()}, res.Response)
		})
	}
}

func TestCreateEvent_Handler(t *testing.T) {
	es := services.NewEventService(models.NewMemoryRepo(), nil)
	c, w := newContext(http.MethodPost, `{"eventName":"Community Picnic","eventCategory":"Category 4"}`)

	CreateEvent(es)(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var res struct {
		Success  bool         `json:"success"`
		Response models.Event `json:"response"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, "Community Picnic", res.Response.Name)
	assert.Equal(t, "Category 4", res.Response.Category)
}

func TestAddAttendee_BindingFailure(t *testing.T) {
	es := services.NewEventService(models.NewMemoryRepo(), nil)
	c, w := newContext(http.MethodPost, `{"attendeeCountry":"UK"}`)
	c.Params = gin.Params{{Key: "eventId", Value: primitive.NewObjectID().Hex()}}

	AddAttendee(es)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, c.Errors, 1)
	assert.True(t, errdef.IsValidation(c.Errors.Last().Err))
}

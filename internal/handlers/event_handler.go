package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/events/internal/errdef"
	"github.com/joshua-takyi/events/internal/models"
	"github.com/joshua-takyi/events/internal/services"
)

// respondError attaches err to the context for the error middleware and writes
// the failure envelope. Not-found and validation errors are always 400; any other
// error is a store failure and answered with storeStatus.
func respondError(c *gin.Context, err error, storeStatus int) {
	_ = c.Error(err)

	status := storeStatus
	if errdef.IsNotFound(err) || errdef.IsValidation(err) {
		status = http.StatusBadRequest
	}
	c.JSON(status, models.ErrorResponse(err.Error()))
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, errdef.NewValidation("invalid request body: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

// bindOptionalJSON is bindJSON for bodies where every field is optional; an empty body binds nothing.
func bindOptionalJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, errdef.NewValidation("invalid request body: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

func CreateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateEventRequest
		if !bindOptionalJSON(c, &req) {
			return
		}

		event, err := es.CreateEvent(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, http.StatusBadRequest)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(event))
	}
}

func ListEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := es.ListEvents(c.Request.Context())
		if err != nil {
			respondError(c, err, http.StatusInternalServerError)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(events))
	}
}

func UpdateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateEventRequest
		if !bindOptionalJSON(c, &req) {
			return
		}

		event, err := es.UpdateEvent(c.Request.Context(), c.Param("eventId"), req)
		if err != nil {
			respondError(c, err, http.StatusBadRequest)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event))
	}
}

func DeleteEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := es.DeleteEvent(c.Request.Context(), c.Param("eventId")); err != nil {
			respondError(c, err, http.StatusBadRequest)
			return
		}

		c.JSON(http.StatusOK, models.MessageResponse("Event Deleted"))
	}
}

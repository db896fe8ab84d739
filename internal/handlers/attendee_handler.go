package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/events/internal/models"
	"github.com/joshua-takyi/events/internal/services"
)

func AddAttendee(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AddAttendeeRequest
		if !bindJSON(c, &req) {
			return
		}

		event, err := es.AddAttendee(c.Request.Context(), c.Param("eventId"), req)
		if err != nil {
			respondError(c, err, http.StatusBadRequest)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(event))
	}
}

func ReplaceAttendees(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ReplaceAttendeesRequest
		if !bindJSON(c, &req) {
			return
		}

		event, err := es.ReplaceAttendees(c.Request.Context(), c.Param("eventId"), req)
		if err != nil {
			respondError(c, err, http.StatusBadRequest)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event))
	}
}

func RemoveAttendee(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := es.RemoveAttendee(c.Request.Context(), c.Param("eventId"), c.Param("attendeeId"))
		if err != nil {
			respondError(c, err, http.StatusBadRequest)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event))
	}
}

package routes

import (
	"cmp"
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/events/internal/container"
	"github.com/joshua-takyi/events/internal/handlers"
	"github.com/joshua-takyi/events/internal/middleware"
	"github.com/joshua-takyi/events/internal/models"
)

type Endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.New()
	r.Use(cors.New(corsConfig(container.CORSAllowedOrigins)))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(middleware.Recovery())

	r.GET("/", listEndpoints(r))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"service": "events-api",
		})
	})

	eventRoutes := r.Group("/events")
	{
		eventRoutes.POST("", handlers.CreateEvent(container.EventService))
		eventRoutes.GET("", handlers.ListEvents(container.EventService))
		eventRoutes.PATCH("/:eventId", handlers.UpdateEvent(container.EventService))
		eventRoutes.DELETE("/:eventId", handlers.DeleteEvent(container.EventService))

		eventRoutes.POST("/:eventId/attendees", handlers.AddAttendee(container.EventService))
		eventRoutes.PATCH("/:eventId/attendees", handlers.ReplaceAttendees(container.EventService))
		eventRoutes.DELETE("/:eventId/attendees/:attendeeId", handlers.RemoveAttendee(container.EventService))
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// listEndpoints answers with every route registered on r at request time.
func listEndpoints(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := r.Routes()
		endpoints := make([]Endpoint, 0, len(routes))
		for _, route := range routes {
			endpoints = append(endpoints, Endpoint{Method: route.Method, Path: route.Path})
		}
		slices.SortFunc(endpoints, func(a, b Endpoint) int {
			return cmp.Or(cmp.Compare(a.Path, b.Path), cmp.Compare(a.Method, b.Method))
		})
		c.JSON(http.StatusOK, models.SuccessResponse(endpoints))
	}
}

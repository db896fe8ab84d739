package container

import (
	"log/slog"

	"github.com/joshua-takyi/events/internal/models"
	"github.com/joshua-takyi/events/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger             *slog.Logger
	MongoDBClient      *mongo.Client
	CORSAllowedOrigins []string
	EventService       *services.EventService
}

// NewContainer wires the services on top of a MongoDB backed event store.
func NewContainer(logger *slog.Logger, mongoDBClient *mongo.Client, dbName string, corsOrigins []string) *Container {
	c := NewContainerWithRepo(logger, models.MongodbNewRepo(mongoDBClient, dbName), corsOrigins)
	c.MongoDBClient = mongoDBClient
	return c
}

// NewContainerWithRepo wires the services on top of any event store.
func NewContainerWithRepo(logger *slog.Logger, eventsRepo models.EventRepo, corsOrigins []string) *Container {
	return &Container{
		Logger:             logger,
		CORSAllowedOrigins: corsOrigins,
		EventService:       services.NewEventService(eventsRepo, logger),
	}
}

package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultMongoURL     = "mongodb://127.0.0.1/final-project-events"
	DefaultDatabaseName = "final-project-events"
)

type Config struct {
	Port               string
	MongoDBURI         string
	MongoDBPassword    string
	MongoDBDatabase    string
	Environment        string
	LogLevel           string
	CORSAllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            getEnvWithDefault("PORT", "8080"),
		MongoDBURI:      getEnvWithDefault("MONGO_URL", getEnvWithDefault("MONGODB_URI", DefaultMongoURL)),
		MongoDBPassword: os.Getenv("MONGODB_PASSWORD"),
		Environment:     getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "info"),
	}

	for _, origin := range strings.Split(getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	// Validate required fields
	if _, err := strconv.ParseUint(cfg.Port, 10, 16); err != nil {
		return nil, fmt.Errorf("PORT must be a number between 0 and 65535, got %q", cfg.Port)
	}
	if !strings.HasPrefix(cfg.MongoDBURI, "mongodb://") && !strings.HasPrefix(cfg.MongoDBURI, "mongodb+srv://") {
		return nil, fmt.Errorf("MONGO_URL must start with mongodb:// or mongodb+srv://")
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	cfg.MongoDBDatabase = getEnvWithDefault("MONGODB_DATABASE", databaseFromURI(cfg.MongoDBURI))

	return cfg, nil
}

// MongoConnectionURI returns the connection string with any <password> placeholder filled in.
func (c *Config) MongoConnectionURI() string {
	if c.MongoDBPassword == "" {
		return c.MongoDBURI
	}
	return strings.Replace(c.MongoDBURI, "<password>", url.QueryEscape(c.MongoDBPassword), 1)
}

func databaseFromURI(uri string) string {
	u, err := url.Parse(strings.Replace(uri, "<password>", "x", 1))
	if err != nil {
		return DefaultDatabaseName
	}
	if db := strings.Trim(u.Path, "/"); db != "" {
		return db
	}
	return DefaultDatabaseName
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Level returns the configured log level. LoadConfig has already rejected unknown names.
func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	return level, nil
}

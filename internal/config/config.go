package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Tasks  TasksConfig  `mapstructure:"tasks"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// ShutdownTimeout returns the graceful shutdown timeout as a duration.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// TasksConfig contains settings for the task service and its HTTP listing.
type TasksConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size" validate:"required,gte=1"`
	MaxPageSize     int `mapstructure:"max_page_size"     validate:"required,gtefield=DefaultPageSize"`
	// Timezone is the IANA location whose calendar defines "today" for due dates.
	Timezone string `mapstructure:"timezone" validate:"required"`
}

// Location resolves Timezone.
func (c TasksConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

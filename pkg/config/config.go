// Package config holds application configuration and the dependency
// container the services are built from.
package config

import (
	"time"
)

// Server holds the HTTP listener settings.
type Server struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"PORT" default:"3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// Log holds logging settings.
type Log struct {
	Level string `envconfig:"LEVEL" default:"info"`
}

// RateLimit bounds requests per client on the HTTP surface.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// App is the root application configuration, loaded from the environment.
type App struct {
	Env       string    `envconfig:"ENV" default:"development"`
	Server    Server    `envconfig:"SERVER"`
	Log       Log       `envconfig:"LOG"`
	RateLimit RateLimit `envconfig:"RATE_LIMIT"`
}

package config

import (
	"time"
)

type (
	Previous struct {
		// CookieName is the cookie holding the location a user-agent is sent back to.
		CookieName string
		// Path is set on both remembering and clearing cookies. Must be the same for both,
		// otherwise the user-agent treats them as different cookies.
		Path string
	}

	NET struct {
		// Addr is the address the server listens on.
		Addr string
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int
		// ReadTimeout controls the maximal lifetime of IDLE connections. If no data was
		// received in this period of time, it'll be closed.
		ReadTimeout time.Duration
		// WriteTimeout limits the time spent on writing a single response.
		WriteTimeout time.Duration
		// ShutdownTimeout is how long open connections are waited for after the listener
		// is closed.
		ShutdownTimeout time.Duration
	}
)

// Config holds settings used across various parts of facets.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Previous Previous
	NET      NET
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Previous: Previous{
			CookieName: "TkPrevious",
			Path:       "/",
		},
		NET: NET{
			Addr:            "localhost:8080",
			ReadBufferSize:  4 * 1024,
			ReadTimeout:     90 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
	}
}

// Package server provides HTTP server configuration and lifecycle management.
package server

import (
	"fmt"
	"time"

	"github.com/keywarden/keywarden/internal/api/dto"
)

// Config holds the server configuration.
type Config struct {
	// Host is the address to bind to (default: "").
	Host string

	// Port is the HTTP port.
	Port int

	// Defaults supplies the standard and context applied when a
	// request leaves them unset.
	Defaults dto.AssessOptions

	// StorePath is the SQLite database path for assessment history.
	// Empty disables persistence.
	StorePath string

	// AuditPath is the audit log path. Empty disables auditing.
	AuditPath string

	// TLS configuration (optional)
	TLSCert string
	TLSKey  string

	// Timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Host:            "",
		Port:            8080,
		Defaults:        dto.AssessOptions{Standard: "nist"},
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Address returns the full listen address.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

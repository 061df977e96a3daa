package config

import (
	"fmt"
	"strings"

	"github.com/vmunix/movieshelf/internal/library"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

func validPort(p int) bool { return p >= 1 && p <= 65535 }

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Database
	if _, err := library.DialectFor(c.Database.Driver); err != nil {
		errs = append(errs, fmt.Sprintf("database.driver: must be one of sqlite, mysql, postgres; got %q", c.Database.Driver))
	} else if c.Database.Driver == "sqlite" || c.Database.Driver == "sqlite3" {
		if c.Database.Path == "" {
			errs = append(errs, "database.path: required for sqlite")
		}
	} else {
		if c.Database.Host == "" && !c.Tunnel.Enabled {
			errs = append(errs, "database.host: required")
		}
		if c.Database.Name == "" {
			errs = append(errs, "database.name: required")
		}
		if c.Database.User == "" {
			errs = append(errs, "database.user: required")
		}
		if !validPort(c.Database.Port) {
			errs = append(errs, fmt.Sprintf("database.port: must be between 1 and 65535, got %d", c.Database.Port))
		}
	}

	// Tunnel
	if c.Tunnel.Enabled {
		if c.Tunnel.Destination == "" {
			errs = append(errs, "tunnel.destination: required when tunnel is enabled")
		}
		if !validPort(c.Tunnel.LocalPort) {
			errs = append(errs, fmt.Sprintf("tunnel.local_port: must be between 1 and 65535, got %d", c.Tunnel.LocalPort))
		}
		if !validPort(c.Tunnel.RemotePort) {
			errs = append(errs, fmt.Sprintf("tunnel.remote_port: must be between 1 and 65535, got %d", c.Tunnel.RemotePort))
		}
	}

	// Lookup
	if c.Lookup.Enabled && c.Lookup.APIKey == "" {
		errs = append(errs, "lookup.api_key: required when lookup is enabled")
	}

	// Ingest
	if c.Ingest.Category != "" && !library.Category(c.Ingest.Category).Valid() {
		errs = append(errs, fmt.Sprintf("ingest.category: must be one of movie, comedy, documentary, episode; got %q", c.Ingest.Category))
	}
	if !strings.HasPrefix(c.Ingest.Extension, ".") {
		errs = append(errs, fmt.Sprintf("ingest.extension: must start with a dot, got %q", c.Ingest.Extension))
	}

	// Log
	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	return errs
}

// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vmunix/movieshelf/internal/library"
	"github.com/vmunix/movieshelf/internal/tunnel"
)

// Config is the root configuration structure.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Tunnel   TunnelConfig   `toml:"tunnel"`
	Lookup   LookupConfig   `toml:"lookup"`
	Ingest   IngestConfig   `toml:"ingest"`
	Log      LogConfig      `toml:"log"`
}

type DatabaseConfig struct {
	Target   string            `toml:"target"` // label shown in the settings summary
	Driver   string            `toml:"driver"`
	Path     string            `toml:"path"`
	Host     string            `toml:"host"`
	Port     int               `toml:"port"`
	User     string            `toml:"user"`
	Password string            `toml:"password"`
	Name     string            `toml:"name"`
	Params   map[string]string `toml:"params"`
}

type TunnelConfig struct {
	Enabled      bool          `toml:"enabled"`
	Binary       string        `toml:"binary"`
	Destination  string        `toml:"destination"`
	LocalPort    int           `toml:"local_port"`
	RemoteHost   string        `toml:"remote_host"`
	RemotePort   int           `toml:"remote_port"`
	ReadyTimeout time.Duration `toml:"ready_timeout"`
	PollInterval time.Duration `toml:"poll_interval"`
}

type LookupConfig struct {
	Enabled          bool          `toml:"enabled"`
	APIURL           string        `toml:"api_url"`
	APIHost          string        `toml:"api_host"`
	APIKey           string        `toml:"api_key"`
	ReferenceBaseURL string        `toml:"reference_base_url"`
	Timeout          time.Duration `toml:"timeout"`
	CacheTTL         time.Duration `toml:"cache_ttl"`
}

type IngestConfig struct {
	Directory string `toml:"directory"`
	Category  string `toml:"category"` // empty means ask
	Extension string `toml:"extension"`
	FFProbe   string `toml:"ffprobe"`
}

type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxAgeDays int    `toml:"max_age_days"`
	MaxBackups int    `toml:"max_backups"`
	Compress   bool   `toml:"compress"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads, substitutes, parses and validates the configuration file.
// Unresolved environment variables and validation failures are reported
// together in a *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}
	cerr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cerr.HasErrors() {
		return nil, cerr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, applying
// defaults only.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Driver == "sqlite" && c.Database.Path == "" {
		c.Database.Path = "./movieshelf.db"
	}
	if c.Database.Target == "" {
		c.Database.Target = c.Database.Driver
	}
	if c.Database.Port == 0 {
		switch c.Database.Driver {
		case "mysql":
			c.Database.Port = 3306
		case "postgres":
			c.Database.Port = 5432
		}
	}

	if c.Tunnel.Binary == "" {
		c.Tunnel.Binary = "ssh"
	}
	if c.Tunnel.RemoteHost == "" {
		c.Tunnel.RemoteHost = "127.0.0.1"
	}
	if c.Tunnel.RemotePort == 0 {
		c.Tunnel.RemotePort = c.Database.Port
	}
	if c.Tunnel.LocalPort == 0 {
		c.Tunnel.LocalPort = c.Database.Port
	}
	if c.Tunnel.ReadyTimeout == 0 {
		c.Tunnel.ReadyTimeout = 10 * time.Second
	}
	if c.Tunnel.PollInterval == 0 {
		c.Tunnel.PollInterval = 200 * time.Millisecond
	}

	if c.Lookup.ReferenceBaseURL == "" {
		c.Lookup.ReferenceBaseURL = "https://www.imdb.com"
	}
	if c.Lookup.Timeout == 0 {
		c.Lookup.Timeout = 10 * time.Second
	}
	if c.Lookup.CacheTTL == 0 {
		c.Lookup.CacheTTL = 24 * time.Hour
	}

	if c.Ingest.Directory == "" {
		c.Ingest.Directory = "."
	}
	if c.Ingest.Extension == "" {
		c.Ingest.Extension = ".mp4"
	}
	if c.Ingest.FFProbe == "" {
		c.Ingest.FFProbe = "ffprobe"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 10
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = 28
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 3
	}
}

// Conn returns the store connection settings. With a tunnel, the store is
// reached through the local end of the forward.
func (c *Config) Conn() library.ConnConfig {
	conn := library.ConnConfig{
		Driver:   c.Database.Driver,
		Path:     c.Database.Path,
		Host:     c.Database.Host,
		Port:     c.Database.Port,
		User:     c.Database.User,
		Password: c.Database.Password,
		Name:     c.Database.Name,
		Params:   c.Database.Params,
	}
	if c.Tunnel.Enabled {
		conn.Host = "127.0.0.1"
		conn.Port = c.Tunnel.LocalPort
	}
	return conn
}

// Forward returns the tunnel settings.
func (t TunnelConfig) Forward() tunnel.Config {
	return tunnel.Config{
		Binary:       t.Binary,
		Destination:  t.Destination,
		LocalPort:    t.LocalPort,
		RemoteHost:   t.RemoteHost,
		RemotePort:   t.RemotePort,
		ReadyTimeout: t.ReadyTimeout,
		PollInterval: t.PollInterval,
	}
}

// substituteEnvVars replaces ${VAR} and ${VAR:-default} with environment
// variable values. Unset variables without a default are left unchanged and
// returned, sorted and deduplicated.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

func substituteEnvVars(content string) (string, []string) {
	seen := map[string]bool{}
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, hasDefault, def := groups[1], groups[2] != "", groups[3]
		value, ok := os.LookupEnv(name)
		if ok && (value != "" || !hasDefault) {
			return value
		}
		if hasDefault {
			return def
		}
		seen[name] = true
		return match
	})

	missing := make([]string, 0, len(seen))
	for name := range seen {
		missing = append(missing, name)
	}
	sort.Strings(missing)
	return out, missing
}

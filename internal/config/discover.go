package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./movieshelf.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "movieshelf", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. MOVIESHELF_CONFIG environment variable
//  2. ./movieshelf.toml (current directory)
//  3. $XDG_CONFIG_HOME/movieshelf/config.toml
//  4. /etc/movieshelf/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv("MOVIESHELF_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("MOVIESHELF_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./movieshelf.toml",
		DefaultPath(),
		"/etc/movieshelf/config.toml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, formatPaths(paths))
}

func formatPaths(paths []string) string {
	return strings.Join(paths, ", ")
}

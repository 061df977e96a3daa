package config

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default_config.toml
var defaultConfig string

// ErrExists is returned when a write would replace an existing file.
var ErrExists = errors.New("config file already exists")

const writtenHeader = `# movieshelf configuration written by "movieshelf config init --from-current".
# Environment references were resolved when this file was written.

`

// WriteDefault writes the example config, with its comments, to path.
// An existing file is only replaced when overwrite is set.
func WriteDefault(path string, overwrite bool) error {
	return writeFile(path, overwrite, 0o644, func(w *bufio.Writer) error {
		_, err := w.WriteString(defaultConfig)
		return err
	})
}

// Write encodes the effective configuration as TOML. The file may hold a
// resolved database password or API key, so it is only readable by the owner.
func (c *Config) Write(path string, overwrite bool) error {
	return writeFile(path, overwrite, 0o600, func(w *bufio.Writer) error {
		if _, err := w.WriteString(writtenHeader); err != nil {
			return err
		}
		return toml.NewEncoder(w).Encode(c)
	})
}

// writeFile renders into a temporary file next to path and renames it into
// place, so a failed encode never leaves a truncated config behind.
func writeFile(path string, overwrite bool, perm os.FileMode, render func(*bufio.Writer) error) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".movieshelf-*.toml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	w := bufio.NewWriter(tmp)
	if err := render(w); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("render config: %w", err)
	}
	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write config: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("install config: %w", err)
	}
	return nil
}

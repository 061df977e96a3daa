package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "movieshelf", "config.toml")
	require.NoError(t, WriteDefault(path, false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, section := range []string{"[database]", "[tunnel]", "[lookup]", "[ingest]", "[log]"} {
		assert.Contains(t, string(content), section)
	}
}

// The shipped example must load and validate as-is.
func TestWriteDefault_Loads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Database.Target)
	assert.False(t, cfg.Tunnel.Enabled)
	assert.False(t, cfg.Lookup.Enabled)
}

func TestWriteDefault_Exists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0o644))

	err := WriteDefault(path, false)
	assert.ErrorIs(t, err, ErrExists)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(content))

	require.NoError(t, WriteDefault(path, true))
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[database]")
}

func TestConfig_Write(t *testing.T) {
	cfg := Default()
	cfg.Database.Target = "pi"
	cfg.Ingest.Category = "comedy"
	cfg.Tunnel.ReadyTimeout = 15 * time.Second

	path := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, cfg.Write(path, false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "# movieshelf configuration"))

	loaded, err := LoadWithoutValidation(path)
	require.NoError(t, err)
	assert.Equal(t, "pi", loaded.Database.Target)
	assert.Equal(t, "comedy", loaded.Ingest.Category)
	assert.Equal(t, 15*time.Second, loaded.Tunnel.ReadyTimeout)
	assert.Equal(t, cfg.Lookup.CacheTTL, loaded.Lookup.CacheTTL)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp file left behind")
}

func TestConfig_Write_Exists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0o644))

	assert.ErrorIs(t, Default().Write(path, false), ErrExists)
	require.NoError(t, Default().Write(path, true))
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/movieshelf/internal/config"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		configPath, logLevel = "", ""
		forceInit, fromCurrent = false, false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigInit_FromCurrent(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, filepath.Join(dir, "src.toml"), `
[database]
target = "pi"
path = "/srv/library.db"

[ingest]
category = "documentary"
`)
	dst := filepath.Join(dir, "effective.toml")

	out, err := executeRoot(t, "config", "init", "--from-current", "--config", src, "--log-level", "debug", dst)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+dst)

	cfg, err := config.Load(dst)
	require.NoError(t, err)
	assert.Equal(t, "pi", cfg.Database.Target)
	assert.Equal(t, "/srv/library.db", cfg.Database.Path)
	assert.Equal(t, "documentary", cfg.Ingest.Category)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	dst := writeFile(t, filepath.Join(t.TempDir(), "config.toml"), "# mine\n")

	_, err := executeRoot(t, "config", "init", dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists (use --force to overwrite)")

	content, rerr := os.ReadFile(dst)
	require.NoError(t, rerr)
	assert.Equal(t, "# mine\n", string(content))
}

func TestConfigTest_ShowsParsedBeforeErrors(t *testing.T) {
	src := writeFile(t, filepath.Join(t.TempDir(), "bad.toml"), `
[database]
driver = "oracle"
`)

	out, err := executeRoot(t, "config", "test", src)
	require.Error(t, err)
	assert.Contains(t, out, "Validating "+src)

	summary := strings.Index(out, "Configuration Summary:")
	errs := strings.Index(out, "Validation errors:")
	require.GreaterOrEqual(t, summary, 0)
	require.GreaterOrEqual(t, errs, 0)
	assert.Less(t, summary, errs)
	assert.Contains(t, out, "oracle")
	assert.Contains(t, out, `database.driver: must be one of sqlite, mysql, postgres; got "oracle"`)
}

func TestConfigTest_Valid(t *testing.T) {
	src := writeFile(t, filepath.Join(t.TempDir(), "ok.toml"), `
[database]
path = "/srv/library.db"
`)

	out, err := executeRoot(t, "config", "test", src)
	require.NoError(t, err)
	assert.Contains(t, out, "/srv/library.db")
	assert.Contains(t, out, "Configuration valid!")
}

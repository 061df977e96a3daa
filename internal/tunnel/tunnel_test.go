package tunnel

import (
	"context"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSSH writes a script that ignores its ssh arguments and runs body.
func fakeSSH(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ssh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func TestConfig_Args(t *testing.T) {
	cfg := Config{Destination: "web@example.org", LocalPort: 3307, RemoteHost: "127.0.0.1", RemotePort: 3306}
	assert.Equal(t, []string{"web@example.org", "-L", "3307:127.0.0.1:3306", "-N"}, cfg.Args())
	assert.Equal(t, "127.0.0.1:3307", cfg.LocalAddr())
}

func TestOpen_ReadyAndClose(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	cfg := Config{
		Binary:       fakeSSH(t, "exec sleep 30"),
		Destination:  "web@example.org",
		LocalPort:    l.Addr().(*net.TCPAddr).Port,
		RemoteHost:   "127.0.0.1",
		RemotePort:   3306,
		ReadyTimeout: 5 * time.Second,
		PollInterval: 20 * time.Millisecond,
	}
	tun, err := Open(context.Background(), cfg, quietLogger())
	require.NoError(t, err)
	assert.Positive(t, tun.Pid())
	assert.True(t, alive(tun.Pid()))

	require.NoError(t, tun.Close())
	assert.False(t, alive(tun.Pid()))
}

func TestOpen_NotReady(t *testing.T) {
	cfg := Config{
		Binary:       fakeSSH(t, "exec sleep 30"),
		LocalPort:    freePort(t),
		ReadyTimeout: 150 * time.Millisecond,
		PollInterval: 20 * time.Millisecond,
	}
	start := time.Now()
	_, err := Open(context.Background(), cfg, quietLogger())
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestOpen_ProcessExits(t *testing.T) {
	cfg := Config{
		Binary:       fakeSSH(t, "exit 255"),
		LocalPort:    freePort(t),
		ReadyTimeout: 5 * time.Second,
		PollInterval: 20 * time.Millisecond,
	}
	_, err := Open(context.Background(), cfg, quietLogger())
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestOpen_MissingBinary(t *testing.T) {
	_, err := Open(context.Background(), Config{Binary: "/nonexistent/ssh"}, quietLogger())
	assert.Error(t, err)
}

// Package tunnel runs an ssh port forward to reach a database that is not
// directly reachable.
package tunnel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/exec"
	"strconv"
	"time"

	"golang.org/x/sys/unix"
)

var (
	// ErrNotReady indicates the forwarded port never accepted connections.
	ErrNotReady = errors.New("tunnel not ready")

	// ErrStillRunning indicates the tunnel process survived teardown.
	ErrStillRunning = errors.New("tunnel process still running")
)

const (
	defaultReadyTimeout = 10 * time.Second
	defaultPollInterval = 200 * time.Millisecond
	stopTimeout         = 5 * time.Second
)

// Config describes the port forward.
type Config struct {
	Binary       string // default "ssh"
	Destination  string // user@host
	LocalPort    int
	RemoteHost   string
	RemotePort   int
	ReadyTimeout time.Duration
	PollInterval time.Duration
}

// Args returns the ssh arguments of the forward.
func (c Config) Args() []string {
	forward := fmt.Sprintf("%d:%s:%d", c.LocalPort, c.RemoteHost, c.RemotePort)
	return []string{c.Destination, "-L", forward, "-N"}
}

// LocalAddr is the address the forward listens on.
func (c Config) LocalAddr() string {
	return net.JoinHostPort("127.0.0.1", strconv.Itoa(c.LocalPort))
}

// Tunnel is a running port forward.
type Tunnel struct {
	cmd  *exec.Cmd
	pid  int
	done chan error
	log  *slog.Logger
}

// Open starts the forward in the background and waits until the local port
// accepts connections or ReadyTimeout passes.
func Open(ctx context.Context, cfg Config, log *slog.Logger) (*Tunnel, error) {
	if log == nil {
		log = slog.Default()
	}
	binary := cfg.Binary
	if binary == "" {
		binary = "ssh"
	}
	if cfg.ReadyTimeout <= 0 {
		cfg.ReadyTimeout = defaultReadyTimeout
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}

	// Not bound to ctx: the tunnel outlives the readiness wait.
	cmd := exec.Command(binary, cfg.Args()...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start tunnel: %w", err)
	}

	t := &Tunnel{
		cmd:  cmd,
		pid:  cmd.Process.Pid,
		done: make(chan error, 1),
		log:  log,
	}
	go func() { t.done <- cmd.Wait() }()
	log.Info("tunnel started", "pid", t.pid, "destination", cfg.Destination, "local_addr", cfg.LocalAddr())

	if err := t.waitReady(ctx, cfg); err != nil {
		_ = t.kill()
		return nil, err
	}
	log.Info("tunnel ready", "pid", t.pid)
	return t, nil
}

func (t *Tunnel) waitReady(ctx context.Context, cfg Config) error {
	deadline := time.NewTimer(cfg.ReadyTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	addr := cfg.LocalAddr()
	for {
		conn, err := net.DialTimeout("tcp", addr, cfg.PollInterval)
		if err == nil {
			_ = conn.Close()
			return nil
		}

		select {
		case err := <-t.done:
			t.done <- err
			return fmt.Errorf("%w: process exited: %v", ErrNotReady, err)
		case <-deadline.C:
			return fmt.Errorf("%w: %s not reachable after %s", ErrNotReady, addr, cfg.ReadyTimeout)
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Pid returns the process id of the tunnel.
func (t *Tunnel) Pid() int { return t.pid }

// Close terminates the tunnel and verifies the process is gone.
func (t *Tunnel) Close() error {
	if err := unix.Kill(t.pid, unix.SIGTERM); err != nil && !errors.Is(err, unix.ESRCH) {
		t.log.Warn("signal tunnel", "pid", t.pid, "error", err)
	}

	select {
	case <-t.done:
	case <-time.After(stopTimeout):
		t.log.Warn("tunnel ignored SIGTERM", "pid", t.pid)
		if err := t.kill(); err != nil {
			return err
		}
	}

	if alive(t.pid) {
		return fmt.Errorf("pid %d: %w", t.pid, ErrStillRunning)
	}
	t.log.Info("tunnel closed", "pid", t.pid)
	return nil
}

func (t *Tunnel) kill() error {
	if err := t.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("kill tunnel: %w", err)
	}
	select {
	case <-t.done:
	case <-time.After(stopTimeout):
	}
	return nil
}

// alive reports whether a process with the pid exists.
func alive(pid int) bool {
	err := unix.Kill(pid, 0)
	return err == nil || errors.Is(err, unix.EPERM)
}

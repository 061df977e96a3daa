package persist

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vmunix/movieshelf/internal/library"
)

// TunnelFunc opens the tunnel a remote database is reached through.
type TunnelFunc func(ctx context.Context) (io.Closer, error)

// Dispatcher connects to the library database, optionally through a tunnel,
// and persists a batch over a single connection.
type Dispatcher struct {
	conn   library.ConnConfig
	tunnel TunnelFunc // nil when the database is reachable directly
	coord  *Coordinator
	log    *slog.Logger
}

// NewDispatcher creates a dispatcher. tunnel may be nil.
func NewDispatcher(conn library.ConnConfig, tunnel TunnelFunc, coord *Coordinator, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{conn: conn, tunnel: tunnel, coord: coord, log: log}
}

// Dispatch opens the tunnel and the database, writes the batch and closes
// both again. Connection failures are returned; insert failures are in the
// report.
func (d *Dispatcher) Dispatch(ctx context.Context, b Batch) (*Report, error) {
	if d.conn.Driver == "" {
		return nil, ErrNoStore
	}

	if d.tunnel != nil {
		t, err := d.tunnel(ctx)
		if err != nil {
			return nil, fmt.Errorf("open tunnel: %w", err)
		}
		defer func() {
			if cerr := t.Close(); cerr != nil {
				d.log.Warn("close tunnel", "error", cerr)
			}
		}()
	}

	db, dialect, err := library.Open(ctx, d.conn)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			d.log.Warn("close database", "error", cerr)
		}
	}()
	d.log.Info("database connected", "driver", dialect)

	return d.coord.Persist(ctx, library.NewStore(db, dialect), b)
}

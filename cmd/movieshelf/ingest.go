package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vmunix/movieshelf/internal/config"
	"github.com/vmunix/movieshelf/internal/ingest"
	"github.com/vmunix/movieshelf/internal/library"
	"github.com/vmunix/movieshelf/internal/lookup"
	"github.com/vmunix/movieshelf/internal/persist"
	"github.com/vmunix/movieshelf/internal/probe"
	"github.com/vmunix/movieshelf/internal/tunnel"
)

var (
	ingestDir       string
	ingestCategory  string
	ingestExtension string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Scan a directory and write the confirmed records",
	Args:  cobra.NoArgs,
	RunE:  runIngest,
}

func init() {
	addIngestFlags(ingestCmd)
	rootCmd.AddCommand(ingestCmd)
}

func addIngestFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&ingestDir, "dir", "d", "", "Directory to read (default: ingest.directory)")
	cmd.Flags().StringVar(&ingestCategory, "category", "", "movie, comedy, documentary or episode (default: ask)")
	cmd.Flags().StringVar(&ingestExtension, "extension", "", "Media file extension (default: ingest.extension)")
}

// dispatchFunc adapts a function to ingest.Dispatcher.
type dispatchFunc func(ctx context.Context, b persist.Batch) (*persist.Report, error)

func (f dispatchFunc) Dispatch(ctx context.Context, b persist.Batch) (*persist.Report, error) {
	return f(ctx, b)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(cmd.ErrOrStderr(), configErr)
			return fmt.Errorf("configuration invalid: %s", path)
		}
		return err
	}

	log, closer, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = closer.Close() }()
	if path != "" {
		log.Debug("config loaded", "path", path)
	}

	settings, err := ingestSettings(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	builder := ingest.NewBuilder(probe.New(cfg.Ingest.FFProbe, log), newResolver(cfg.Lookup, log), log)
	con := newConsole(cmd.InOrStdin(), cmd.OutOrStdout(), settings.Directory)

	// The category is only final once the run has collected its settings.
	var orch *ingest.Orchestrator
	dispatch := dispatchFunc(func(ctx context.Context, b persist.Batch) (*persist.Report, error) {
		coord := persist.New(orch.Settings().Category, log)
		return persist.NewDispatcher(cfg.Conn(), newTunnelFunc(cfg.Tunnel, log), coord, log).Dispatch(ctx, b)
	})
	orch = ingest.New(settings, builder, con, con, dispatch, log)

	res, err := orch.Run(ctx)
	if errors.Is(err, ingest.ErrQuit) {
		fmt.Fprintln(cmd.OutOrStdout(), "Quit by user")
		return nil
	}
	if err != nil {
		return err
	}

	log.Info("run finished", "state", res.State.String())
	if res.Report != nil && !res.Report.OK() {
		return fmt.Errorf("%d unit(s) could not be written", len(res.Report.Failures))
	}
	return nil
}

// ingestSettings merges the ingest flags over the config.
func ingestSettings(cfg *config.Config) (ingest.Settings, error) {
	dir := cfg.Ingest.Directory
	if ingestDir != "" {
		dir = ingestDir
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ingest.Settings{}, fmt.Errorf("resolve directory: %w", err)
	}
	if info, err := os.Stat(abs); err != nil {
		return ingest.Settings{}, fmt.Errorf("directory to read: %w", err)
	} else if !info.IsDir() {
		return ingest.Settings{}, fmt.Errorf("directory to read: %s is not a directory", abs)
	}

	category := library.Category(cfg.Ingest.Category)
	if ingestCategory != "" {
		category = library.Category(ingestCategory)
		if !category.Valid() {
			return ingest.Settings{}, fmt.Errorf("unknown category %q", ingestCategory)
		}
	}

	ext := cfg.Ingest.Extension
	if ingestExtension != "" {
		ext = ingestExtension
	}

	return ingest.Settings{
		Target:         cfg.Database.Target,
		TunnelRequired: cfg.Tunnel.Enabled,
		Directory:      abs,
		Category:       category,
		Extension:      ext,
	}, nil
}

func newResolver(cfg config.LookupConfig, log *slog.Logger) lookup.Resolver {
	if !cfg.Enabled {
		return lookup.Static(cfg.ReferenceBaseURL)
	}
	opts := []lookup.Option{
		lookup.WithReferenceBase(cfg.ReferenceBaseURL),
		lookup.WithCacheTTL(cfg.CacheTTL),
		lookup.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		lookup.WithLogger(log),
	}
	if cfg.APIURL != "" {
		opts = append(opts, lookup.WithBaseURL(cfg.APIURL))
	}
	if cfg.APIHost != "" {
		opts = append(opts, lookup.WithAPIHost(cfg.APIHost))
	}
	return lookup.NewClient(cfg.APIKey, opts...)
}

// newTunnelFunc returns nil when the database is reached directly.
func newTunnelFunc(cfg config.TunnelConfig, log *slog.Logger) persist.TunnelFunc {
	if !cfg.Enabled {
		return nil
	}
	return func(ctx context.Context) (io.Closer, error) {
		t, err := tunnel.Open(ctx, cfg.Forward(), log)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

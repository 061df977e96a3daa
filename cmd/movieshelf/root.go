package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/movieshelf/internal/config"
)

var version = "dev"

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "movieshelf",
	Short: "Catalogue local video files into the media library database",
	Long: `movieshelf - catalogue local video files into the media library database

Scans a directory for video files and season subdirectories, derives
records from their names and technical metadata, asks for confirmation
at every step and writes what was confirmed to the library database.

Running movieshelf without a command starts an ingest run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runIngest,
}

// Execute runs the root command and exits with its status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	addIngestFlags(rootCmd)

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("movieshelf {{.Version}}\n")
}

// loadConfig loads the --config file, or the discovered one. Without any
// config file the defaults are used.
func loadConfig() (*config.Config, string, error) {
	path := configPath
	if path == "" {
		found, err := config.Discover()
		if errors.Is(err, config.ErrNotFound) {
			return applyOverrides(config.Default()), "", nil
		}
		if err != nil {
			return nil, "", err
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, err
	}
	return applyOverrides(cfg), path, nil
}

func applyOverrides(cfg *config.Config) *config.Config {
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg
}

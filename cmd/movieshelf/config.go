package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/movieshelf/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the example configuration",
	Long: `Writes the example configuration to path, or to the default location.
With --from-current the effective configuration (file, defaults and overrides)
is written instead of the example.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates TOML syntax, required fields and environment variable substitution without touching the library.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var (
	forceInit   bool
	fromCurrent bool
)

func init() {
	configInitCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing file")
	configInitCmd.Flags().BoolVar(&fromCurrent, "from-current", false, "Write the effective configuration instead of the example")
	configCmd.AddCommand(configInitCmd, configTestCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}

	var err error
	if fromCurrent {
		cfg, _, lerr := loadConfig()
		if lerr != nil {
			return fmt.Errorf("load current config: %w", lerr)
		}
		err = cfg.Write(path, forceInit)
	} else {
		err = config.WriteDefault(path, forceInit)
	}
	if errors.Is(err, config.ErrExists) {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		configPath = args[0]
	}
	out := cmd.OutOrStdout()

	cfg, path, err := loadConfig()
	if err != nil {
		var configErr *config.ConfigError
		if !errors.As(err, &configErr) {
			return fmt.Errorf("failed to load config: %w", err)
		}
		fmt.Fprintf(out, "Validating %s...\n\n", path)
		// The file parsed, so show what was read before what is wrong with it.
		if parsed, perr := config.LoadWithoutValidation(path); perr == nil {
			printConfigSummary(out, applyOverrides(parsed))
			fmt.Fprintln(out)
		}
		printConfigErrors(out, configErr)
		return fmt.Errorf("configuration invalid")
	}

	if path == "" {
		fmt.Fprintln(out, "No config file found, using defaults.")
	} else {
		fmt.Fprintf(out, "Validating %s...\n\n", path)
	}
	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	db := cfg.Database
	if db.Driver == "sqlite" || db.Driver == "sqlite3" {
		fmt.Fprintf(w, "  Database:   %s (%s %s)\n", db.Target, db.Driver, db.Path)
	} else {
		fmt.Fprintf(w, "  Database:   %s (%s %s@%s:%d/%s)\n", db.Target, db.Driver, db.User, db.Host, db.Port, db.Name)
	}
	if cfg.Tunnel.Enabled {
		fmt.Fprintf(w, "  Tunnel:     %s, local port %d\n", cfg.Tunnel.Destination, cfg.Tunnel.LocalPort)
	}
	if cfg.Lookup.Enabled {
		fmt.Fprintf(w, "  Lookup:     %s\n", cfg.Lookup.APIURL)
	}
	category := cfg.Ingest.Category
	if category == "" {
		category = "ask"
	}
	fmt.Fprintf(w, "  Ingest:     %s (*%s, category: %s)\n", cfg.Ingest.Directory, cfg.Ingest.Extension, category)
	fmt.Fprintf(w, "  Log:        %s\n", cfg.Log.Level)
}

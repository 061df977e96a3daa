package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/movieshelf/internal/library"
	"github.com/vmunix/movieshelf/internal/migrations"
)

var schemaApply bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the library schema, or create it in a SQLite database",
	Args:  cobra.NoArgs,
	RunE:  runSchema,
}

func init() {
	schemaCmd.Flags().BoolVar(&schemaApply, "apply", false, "Create the tables in the configured SQLite database")
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, _ []string) error {
	if !schemaApply {
		fmt.Fprint(cmd.OutOrStdout(), migrations.Schema)
		return nil
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	conn := cfg.Conn()
	dialect, err := library.DialectFor(conn.Driver)
	if err != nil {
		return err
	}
	if dialect != library.DialectSQLite {
		return fmt.Errorf("schema is written for sqlite, database driver is %s", conn.Driver)
	}

	db, _, err := library.Open(cmd.Context(), conn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if _, err := db.ExecContext(cmd.Context(), migrations.Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created library tables in %s\n", conn.Path)
	return nil
}

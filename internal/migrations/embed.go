// Package migrations provides the embedded SQL schema of the library tables.
package migrations

import (
	_ "embed"
)

// Schema creates the six library tables in the SQLite dialect.
//
//go:embed sql/schema.sql
var Schema string

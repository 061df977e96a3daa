package library

import (
	"database/sql"
	"fmt"
)

// querier abstracts *sql.DB and *sql.Tx for shared query logic.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

// conn pairs a querier with the dialect its statements are written in.
type conn struct {
	q querier
	d Dialect
}

func (c conn) queryRow(query string, args ...any) *sql.Row {
	return c.q.QueryRow(c.d.rebind(query), args...)
}

func (c conn) query(query string, args ...any) (*sql.Rows, error) {
	return c.q.Query(c.d.rebind(query), args...)
}

func (c conn) exec(query string, args ...any) (sql.Result, error) {
	return c.q.Exec(c.d.rebind(query), args...)
}

// Store provides access to the library tables.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// NewStore creates a new library store. Statements are written with "?"
// placeholders and rebound for the dialect.
func NewStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

// Dialect returns the SQL dialect of the store.
func (s *Store) Dialect() Dialect { return s.dialect }

func (s *Store) conn() conn { return conn{q: s.db, d: s.dialect} }

// Begin starts a transaction.
func (s *Store) Begin() (*Tx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &Tx{tx: tx, dialect: s.dialect}, nil
}

// Tx wraps a database transaction with the same methods as Store.
type Tx struct {
	tx      *sql.Tx
	dialect Dialect
}

func (t *Tx) conn() conn { return conn{q: t.tx, d: t.dialect} }

// Commit commits the transaction.
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction.
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

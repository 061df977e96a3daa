package library

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

var (
	// ErrNotFound indicates the requested row doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = errors.New("duplicate entry")

	// ErrConstraint indicates a foreign key or check constraint violation.
	ErrConstraint = errors.New("constraint violation")

	// ErrUnsupportedDriver indicates a database driver without a dialect.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrNoSeasonColumn indicates a season link on a table without seizoenId.
	ErrNoSeasonColumn = errors.New("table has no season column")

	// ErrWrongTable indicates a row written to a table of another kind.
	ErrWrongTable = errors.New("wrong table for record")
)

// MySQL server error numbers.
const (
	mysqlDupEntry        = 1062
	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
	mysqlCheckViolated   = 3819
)

// mapError converts driver errors to the package sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDupEntry:
			return errors.Join(ErrDuplicate, err)
		case mysqlRowIsReferenced, mysqlNoReferencedRow, mysqlCheckViolated:
			return errors.Join(ErrConstraint, err)
		}
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "23":
			if pqErr.Code == "23505" {
				return errors.Join(ErrDuplicate, err)
			}
			return errors.Join(ErrConstraint, err)
		}
		return err
	}

	// modernc.org/sqlite wraps errors; check the message for constraint violations
	errStr := err.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "PRIMARY KEY constraint failed") {
		return errors.Join(ErrDuplicate, err)
	}
	if strings.Contains(errStr, "FOREIGN KEY constraint failed") ||
		strings.Contains(errStr, "CHECK constraint failed") ||
		strings.Contains(errStr, "NOT NULL constraint failed") {
		return errors.Join(ErrConstraint, err)
	}
	return err
}

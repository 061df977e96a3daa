package library

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect describes the SQL differences between the supported drivers.
type Dialect struct {
	driver    string
	numbered  bool // $1, $2, ... placeholders
	returning bool // generated ids come from INSERT ... RETURNING id
}

var (
	DialectSQLite   = Dialect{driver: "sqlite"}
	DialectMySQL    = Dialect{driver: "mysql"}
	DialectPostgres = Dialect{driver: "postgres", numbered: true, returning: true}
)

// DialectFor returns the dialect of a database/sql driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "mysql":
		return DialectMySQL, nil
	case "postgres":
		return DialectPostgres, nil
	default:
		return Dialect{}, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// Driver returns the database/sql driver name.
func (d Dialect) Driver() string { return d.driver }

func (d Dialect) String() string { return d.driver }

// rebind rewrites "?" placeholders for drivers that number them.
func (d Dialect) rebind(query string) string {
	if !d.numbered || !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// insert writes one row and returns its generated id.
func (c conn) insert(table Table, columns []string, args []any) (int64, error) {
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), placeholders(len(columns)))

	if c.d.returning {
		var id int64
		if err := c.queryRow(query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("insert into %s: %w", table, mapError(err))
		}
		return id, nil
	}

	result, err := c.exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert into %s: %w", table, mapError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id: %w", err)
	}
	return id, nil
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}

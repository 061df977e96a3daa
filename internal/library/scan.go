package library

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// dateValue scans the "toegevoegd" columns, which drivers return as text,
// bytes or time.Time depending on the column type.
type dateValue struct{ t *time.Time }

func (d dateValue) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d.t = time.Time{}
		return nil
	case time.Time:
		*d.t = v
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
}

func (d dateValue) parse(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("scan date: %w", err)
	}
	*d.t = t
	return nil
}

var _ sql.Scanner = dateValue{}

// pageClause returns the LIMIT/OFFSET suffix of a list query.
func pageClause(limit, offset int) string {
	if limit <= 0 {
		return ""
	}
	return fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)
}

func whereClause(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}

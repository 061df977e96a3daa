package library

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// ConnConfig describes how to reach the library database.
type ConnConfig struct {
	Driver   string // sqlite, mysql or postgres
	Path     string // sqlite only
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	Params   map[string]string
}

// DSN builds the driver-specific data source name.
func (c ConnConfig) DSN() (string, error) {
	d, err := DialectFor(c.Driver)
	if err != nil {
		return "", err
	}
	addr := net.JoinHostPort(c.Host, strconv.Itoa(c.Port))

	switch d {
	case DialectMySQL:
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = addr
		mc.DBName = c.Name
		if len(c.Params) > 0 {
			mc.Params = c.Params
		}
		return mc.FormatDSN(), nil

	case DialectPostgres:
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(c.User, c.Password),
			Host:   addr,
			Path:   "/" + c.Name,
		}
		q := url.Values{}
		for k, v := range c.Params {
			q.Set(k, v)
		}
		if q.Get("sslmode") == "" {
			q.Set("sslmode", "disable")
		}
		u.RawQuery = q.Encode()
		return u.String(), nil

	default:
		path := c.Path
		if path == "" {
			path = ":memory:"
		}
		q := url.Values{}
		q.Add("_pragma", "foreign_keys(1)")
		for k, v := range c.Params {
			q.Add(k, v)
		}
		return path + "?" + q.Encode(), nil
	}
}

// Open connects to the library database and verifies the connection.
func Open(ctx context.Context, cfg ConnConfig) (*sql.DB, Dialect, error) {
	d, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, Dialect{}, err
	}
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, Dialect{}, err
	}

	db, err := sql.Open(d.Driver(), dsn)
	if err != nil {
		return nil, Dialect{}, fmt.Errorf("open %s database: %w", d, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, Dialect{}, fmt.Errorf("connect %s database: %w", d, err)
	}

	// One run writes sequentially over a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return db, d, nil
}

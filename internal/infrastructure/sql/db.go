package sql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"log_report/internal/domain/report"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// sqliteDriver это go-sqlite3 с функциями postgres, которые нужны каталогу запросов.
const sqliteDriver = "sqlite3_report"

func init() {
	sql.Register(sqliteDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("date_trunc", dateTrunc, true)
		},
	})
}

// driverName maps a configured driver onto a registered database/sql driver.
// postgres goes through pgx, which resolves host, user and sslmode from the
// PG* environment and the local socket directory the same way libpq does.
func driverName(driver string) string {
	switch driver {
	case "postgres":
		return "pgx"
	case "sqlite3":
		return sqliteDriver
	}
	return driver
}

// DB wraps *sql.DB to satisfy the QueryExecutor interface.
type DB struct {
	*sql.DB
	Logger *logrus.Logger
}

// Open opens and pings a database handle. Supported drivers are
// "postgres" (pgx) and "sqlite3" (go-sqlite3).
func Open(driver, dsn string, logger *logrus.Logger) (*DB, error) {
	db, err := sql.Open(driverName(driver), dsn)
	if err != nil {
		return nil, &report.ConnectionError{Cause: err}
	}

	// без таймаута: ждём столько, сколько ждёт драйвер
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &report.ConnectionError{Cause: err}
	}

	return &DB{DB: db, Logger: logger}, nil
}

// Execute runs the queries in order on a single connection and returns
// one result set per query. The connection and the handle are closed when
// Execute returns, so a DB serves exactly one run.
func (d *DB) Execute(ctx context.Context, queries []string) (results []report.ResultSet, err error) {
	defer func() {
		if cerr := d.DB.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close database: %w", cerr)
		}
	}()

	conn, err := d.Conn(ctx)
	if err != nil {
		return nil, &report.ConnectionError{Cause: err}
	}
	defer conn.Close()

	results = make([]report.ResultSet, 0, len(queries))
	for i, q := range queries {
		start := time.Now()
		rs, err := collect(ctx, conn, q)
		if err != nil {
			return nil, &report.QueryError{Index: i, Query: q, Cause: err}
		}
		d.logger().WithFields(logrus.Fields{
			"query_index": i + 1,
			"rows":        len(rs),
			"duration":    time.Since(start),
		}).Debug("Запрос выполнен")
		results = append(results, rs)
	}
	return results, nil
}

func collect(ctx context.Context, conn *sql.Conn, query string) (report.ResultSet, error) {
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	rs := make(report.ResultSet, 0)
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range ptrs {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		rs = append(rs, report.Row(vals))
	}
	return rs, rows.Err()
}

func (d *DB) logger() *logrus.Logger {
	if d.Logger == nil {
		return logrus.StandardLogger()
	}
	return d.Logger
}

// dateTrunc is date_trunc(unit, ts) for sqlite. Timestamps are stored as
// text, so only the "YYYY-MM-DD" prefix matters.
func dateTrunc(unit string, ts any) (any, error) {
	var s string
	switch v := ts.(type) {
	case nil:
		return nil, nil
	case []byte:
		if v == nil {
			return nil, nil
		}
		s = string(v)
	case string:
		s = v
	default:
		return nil, fmt.Errorf("date_trunc: unsupported value %T", ts)
	}
	if len(s) < 10 {
		return nil, fmt.Errorf("date_trunc: bad timestamp %q", s)
	}
	t, err := time.Parse(time.DateOnly, s[:10])
	if err != nil {
		return nil, fmt.Errorf("date_trunc: %w", err)
	}

	switch unit {
	case "day":
	case "month":
		t = t.AddDate(0, 0, 1-t.Day())
	case "year":
		t = time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return nil, fmt.Errorf("date_trunc: unsupported unit %q", unit)
	}
	return t.Format(time.DateTime), nil
}

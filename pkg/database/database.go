package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// Supported drivers.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Open connects to the blog database and verifies the connection.
//
// For MySQL the DSN is go-sql-driver format (user:pass@tcp(host:3306)/db).
// Time parsing is enabled and multi-statement execution is forced off, so
// only the single INSERT can ever run. For SQLite the DSN is a file path or
// ":memory:".
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is required")
	}

	var db *sql.DB
	switch driver {
	case DriverMySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("invalid MySQL DSN: %w", err)
		}
		cfg.ParseTime = true
		cfg.MultiStatements = false
		connector, err := mysql.NewConnector(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create MySQL connector: %w", err)
		}
		db = sql.OpenDB(connector)
	case DriverSQLite:
		var err error
		db, err = sql.Open(DriverSQLite, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}
		// In-memory databases are per connection.
		db.SetMaxOpenConns(1)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	slog.Debug("database connected", "driver", driver)
	return db, nil
}

// Apply executes a generated INSERT statement once and returns the number
// of rows inserted. Leading "--" comment lines are dropped first.
func Apply(ctx context.Context, db *sql.DB, stmt string) (int64, error) {
	body := stripLeadingComments(stmt)
	if body == "" {
		return 0, fmt.Errorf("empty statement")
	}

	res, err := db.ExecContext(ctx, body)
	if err != nil {
		return 0, fmt.Errorf("failed to execute insert: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n, nil
}

// SlugKey identifies a stored article for skip-existing checks. Lang is
// empty when articles are matched by slug alone.
type SlugKey struct {
	Slug string
	Lang string
}

// ExistingSlugs returns the key of every article currently stored in table.
// With byLanguage the lang column is part of the key, matching the
// UNIQUE (slug, lang) layout; otherwise only slugs are read.
func ExistingSlugs(ctx context.Context, db *sql.DB, table string, byLanguage bool) (map[SlugKey]struct{}, error) {
	if !identPattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	query := "SELECT slug FROM " + table
	if byLanguage {
		query = "SELECT slug, lang FROM " + table
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query slugs: %w", err)
	}
	defer rows.Close()

	keys := make(map[SlugKey]struct{})
	for rows.Next() {
		var key SlugKey
		dest := []any{&key.Slug}
		if byLanguage {
			dest = append(dest, &key.Lang)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan slug: %w", err)
		}
		keys[key] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read slugs: %w", err)
	}
	return keys, nil
}

func stripLeadingComments(stmt string) string {
	for {
		stmt = strings.TrimLeft(stmt, " \t\r\n")
		if !strings.HasPrefix(stmt, "--") {
			return stmt
		}
		_, rest, found := strings.Cut(stmt, "\n")
		if !found {
			return ""
		}
		stmt = rest
	}
}

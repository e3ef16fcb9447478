// Package database wraps database/sql with per-driver dialects so one set
// of repository queries runs on sqlite, postgres and mysql.
package database

import (
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Dialect captures the differences between the supported SQL backends
type Dialect interface {
	// DriverName returns the driver name for sql.Open
	DriverName() string

	// DSN returns the data source name for the connection
	DSN(config DialectConfig) string

	// RewriteQuery converts ? placeholders when the driver needs another syntax
	RewriteQuery(query string) string

	// ConfigureConnection applies pool and session settings
	ConfigureConnection(db *sql.DB) error

	// UpsertClause returns the conflict clause appended to an INSERT so that
	// an existing row keyed by key has every column in cols overwritten
	UpsertClause(key string, cols []string) string

	// TextType is the column type used for large JSON documents
	TextType() string
}

// DialectConfig holds connection parameters
type DialectConfig struct {
	// For SQLite
	Path string

	// For PostgreSQL/MySQL
	URL string
}

var placeholderRegexp = regexp.MustCompile(`\?`)

func rewritePlaceholdersToNumbered(query string) string {
	counter := 0
	return placeholderRegexp.ReplaceAllStringFunc(query, func(string) string {
		counter++
		return "$" + strconv.Itoa(counter)
	})
}

// excludedUpsert is shared by sqlite and postgres, which both accept
// ON CONFLICT ... DO UPDATE SET col = excluded.col
func excludedUpsert(key string, cols []string) string {
	sets := make([]string, 0, len(cols))
	for _, c := range cols {
		sets = append(sets, fmt.Sprintf("%s = excluded.%s", c, c))
	}
	return fmt.Sprintf(" ON CONFLICT(%s) DO UPDATE SET %s", key, strings.Join(sets, ", "))
}

func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)
}

// DialectFor resolves a backend name to its dialect
func DialectFor(name string) (Dialect, bool) {
	switch strings.ToLower(name) {
	case "sqlite", "sqlite3":
		return NewSQLiteDialect(), true
	case "postgres", "postgresql":
		return NewPostgresDialect(), true
	case "mysql":
		return NewMySQLDialect(), true
	default:
		return nil, false
	}
}

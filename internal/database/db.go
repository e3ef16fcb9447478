package database

import (
	"context"
	"database/sql"

	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
)

// DB wraps the database connection with dialect support
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Open connects with the given dialect, pings, then applies the dialect's
// connection settings
func Open(ctx context.Context, dialect Dialect, cfg DialectConfig) (*DB, error) {
	if dialect == nil {
		return nil, errors.InvalidArgument("dialect cannot be nil")
	}

	db, err := sql.Open(dialect.DriverName(), dialect.DSN(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping database")
	}

	if err := dialect.ConfigureConnection(db); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to configure connection")
	}

	return &DB{DB: db, Dialect: dialect}, nil
}

// QueryContext executes a query with placeholder rewriting
func (db *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return db.DB.QueryContext(ctx, db.Dialect.RewriteQuery(query), args...)
}

// QueryRowContext executes a single-row query with placeholder rewriting
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return db.DB.QueryRowContext(ctx, db.Dialect.RewriteQuery(query), args...)
}

// ExecContext executes a statement with placeholder rewriting
func (db *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return db.DB.ExecContext(ctx, db.Dialect.RewriteQuery(query), args...)
}

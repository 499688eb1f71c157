package driver

import (
	"context"
	"database/sql"
)

// Querier is the statement surface shared by a pool and a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (Result, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// DB abstracts a connection pool (database/sql or pgxpool).
type DB interface {
	Querier

	// Begin starts a transaction.
	Begin(ctx context.Context) (Tx, error)

	// Ping verifies the database is reachable.
	Ping(ctx context.Context) error

	// Close releases the pool.
	Close() error

	// SQLDB returns the underlying *sql.DB, or nil for pgx pools.
	SQLDB() *sql.DB
}

// Result represents the result of an Exec operation.
type Result interface {
	RowsAffected() int64
	// LastInsertId is only meaningful on drivers without RETURNING support.
	LastInsertId() (int64, error)
}

// Rows is a forward-only result set.
type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
	// Columns returns the result column names in order.
	Columns() ([]string, error)
}

type Row interface {
	Scan(dest ...any) error
}

// Tx is a database transaction.
type Tx interface {
	Querier
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

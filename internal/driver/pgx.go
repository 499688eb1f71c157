package driver

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPoolAdapter adapts *pgxpool.Pool to DB.
type PgxPoolAdapter struct {
	pool *pgxpool.Pool
}

func NewPgxPool(pool *pgxpool.Pool) DB {
	return &PgxPoolAdapter{pool: pool}
}

func (a *PgxPoolAdapter) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	tag, err := a.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &PgxResult{tag: tag}, nil
}

func (a *PgxPoolAdapter) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &PgxRows{rows: rows}, nil
}

func (a *PgxPoolAdapter) QueryRow(ctx context.Context, query string, args ...any) Row {
	return a.pool.QueryRow(ctx, query, args...)
}

func (a *PgxPoolAdapter) Begin(ctx context.Context) (Tx, error) {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &PgxTx{tx: tx}, nil
}

func (a *PgxPoolAdapter) Ping(ctx context.Context) error {
	return a.pool.Ping(ctx)
}

func (a *PgxPoolAdapter) Close() error {
	a.pool.Close()
	return nil
}

// SQLDB returns nil; pgxpool does not expose a *sql.DB.
func (a *PgxPoolAdapter) SQLDB() *sql.DB {
	return nil
}

// Pool exposes the underlying pool.
func (a *PgxPoolAdapter) Pool() *pgxpool.Pool {
	return a.pool
}

type PgxResult struct {
	tag pgconn.CommandTag
}

func (r *PgxResult) RowsAffected() int64 {
	return r.tag.RowsAffected()
}

// LastInsertId is unsupported; PostgreSQL statements use RETURNING.
func (r *PgxResult) LastInsertId() (int64, error) {
	return 0, errNoLastInsertID
}

type PgxRows struct {
	rows pgx.Rows
}

func (r *PgxRows) Close() {
	r.rows.Close()
}

func (r *PgxRows) Err() error {
	return r.rows.Err()
}

func (r *PgxRows) Next() bool {
	return r.rows.Next()
}

func (r *PgxRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *PgxRows) Columns() ([]string, error) {
	fields := r.rows.FieldDescriptions()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names, nil
}

type PgxTx struct {
	tx pgx.Tx
}

func (t *PgxTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *PgxTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *PgxTx) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	tag, err := t.tx.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &PgxResult{tag: tag}, nil
}

func (t *PgxTx) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := t.tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &PgxRows{rows: rows}, nil
}

func (t *PgxTx) QueryRow(ctx context.Context, query string, args ...any) Row {
	return t.tx.QueryRow(ctx, query, args...)
}

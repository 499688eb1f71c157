package driver

import (
	"context"
	"database/sql"

	"github.com/carlosnayan/prisma-go-marketplace/internal/cache"
)

// SQLDBAdapter adapts *sql.DB (MySQL, SQLite, or PostgreSQL through pgx/stdlib).
// Pool-level statements are prepared once and reused through a bounded cache.
type SQLDBAdapter struct {
	db    *sql.DB
	stmts *cache.StmtCache
}

// NewSQLDB wraps db with the default statement cache.
func NewSQLDB(db *sql.DB) DB {
	return &SQLDBAdapter{db: db, stmts: cache.DefaultStmtCache()}
}

// NewSQLDBWithCache wraps db with a caller-provided statement cache. A nil cache disables preparation.
func NewSQLDBWithCache(db *sql.DB, stmts *cache.StmtCache) DB {
	return &SQLDBAdapter{db: db, stmts: stmts}
}

func (a *SQLDBAdapter) prepare(ctx context.Context, query string) (*sql.Stmt, error) {
	if a.stmts == nil {
		return nil, nil
	}
	return a.stmts.GetOrPrepare(ctx, query, a.db.PrepareContext)
}

func (a *SQLDBAdapter) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	stmt, err := a.prepare(ctx, query)
	if err != nil {
		return nil, err
	}
	var res sql.Result
	if stmt != nil {
		res, err = stmt.ExecContext(ctx, args...)
	} else {
		res, err = a.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		return nil, err
	}
	return &SQLResult{result: res}, nil
}

func (a *SQLDBAdapter) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	stmt, err := a.prepare(ctx, query)
	if err != nil {
		return nil, err
	}
	var rows *sql.Rows
	if stmt != nil {
		rows, err = stmt.QueryContext(ctx, args...)
	} else {
		rows, err = a.db.QueryContext(ctx, query, args...)
	}
	if err != nil {
		return nil, err
	}
	return &SQLRows{rows: rows}, nil
}

func (a *SQLDBAdapter) QueryRow(ctx context.Context, query string, args ...any) Row {
	stmt, err := a.prepare(ctx, query)
	if err != nil {
		return errRow{err: err}
	}
	if stmt != nil {
		return stmt.QueryRowContext(ctx, args...)
	}
	return a.db.QueryRowContext(ctx, query, args...)
}

func (a *SQLDBAdapter) Begin(ctx context.Context) (Tx, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &SQLTx{tx: tx}, nil
}

func (a *SQLDBAdapter) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

func (a *SQLDBAdapter) Close() error {
	if a.stmts != nil {
		a.stmts.Close()
	}
	return a.db.Close()
}

func (a *SQLDBAdapter) SQLDB() *sql.DB {
	return a.db
}

type SQLResult struct {
	result sql.Result
}

func (r *SQLResult) RowsAffected() int64 {
	n, err := r.result.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}

func (r *SQLResult) LastInsertId() (int64, error) {
	return r.result.LastInsertId()
}

type SQLRows struct {
	rows *sql.Rows
}

func (r *SQLRows) Close() {
	_ = r.rows.Close()
}

func (r *SQLRows) Err() error {
	return r.rows.Err()
}

func (r *SQLRows) Next() bool {
	return r.rows.Next()
}

func (r *SQLRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *SQLRows) Columns() ([]string, error) {
	return r.rows.Columns()
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}

// SQLTx runs statements directly on the transaction's connection.
type SQLTx struct {
	tx *sql.Tx
}

func (t *SQLTx) Commit(ctx context.Context) error {
	return t.tx.Commit()
}

func (t *SQLTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback()
}

func (t *SQLTx) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &SQLResult{result: res}, nil
}

func (t *SQLTx) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &SQLRows{rows: rows}, nil
}

func (t *SQLTx) QueryRow(ctx context.Context, query string, args ...any) Row {
	return t.tx.QueryRowContext(ctx, query, args...)
}

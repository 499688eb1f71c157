package testing

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/carlosnayan/prisma-go-marketplace/internal/driver"
	_ "modernc.org/sqlite" // pure-Go SQLite driver, registered as "sqlite"
)

var memDBSeq atomic.Int64

// SetupSQLite opens a private in-memory SQLite database with foreign keys
// enforced. The pool holds one connection so the database lives as long as
// the cleanup function is not called.
func SetupSQLite(t *testing.T) (driver.DB, func()) {
	t.Helper()
	dsn := fmt.Sprintf("file:prisma_test_%d?mode=memory&cache=private&_pragma=foreign_keys(1)", memDBSeq.Add(1))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open SQLite: %v", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		t.Fatalf("failed to ping SQLite database: %v", err)
	}

	cleanup := func() { _ = db.Close() }
	return driver.NewSQLDB(db), cleanup
}

// ExecAll runs DDL or fixture statements in order.
func ExecAll(t *testing.T, db driver.DB, statements ...string) {
	t.Helper()
	ctx := context.Background()
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
}

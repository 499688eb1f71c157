package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/carlosnayan/prisma-go-marketplace/internal/driver"
	"github.com/carlosnayan/prisma-go-marketplace/internal/migrations"
	testutil "github.com/carlosnayan/prisma-go-marketplace/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keepOpen lets the test inspect the database after the command closed it.
type keepOpen struct {
	driver.DB
}

func (keepOpen) Close() error { return nil }

func useTestDB(t *testing.T) driver.DB {
	t.Helper()
	db, cleanup := testutil.SetupSQLite(t)
	t.Cleanup(cleanup)
	openDB = func(ctx context.Context, provider, url string) (driver.DB, error) {
		assert.Equal(t, "sqlite", provider)
		assert.Equal(t, "file:dev.db", url)
		return keepOpen{db}, nil
	}
	return db
}

func TestDbPush(t *testing.T) {
	buf := setupTestDir(t)
	createTestConfig(t, "")
	createTestSchema(t, "")
	db := useTestDB(t)

	require.NoError(t, Run([]string{"db", "push", "--skip-generate"}))
	assert.Contains(t, buf.String(), "now in sync")
	assert.False(t, fileExists("db"))

	tables, err := migrations.ListTables(context.Background(), db, "sqlite")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"authors", "posts"}, tables)

	buf.Reset()
	require.NoError(t, Run([]string{"db", "push", "--skip-generate"}))
	assert.Contains(t, buf.String(), "already in sync")
}

func TestDbPushGenerates(t *testing.T) {
	buf := setupTestDir(t)
	createTestConfig(t, "")
	createTestSchema(t, "")
	useTestDB(t)

	require.NoError(t, Run([]string{"db", "push"}))
	assert.Contains(t, buf.String(), "Generated Prisma Client")
	assert.True(t, fileExists("db/client.go"))
}

func TestDbPushDryRun(t *testing.T) {
	buf := setupTestDir(t)
	createTestConfig(t, "")
	createTestSchema(t, "")
	db := useTestDB(t)

	require.NoError(t, Run([]string{"db", "push", "--dry-run"}))
	assert.Contains(t, buf.String(), `CREATE TABLE "authors"`)
	assert.Contains(t, buf.String(), `CREATE INDEX "posts_title_idx"`)

	tables, err := migrations.ListTables(context.Background(), db, "sqlite")
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestDbPushForceReset(t *testing.T) {
	buf := setupTestDir(t)
	createTestConfig(t, "")
	createTestSchema(t, "")
	db := useTestDB(t)

	require.NoError(t, Run([]string{"db", "push", "--skip-generate"}))
	testutil.ExecAll(t, db, `INSERT INTO authors (id, email) VALUES ('a1', 'ana@example.com')`)

	buf.Reset()
	require.NoError(t, Run([]string{"db", "push", "--skip-generate", "--force-reset"}))
	assert.Contains(t, buf.String(), "dropped posts, authors")

	var n int
	require.NoError(t, db.QueryRow(context.Background(), `SELECT COUNT(*) FROM authors`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestDbPushPrint(t *testing.T) {
	buf := setupTestDir(t)
	createTestSchema(t, "")
	openDB = func(context.Context, string, string) (driver.DB, error) {
		t.Fatal("--print must not connect")
		return nil, nil
	}

	require.NoError(t, Run([]string{"db", "push", "--print", "--schema", "prisma/schema.prisma"}))
	script := buf.String()
	assert.Equal(t, 2, strings.Count(script, "CREATE TABLE"))
	assert.Contains(t, script, `CONSTRAINT "posts_author_id_fkey" FOREIGN KEY ("author_id") REFERENCES "authors" ("id") ON DELETE CASCADE`)
}

func TestDbPushConnectionError(t *testing.T) {
	setupTestDir(t)
	createTestConfig(t, "")
	createTestSchema(t, "")
	openDB = func(context.Context, string, string) (driver.DB, error) {
		return nil, errors.New("connection refused")
	}

	err := Run([]string{"db", "push"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

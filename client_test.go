package prisma

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosnayan/prisma-go-marketplace/internal/config"
	testutil "github.com/carlosnayan/prisma-go-marketplace/internal/testing"
	"github.com/carlosnayan/prisma-go-marketplace/raw"
)

func connectedCore(t *testing.T, opts ...Option) *Core {
	t.Helper()
	db, cleanup := testutil.SetupSQLite(t)
	t.Cleanup(cleanup)
	testutil.ExecAll(t, db, `CREATE TABLE users (id TEXT PRIMARY KEY, name TEXT NOT NULL, email TEXT NOT NULL UNIQUE)`)

	c := NewCore("postgresql", append([]Option{WithDB(db.SQLDB(), "sqlite")}, opts...)...)
	require.NoError(t, c.Connect(context.Background()))
	return c
}

func TestNotConnected(t *testing.T) {
	c := NewCore("sqlite")
	_, err := c.QueryRaw(context.Background(), raw.SQL("SELECT 1"))
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.Equal(t, KindInitialization, KindOf(err))
}

func TestWithDBUsesGivenProvider(t *testing.T) {
	c := connectedCore(t)
	assert.Equal(t, "sqlite", c.Engine().Provider())
	assert.True(t, c.Engine().Connected())
}

func TestRawRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := connectedCore(t)

	n, err := c.ExecuteRaw(ctx, raw.SQL("INSERT INTO users (id, name, email) VALUES (?, ?, ?)", "u1", "Ana", "ana@example.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = c.ExecuteRawUnsafe(ctx, "INSERT INTO users (id, name, email) VALUES ($1, $2, $3)", "u2", "Bia", "bia@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	rows, err := c.QueryRaw(ctx, raw.SQL("SELECT name FROM users ORDER BY id"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bia", rows[1]["name"])

	var users []struct {
		ID    string `db:"id"`
		Email string `db:"email"`
	}
	require.NoError(t, c.QueryRawInto(ctx, &users, raw.SQL("SELECT id, email FROM users WHERE name = ?", "Ana")))
	require.Len(t, users, 1)
	assert.Equal(t, "ana@example.com", users[0].Email)

	_, err = c.ExecuteRaw(ctx, raw.SQL("INSERT INTO users (id, name, email) VALUES (?, ?, ?)", "u3", "Cid", "ana@example.com"))
	assert.True(t, IsUniqueConstraint(err), "got %v", err)
}

func TestTransaction(t *testing.T) {
	ctx := context.Background()
	c := connectedCore(t)

	err := c.Transaction(ctx, func(ctx context.Context, tx *Core) error {
		assert.True(t, tx.Engine().InTransaction())
		if _, err := tx.ExecuteRaw(ctx, raw.SQL("INSERT INTO users (id, name, email) VALUES (?, ?, ?)", "u1", "Ana", "a@x.io")); err != nil {
			return err
		}
		_, err := tx.ExecuteRaw(ctx, raw.SQL("INSERT INTO users (id, name, email) VALUES (?, ?, ?)", "u2", "Bia", "a@x.io"))
		return err
	})
	require.Error(t, err)
	assert.True(t, IsUniqueConstraint(err))

	rows, err := c.QueryRaw(ctx, raw.SQL("SELECT id FROM users"))
	require.NoError(t, err)
	assert.Empty(t, rows)

	err = c.Transaction(ctx, func(ctx context.Context, tx *Core) error {
		_, err := tx.ExecuteRaw(ctx, raw.SQL("INSERT INTO users (id, name, email) VALUES (?, ?, ?)", "u1", "Ana", "a@x.io"))
		return err
	})
	require.NoError(t, err)
	rows, err = c.QueryRaw(ctx, raw.SQL("SELECT id FROM users"))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestDisconnect(t *testing.T) {
	c := connectedCore(t)
	require.NoError(t, c.Disconnect())
	_, err := c.QueryRaw(context.Background(), raw.SQL("SELECT 1"))
	assert.ErrorIs(t, err, ErrNotConnected)
	require.NoError(t, c.Disconnect())
}

func TestQueryLogging(t *testing.T) {
	var buf bytes.Buffer
	c := connectedCore(t, WithLog(LogQuery), WithLogger(&buf))
	_, err := c.QueryRaw(context.Background(), raw.SQL("SELECT id FROM users WHERE name = ?", "Ana"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "SELECT id FROM users WHERE name = 'Ana'")
}

func TestDatasourceFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prisma.conf")
	require.NoError(t, os.WriteFile(path, []byte(`
log = ["warn"]

[datasource]
url = "file:./market.db"

[pool]
maxConns = 3
maxConnIdleTime = "45s"
`), 0o644))

	c := NewCore("sqlite", WithConfigFile(path))
	url, pool, err := c.datasource()
	require.NoError(t, err)
	assert.Equal(t, "file:./market.db", url)
	require.NotNil(t, pool)
	assert.Equal(t, int32(3), pool.MaxConns)
	assert.Equal(t, 45*time.Second, pool.MaxConnIdleTime)
	require.NotNil(t, c.logger)
	assert.Equal(t, []string{"warn"}, c.logger.Levels())
}

func TestDatasourceExplicitURLWins(t *testing.T) {
	c := NewCore("postgresql", WithDatasourceURL("mysql://root@localhost/market"), WithConfigFile("/does/not/exist"))
	url, pool, err := c.datasource()
	require.NoError(t, err)
	assert.Equal(t, "mysql://root@localhost/market", url)
	assert.Nil(t, pool)
}

func TestDatasourceMissingConfig(t *testing.T) {
	c := NewCore("postgresql", WithConfigFile(filepath.Join(t.TempDir(), "missing.conf")))
	_, _, err := c.datasource()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDatasource)
}

func TestPoolConfig(t *testing.T) {
	assert.Nil(t, poolConfig(nil))
	pc := poolConfig(&config.PoolConfig{MinConns: 2})
	assert.Equal(t, int32(2), pc.MinConns)
	assert.Equal(t, int32(25), pc.MaxConns)
}

package raw

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosnayan/prisma-go-marketplace/internal/dialect"
	"github.com/carlosnayan/prisma-go-marketplace/internal/errors"
	"github.com/carlosnayan/prisma-go-marketplace/internal/logger"
	testutil "github.com/carlosnayan/prisma-go-marketplace/internal/testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		query    Query
		want     string
		wantErr  bool
	}{
		{
			name:     "postgres placeholders",
			provider: "postgresql",
			query:    SQL("SELECT * FROM users WHERE role = ? AND name LIKE ?", "ADMIN", "A%"),
			want:     "SELECT * FROM users WHERE role = $1 AND name LIKE $2",
		},
		{
			name:     "quoted question marks are kept",
			provider: "postgresql",
			query:    SQL(`SELECT '?' AS "a?" FROM users WHERE id = ?`, "u1"),
			want:     `SELECT '?' AS "a?" FROM users WHERE id = $1`,
		},
		{
			name:     "doubled question mark is literal",
			provider: "postgresql",
			query:    SQL("SELECT skills ?? 'go' FROM users WHERE id = ?", "u1"),
			want:     "SELECT skills ? 'go' FROM users WHERE id = $1",
		},
		{
			name:     "mysql keeps question marks",
			provider: "mysql",
			query:    SQL("SELECT * FROM users WHERE id = ?", "u1"),
			want:     "SELECT * FROM users WHERE id = ?",
		},
		{
			name:     "unsafe is verbatim",
			provider: "postgresql",
			query:    Unsafe("SELECT * FROM users WHERE id = $1 OR email = ?", "u1"),
			want:     "SELECT * FROM users WHERE id = $1 OR email = ?",
		},
		{
			name:     "argument count mismatch",
			provider: "sqlite",
			query:    SQL("SELECT * FROM users WHERE id = ? AND email = ?", "u1"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.query.Render(dialect.GetDialect(tt.provider))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractColumnName(t *testing.T) {
	assert.Equal(t, "email", extractColumnName("u.email"))
	assert.Equal(t, "email", extractColumnName("lower(u.mail) AS email"))
	assert.Equal(t, "email", extractColumnName(`"users"."email"`))
	assert.Equal(t, "id", extractColumnName("id"))
}

type userRow struct {
	ID         string   `db:"id"`
	Name       string   `db:"name"`
	HourlyRate *float64 `db:"hourly_rate"`
}

func newExecutor(t *testing.T) *Executor {
	t.Helper()
	db, cleanup := testutil.SetupSQLite(t)
	t.Cleanup(cleanup)
	testutil.ExecAll(t, db, `CREATE TABLE users (id TEXT PRIMARY KEY, name TEXT NOT NULL, hourly_rate REAL)`)
	return New(db, dialect.GetDialect("sqlite"), logger.NewLogger(nil, io.Discard))
}

func TestExecutor(t *testing.T) {
	ctx := context.Background()
	e := newExecutor(t)

	n, err := e.Exec(ctx, SQL("INSERT INTO users (id, name, hourly_rate) VALUES (?, ?, ?), (?, ?, ?)",
		"u1", "Ana", 40.0, "u2", "Bia", nil))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	rows, err := e.QueryMaps(ctx, SQL("SELECT id, name FROM users WHERE name = ?", "Ana"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "u1", rows[0]["id"])
	assert.Equal(t, "Ana", rows[0]["name"])

	var users []userRow
	require.NoError(t, e.QueryInto(ctx, &users, SQL("SELECT u.id, u.name, u.hourly_rate FROM users u ORDER BY u.id")))
	require.Len(t, users, 2)
	assert.Equal(t, "Ana", users[0].Name)
	require.NotNil(t, users[0].HourlyRate)
	assert.Equal(t, 40.0, *users[0].HourlyRate)
	assert.Nil(t, users[1].HourlyRate)

	var ptrs []*userRow
	require.NoError(t, e.QueryInto(ctx, &ptrs, SQL("SELECT id, upper(name) AS name FROM users WHERE id = ?", "u2")))
	require.Len(t, ptrs, 1)
	assert.Equal(t, "BIA", ptrs[0].Name)

	empty, err := e.QueryMaps(ctx, SQL("SELECT id FROM users WHERE id = ?", "missing"))
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestExecutorErrors(t *testing.T) {
	ctx := context.Background()
	e := newExecutor(t)

	_, err := e.Exec(ctx, SQL("INSERT INTO users (id, name) VALUES (?, ?)", "u1", "Ana"))
	require.NoError(t, err)
	_, err = e.Exec(ctx, SQL("INSERT INTO users (id, name) VALUES (?, ?)", "u1", "Ana"))
	assert.True(t, errors.IsUniqueConstraint(err), "got %v", err)

	_, err = e.QueryMaps(ctx, SQL("SELEC oops"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrRawQueryFailed)

	var notSlice userRow
	err = e.QueryInto(ctx, &notSlice, SQL("SELECT id FROM users"))
	assert.True(t, errors.IsValidation(err))
}

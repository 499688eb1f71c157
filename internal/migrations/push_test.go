package migrations

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/carlosnayan/prisma-go-marketplace/internal/driver"
	testutil "github.com/carlosnayan/prisma-go-marketplace/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushCreatesTables(t *testing.T) {
	db, cleanup := testutil.SetupSQLite(t)
	defer cleanup()
	ctx := context.Background()
	g := marketplaceGraph(t)

	result, err := Push(ctx, db, g, "sqlite", PushOptions{})
	require.NoError(t, err)
	assert.Len(t, result.Created, 7)
	assert.Empty(t, result.Existing)
	assert.False(t, result.InSync())

	tables, err := ListTables(ctx, db, "sqlite")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"users", "services", "projects", "proposals", "contracts", "milestones", "reviews"}, tables)

	again, err := Push(ctx, db, g, "sqlite", PushOptions{})
	require.NoError(t, err)
	assert.True(t, again.InSync())
	assert.Len(t, again.Existing, 7)
	assert.Empty(t, again.Statements)
}

func TestPushEnforcesConstraints(t *testing.T) {
	db, cleanup := testutil.SetupSQLite(t)
	defer cleanup()
	ctx := context.Background()

	_, err := Push(ctx, db, marketplaceGraph(t), "sqlite", PushOptions{})
	require.NoError(t, err)

	testutil.ExecAll(t, db,
		`INSERT INTO users (id, name, email, password, skills) VALUES ('u1', 'Ana', 'ana@example.com', 'x', '[]')`,
	)

	_, err = db.Exec(ctx, `INSERT INTO users (id, name, email, password, skills) VALUES ('u2', 'Bo', 'ana@example.com', 'x', '[]')`)
	require.Error(t, err)
	assert.Contains(t, strings.ToLower(err.Error()), "unique")

	_, err = db.Exec(ctx, `INSERT INTO services (id, freelancer_id, title, description, category, pricing_type, price, delivery_days)
		VALUES ('s1', 'missing', 'Logo', 'd', 'design', 'FIXED', 10, 3)`)
	require.Error(t, err)
	assert.Contains(t, strings.ToLower(err.Error()), "foreign key")

	testutil.ExecAll(t, db,
		`INSERT INTO services (id, freelancer_id, title, description, category, pricing_type, price, delivery_days)
		VALUES ('s1', 'u1', 'Logo', 'd', 'design', 'FIXED', 10, 3)`,
	)
	var role string
	var rating float64
	require.NoError(t, db.QueryRow(ctx, `SELECT role FROM users WHERE id = 'u1'`).Scan(&role))
	require.NoError(t, db.QueryRow(ctx, `SELECT rating FROM services WHERE id = 's1'`).Scan(&rating))
	assert.Equal(t, "CLIENT", role)
	assert.Equal(t, 0.0, rating)

	// services cascade with their freelancer
	testutil.ExecAll(t, db, `DELETE FROM users WHERE id = 'u1'`)
	var n int
	require.NoError(t, db.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&n))
	assert.Equal(t, 0, n)
}

// TestPushOnProvider runs against TEST_PROVIDER (SQLite when unset). Real
// servers are reset, so point TEST_DATABASE_URL_<PROVIDER> at a scratch database.
func TestPushOnProvider(t *testing.T) {
	provider := testutil.GetProviderFromEnv()
	testutil.SkipIfNoDatabase(t, provider)
	db, cleanup := testutil.SetupTestDB(t, provider)
	defer cleanup()
	ctx := context.Background()

	result, err := Push(ctx, db, marketplaceGraph(t), provider, PushOptions{ForceReset: true})
	require.NoError(t, err)
	assert.Len(t, result.Created, 7)

	tables, err := ListTables(ctx, db, provider)
	require.NoError(t, err)
	assert.Subset(t, tables, []string{"users", "services", "projects", "proposals", "contracts", "milestones", "reviews"})

	check, err := CheckHealth(ctx, db, provider, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "healthy", check.Status)
	assert.GreaterOrEqual(t, check.Tables, 7)
}

func TestPushForceReset(t *testing.T) {
	db, cleanup := testutil.SetupSQLite(t)
	defer cleanup()
	ctx := context.Background()
	g := marketplaceGraph(t)

	_, err := Push(ctx, db, g, "sqlite", PushOptions{})
	require.NoError(t, err)
	testutil.ExecAll(t, db,
		`INSERT INTO users (id, name, email, password, skills) VALUES ('u1', 'Ana', 'ana@example.com', 'x', '[]')`,
	)

	result, err := Push(ctx, db, g, "sqlite", PushOptions{ForceReset: true})
	require.NoError(t, err)
	assert.Len(t, result.Dropped, 7)
	assert.Len(t, result.Created, 7)
	// children are dropped before their parents
	assert.Equal(t, "users", result.Dropped[len(result.Dropped)-1])

	var n int
	require.NoError(t, db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestPushDryRun(t *testing.T) {
	db, cleanup := testutil.SetupSQLite(t)
	defer cleanup()
	ctx := context.Background()

	result, err := Push(ctx, db, marketplaceGraph(t), "sqlite", PushOptions{DryRun: true})
	require.NoError(t, err)
	assert.Len(t, result.Created, 7)
	assert.NotEmpty(t, result.Statements)

	tables, err := ListTables(ctx, db, "sqlite")
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestPushRollsBackOnFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	db := driver.NewSQLDBWithCache(sqlDB, nil)

	mock.ExpectQuery("SELECT table_name FROM information_schema.tables").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE "users"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE UNIQUE INDEX "users_email_key"`).WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	_, err = Push(context.Background(), db, marketplaceGraph(t), "postgresql", PushOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckHealth(t *testing.T) {
	db, cleanup := testutil.SetupSQLite(t)
	defer cleanup()

	check, err := CheckHealth(context.Background(), db, "sqlite", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "healthy", check.Status)
	assert.Equal(t, 0, check.Tables)

	var b strings.Builder
	PrintHealthCheck(&b, check)
	assert.Contains(t, b.String(), "Status: healthy")
}

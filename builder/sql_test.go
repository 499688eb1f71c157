package builder

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosnayan/prisma-go-marketplace/internal/dialect"
	"github.com/carlosnayan/prisma-go-marketplace/internal/driver"
	"github.com/carlosnayan/prisma-go-marketplace/internal/errors"
	"github.com/carlosnayan/prisma-go-marketplace/internal/logger"
)

func render(provider string, m *Model, c Condition) (string, []any, error) {
	w := newWriter(dialect.GetDialect(provider))
	sc := scope{model: m, alias: w.alias()}
	c.render(w, sc)
	return w.String(), w.args, w.err
}

func TestRenderConditions(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		cond     Condition
		sql      string
		args     []any
	}{
		{
			name:     "equality and insensitive contains",
			provider: "postgresql",
			cond: And(
				Equals("email", "ana@example.com"),
				(&StringFilter{Contains: Ptr("50%"), Mode: ModeInsensitive}).Cond("name"),
			),
			sql:  `("t0"."email" = $1 AND "t0"."name" ILIKE $2 ESCAPE '!')`,
			args: []any{"ana@example.com", "%50!%%"},
		},
		{
			name:     "mysql quoting",
			provider: "mysql",
			cond:     Equals("email", "ana@example.com"),
			sql:      "`t0`.`email` = ?",
			args:     []any{"ana@example.com"},
		},
		{
			name:     "null equality",
			provider: "sqlite",
			cond:     Equals("bio", nil),
			sql:      `"t0"."bio" IS NULL`,
		},
		{
			name:     "in list",
			provider: "postgresql",
			cond:     (&StringFilter{In: []string{"a", "b"}}).Cond("name"),
			sql:      `"t0"."name" IN ($1, $2)`,
			args:     []any{"a", "b"},
		},
		{
			name:     "empty in list",
			provider: "postgresql",
			cond:     (&StringFilter{In: []string{}}).Cond("name"),
			sql:      `1=0`,
		},
		{
			name:     "empty or",
			provider: "postgresql",
			cond:     Or(),
			sql:      `1=0`,
		},
		{
			name:     "negation",
			provider: "postgresql",
			cond:     (&FloatNullableFilter{CompareFilter: CompareFilter[float64]{Not: &CompareFilter[float64]{Equals: Ptr(10.0)}}}).Cond("hourlyRate"),
			sql:      `NOT ("t0"."hourly_rate" = $1)`,
			args:     []any{10.0},
		},
		{
			name:     "negation inherits insensitive mode",
			provider: "postgresql",
			cond:     (&StringFilter{Mode: ModeInsensitive, Not: &StringFilter{Equals: Ptr("Ana")}}).Cond("name"),
			sql:      `NOT (LOWER("t0"."name") = LOWER($1))`,
			args:     []any{"Ana"},
		},
		{
			name:     "some related row",
			provider: "postgresql",
			cond:     Some("services", (&FloatFilter{Gt: Ptr(100.0)}).Cond("price")),
			sql:      `EXISTS (SELECT 1 FROM "services" AS "t1" WHERE "t1"."freelancer_id" = "t0"."id" AND ("t1"."price" > $1))`,
			args:     []any{100.0},
		},
		{
			name:     "no related row",
			provider: "postgresql",
			cond:     None("services", nil),
			sql:      `NOT EXISTS (SELECT 1 FROM "services" AS "t1" WHERE "t1"."freelancer_id" = "t0"."id")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := render(tt.provider, userModel, tt.cond)
			require.NoError(t, err)
			assert.Equal(t, tt.sql, sql)
			if tt.args == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.args, args)
			}
		})
	}
}

func TestRenderUnknownField(t *testing.T) {
	_, _, err := render("postgresql", userModel, Equals("nope", 1))
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestRenderOrderBy(t *testing.T) {
	orders := []Order{
		{Field: "services", Count: true, Dir: Desc},
		{Field: "name", Dir: Asc},
	}

	w := newWriter(dialect.GetDialect("postgresql"))
	w.orderBy(scope{model: userModel, alias: w.alias()}, orders)
	assert.Equal(t,
		` ORDER BY (SELECT COUNT(*) FROM "services" AS "t1" WHERE "t1"."freelancer_id" = "t0"."id") DESC NULLS LAST, "t0"."name" ASC NULLS FIRST`,
		w.String())

	w = newWriter(dialect.GetDialect("sqlite"))
	w.orderBy(scope{model: serviceModel, alias: w.alias()}, []Order{{Path: []string{"freelancer"}, Field: "name", Dir: Asc}})
	assert.Equal(t,
		` ORDER BY (SELECT "t1"."name" FROM "users" AS "t1" WHERE "t1"."id" = "t0"."freelancer_id") ASC`,
		w.String())
}

func TestBindValue(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 8_000_000, time.FixedZone("BRT", -3*3600))

	assert.Equal(t, "2026-03-04 08:06:07.008", bindValue(dialect.GetDialect("sqlite"), ts))
	assert.Equal(t, ts.UTC(), bindValue(dialect.GetDialect("postgresql"), ts))
	assert.Equal(t, int64(3), bindValue(dialect.GetDialect("mysql"), 3))
	assert.Nil(t, bindValue(dialect.GetDialect("mysql"), nil))
}

func newMockEngine(t *testing.T) (*Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	e := NewEngine("postgresql", logger.NewLogger(nil, io.Discard))
	e.Attach(driver.NewSQLDBWithCache(db, nil))
	return e, mock
}

func TestFindManySQL(t *testing.T) {
	e, mock := newMockEngine(t)
	mock.ExpectQuery(`SELECT "t0"."id", "t0"."name" FROM "users" AS "t0" WHERE "t0"."email" = $1 ORDER BY "t0"."name" DESC NULLS LAST LIMIT 1 OFFSET 2`).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("u1", "Ana"))

	users, err := FindMany[testUser](context.Background(), e, userModel, FindArgs{
		Where:   Equals("email", "ana@example.com"),
		OrderBy: []Order{{Field: "name", Dir: Desc}},
		Take:    Ptr(1),
		Skip:    Ptr(2),
		Select:  &Selection{Scalars: []string{"name"}},
	})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Ana", users[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSQL(t *testing.T) {
	e, mock := newMockEngine(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "t0"."id", "t0"."name" FROM "users" AS "t0" WHERE "t0"."id" = $1 LIMIT 1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("u1", "Ana"))
	mock.ExpectExec(`DELETE FROM "users" WHERE "users"."id" = $1`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	u, err := Delete[testUser](context.Background(), e, userModel, Equals("id", "u1"), &Selection{Scalars: []string{"name"}})
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateManySQL(t *testing.T) {
	e, mock := newMockEngine(t)
	mock.ExpectExec(`UPDATE "services" SET "delivery_days" = "delivery_days" + $1 WHERE "services"."price" > $2`).
		WithArgs(int64(1), 10.0).
		WillReturnResult(sqlmock.NewResult(0, 4))

	d := NewWriteData()
	ApplyNumber(d, "deliveryDays", Increment(1))
	res, err := UpdateMany(context.Background(), e, serviceModel, (&FloatFilter{Gt: Ptr(10.0)}).Cond("price"), d)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFailedWriteRollsBack(t *testing.T) {
	e, mock := newMockEngine(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "t0"."id", "t0"."freelancer_id", "t0"."title", "t0"."price", "t0"."delivery_days", "t0"."rating", "t0"."created_at" FROM "services" AS "t0" WHERE "t0"."id" = $1 LIMIT 1`).
		WithArgs("s1").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	d := NewWriteData()
	d.Set("title", "Logo")
	_, err := Update[testService](context.Background(), e, serviceModel, Equals("id", "s1"), d, nil)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

package scan

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type role string

type record struct {
	ID         string          `db:"id" json:"id"`
	HourlyRate *float64        `db:"hourly_rate" json:"hourlyRate"`
	Role       role            `db:"role" json:"role"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
	Skills     json.RawMessage `db:"skills" json:"skills"`
	Total      int             `db:"total_reviews" json:"totalReviews"`
	Nickname   string
}

func field(t *testing.T, v *record, column string) reflect.Value {
	t.Helper()
	i, ok := ColumnField(reflect.TypeOf(*v), column)
	require.True(t, ok, "column %s", column)
	return reflect.ValueOf(v).Elem().Field(i)
}

func TestColumnFieldPriority(t *testing.T) {
	typ := reflect.TypeOf(record{})

	i, ok := ColumnField(typ, "hourly_rate")
	require.True(t, ok)
	assert.Equal(t, "HourlyRate", typ.Field(i).Name)

	i, ok = ColumnField(typ, "active")
	require.True(t, ok)
	assert.Equal(t, "Active", typ.Field(i).Name)

	i, ok = ColumnField(typ, "nickname")
	require.True(t, ok)
	assert.Equal(t, "Nickname", typ.Field(i).Name)

	i, ok = JSONField(typ, "totalReviews")
	require.True(t, ok)
	assert.Equal(t, "Total", typ.Field(i).Name)
}

func TestAssignDriverRepresentations(t *testing.T) {
	var r record

	require.NoError(t, Assign(field(t, &r, "id"), []byte("u1")))
	require.NoError(t, Assign(field(t, &r, "hourly_rate"), []byte("45.5")))
	require.NoError(t, Assign(field(t, &r, "role"), "FREELANCER"))
	require.NoError(t, Assign(field(t, &r, "active"), int64(1)))
	require.NoError(t, Assign(field(t, &r, "created_at"), "2024-03-01 10:20:30.123"))
	require.NoError(t, Assign(field(t, &r, "skills"), []any{"go", "sql"}))
	require.NoError(t, Assign(field(t, &r, "total_reviews"), []byte("12.0000")))

	assert.Equal(t, "u1", r.ID)
	require.NotNil(t, r.HourlyRate)
	assert.Equal(t, 45.5, *r.HourlyRate)
	assert.Equal(t, role("FREELANCER"), r.Role)
	assert.True(t, r.Active)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 20, 30, 123000000, time.UTC), r.CreatedAt)
	assert.JSONEq(t, `["go","sql"]`, string(r.Skills))
	assert.Equal(t, 12, r.Total)
}

func TestAssignNilClearsPointer(t *testing.T) {
	rate := 10.0
	r := record{HourlyRate: &rate}
	require.NoError(t, Assign(field(t, &r, "hourly_rate"), nil))
	assert.Nil(t, r.HourlyRate)
}

func TestAssignRejectsFractionalInt(t *testing.T) {
	var r record
	assert.Error(t, Assign(field(t, &r, "total_reviews"), 1.5))
}

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"ID":           "id",
		"HourlyRate":   "hourly_rate",
		"FreelancerID": "freelancer_id",
		"HTTPServer":   "http_server",
		"Budget2Max":   "budget2_max",
	}
	for in, want := range cases {
		assert.Equal(t, want, SnakeCase(in), in)
	}
}

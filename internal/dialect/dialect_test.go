package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDialect(t *testing.T) {
	assert.Equal(t, "postgresql", GetDialect("postgres").Name())
	assert.Equal(t, "mysql", GetDialect("MariaDB").Name())
	assert.Equal(t, "sqlite", GetDialect("sqlite").Name())
	assert.Equal(t, "postgresql", GetDialect("oracle").Name())

	assert.True(t, IsSupported("sqlite3"))
	assert.False(t, IsSupported("oracle"))
}

func TestMapType(t *testing.T) {
	tests := []struct {
		dialect string
		in      string
		want    string
	}{
		{"postgresql", "String", "TEXT"},
		{"postgresql", "DateTime", "TIMESTAMP(3)"},
		{"postgresql", "Json", "JSONB"},
		{"postgresql", "Role", "TEXT"},
		{"postgresql", "VARCHAR(120)", "VARCHAR(120)"},
		{"mysql", "String", "VARCHAR(191)"},
		{"mysql", "Boolean", "TINYINT(1)"},
		{"mysql", "JSONB", "JSON"},
		{"mysql", "ProjectStatus", "VARCHAR(191)"},
		{"sqlite", "Float", "REAL"},
		{"sqlite", "Json", "TEXT"},
		{"sqlite", "DateTime", "DATETIME"},
	}
	for _, tt := range tests {
		t.Run(tt.dialect+"/"+tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, GetDialect(tt.dialect).MapType(tt.in))
		})
	}
}

func TestPlaceholdersAndQuoting(t *testing.T) {
	pg := GetDialect("postgresql")
	assert.Equal(t, "$3", pg.GetPlaceholder(3))
	assert.Equal(t, `"weird""name"`, pg.QuoteIdentifier(`weird"name`))

	my := GetDialect("mysql")
	assert.Equal(t, "?", my.GetPlaceholder(3))
	assert.Equal(t, "`users`", my.QuoteIdentifier("users"))
	assert.Equal(t, `'it''s \\ ok'`, my.QuoteString(`it's \ ok`))
}

func TestLimitOffset(t *testing.T) {
	pg := GetDialect("postgresql")
	assert.Equal(t, "LIMIT 10 OFFSET 5", pg.LimitOffset(10, 5))
	assert.Equal(t, "LIMIT 0", pg.LimitOffset(0, 0))
	assert.Equal(t, "OFFSET 5", pg.LimitOffset(-1, 5))
	assert.Equal(t, "", pg.LimitOffset(-1, 0))

	assert.Equal(t, "LIMIT -1 OFFSET 5", GetDialect("sqlite").LimitOffset(-1, 5))
	assert.Equal(t, "LIMIT 18446744073709551615 OFFSET 5", GetDialect("mysql").LimitOffset(-1, 5))
}

func TestInsertIgnore(t *testing.T) {
	verb, suffix := GetDialect("postgresql").InsertIgnore()
	assert.Equal(t, "INSERT INTO", verb)
	assert.Equal(t, " ON CONFLICT DO NOTHING", suffix)

	verb, _ = GetDialect("sqlite").InsertIgnore()
	assert.Equal(t, "INSERT OR IGNORE INTO", verb)

	verb, _ = GetDialect("mysql").InsertIgnore()
	assert.Equal(t, "INSERT IGNORE INTO", verb)
}

func TestPredicates(t *testing.T) {
	pg := GetDialect("postgresql")
	assert.Equal(t, `"t0"."name" ILIKE $1`, pg.CaseInsensitiveLike(`"t0"."name"`, "$1"))
	assert.Equal(t, `"t0"."skills" @> $2::jsonb`, pg.JSONArrayContains(`"t0"."skills"`, "$2"))
	assert.True(t, pg.SupportsFullTextSearch())
	assert.False(t, GetDialect("sqlite").SupportsFullTextSearch())

	assert.Equal(t, "json(c) = json(?)", GetDialect("sqlite").JSONEquals("c", "?"))
}

func TestMapDefaultValue(t *testing.T) {
	assert.Equal(t, "CURRENT_TIMESTAMP", GetDialect("postgresql").MapDefaultValue("now()"))
	assert.Equal(t, "gen_random_uuid()", GetDialect("postgresql").MapDefaultValue("uuid"))
	assert.Equal(t, "", GetDialect("sqlite").MapDefaultValue("uuid()"))
	assert.Equal(t, "", GetDialect("mysql").MapDefaultValue("autoincrement()"))
}

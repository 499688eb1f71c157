package dialect

import (
	"strings"
)

// Dialect hides the SQL differences between PostgreSQL, MySQL and SQLite.
type Dialect interface {
	// Name returns the canonical provider name: "postgresql", "mysql" or "sqlite".
	Name() string

	// QuoteIdentifier quotes a table or column name.
	QuoteIdentifier(name string) string

	// QuoteString quotes a string literal for DDL.
	QuoteString(value string) string

	// MapType maps a schema scalar type (or a native @db.* type) to a column type.
	// Enum and unknown types map to the dialect's text type.
	MapType(schemaType string) string

	// MapDefaultValue maps a default function ("now", "uuid", "autoincrement") to SQL.
	// An empty result means the default is handled elsewhere (client side or column type).
	MapDefaultValue(fn string) string

	// GetPlaceholder returns the bind placeholder for the 1-based argument index.
	GetPlaceholder(index int) string

	GetAutoIncrementKeyword() string
	GetNowFunction() string

	// GetDriverName returns the database/sql driver name.
	GetDriverName() string

	// SupportsReturning reports INSERT ... RETURNING support.
	SupportsReturning() bool

	// InsertIgnore returns the INSERT verb and trailing clause that skip rows
	// violating a unique constraint.
	InsertIgnore() (verb, suffix string)

	// LimitOffset renders LIMIT/OFFSET. A negative limit means no limit.
	LimitOffset(limit, offset int) string

	// CaseInsensitiveLike renders a case-insensitive LIKE predicate.
	CaseInsensitiveLike(column, placeholder string) string

	SupportsFullTextSearch() bool
	FullTextSearch(column, placeholder string) string

	// JSONEquals compares a JSON column to a JSON-encoded parameter.
	JSONEquals(column, placeholder string) string

	// JSONArrayContains reports whether the JSON array column contains every
	// element of the JSON-encoded array parameter.
	JSONArrayContains(column, placeholder string) string
}

// GetDialect returns the dialect for a provider name. Unknown providers get PostgreSQL.
func GetDialect(provider string) Dialect {
	switch strings.ToLower(provider) {
	case "postgresql", "postgres":
		return &PostgreSQLDialect{}
	case "mysql", "mariadb":
		return &MySQLDialect{}
	case "sqlite", "sqlite3":
		return &SQLiteDialect{}
	default:
		return &PostgreSQLDialect{}
	}
}

// IsSupported reports whether provider names a known dialect.
func IsSupported(provider string) bool {
	switch strings.ToLower(provider) {
	case "postgresql", "postgres", "mysql", "mariadb", "sqlite", "sqlite3":
		return true
	}
	return false
}

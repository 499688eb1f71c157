package dialect

import (
	"fmt"
	"strings"
)

type SQLiteDialect struct{}

func (d *SQLiteDialect) Name() string {
	return "sqlite"
}

func (d *SQLiteDialect) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *SQLiteDialect) QuoteString(value string) string {
	return quoteString(value)
}

// MapType picks declared types whose affinity matches the stored values.
// DATETIME keeps drivers that parse declared types returning time.Time.
func (d *SQLiteDialect) MapType(schemaType string) string {
	switch strings.ToLower(schemaType) {
	case "string":
		return "TEXT"
	case "int", "bigint":
		return "INTEGER"
	case "boolean", "bool":
		return "BOOLEAN"
	case "datetime":
		return "DATETIME"
	case "float":
		return "REAL"
	case "decimal":
		return "DECIMAL"
	case "json":
		return "TEXT"
	case "bytes":
		return "BLOB"
	default:
		return "TEXT"
	}
}

func (d *SQLiteDialect) MapDefaultValue(fn string) string {
	switch strings.TrimSuffix(strings.ToLower(fn), "()") {
	case "autoincrement":
		return ""
	case "now":
		return "CURRENT_TIMESTAMP"
	case "uuid", "cuid":
		return ""
	default:
		return fn
	}
}

func (d *SQLiteDialect) GetPlaceholder(index int) string {
	return "?"
}

func (d *SQLiteDialect) GetAutoIncrementKeyword() string {
	return "AUTOINCREMENT"
}

func (d *SQLiteDialect) GetNowFunction() string {
	return "CURRENT_TIMESTAMP"
}

func (d *SQLiteDialect) GetDriverName() string {
	return "sqlite3"
}

func (d *SQLiteDialect) SupportsReturning() bool {
	return true
}

func (d *SQLiteDialect) InsertIgnore() (string, string) {
	return "INSERT OR IGNORE INTO", ""
}

func (d *SQLiteDialect) LimitOffset(limit, offset int) string {
	return limitOffset(limit, offset, "-1")
}

func (d *SQLiteDialect) CaseInsensitiveLike(column, placeholder string) string {
	return fmt.Sprintf("LOWER(%s) LIKE LOWER(%s)", column, placeholder)
}

func (d *SQLiteDialect) SupportsFullTextSearch() bool {
	return false
}

func (d *SQLiteDialect) FullTextSearch(column, placeholder string) string {
	return fmt.Sprintf("%s LIKE '%%' || %s || '%%'", column, placeholder)
}

func (d *SQLiteDialect) JSONEquals(column, placeholder string) string {
	return fmt.Sprintf("json(%s) = json(%s)", column, placeholder)
}

func (d *SQLiteDialect) JSONArrayContains(column, placeholder string) string {
	return fmt.Sprintf("NOT EXISTS (SELECT 1 FROM json_each(%s) AS needle WHERE needle.value NOT IN (SELECT value FROM json_each(%s)))",
		placeholder, column)
}

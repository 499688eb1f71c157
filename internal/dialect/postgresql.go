package dialect

import (
	"fmt"
	"strings"
)

type PostgreSQLDialect struct{}

func (d *PostgreSQLDialect) Name() string {
	return "postgresql"
}

func (d *PostgreSQLDialect) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *PostgreSQLDialect) QuoteString(value string) string {
	return quoteString(value)
}

func (d *PostgreSQLDialect) MapType(schemaType string) string {
	if !isSchemaType(schemaType) && isSQLType(schemaType) {
		return schemaType
	}

	switch strings.ToLower(schemaType) {
	case "string":
		return "TEXT"
	case "int":
		return "INTEGER"
	case "bigint":
		return "BIGINT"
	case "boolean", "bool":
		return "BOOLEAN"
	case "datetime":
		return "TIMESTAMP(3)"
	case "float":
		return "DOUBLE PRECISION"
	case "decimal":
		return "DECIMAL(65, 30)"
	case "json":
		return "JSONB"
	case "bytes":
		return "BYTEA"
	default:
		return "TEXT"
	}
}

func (d *PostgreSQLDialect) MapDefaultValue(fn string) string {
	switch strings.TrimSuffix(strings.ToLower(fn), "()") {
	case "autoincrement":
		return ""
	case "now":
		return "CURRENT_TIMESTAMP"
	case "uuid", "cuid":
		return "gen_random_uuid()"
	default:
		return fn
	}
}

func (d *PostgreSQLDialect) GetPlaceholder(index int) string {
	return fmt.Sprintf("$%d", index)
}

func (d *PostgreSQLDialect) GetAutoIncrementKeyword() string {
	return "SERIAL"
}

func (d *PostgreSQLDialect) GetNowFunction() string {
	return "NOW()"
}

func (d *PostgreSQLDialect) GetDriverName() string {
	return "pgx"
}

func (d *PostgreSQLDialect) SupportsReturning() bool {
	return true
}

func (d *PostgreSQLDialect) InsertIgnore() (string, string) {
	return "INSERT INTO", " ON CONFLICT DO NOTHING"
}

func (d *PostgreSQLDialect) LimitOffset(limit, offset int) string {
	if limit < 0 && offset > 0 {
		return fmt.Sprintf("OFFSET %d", offset)
	}
	return limitOffset(limit, offset, "ALL")
}

func (d *PostgreSQLDialect) CaseInsensitiveLike(column, placeholder string) string {
	return fmt.Sprintf("%s ILIKE %s", column, placeholder)
}

func (d *PostgreSQLDialect) SupportsFullTextSearch() bool {
	return true
}

func (d *PostgreSQLDialect) FullTextSearch(column, placeholder string) string {
	return fmt.Sprintf("to_tsvector(%s) @@ to_tsquery(%s)", column, placeholder)
}

func (d *PostgreSQLDialect) JSONEquals(column, placeholder string) string {
	return fmt.Sprintf("%s = %s::jsonb", column, placeholder)
}

func (d *PostgreSQLDialect) JSONArrayContains(column, placeholder string) string {
	return fmt.Sprintf("%s @> %s::jsonb", column, placeholder)
}

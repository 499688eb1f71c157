package dialect

import (
	"fmt"
	"strings"
)

// isSQLType checks if a type is already a SQL type (from @db.* attributes).
func isSQLType(typ string) bool {
	sqlTypes := []string{
		"TEXT", "VARCHAR", "CHAR", "DATE", "TIME", "TIMESTAMP", "TIMESTAMPTZ",
		"DECIMAL", "NUMERIC", "SMALLINT", "INTEGER", "INT", "BIGINT",
		"REAL", "DOUBLE PRECISION", "DOUBLE", "BOOLEAN", "BOOL",
		"JSON", "JSONB", "BYTEA", "BLOB", "UUID", "INET", "CIDR", "MONEY",
		"BIT", "VARBIT",
	}
	upper := strings.ToUpper(typ)
	for _, sqlType := range sqlTypes {
		if strings.HasPrefix(upper, sqlType) {
			return true
		}
	}
	return false
}

func isSchemaType(typ string) bool {
	switch strings.ToLower(typ) {
	case "string", "int", "bigint", "boolean", "bool", "datetime", "float", "decimal", "json", "bytes":
		return true
	}
	return false
}

func quoteString(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

func limitOffset(limit, offset int, noLimit string) string {
	switch {
	case limit >= 0 && offset > 0:
		return fmt.Sprintf("LIMIT %d OFFSET %d", limit, offset)
	case limit >= 0:
		return fmt.Sprintf("LIMIT %d", limit)
	case offset > 0:
		return fmt.Sprintf("LIMIT %s OFFSET %d", noLimit, offset)
	}
	return ""
}

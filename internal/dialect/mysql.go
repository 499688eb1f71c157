package dialect

import (
	"fmt"
	"strings"
)

type MySQLDialect struct{}

func (d *MySQLDialect) Name() string {
	return "mysql"
}

func (d *MySQLDialect) QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (d *MySQLDialect) QuoteString(value string) string {
	return quoteString(strings.ReplaceAll(value, `\`, `\\`))
}

func (d *MySQLDialect) MapType(schemaType string) string {
	if !isSchemaType(schemaType) && isSQLType(schemaType) {
		upper := strings.ToUpper(schemaType)
		switch {
		case strings.HasPrefix(upper, "BYTEA"):
			return "BLOB"
		case strings.HasPrefix(upper, "JSONB"):
			return "JSON"
		case strings.HasPrefix(upper, "TIMESTAMPTZ"):
			return "TIMESTAMP"
		case strings.HasPrefix(upper, "DOUBLE PRECISION"):
			return "DOUBLE"
		case strings.HasPrefix(upper, "BOOL"):
			return "TINYINT(1)"
		case strings.HasPrefix(upper, "INET"), strings.HasPrefix(upper, "CIDR"),
			strings.HasPrefix(upper, "MONEY"), strings.HasPrefix(upper, "BIT"), strings.HasPrefix(upper, "VARBIT"):
			return "VARCHAR(255)"
		}
		return schemaType
	}

	switch strings.ToLower(schemaType) {
	case "string":
		return "VARCHAR(191)"
	case "int":
		return "INT"
	case "bigint":
		return "BIGINT"
	case "boolean", "bool":
		return "TINYINT(1)"
	case "datetime":
		return "DATETIME(3)"
	case "float":
		return "DOUBLE"
	case "decimal":
		return "DECIMAL(65, 30)"
	case "json":
		return "JSON"
	case "bytes":
		return "BLOB"
	default:
		return "VARCHAR(191)"
	}
}

func (d *MySQLDialect) MapDefaultValue(fn string) string {
	switch strings.TrimSuffix(strings.ToLower(fn), "()") {
	case "autoincrement":
		return ""
	case "now":
		return "CURRENT_TIMESTAMP(3)"
	case "uuid", "cuid":
		return "(UUID())"
	default:
		return fn
	}
}

func (d *MySQLDialect) GetPlaceholder(index int) string {
	return "?"
}

func (d *MySQLDialect) GetAutoIncrementKeyword() string {
	return "AUTO_INCREMENT"
}

func (d *MySQLDialect) GetNowFunction() string {
	return "NOW(3)"
}

func (d *MySQLDialect) GetDriverName() string {
	return "mysql"
}

func (d *MySQLDialect) SupportsReturning() bool {
	return false
}

func (d *MySQLDialect) InsertIgnore() (string, string) {
	return "INSERT IGNORE INTO", ""
}

func (d *MySQLDialect) LimitOffset(limit, offset int) string {
	return limitOffset(limit, offset, "18446744073709551615")
}

func (d *MySQLDialect) CaseInsensitiveLike(column, placeholder string) string {
	return fmt.Sprintf("LOWER(%s) LIKE LOWER(%s)", column, placeholder)
}

func (d *MySQLDialect) SupportsFullTextSearch() bool {
	return true
}

func (d *MySQLDialect) FullTextSearch(column, placeholder string) string {
	return fmt.Sprintf("MATCH(%s) AGAINST(%s IN BOOLEAN MODE)", column, placeholder)
}

func (d *MySQLDialect) JSONEquals(column, placeholder string) string {
	return fmt.Sprintf("%s = CAST(%s AS JSON)", column, placeholder)
}

func (d *MySQLDialect) JSONArrayContains(column, placeholder string) string {
	return fmt.Sprintf("JSON_CONTAINS(%s, %s)", column, placeholder)
}

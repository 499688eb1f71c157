package migrations

import (
	"context"
	"fmt"

	"github.com/carlosnayan/prisma-go-marketplace/internal/dialect"
	"github.com/carlosnayan/prisma-go-marketplace/internal/driver"
)

var listTablesQuery = map[string]string{
	"postgresql": `SELECT table_name FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
		ORDER BY table_name`,
	"mysql": `SELECT table_name FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
		ORDER BY table_name`,
	"sqlite": `SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name`,
}

// ListTables returns the names of the user tables in the current schema.
func ListTables(ctx context.Context, q driver.Querier, provider string) ([]string, error) {
	query := listTablesQuery[dialect.GetDialect(provider).Name()]
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to read table name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

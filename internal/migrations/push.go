package migrations

import (
	"context"
	"fmt"
	"time"

	contextutil "github.com/carlosnayan/prisma-go-marketplace/internal/context"
	"github.com/carlosnayan/prisma-go-marketplace/internal/dialect"
	"github.com/carlosnayan/prisma-go-marketplace/internal/driver"
	"github.com/carlosnayan/prisma-go-marketplace/internal/generator"
	"github.com/carlosnayan/prisma-go-marketplace/internal/logger"
)

type PushOptions struct {
	// ForceReset drops the tables of every model before creating them.
	ForceReset bool
	// DryRun computes the statements without running them.
	DryRun bool
}

type PushResult struct {
	Created    []string
	Existing   []string
	Dropped    []string
	Statements []string
}

// InSync reports whether the push had nothing to create.
func (r *PushResult) InSync() bool { return len(r.Created) == 0 }

// Push creates the tables of g that are missing from db. Existing tables are
// left untouched unless ForceReset is set. Statements run in one
// transaction where the provider supports transactional DDL.
func Push(ctx context.Context, db driver.DB, g *generator.Graph, provider string, opts PushOptions) (*PushResult, error) {
	ctx, cancel := contextutil.WithSchemaTimeout(ctx)
	defer cancel()

	d := dialect.GetDialect(provider)
	names, err := ListTables(ctx, db, d.Name())
	if err != nil {
		return nil, err
	}
	existing := make(map[string]bool, len(names))
	for _, n := range names {
		existing[n] = true
	}

	result := &PushResult{}
	tables := Tables(g, d)
	if opts.ForceReset {
		for i := len(tables) - 1; i >= 0; i-- {
			t := tables[i]
			if existing[t.Name] {
				result.Statements = append(result.Statements, DropStatement(t, d))
				result.Dropped = append(result.Dropped, t.Name)
				delete(existing, t.Name)
			}
		}
	}

	var created []*Table
	for _, t := range tables {
		if existing[t.Name] {
			result.Existing = append(result.Existing, t.Name)
			continue
		}
		created = append(created, t)
		result.Created = append(result.Created, t.Name)
		result.Statements = append(result.Statements, CreateStatements(t, d)...)
	}
	for _, t := range created {
		result.Statements = append(result.Statements, ForeignKeyStatements(t, d)...)
	}

	if opts.DryRun || len(result.Statements) == 0 {
		return result, nil
	}
	if err := apply(ctx, db, result.Statements); err != nil {
		return nil, err
	}
	for _, name := range result.Created {
		logger.Info("created table %s", name)
	}
	return result, nil
}

func apply(ctx context.Context, db driver.DB, stmts []string) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	for _, stmt := range stmts {
		start := time.Now()
		if _, err = tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w\n%s", err, stmt)
		}
		logger.Query(stmt, nil, time.Since(start))
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schema: %w", err)
	}
	return nil
}

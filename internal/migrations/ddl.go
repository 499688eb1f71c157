// Package migrations turns the model graph into DDL and applies it with
// db push. There is no migration history: push creates what is missing.
package migrations

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/carlosnayan/prisma-go-marketplace/internal/dialect"
	"github.com/carlosnayan/prisma-go-marketplace/internal/generator"
)

// Table is the DDL shape of one model.
type Table struct {
	Name        string
	Columns     []Column
	PrimaryKey  []string
	ForeignKeys []ForeignKey
	Indexes     []Index
}

type Column struct {
	Name     string
	Type     string
	Nullable bool
	// Default is a SQL expression, empty for none.
	Default string
}

type ForeignKey struct {
	Name       string
	Columns    []string
	RefTable   string
	RefColumns []string
	OnDelete   string
}

type Index struct {
	Name    string
	Columns []string
	Unique  bool
}

var referentialActions = map[string]string{
	"Cascade":    "CASCADE",
	"Restrict":   "RESTRICT",
	"NoAction":   "NO ACTION",
	"SetNull":    "SET NULL",
	"SetDefault": "SET DEFAULT",
}

// Tables builds the tables of every model, ordered so a table comes after
// the tables it references. Reference cycles keep schema order.
func Tables(g *generator.Graph, d dialect.Dialect) []*Table {
	tables := make(map[string]*Table, len(g.Models))
	byName := make(map[string]*generator.Model, len(g.Models))
	for _, m := range g.Models {
		byName[m.Name] = m
	}
	for _, m := range g.Models {
		tables[m.Name] = newTable(m, byName, d)
	}

	var (
		out   []*Table
		seen  = make(map[string]bool)
		visit func(m *generator.Model)
	)
	visit = func(m *generator.Model) {
		if seen[m.Name] {
			return
		}
		seen[m.Name] = true
		for _, r := range m.Relations {
			if target, ok := byName[r.Target]; ok && r.Owner {
				visit(target)
			}
		}
		out = append(out, tables[m.Name])
	}
	for _, m := range g.Models {
		visit(m)
	}
	return out
}

func newTable(m *generator.Model, models map[string]*generator.Model, d dialect.Dialect) *Table {
	t := &Table{Name: m.Table, PrimaryKey: columns(m, m.PrimaryKey)}
	for _, f := range m.Fields {
		typ := f.Type
		if typ == "Enum" {
			typ = "String"
		}
		t.Columns = append(t.Columns, Column{
			Name:     f.Column,
			Type:     d.MapType(typ),
			Nullable: f.Optional,
			Default:  defaultSQL(f, d),
		})
	}
	for _, r := range m.Relations {
		if !r.Owner {
			continue
		}
		target := models[r.Target]
		if target == nil {
			continue
		}
		cols := columns(m, r.Fields)
		action := referentialActions[r.OnDelete]
		if action == "" {
			action = "RESTRICT"
			if r.Optional {
				action = "SET NULL"
			}
		}
		t.ForeignKeys = append(t.ForeignKeys, ForeignKey{
			Name:       fmt.Sprintf("%s_%s_fkey", m.Table, strings.Join(cols, "_")),
			Columns:    cols,
			RefTable:   target.Table,
			RefColumns: columns(target, r.References),
			OnDelete:   action,
		})
	}
	for _, u := range m.Uniques {
		if u.Primary {
			continue
		}
		cols := columns(m, u.Fields)
		t.Indexes = append(t.Indexes, Index{Name: fmt.Sprintf("%s_%s_key", m.Table, strings.Join(cols, "_")), Columns: cols, Unique: true})
	}
	for _, fields := range m.Indexes {
		cols := columns(m, fields)
		t.Indexes = append(t.Indexes, Index{Name: fmt.Sprintf("%s_%s_idx", m.Table, strings.Join(cols, "_")), Columns: cols})
	}
	return t
}

// columns maps field names to column names.
func columns(m *generator.Model, fields []string) []string {
	out := make([]string, len(fields))
	for i, name := range fields {
		out[i] = name
		if f := m.Field(name); f != nil {
			out[i] = f.Column
		}
	}
	return out
}

// defaultSQL renders the database default of a field. uuid() defaults are
// filled by the client and get none.
func defaultSQL(f *generator.Field, d dialect.Dialect) string {
	switch f.Default.Kind {
	case generator.DefaultNow:
		return d.MapDefaultValue("now")
	case generator.DefaultValue:
		switch v := f.Default.Value.(type) {
		case string:
			return d.QuoteString(v)
		case bool:
			return strconv.FormatBool(v)
		case int:
			return strconv.Itoa(v)
		case int64:
			return strconv.FormatInt(v, 10)
		case float64:
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
	return ""
}

// CreateStatements renders CREATE TABLE and its indexes. SQLite declares
// foreign keys inline; the other providers add them with ForeignKeyStatements
// once every table exists.
func CreateStatements(t *Table, d dialect.Dialect) []string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", d.QuoteIdentifier(t.Name))

	var lines []string
	for _, c := range t.Columns {
		line := fmt.Sprintf("  %s %s", d.QuoteIdentifier(c.Name), c.Type)
		if !c.Nullable {
			line += " NOT NULL"
		}
		if c.Default != "" {
			line += " DEFAULT " + c.Default
		}
		lines = append(lines, line)
	}
	lines = append(lines, fmt.Sprintf("  CONSTRAINT %s PRIMARY KEY (%s)", d.QuoteIdentifier(t.Name+"_pkey"), quoteList(d, t.PrimaryKey)))
	if d.Name() == "sqlite" {
		for _, fk := range t.ForeignKeys {
			lines = append(lines, "  "+foreignKeyClause(fk, d))
		}
	}
	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n)")

	stmts := []string{b.String()}
	for _, idx := range t.Indexes {
		unique := ""
		if idx.Unique {
			unique = "UNIQUE "
		}
		stmts = append(stmts, fmt.Sprintf("CREATE %sINDEX %s ON %s (%s)",
			unique, d.QuoteIdentifier(idx.Name), d.QuoteIdentifier(t.Name), quoteList(d, idx.Columns)))
	}
	return stmts
}

// ForeignKeyStatements renders ALTER TABLE statements adding the foreign keys
// of t. SQLite gets none.
func ForeignKeyStatements(t *Table, d dialect.Dialect) []string {
	if d.Name() == "sqlite" {
		return nil
	}
	var stmts []string
	for _, fk := range t.ForeignKeys {
		stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s ADD %s", d.QuoteIdentifier(t.Name), foreignKeyClause(fk, d)))
	}
	return stmts
}

func foreignKeyClause(fk ForeignKey, d dialect.Dialect) string {
	return fmt.Sprintf("CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s) ON DELETE %s ON UPDATE CASCADE",
		d.QuoteIdentifier(fk.Name), quoteList(d, fk.Columns), d.QuoteIdentifier(fk.RefTable), quoteList(d, fk.RefColumns), fk.OnDelete)
}

// DropStatement drops t. PostgreSQL cascades to dependent constraints.
func DropStatement(t *Table, d dialect.Dialect) string {
	stmt := "DROP TABLE IF EXISTS " + d.QuoteIdentifier(t.Name)
	if d.Name() == "postgresql" {
		stmt += " CASCADE"
	}
	return stmt
}

// SchemaSQL renders the full script creating every table of g.
func SchemaSQL(g *generator.Graph, provider string) string {
	d := dialect.GetDialect(provider)
	tables := Tables(g, d)
	var stmts []string
	for _, t := range tables {
		stmts = append(stmts, CreateStatements(t, d)...)
	}
	for _, t := range tables {
		stmts = append(stmts, ForeignKeyStatements(t, d)...)
	}
	return strings.Join(stmts, ";\n\n") + ";\n"
}

func quoteList(d dialect.Dialect, names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = d.QuoteIdentifier(n)
	}
	return strings.Join(quoted, ", ")
}

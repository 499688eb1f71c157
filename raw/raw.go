// Package raw runs hand-written SQL next to the generated client.
//
// Statements are written with ? placeholders whatever the database, and
// rewritten to the dialect's own syntax ($1, $2, ... on PostgreSQL) before
// they are sent:
//
//	q := raw.SQL(`SELECT name, email FROM users WHERE role = ? AND created_at > ?`, "FREELANCER", since)
//	rows, err := client.QueryRaw(ctx, q)
package raw

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/carlosnayan/prisma-go-marketplace/internal/dialect"
	"github.com/carlosnayan/prisma-go-marketplace/internal/driver"
	"github.com/carlosnayan/prisma-go-marketplace/internal/errors"
	"github.com/carlosnayan/prisma-go-marketplace/internal/limits"
	"github.com/carlosnayan/prisma-go-marketplace/internal/logger"
	"github.com/carlosnayan/prisma-go-marketplace/internal/scan"
)

// Query is a SQL statement and its arguments.
type Query struct {
	Text string
	Args []any

	verbatim bool
}

// SQL builds a query whose ? placeholders are rewritten for the target
// database. A ? inside a quoted string or identifier is left alone; ?? is a
// literal question mark.
func SQL(text string, args ...any) Query {
	return Query{Text: text, Args: args}
}

// Unsafe builds a query that is sent exactly as written, in the database's
// own placeholder syntax.
func Unsafe(text string, args ...any) Query {
	return Query{Text: text, Args: args, verbatim: true}
}

// Render returns the statement text for d.
func (q Query) Render(d dialect.Dialect) (string, error) {
	if len(q.Text) > limits.MaxRawQuerySize {
		return "", errors.NewValidationError("raw query exceeds %d bytes", limits.MaxRawQuerySize)
	}
	if q.verbatim {
		return q.Text, nil
	}

	var b strings.Builder
	b.Grow(len(q.Text) + 8)
	n := 0
	var quote byte
	for i := 0; i < len(q.Text); i++ {
		c := q.Text[i]
		if quote != 0 {
			b.WriteByte(c)
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
			b.WriteByte(c)
		case '?':
			if i+1 < len(q.Text) && q.Text[i+1] == '?' {
				b.WriteByte('?')
				i++
				continue
			}
			n++
			b.WriteString(d.GetPlaceholder(n))
		default:
			b.WriteByte(c)
		}
	}
	if n != len(q.Args) {
		return "", errors.NewValidationError("raw query has %d placeholders but %d arguments", n, len(q.Args))
	}
	return b.String(), nil
}

// Executor runs raw queries on a pool or transaction.
type Executor struct {
	q      driver.Querier
	d      dialect.Dialect
	logger *logger.Logger
}

// New returns an executor that sends statements to q in d's syntax.
func New(q driver.Querier, d dialect.Dialect, l *logger.Logger) *Executor {
	if l == nil {
		l = logger.GetDefaultLogger()
	}
	return &Executor{q: q, d: d, logger: l}
}

func (e *Executor) query(ctx context.Context, q Query) (driver.Rows, error) {
	text, err := q.Render(e.d)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	rows, err := e.q.Query(ctx, text, q.Args...)
	e.logger.Query(text, q.Args, time.Since(start))
	if err != nil {
		e.logger.Error("raw query failed: %v", err)
		return nil, errors.MapDriverError(err, errors.OpQueryRaw)
	}
	return rows, nil
}

// QueryMaps runs q and returns each row as a column-name map. Text columns
// that the driver hands back as bytes are returned as strings.
func (e *Executor) QueryMaps(ctx context.Context, q Query) ([]map[string]any, error) {
	rows, err := e.query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.MapDriverError(err, errors.OpQueryRaw)
	}

	out := []map[string]any{}
	for rows.Next() {
		if len(out) >= limits.MaxScanRows {
			return nil, fmt.Errorf("%w: maximum %d rows allowed", errors.ErrTooManyRows, limits.MaxScanRows)
		}
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.MapDriverError(err, errors.OpQueryRaw)
		}
		m := make(map[string]any, len(cols))
		for i, col := range cols {
			if b, ok := vals[i].([]byte); ok {
				m[col] = string(b)
				continue
			}
			m[col] = vals[i]
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.MapDriverError(err, errors.OpQueryRaw)
	}
	return out, nil
}

// QueryInto runs q and scans the rows into dest, a pointer to a slice of
// structs (or of struct pointers). Columns are matched to fields by db tag,
// then json tag, then the snake_case field name; unmatched columns are skipped.
func (e *Executor) QueryInto(ctx context.Context, dest any, q Query) error {
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Pointer || dv.Elem().Kind() != reflect.Slice {
		return errors.NewValidationError("QueryInto needs a pointer to a slice, got %T", dest)
	}
	slice := dv.Elem()
	elemType := slice.Type().Elem()
	ptrElems := elemType.Kind() == reflect.Pointer
	structType := elemType
	if ptrElems {
		structType = elemType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return errors.NewValidationError("QueryInto needs a slice of structs, got %T", dest)
	}

	rows, err := e.query(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()
	cols, err := rows.Columns()
	if err != nil {
		return errors.MapDriverError(err, errors.OpQueryRaw)
	}
	fields := make([]int, len(cols))
	for i, col := range cols {
		idx, ok := scan.ColumnField(structType, extractColumnName(col))
		if !ok {
			idx = -1
		}
		fields[i] = idx
	}

	out := reflect.MakeSlice(slice.Type(), 0, 0)
	for rows.Next() {
		if out.Len() >= limits.MaxScanRows {
			return fmt.Errorf("%w: maximum %d rows allowed", errors.ErrTooManyRows, limits.MaxScanRows)
		}
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return errors.MapDriverError(err, errors.OpQueryRaw)
		}
		item := reflect.New(structType)
		for i, idx := range fields {
			if idx < 0 {
				continue
			}
			if err := scan.Assign(item.Elem().Field(idx), vals[i]); err != nil {
				return fmt.Errorf("column %s: %w", cols[i], err)
			}
		}
		if ptrElems {
			out = reflect.Append(out, item)
		} else {
			out = reflect.Append(out, item.Elem())
		}
	}
	if err := rows.Err(); err != nil {
		return errors.MapDriverError(err, errors.OpQueryRaw)
	}
	slice.Set(out)
	return nil
}

// Exec runs a statement and returns the number of affected rows.
func (e *Executor) Exec(ctx context.Context, q Query) (int64, error) {
	text, err := q.Render(e.d)
	if err != nil {
		return 0, err
	}
	start := time.Now()
	res, err := e.q.Exec(ctx, text, q.Args...)
	e.logger.Query(text, q.Args, time.Since(start))
	if err != nil {
		e.logger.Error("raw exec failed: %v", err)
		return 0, errors.SanitizeError(errors.MapDriverError(err, errors.OpExecuteRaw))
	}
	return res.RowsAffected(), nil
}

// extractColumnName strips a table qualifier and an "AS" alias prefix from a
// column label: "u.email" and "lower(x) as email" both become "email".
func extractColumnName(col string) string {
	col = strings.TrimSpace(col)
	if i := strings.LastIndex(strings.ToLower(col), " as "); i >= 0 {
		col = strings.TrimSpace(col[i+4:])
	}
	if i := strings.LastIndex(col, "."); i >= 0 {
		col = col[i+1:]
	}
	return strings.Trim(col, "\"`")
}

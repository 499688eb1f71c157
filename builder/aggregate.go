package builder

import (
	"context"
	"fmt"
	"reflect"
	"slices"

	"github.com/carlosnayan/prisma-go-marketplace/internal/errors"
)

// aggTerm is one selected aggregate: bucket is the output member ("_count",
// "_avg", ...), field the scalar field or "_all".
type aggTerm struct {
	bucket string
	fn     string
	field  string
}

func aggTerms(count, avg, sum, min, max []string) []aggTerm {
	var terms []aggTerm
	for _, set := range []struct {
		bucket, fn string
		fields     []string
	}{
		{"_count", "COUNT", count}, {"_avg", "AVG", avg}, {"_sum", "SUM", sum}, {"_min", "MIN", min}, {"_max", "MAX", max},
	} {
		for _, f := range set.fields {
			terms = append(terms, aggTerm{bucket: set.bucket, fn: set.fn, field: f})
		}
	}
	return terms
}

func (t aggTerm) render(w *sqlWriter, sc scope) string {
	if t.field == "_all" {
		return "COUNT(*)"
	}
	return t.fn + "(" + w.column(sc, t.field) + ")"
}

// windowed reports whether the window pages, which needs a subquery so the
// aggregate sees only the page.
func (win window) windowed() bool {
	return win.limit >= 0 || win.offset > 0
}

// renderSource writes the FROM clause of an aggregate over win and returns
// the scope the aggregate expressions refer to.
func renderSource(w *sqlWriter, m *Model, win window, fields []string) scope {
	if !win.windowed() {
		sc := scope{model: m, alias: w.alias()}
		w.write(" FROM ", w.table(m), " AS ", w.quote(sc.alias))
		if win.where != nil {
			w.write(" WHERE ")
			win.where.render(w, sc)
		}
		return sc
	}
	inner := scope{model: m, alias: w.alias()}
	cols := append([]string(nil), m.PrimaryKey...)
	for _, f := range fields {
		if f != "_all" && !slices.Contains(cols, f) {
			cols = append(cols, f)
		}
	}
	w.write(" FROM (SELECT ")
	for i, f := range cols {
		if i > 0 {
			w.write(", ")
		}
		w.write(w.column(inner, f))
	}
	renderWindow(w, inner, win, true)
	w.write(") AS ", w.quote("sub"))
	return scope{model: m, alias: "sub"}
}

// countRows counts the rows of a window.
func countRows(ctx context.Context, s *session, m *Model, win window) (int, error) {
	w := newWriter(s.e.dialect)
	w.write("SELECT COUNT(*)")
	renderSource(w, m, win, nil)
	rows, err := s.query(ctx, w)
	if err != nil {
		return 0, err
	}
	var n int64
	err = s.scan(rows, 1, func(v []any) error {
		return assignInt(&n, v[0])
	})
	return int(n), err
}

// Count counts the rows matching args. Take, skip and cursor bound the rows counted.
func Count(ctx context.Context, e *Engine, m *Model, args FindArgs) (int, error) {
	if err := validatePaging(args.Take, args.Skip); err != nil {
		return 0, err
	}
	ctx, cancel := e.withQueryTimeout(ctx)
	defer cancel()
	s, err := e.session(errors.OpCount)
	if err != nil {
		return 0, err
	}
	win, empty, err := prepareWindow(ctx, s, m, args.Where, args.OrderBy, args.Cursor, args.Take, args.Skip)
	if err != nil || empty {
		return 0, err
	}
	return countRows(ctx, s, m, win)
}

// Aggregate computes the selected aggregates over the rows matching args and
// stores them in the _count/_avg/_sum/_min/_max members of T.
func Aggregate[T any](ctx context.Context, e *Engine, m *Model, args AggregateArgs) (*T, error) {
	if err := validatePaging(args.Take, args.Skip); err != nil {
		return nil, err
	}
	if err := validateAggregates(m, args.Count, args.Avg, args.Sum, args.Min, args.Max); err != nil {
		return nil, err
	}
	ctx, cancel := e.withQueryTimeout(ctx)
	defer cancel()
	s, err := e.session(errors.OpAggregate)
	if err != nil {
		return nil, err
	}
	out := new(T)
	terms := aggTerms(args.Count, args.Avg, args.Sum, args.Min, args.Max)
	if len(terms) == 0 {
		return out, nil
	}
	win, empty, err := prepareWindow(ctx, s, m, args.Where, args.OrderBy, args.Cursor, args.Take, args.Skip)
	if err != nil {
		return nil, err
	}
	if empty {
		win.where = boolCond(false)
	}

	fields := make([]string, len(terms))
	for i, t := range terms {
		fields[i] = t.field
	}
	w := newWriter(s.e.dialect)
	w.write("SELECT ")
	// FROM is rendered first to learn which alias the expressions refer to.
	from := newWriter(s.e.dialect)
	sc := renderSource(from, m, win, fields)
	for i, t := range terms {
		if i > 0 {
			w.write(", ")
		}
		w.write(t.render(w, sc), " AS ", w.quote(fmt.Sprintf("a%d", i)))
	}
	w.write(from.String())
	w.args = append(w.args, from.args...)
	if w.err == nil {
		w.err = from.err
	}

	rows, err := s.query(ctx, w)
	if err != nil {
		return nil, err
	}
	dst := reflect.ValueOf(out).Elem()
	err = s.scan(rows, len(terms), func(vals []any) error {
		for i, t := range terms {
			if err := assignBucket(dst, t.bucket, t.field, vals[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GroupBy groups the rows matching args by the By fields and stores each
// group's key fields and aggregates in a T.
func GroupBy[T any](ctx context.Context, e *Engine, m *Model, args GroupByArgs) ([]T, error) {
	if err := validateGroupBy(m, args); err != nil {
		return nil, err
	}
	ctx, cancel := e.withQueryTimeout(ctx)
	defer cancel()
	s, err := e.session(errors.OpGroupBy)
	if err != nil {
		return nil, err
	}
	terms := aggTerms(args.Count, args.Avg, args.Sum, args.Min, args.Max)

	w := newWriter(s.e.dialect)
	sc := scope{model: m, alias: w.alias()}
	w.write("SELECT ")
	for i, f := range args.By {
		if i > 0 {
			w.write(", ")
		}
		w.write(w.column(sc, f), " AS ", w.quote(fmt.Sprintf("b%d", i)))
	}
	for i, t := range terms {
		w.write(", ", t.render(w, sc), " AS ", w.quote(fmt.Sprintf("a%d", i)))
	}
	w.write(" FROM ", w.table(m), " AS ", w.quote(sc.alias))
	if args.Where != nil {
		w.write(" WHERE ")
		args.Where.render(w, sc)
	}
	w.write(" GROUP BY ")
	for i, f := range args.By {
		if i > 0 {
			w.write(", ")
		}
		w.write(w.column(sc, f))
	}
	if args.Having != nil {
		w.write(" HAVING ")
		args.Having.render(w, sc)
	}
	w.orderBy(sc, args.OrderBy)
	if args.Take != nil || args.Skip != nil {
		limit, offset := -1, 0
		if args.Take != nil {
			limit = *args.Take
			if limit < 0 {
				return nil, errors.NewValidationError("groupBy does not accept a negative take")
			}
		}
		if args.Skip != nil {
			offset = *args.Skip
		}
		w.write(" ", w.d.LimitOffset(limit, offset))
	}

	rows, err := s.query(ctx, w)
	if err != nil {
		return nil, err
	}
	out := []T{}
	err = s.scan(rows, len(args.By)+len(terms), func(vals []any) error {
		var item T
		dst := reflect.ValueOf(&item).Elem()
		for i, f := range args.By {
			if err := assignField(dst, f, vals[i]); err != nil {
				return err
			}
		}
		for i, t := range terms {
			if err := assignBucket(dst, t.bucket, t.field, vals[len(args.By)+i]); err != nil {
				return err
			}
		}
		out = append(out, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

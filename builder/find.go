package builder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/carlosnayan/prisma-go-marketplace/internal/errors"
)

// row is one fetched record: scalar values by field name, loaded relations
// ([]*row or *row) and relation counts.
type row struct {
	vals   map[string]any
	rels   map[string]any
	counts map[string]int
}

func newRow() *row {
	return &row{vals: map[string]any{}}
}

func (r *row) values(fields []string) []any {
	out := make([]any, len(fields))
	for i, f := range fields {
		out[i] = r.vals[f]
	}
	return out
}

// keyOf normalizes a value tuple so that the same key read back from
// different drivers (string vs []byte, int vs int64) compares equal.
func keyOf(vals []any) string {
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(0)
		}
		switch x := v.(type) {
		case nil:
			b.WriteString("\x01null")
		case []byte:
			b.Write(x)
		case time.Time:
			b.WriteString(x.UTC().Format(time.RFC3339Nano))
		case int64, int32, int, float64:
			fmt.Fprintf(&b, "%v", x)
		default:
			fmt.Fprint(&b, x)
		}
	}
	return b.String()
}

// window is a resolved read: filter, effective ordering and paging.
type window struct {
	where  Condition
	orders []Order
	limit  int
	offset int
	// backwards is set when a negative take reversed the ordering.
	backwards bool
}

// prepareWindow resolves the cursor row and folds take/skip/cursor into a
// window. empty is set when the cursor row does not exist.
func prepareWindow(ctx context.Context, s *session, m *Model, where Condition, orderBy []Order, cursor Condition, take, skip *int) (win window, empty bool, err error) {
	win = window{where: where, orders: orderBy, limit: -1}
	if take != nil {
		win.limit = *take
		if *take < 0 {
			win.limit = -*take
			win.backwards = true
		}
	}
	if skip != nil {
		win.offset = *skip
	}
	if cursor != nil || win.backwards {
		win.orders = withPrimaryKey(m, win.orders)
	}
	if win.backwards {
		for i := range win.orders {
			win.orders[i] = win.orders[i].reversed()
		}
	}
	if cursor != nil {
		cond, found, err := resolveCursor(ctx, s, m, cursor, win.orders)
		if err != nil {
			return win, false, err
		}
		if !found {
			return win, true, nil
		}
		win.where = And(win.where, cond)
	}
	return win, false, nil
}

// orderCond compares an order term's sort value with a cursor value.
type orderCond struct {
	order Order
	op    string
	value any
}

func (c *orderCond) walk(func(*fieldCond)) {}

func (c *orderCond) render(w *sqlWriter, sc scope) {
	switch c.op {
	case opIsNull, opIsNotNull:
		w.write(w.orderExpr(sc, c.order), " ", c.op)
	default:
		w.write(w.orderExpr(sc, c.order), " ", c.op, " ", w.bind(c.value))
	}
}

// after matches rows sorting strictly after v under o. NULL sorts first
// ascending and last descending.
func after(o Order, v any) Condition {
	if o.desc() {
		if v == nil {
			return boolCond(false)
		}
		return Or(&orderCond{order: o, op: "<", value: v}, &orderCond{order: o, op: opIsNull})
	}
	if v == nil {
		return &orderCond{order: o, op: opIsNotNull}
	}
	return &orderCond{order: o, op: ">", value: v}
}

func same(o Order, v any) Condition {
	if v == nil {
		return &orderCond{order: o, op: opIsNull}
	}
	return &orderCond{order: o, op: "=", value: v}
}

// resolveCursor reads the cursor row's sort values and returns the condition
// selecting that row and every row after it.
func resolveCursor(ctx context.Context, s *session, m *Model, cursor Condition, orders []Order) (Condition, bool, error) {
	w := newWriter(s.e.dialect)
	sc := scope{model: m, alias: w.alias()}
	w.write("SELECT ")
	for i, o := range orders {
		if i > 0 {
			w.write(", ")
		}
		w.write(w.orderExpr(sc, o))
	}
	w.write(" FROM ", w.table(m), " AS ", w.quote(sc.alias), " WHERE ")
	cursor.render(w, sc)
	w.write(" ", w.d.LimitOffset(1, 0))

	rows, err := s.query(ctx, w)
	if err != nil {
		return nil, false, err
	}
	var vals []any
	err = s.scan(rows, len(orders), func(v []any) error {
		vals = v
		return nil
	})
	if err != nil || vals == nil {
		return nil, false, err
	}

	terms := make([]Condition, 0, len(orders)+1)
	for i := range orders {
		prefix := make([]Condition, 0, i+1)
		for j := 0; j < i; j++ {
			prefix = append(prefix, same(orders[j], vals[j]))
		}
		prefix = append(prefix, after(orders[i], vals[i]))
		terms = append(terms, And(prefix...))
	}
	equal := make([]Condition, len(orders))
	for i := range orders {
		equal[i] = same(orders[i], vals[i])
	}
	terms = append(terms, And(equal...))
	return Or(terms...), true, nil
}

// selectColumns lists the scalar fields a read fetches: the selection plus
// whatever relation loading, distinct and the caller need.
func selectColumns(m *Model, sel *Selection, distinct, need []string) []string {
	if sel == nil || sel.Scalars == nil {
		return m.ScalarNames()
	}
	want := map[string]bool{}
	for _, f := range sel.Scalars {
		want[f] = true
	}
	for _, f := range m.PrimaryKey {
		want[f] = true
	}
	for _, r := range sel.Relations {
		if rel := m.Relation(r.Relation); rel != nil {
			for _, f := range rel.Fields {
				want[f] = true
			}
		}
	}
	for _, c := range sel.Counts {
		if rel := m.Relation(c.Relation); rel != nil {
			for _, f := range rel.Fields {
				want[f] = true
			}
		}
	}
	for _, f := range distinct {
		want[f] = true
	}
	for _, f := range need {
		want[f] = true
	}
	var cols []string
	for _, f := range m.Fields {
		if want[f.Name] {
			cols = append(cols, f.Name)
		}
	}
	return cols
}

// renderWindow writes FROM ... WHERE ... ORDER BY ... LIMIT for a window on alias.
func renderWindow(w *sqlWriter, sc scope, win window, paged bool) {
	w.write(" FROM ", w.table(sc.model), " AS ", w.quote(sc.alias))
	if win.where != nil {
		w.write(" WHERE ")
		win.where.render(w, sc)
	}
	w.orderBy(sc, win.orders)
	if paged && (win.limit >= 0 || win.offset > 0) {
		w.write(" ", w.d.LimitOffset(win.limit, win.offset))
	}
}

// findRows runs a read and loads the selected relations. extra is ANDed to
// args.Where; need lists fields the caller reads from the rows.
func findRows(ctx context.Context, s *session, m *Model, args FindArgs, extra Condition, need []string, depth int) ([]*row, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.MapDriverError(err, s.op)
	}
	win, empty, err := prepareWindow(ctx, s, m, And(args.Where, extra), args.OrderBy, args.Cursor, args.Take, args.Skip)
	if err != nil || empty {
		return nil, err
	}
	distinct := len(args.Distinct) > 0
	cols := selectColumns(m, args.Select, args.Distinct, need)

	w := newWriter(s.e.dialect)
	sc := scope{model: m, alias: w.alias()}
	w.write("SELECT ")
	for i, f := range cols {
		if i > 0 {
			w.write(", ")
		}
		w.write(w.column(sc, f))
	}
	renderWindow(w, sc, win, !distinct)

	rs, err := s.query(ctx, w)
	if err != nil {
		return nil, err
	}
	var out []*row
	err = s.scan(rs, len(cols), func(vals []any) error {
		r := newRow()
		for i, f := range cols {
			r.vals[f] = vals[i]
		}
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if distinct {
		out = applyDistinct(out, args.Distinct, win.limit, win.offset)
	}
	if win.backwards {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	if err := loadRelations(ctx, s, m, out, args.Select, depth); err != nil {
		return nil, err
	}
	return out, nil
}

// applyDistinct keeps the first row of every distinct key, then pages.
func applyDistinct(rows []*row, fields []string, limit, offset int) []*row {
	seen := map[string]bool{}
	kept := rows[:0]
	for _, r := range rows {
		k := keyOf(r.values(fields))
		if seen[k] {
			continue
		}
		seen[k] = true
		kept = append(kept, r)
	}
	if offset >= len(kept) {
		return nil
	}
	kept = kept[offset:]
	if limit >= 0 && limit < len(kept) {
		kept = kept[:limit]
	}
	return kept
}

// pkCond matches the row whose primary key fields hold vals.
func pkCond(m *Model, vals map[string]any) Condition {
	conds := make([]Condition, len(m.PrimaryKey))
	for i, f := range m.PrimaryKey {
		conds[i] = Equals(f, vals[f])
	}
	return And(conds...)
}

// keyCond matches rows whose fields equal one of the tuples.
func keyCond(fields []string, tuples [][]any) Condition {
	if len(fields) == 1 {
		vals := make([]any, len(tuples))
		for i, t := range tuples {
			vals[i] = t[0]
		}
		return in(fields[0], vals)
	}
	ors := make([]Condition, len(tuples))
	for i, t := range tuples {
		ands := make([]Condition, len(fields))
		for j, f := range fields {
			ands[j] = Equals(f, t[j])
		}
		ors[i] = And(ands...)
	}
	return Or(ors...)
}

// lookup reads fields of the first row matching cond. found is false when no row matches.
func lookup(ctx context.Context, s *session, m *Model, cond Condition, fields []string) (map[string]any, bool, error) {
	rows, err := findRows(ctx, s, m, FindArgs{Where: cond, Take: Ptr(1), Select: &Selection{Scalars: fields}}, nil, nil, 0)
	if err != nil || len(rows) == 0 {
		return nil, false, err
	}
	return rows[0].vals, true, nil
}

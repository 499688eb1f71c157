package builder

import (
	"strings"

	"github.com/carlosnayan/prisma-go-marketplace/internal/limits"
)

// SortOrder is a sort direction.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Order is one ORDER BY term.
type Order struct {
	// Path walks to-one relations from the queried model.
	Path []string
	// Field is a scalar field, or a list relation when Count is set.
	Field string
	Count bool
	// Agg orders group-by results by an aggregate (COUNT, AVG, SUM, MIN, MAX).
	Agg string
	Dir SortOrder
}

func (o Order) desc() bool { return strings.EqualFold(string(o.Dir), string(Desc)) }

func (o Order) reversed() Order {
	if o.desc() {
		o.Dir = Asc
	} else {
		o.Dir = Desc
	}
	return o
}

// CountOrder orders by the number of rows in a list relation.
type CountOrder struct {
	Count SortOrder
}

// Orderer is implemented by generated order-by inputs.
type Orderer interface {
	Orders() []Order
}

// OrdersOf flattens a list of order-by inputs.
func OrdersOf[O Orderer](os []O) []Order {
	var out []Order
	for i := range os {
		out = append(out, os[i].Orders()...)
	}
	return out
}

// AppendOrder adds a scalar field term when dir is set.
func AppendOrder(out []Order, field string, dir *SortOrder) []Order {
	if dir == nil {
		return out
	}
	return append(out, Order{Field: field, Dir: *dir})
}

// AppendCountOrder adds a relation _count term when c is set.
func AppendCountOrder(out []Order, relation string, c *CountOrder) []Order {
	if c == nil {
		return out
	}
	return append(out, Order{Field: relation, Count: true, Dir: c.Count})
}

// AppendNestedOrder adds the terms of a to-one relation's order-by input.
func AppendNestedOrder[O Orderer](out []Order, relation string, o *O) []Order {
	if o == nil {
		return out
	}
	for _, inner := range (*o).Orders() {
		inner.Path = append([]string{relation}, inner.Path...)
		out = append(out, inner)
	}
	return out
}

// AppendAggOrders adds the terms of an aggregate order-by input (group-by only).
func AppendAggOrders[O Orderer](out []Order, agg string, o *O) []Order {
	if o == nil {
		return out
	}
	for _, inner := range (*o).Orders() {
		inner.Agg = agg
		out = append(out, inner)
	}
	return out
}

// orderExpr renders the value an order term sorts on. Terms through to-one
// relations and relation counts become correlated subqueries.
func (w *sqlWriter) orderExpr(sc scope, o Order) string {
	if len(o.Path) > 0 {
		rel := sc.model.Relation(o.Path[0])
		if rel == nil || rel.List {
			w.fail("Cannot order `%s` through `%s`", sc.model.Name, o.Path[0])
			return "NULL"
		}
		alias := w.alias()
		rest := o
		rest.Path = o.Path[1:]
		inner := w.orderExpr(scope{rel.Target(), alias}, rest)
		return "(SELECT " + inner + " FROM " + w.table(rel.Target()) + " AS " + w.quote(alias) +
			" WHERE " + w.joinString(rel, sc, alias) + ")"
	}
	if o.Count {
		rel := sc.model.Relation(o.Field)
		if rel == nil || !rel.List {
			w.fail("Cannot order `%s` by the count of `%s`", sc.model.Name, o.Field)
			return "NULL"
		}
		alias := w.alias()
		return "(SELECT COUNT(*) FROM " + w.table(rel.Target()) + " AS " + w.quote(alias) +
			" WHERE " + w.joinString(rel, sc, alias) + ")"
	}
	expr := w.column(sc, o.Field)
	if o.Agg != "" {
		if f := sc.model.Field(o.Field); f != nil && (o.Agg == "AVG" || o.Agg == "SUM") && !f.Type.Numeric() {
			w.fail("Cannot order by %s of non-numeric field `%s`", strings.ToLower(o.Agg), o.Field)
		}
		expr = o.Agg + "(" + expr + ")"
	}
	return expr
}

// joinString renders target.References[i] = parent.Fields[i] for every join column.
func (w *sqlWriter) joinString(rel *Relation, outer scope, inner string) string {
	var b strings.Builder
	target := rel.Target()
	for i := range rel.Fields {
		if i > 0 {
			b.WriteString(" AND ")
		}
		b.WriteString(w.column(scope{target, inner}, rel.References[i]))
		b.WriteString(" = ")
		b.WriteString(w.column(outer, rel.Fields[i]))
	}
	return b.String()
}

// orderBy renders an ORDER BY clause. NULLs sort first ascending and last
// descending on every dialect.
func (w *sqlWriter) orderBy(sc scope, orders []Order) {
	if len(orders) == 0 {
		return
	}
	if len(orders) > limits.MaxOrderByFields {
		w.fail("orderBy exceeds %d fields", limits.MaxOrderByFields)
	}
	w.write(" ORDER BY ")
	for i, o := range orders {
		if i > 0 {
			w.write(", ")
		}
		w.write(w.orderExpr(sc, o))
		if o.desc() {
			w.write(" DESC")
			if w.d.Name() == "postgresql" {
				w.write(" NULLS LAST")
			}
		} else {
			w.write(" ASC")
			if w.d.Name() == "postgresql" {
				w.write(" NULLS FIRST")
			}
		}
	}
}

// withPrimaryKey appends the primary key fields not already ordered on, so
// cursors and paging see a total order.
func withPrimaryKey(m *Model, orders []Order) []Order {
	out := append([]Order(nil), orders...)
	for _, pk := range m.PrimaryKey {
		found := false
		for _, o := range orders {
			if len(o.Path) == 0 && !o.Count && o.Agg == "" && o.Field == pk {
				found = true
				break
			}
		}
		if !found {
			out = append(out, Order{Field: pk, Dir: Asc})
		}
	}
	return out
}

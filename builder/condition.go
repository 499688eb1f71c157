package builder

import (
	"strings"

	"github.com/carlosnayan/prisma-go-marketplace/internal/errors"
	"github.com/carlosnayan/prisma-go-marketplace/internal/limits"
)

// Condition is a node of a where tree. A nil Condition matches every row.
type Condition interface {
	render(w *sqlWriter, sc scope)
	walk(fn func(*fieldCond))
}

const (
	opEq          = "="
	opLt          = "<"
	opLte         = "<="
	opGt          = ">"
	opGte         = ">="
	opIn          = "IN"
	opNotIn       = "NOT IN"
	opLike        = "LIKE"
	opIsNull      = "IS NULL"
	opIsNotNull   = "IS NOT NULL"
	opSearch      = "SEARCH"
	opJSONEq      = "JSON_EQ"
	opJSONContain = "JSON_CONTAINS"
)

// likeEscape is accepted by every dialect without string-literal escaping rules.
const likeEscape = "!"

func escapeLike(s string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return r.Replace(s)
}

// fieldCond compares a field (or an aggregate over it) with a value.
type fieldCond struct {
	field       string
	agg         string
	op          string
	value       any
	insensitive bool
}

func (c *fieldCond) walk(fn func(*fieldCond)) { fn(c) }

func (c *fieldCond) render(w *sqlWriter, sc scope) {
	w.leaves++
	if w.leaves > limits.MaxQueryConditions {
		w.fail("where clause exceeds %d conditions", limits.MaxQueryConditions)
		return
	}
	expr := w.column(sc, c.field)
	if c.agg != "" {
		f := sc.model.Field(c.field)
		if f != nil && (c.agg == "AVG" || c.agg == "SUM") && !f.Type.Numeric() {
			w.fail("Cannot aggregate non-numeric field `%s` with %s", c.field, strings.ToLower(c.agg))
		}
		expr = c.agg + "(" + expr + ")"
	}

	switch c.op {
	case opIsNull, opIsNotNull:
		w.write(expr, " ", c.op)

	case opIn, opNotIn:
		values := c.value.([]any)
		if len(values) == 0 {
			if c.op == opIn {
				w.write("1=0")
			} else {
				w.write("1=1")
			}
			return
		}
		if len(values) > limits.MaxInListSize {
			w.fail("in/notIn list exceeds %d values", limits.MaxInListSize)
		}
		if c.insensitive {
			expr = "LOWER(" + expr + ")"
		}
		w.write(expr, " ", c.op, " (")
		for i, v := range values {
			if i > 0 {
				w.write(", ")
			}
			if c.insensitive {
				w.write("LOWER(", w.bind(v), ")")
			} else {
				w.write(w.bind(v))
			}
		}
		w.write(")")

	case opLike:
		ph := w.bind(c.value)
		if c.insensitive {
			w.write(w.d.CaseInsensitiveLike(expr, ph))
		} else {
			w.write(expr, " LIKE ", ph)
		}
		w.write(" ESCAPE '", likeEscape, "'")

	case opSearch:
		w.write(w.d.FullTextSearch(expr, w.bind(c.value)))

	case opJSONEq:
		w.write(w.d.JSONEquals(expr, w.bindJSON(c.value)))

	case opJSONContain:
		w.write(w.d.JSONArrayContains(expr, w.bindJSON(c.value)))

	default:
		if c.insensitive {
			w.write("LOWER(", expr, ") ", c.op, " LOWER(", w.bind(c.value), ")")
			return
		}
		w.write(expr, " ", c.op, " ", w.bind(c.value))
	}
}

type boolCond bool

func (c boolCond) walk(func(*fieldCond)) {}

func (c boolCond) render(w *sqlWriter, _ scope) {
	if c {
		w.write("1=1")
	} else {
		w.write("1=0")
	}
}

type junction struct {
	sep   string
	conds []Condition
}

func (j *junction) walk(fn func(*fieldCond)) {
	for _, c := range j.conds {
		c.walk(fn)
	}
}

func (j *junction) render(w *sqlWriter, sc scope) {
	w.write("(")
	for i, c := range j.conds {
		if i > 0 {
			w.write(j.sep)
		}
		c.render(w, sc)
	}
	w.write(")")
}

type notCond struct{ inner Condition }

func (n *notCond) walk(fn func(*fieldCond)) { n.inner.walk(fn) }

func (n *notCond) render(w *sqlWriter, sc scope) {
	w.write("NOT (")
	n.inner.render(w, sc)
	w.write(")")
}

// And matches rows satisfying every non-nil condition.
func And(conds ...Condition) Condition {
	kept := conds[:0:0]
	for _, c := range conds {
		if c != nil {
			kept = append(kept, c)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return &junction{sep: " AND ", conds: kept}
}

// Or matches rows satisfying any condition. A nil member matches everything;
// an empty Or matches nothing.
func Or(conds ...Condition) Condition {
	if len(conds) == 0 {
		return boolCond(false)
	}
	for _, c := range conds {
		if c == nil {
			return nil
		}
	}
	if len(conds) == 1 {
		return conds[0]
	}
	return &junction{sep: " OR ", conds: conds}
}

// Not matches rows satisfying none of conds.
func Not(conds ...Condition) Condition {
	negated := make([]Condition, 0, len(conds))
	for _, c := range conds {
		if c == nil {
			return boolCond(false)
		}
		negated = append(negated, &notCond{inner: c})
	}
	return And(negated...)
}

// Equals compares a scalar field with a value; a nil value tests for NULL.
func Equals(field string, value any) Condition {
	if value == nil {
		return &fieldCond{field: field, op: opIsNull}
	}
	return &fieldCond{field: field, op: opEq, value: value}
}

func in(field string, values []any) Condition {
	return &fieldCond{field: field, op: opIn, value: values}
}

type relationKind int

const (
	relSome relationKind = iota
	relEvery
	relNone
	relIs
	relIsNot
)

// relationCond is an EXISTS subquery over a relation's target rows.
type relationCond struct {
	relation string
	kind     relationKind
	inner    Condition
}

func (c *relationCond) walk(fn func(*fieldCond)) {
	if c.inner != nil {
		c.inner.walk(fn)
	}
}

func (c *relationCond) render(w *sqlWriter, sc scope) {
	rel := sc.model.Relation(c.relation)
	if rel == nil {
		w.fail("Unknown relation `%s` on model `%s`", c.relation, sc.model.Name)
		w.write("1=0")
		return
	}
	if c.kind == relEvery && c.inner == nil {
		w.write("1=1")
		return
	}

	negated := c.kind == relNone || c.kind == relIsNot || c.kind == relEvery
	alias := w.alias()
	if negated {
		w.write("NOT ")
	}
	w.write("EXISTS (SELECT 1 FROM ", w.table(rel.Target()), " AS ", w.quote(alias), " WHERE ")
	w.joinOn(rel, sc, alias)
	if c.inner != nil {
		inner := scope{model: rel.Target(), alias: alias}
		if c.kind == relEvery {
			w.write(" AND NOT (COALESCE((")
			c.inner.render(w, inner)
			w.write("), 1=0))")
		} else {
			w.write(" AND (")
			c.inner.render(w, inner)
			w.write(")")
		}
	}
	w.write(")")
}

// Some matches rows with at least one related row satisfying c.
func Some(relation string, c Condition) Condition {
	return &relationCond{relation: relation, kind: relSome, inner: c}
}

// Every matches rows whose related rows all satisfy c (vacuously true without related rows).
func Every(relation string, c Condition) Condition {
	return &relationCond{relation: relation, kind: relEvery, inner: c}
}

// None matches rows with no related row satisfying c.
func None(relation string, c Condition) Condition {
	return &relationCond{relation: relation, kind: relNone, inner: c}
}

// Is matches rows whose to-one related row satisfies c.
func Is(relation string, c Condition) Condition {
	return &relationCond{relation: relation, kind: relIs, inner: c}
}

// IsNot matches rows whose to-one related row does not satisfy c.
func IsNot(relation string, c Condition) Condition {
	return &relationCond{relation: relation, kind: relIsNot, inner: c}
}

// Conder is implemented by generated where inputs.
type Conder interface {
	Cond() Condition
}

// CondOf converts an optional where input.
func CondOf[W Conder](w *W) Condition {
	if w == nil {
		return nil
	}
	return (*w).Cond()
}

// AllOf is the AND of a list of where inputs.
func AllOf[W Conder](ws []W) Condition {
	conds := make([]Condition, len(ws))
	for i := range ws {
		conds[i] = ws[i].Cond()
	}
	return And(conds...)
}

// AnyOf is the OR of a list of where inputs. A nil list adds no constraint;
// an empty one matches nothing.
func AnyOf[W Conder](ws []W) Condition {
	if ws == nil {
		return nil
	}
	conds := make([]Condition, len(ws))
	for i := range ws {
		conds[i] = ws[i].Cond()
	}
	return Or(conds...)
}

// NoneOf negates every where input in the list.
func NoneOf[W Conder](ws []W) Condition {
	if len(ws) == 0 {
		return nil
	}
	conds := make([]Condition, len(ws))
	for i := range ws {
		conds[i] = ws[i].Cond()
	}
	return Not(conds...)
}

// ListRelationFilter filters on a to-many relation.
type ListRelationFilter[W Conder] struct {
	Some  *W
	Every *W
	None  *W
}

func (f *ListRelationFilter[W]) Cond(relation string) Condition {
	if f == nil {
		return nil
	}
	var conds []Condition
	if f.Some != nil {
		conds = append(conds, Some(relation, (*f.Some).Cond()))
	}
	if f.Every != nil {
		conds = append(conds, Every(relation, (*f.Every).Cond()))
	}
	if f.None != nil {
		conds = append(conds, None(relation, (*f.None).Cond()))
	}
	return And(conds...)
}

// RelationFilter filters on a to-one relation.
type RelationFilter[W Conder] struct {
	Is    *W
	IsNot *W
}

func (f *RelationFilter[W]) Cond(relation string) Condition {
	if f == nil {
		return nil
	}
	var conds []Condition
	if f.Is != nil {
		conds = append(conds, Is(relation, (*f.Is).Cond()))
	}
	if f.IsNot != nil {
		conds = append(conds, IsNot(relation, (*f.IsNot).Cond()))
	}
	return And(conds...)
}

// Uniquer is implemented by generated unique-lookup inputs.
type Uniquer interface {
	UniqueCond() (Condition, error)
}

// UniqueRequired is the error of a unique lookup with no key set.
func UniqueRequired(model string) error {
	return errors.NewValidationError("Argument `where` of type %sWhereUniqueInput needs at least one argument.", model)
}

// UniqueCondOf converts an optional unique lookup.
func UniqueCondOf[U Uniquer](u *U) (Condition, error) {
	if u == nil {
		return nil, nil
	}
	return (*u).UniqueCond()
}

package builder

import "time"

// QueryMode selects case sensitivity for string filters.
type QueryMode string

const (
	ModeDefault     QueryMode = "default"
	ModeInsensitive QueryMode = "insensitive"
)

// FieldFilter is implemented by every scalar filter. The unexported method
// lets aggregate filters reuse a field filter against COUNT/AVG/SUM/MIN/MAX.
type FieldFilter interface {
	Cond(field string) Condition
	aggCond(field, agg string) Condition
}

type condList struct {
	field string
	agg   string
	ci    bool
	conds []Condition
}

func (l *condList) add(op string, v any) {
	l.conds = append(l.conds, &fieldCond{field: l.field, agg: l.agg, op: op, value: v, insensitive: l.ci})
}

func (l *condList) not(c Condition) {
	if c != nil {
		l.conds = append(l.conds, Not(c))
	}
}

func (l *condList) isNull(isNull *bool) {
	if isNull == nil {
		return
	}
	if *isNull {
		l.add(opIsNull, nil)
	} else {
		l.add(opIsNotNull, nil)
	}
}

func anys[T any](vs []T) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

// StringFilter filters a String field.
type StringFilter struct {
	Equals     *string
	In         []string
	NotIn      []string
	Lt         *string
	Lte        *string
	Gt         *string
	Gte        *string
	Contains   *string
	StartsWith *string
	EndsWith   *string
	// Search is a full-text query in the database's own syntax.
	Search *string
	Mode   QueryMode
	Not    *StringFilter
}

func (f *StringFilter) Cond(field string) Condition { return f.aggCond(field, "") }

func (f *StringFilter) aggCond(field, agg string) Condition {
	if f == nil {
		return nil
	}
	l := &condList{field: field, agg: agg, ci: f.Mode == ModeInsensitive}
	if f.Equals != nil {
		l.add(opEq, *f.Equals)
	}
	if f.In != nil {
		l.add(opIn, anys(f.In))
	}
	if f.NotIn != nil {
		l.add(opNotIn, anys(f.NotIn))
	}
	if f.Lt != nil {
		l.add(opLt, *f.Lt)
	}
	if f.Lte != nil {
		l.add(opLte, *f.Lte)
	}
	if f.Gt != nil {
		l.add(opGt, *f.Gt)
	}
	if f.Gte != nil {
		l.add(opGte, *f.Gte)
	}
	if f.Contains != nil {
		l.add(opLike, "%"+escapeLike(*f.Contains)+"%")
	}
	if f.StartsWith != nil {
		l.add(opLike, escapeLike(*f.StartsWith)+"%")
	}
	if f.EndsWith != nil {
		l.add(opLike, "%"+escapeLike(*f.EndsWith))
	}
	if f.Search != nil {
		l.ci = false
		l.add(opSearch, *f.Search)
	}
	not := f.Not
	if not != nil && not.Mode == "" && f.Mode != "" {
		// not inherits the enclosing mode
		n := *not
		n.Mode = f.Mode
		not = &n
	}
	l.not(not.aggCond(field, agg))
	return And(l.conds...)
}

// StringNullableFilter filters an optional String field.
type StringNullableFilter struct {
	StringFilter
	IsNull *bool
}

func (f *StringNullableFilter) Cond(field string) Condition { return f.aggCond(field, "") }

func (f *StringNullableFilter) aggCond(field, agg string) Condition {
	if f == nil {
		return nil
	}
	l := &condList{field: field, agg: agg}
	l.isNull(f.IsNull)
	return And(append(l.conds, f.StringFilter.aggCond(field, agg))...)
}

// CompareFilter filters an ordered scalar: numbers and timestamps.
type CompareFilter[T any] struct {
	Equals *T
	In     []T
	NotIn  []T
	Lt     *T
	Lte    *T
	Gt     *T
	Gte    *T
	Not    *CompareFilter[T]
}

type (
	IntFilter      = CompareFilter[int]
	BigIntFilter   = CompareFilter[int64]
	FloatFilter    = CompareFilter[float64]
	DateTimeFilter = CompareFilter[time.Time]
)

func (f *CompareFilter[T]) Cond(field string) Condition { return f.aggCond(field, "") }

func (f *CompareFilter[T]) aggCond(field, agg string) Condition {
	if f == nil {
		return nil
	}
	l := &condList{field: field, agg: agg}
	if f.Equals != nil {
		l.add(opEq, *f.Equals)
	}
	if f.In != nil {
		l.add(opIn, anys(f.In))
	}
	if f.NotIn != nil {
		l.add(opNotIn, anys(f.NotIn))
	}
	if f.Lt != nil {
		l.add(opLt, *f.Lt)
	}
	if f.Lte != nil {
		l.add(opLte, *f.Lte)
	}
	if f.Gt != nil {
		l.add(opGt, *f.Gt)
	}
	if f.Gte != nil {
		l.add(opGte, *f.Gte)
	}
	l.not(f.Not.aggCond(field, agg))
	return And(l.conds...)
}

// NullableFilter filters an optional ordered scalar.
type NullableFilter[T any] struct {
	CompareFilter[T]
	IsNull *bool
}

type (
	IntNullableFilter      = NullableFilter[int]
	BigIntNullableFilter   = NullableFilter[int64]
	FloatNullableFilter    = NullableFilter[float64]
	DateTimeNullableFilter = NullableFilter[time.Time]
)

func (f *NullableFilter[T]) Cond(field string) Condition { return f.aggCond(field, "") }

func (f *NullableFilter[T]) aggCond(field, agg string) Condition {
	if f == nil {
		return nil
	}
	l := &condList{field: field, agg: agg}
	l.isNull(f.IsNull)
	return And(append(l.conds, f.CompareFilter.aggCond(field, agg))...)
}

// EnumFilter filters an enum field.
type EnumFilter[T ~string] struct {
	Equals *T
	In     []T
	NotIn  []T
	Not    *EnumFilter[T]
}

func (f *EnumFilter[T]) Cond(field string) Condition { return f.aggCond(field, "") }

func (f *EnumFilter[T]) aggCond(field, agg string) Condition {
	if f == nil {
		return nil
	}
	l := &condList{field: field, agg: agg}
	if f.Equals != nil {
		l.add(opEq, string(*f.Equals))
	}
	if f.In != nil {
		l.add(opIn, anys(f.In))
	}
	if f.NotIn != nil {
		l.add(opNotIn, anys(f.NotIn))
	}
	l.not(f.Not.aggCond(field, agg))
	return And(l.conds...)
}

// EnumNullableFilter filters an optional enum field.
type EnumNullableFilter[T ~string] struct {
	EnumFilter[T]
	IsNull *bool
}

func (f *EnumNullableFilter[T]) Cond(field string) Condition { return f.aggCond(field, "") }

func (f *EnumNullableFilter[T]) aggCond(field, agg string) Condition {
	if f == nil {
		return nil
	}
	l := &condList{field: field, agg: agg}
	l.isNull(f.IsNull)
	return And(append(l.conds, f.EnumFilter.aggCond(field, agg))...)
}

// BoolFilter filters a Boolean field.
type BoolFilter struct {
	Equals *bool
	Not    *BoolFilter
}

func (f *BoolFilter) Cond(field string) Condition { return f.aggCond(field, "") }

func (f *BoolFilter) aggCond(field, agg string) Condition {
	if f == nil {
		return nil
	}
	l := &condList{field: field, agg: agg}
	if f.Equals != nil {
		l.add(opEq, *f.Equals)
	}
	l.not(f.Not.aggCond(field, agg))
	return And(l.conds...)
}

// BoolNullableFilter filters an optional Boolean field.
type BoolNullableFilter struct {
	BoolFilter
	IsNull *bool
}

func (f *BoolNullableFilter) Cond(field string) Condition { return f.aggCond(field, "") }

func (f *BoolNullableFilter) aggCond(field, agg string) Condition {
	if f == nil {
		return nil
	}
	l := &condList{field: field, agg: agg}
	l.isNull(f.IsNull)
	return And(append(l.conds, f.BoolFilter.aggCond(field, agg))...)
}

// JSONFilter filters a Json field. Values are encoded with encoding/json
// unless they are already json.RawMessage.
type JSONFilter struct {
	Equals any
	// ArrayContains matches arrays holding every element of the given array.
	ArrayContains any
	Not           any
}

func (f *JSONFilter) Cond(field string) Condition { return f.aggCond(field, "") }

func (f *JSONFilter) aggCond(field, agg string) Condition {
	if f == nil {
		return nil
	}
	l := &condList{field: field, agg: agg}
	if f.Equals != nil {
		l.add(opJSONEq, jsonArg(f.Equals))
	}
	if f.ArrayContains != nil {
		l.add(opJSONContain, jsonArg(f.ArrayContains))
	}
	if f.Not != nil {
		l.not(&fieldCond{field: field, agg: agg, op: opJSONEq, value: jsonArg(f.Not)})
	}
	return And(l.conds...)
}

// JSONNullableFilter filters an optional Json field.
type JSONNullableFilter struct {
	JSONFilter
	IsNull *bool
}

func (f *JSONNullableFilter) Cond(field string) Condition { return f.aggCond(field, "") }

func (f *JSONNullableFilter) aggCond(field, agg string) Condition {
	if f == nil {
		return nil
	}
	l := &condList{field: field, agg: agg}
	l.isNull(f.IsNull)
	return And(append(l.conds, f.JSONFilter.aggCond(field, agg))...)
}

// jsonValue defers encoding to bind time so encoding errors surface as validation errors.
type jsonValue struct{ v any }

func jsonArg(v any) jsonValue { return jsonValue{v: v} }

// AggregatesFilter is a group-by having filter on one field: Value applies to
// the grouped value itself, the rest to aggregates over the group.
type AggregatesFilter[F FieldFilter] struct {
	Value F
	Count *IntFilter
	Avg   *FloatFilter
	Sum   F
	Min   F
	Max   F
}

func (f *AggregatesFilter[F]) Cond(field string) Condition {
	if f == nil {
		return nil
	}
	return And(
		f.Value.Cond(field),
		f.Count.aggCond(field, "COUNT"),
		f.Avg.aggCond(field, "AVG"),
		f.Sum.aggCond(field, "SUM"),
		f.Min.aggCond(field, "MIN"),
		f.Max.aggCond(field, "MAX"),
	)
}

package builder

import (
	"github.com/carlosnayan/prisma-go-marketplace/internal/errors"
	"github.com/carlosnayan/prisma-go-marketplace/internal/limits"
)

// FindArgs is the engine form of a findMany/findFirst call.
type FindArgs struct {
	Where   Condition
	OrderBy []Order
	// Cursor identifies the row the page starts at.
	Cursor Condition
	// Take limits the rows returned; a negative Take reads backwards.
	Take     *int
	Skip     *int
	Distinct []string
	// Select is nil to return every scalar field and no relations.
	Select *Selection
}

// Selection chooses the fields and relations a read returns.
type Selection struct {
	// Scalars lists the scalar fields to return; nil returns all of them.
	Scalars   []string
	Relations []RelationSelection
	Counts    []CountSelection

	err error
}

// RelationSelection loads a relation with its own find arguments.
type RelationSelection struct {
	Relation string
	Args     FindArgs
}

// CountSelection counts the rows of a list relation, optionally filtered.
type CountSelection struct {
	Relation string
	Where    Condition
}

// Err returns the first error recorded while the selection was built.
func (s *Selection) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

// AddScalar selects a scalar field when on is true.
func (s *Selection) AddScalar(field string, on bool) {
	if on {
		s.Scalars = append(s.Scalars, field)
	}
}

// FindArgser is implemented by generated find-many args and relation args.
type FindArgser interface {
	FindArgs() (FindArgs, error)
}

// Selector is implemented by generated select and include inputs.
type Selector interface {
	Selection() (*Selection, error)
}

// AddRelation loads relation with args when args is set.
func AddRelation[A FindArgser](s *Selection, relation string, args *A) {
	if args == nil {
		return
	}
	fa, err := (*args).FindArgs()
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return
	}
	s.Relations = append(s.Relations, RelationSelection{Relation: relation, Args: fa})
}

// AddCount counts a list relation's rows matching where when where is set.
func AddCount[W Conder](s *Selection, relation string, where *W) {
	if where == nil {
		return
	}
	s.Counts = append(s.Counts, CountSelection{Relation: relation, Where: (*where).Cond()})
}

// SelectionOf resolves a select/include pair. Setting both is a validation error.
func SelectionOf[S, I Selector](sel *S, inc *I) (*Selection, error) {
	switch {
	case sel != nil && inc != nil:
		return nil, errors.NewValidationError("Please either use `include` or `select`, but not both at the same time.")
	case sel != nil:
		s, err := (*sel).Selection()
		if err != nil {
			return nil, err
		}
		if s.Scalars == nil {
			s.Scalars = []string{}
		}
		return s, nil
	case inc != nil:
		return (*inc).Selection()
	}
	return nil, nil
}

// FieldNames converts a scalar-field enum list.
func FieldNames[T ~string](fields []T) []string {
	if fields == nil {
		return nil
	}
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = string(f)
	}
	return out
}

// AggregateArgs is the engine form of an aggregate call. Count may contain "_all".
type AggregateArgs struct {
	Where   Condition
	OrderBy []Order
	Cursor  Condition
	Take    *int
	Skip    *int

	Count []string
	Avg   []string
	Sum   []string
	Min   []string
	Max   []string
}

// GroupByArgs is the engine form of a groupBy call.
type GroupByArgs struct {
	By      []string
	Where   Condition
	Having  Condition
	OrderBy []Order
	Take    *int
	Skip    *int

	Count []string
	Avg   []string
	Sum   []string
	Min   []string
	Max   []string
}

// FieldLister is implemented by generated aggregate selection inputs.
type FieldLister interface {
	Fields() []string
}

// FieldsOf lists the fields an optional aggregate selection turns on.
func FieldsOf[L FieldLister](l *L) []string {
	if l == nil {
		return nil
	}
	return (*l).Fields()
}

func validatePaging(take, skip *int) error {
	if skip != nil && *skip < 0 {
		return errors.NewValidationError("Invalid value for skip argument: Value can only be positive, found: %d", *skip)
	}
	if take != nil && (*take > limits.MaxScanRows || *take < -limits.MaxScanRows) {
		return errors.NewValidationError("take exceeds %d rows", limits.MaxScanRows)
	}
	return nil
}

func validateFields(m *Model, what string, fields []string) error {
	for _, name := range fields {
		if name == "_all" && what == "_count" {
			continue
		}
		if m.Field(name) == nil {
			return errors.NewValidationError("Unknown field `%s` for %s on model `%s`", name, what, m.Name)
		}
	}
	return nil
}

func validateSelection(m *Model, s *Selection, depth int) error {
	if s == nil {
		return nil
	}
	if s.err != nil {
		return s.err
	}
	if depth > limits.MaxIncludeDepth {
		return errors.NewValidationError("include depth exceeds %d", limits.MaxIncludeDepth)
	}
	if len(s.Scalars) > limits.MaxSelectFields {
		return errors.NewValidationError("select exceeds %d fields", limits.MaxSelectFields)
	}
	if err := validateFields(m, "select", s.Scalars); err != nil {
		return err
	}
	for _, r := range s.Relations {
		rel := m.Relation(r.Relation)
		if rel == nil {
			return errors.NewValidationError("Unknown relation `%s` on model `%s`", r.Relation, m.Name)
		}
		if err := validateFind(rel.Target(), r.Args, depth+1); err != nil {
			return err
		}
	}
	for _, c := range s.Counts {
		if rel := m.Relation(c.Relation); rel == nil || !rel.List {
			return errors.NewValidationError("Cannot count `%s` on model `%s`", c.Relation, m.Name)
		}
	}
	return nil
}

func validateFind(m *Model, args FindArgs, depth int) error {
	if err := validatePaging(args.Take, args.Skip); err != nil {
		return err
	}
	if err := validateFields(m, "distinct", args.Distinct); err != nil {
		return err
	}
	return validateSelection(m, args.Select, depth)
}

func validateGroupBy(m *Model, args GroupByArgs) error {
	if len(args.By) == 0 {
		return errors.NewValidationError("groupBy requires at least one `by` field")
	}
	if len(args.By) > limits.MaxGroupByFields {
		return errors.NewValidationError("groupBy exceeds %d fields", limits.MaxGroupByFields)
	}
	if err := validateFields(m, "by", args.By); err != nil {
		return err
	}
	inBy := make(map[string]bool, len(args.By))
	for _, f := range args.By {
		inBy[f] = true
	}
	for _, o := range args.OrderBy {
		if len(o.Path) > 0 || o.Count {
			return errors.NewValidationError("groupBy cannot order through relations")
		}
		if o.Agg == "" && !inBy[o.Field] {
			return errors.NewValidationError("Every field used for orderBy must be included in the by-arguments of the query. Missing fields: %s", o.Field)
		}
	}
	if (args.Take != nil || args.Skip != nil) && len(args.OrderBy) == 0 {
		return errors.NewValidationError("Every usage of `take` or `skip` in groupBy requires `orderBy`")
	}
	if err := validatePaging(args.Take, args.Skip); err != nil {
		return err
	}
	var missing string
	if args.Having != nil {
		args.Having.walk(func(c *fieldCond) {
			if c.agg == "" && !inBy[c.field] && missing == "" {
				missing = c.field
			}
		})
	}
	if missing != "" {
		return errors.NewValidationError("Every field used in having filters must either be an aggregation filter or be included in the selection of the query. Missing fields: %s", missing)
	}
	return validateAggregates(m, args.Count, args.Avg, args.Sum, args.Min, args.Max)
}

func validateAggregates(m *Model, count, avg, sum, min, max []string) error {
	for _, set := range []struct {
		name    string
		fields  []string
		numeric bool
	}{
		{"_count", count, false}, {"_avg", avg, true}, {"_sum", sum, true}, {"_min", min, false}, {"_max", max, false},
	} {
		if err := validateFields(m, set.name, set.fields); err != nil {
			return err
		}
		if !set.numeric {
			continue
		}
		for _, name := range set.fields {
			if !m.Field(name).Type.Numeric() {
				return errors.NewValidationError("Field `%s` of model `%s` is not numeric and cannot be used in %s", name, m.Name, set.name)
			}
		}
	}
	return nil
}

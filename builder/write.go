package builder

import (
	"context"
	"reflect"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/carlosnayan/prisma-go-marketplace/internal/errors"
	"github.com/carlosnayan/prisma-go-marketplace/internal/limits"
)

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// storable converts a scalar value for storage: Json fields are encoded to text.
func storable(f *Field, v any) (any, error) {
	if isNil(v) {
		return nil, nil
	}
	if f.Type == TypeJSON {
		return encodeJSON(v)
	}
	return v, nil
}

// prepareInsert applies client-side defaults and checks required fields.
// It returns the assigned fields in declaration order.
func prepareInsert(m *Model, vals map[string]any) ([]string, error) {
	for i := range m.Fields {
		f := &m.Fields[i]
		if _, set := vals[f.Name]; set {
			continue
		}
		switch f.Default.Kind {
		case DefaultUUID:
			vals[f.Name] = uuid.NewString()
		case DefaultNow:
			vals[f.Name] = time.Now().UTC()
		case DefaultValue:
			vals[f.Name] = f.Default.Value
		}
	}

	var cols []string
	for i := range m.Fields {
		f := &m.Fields[i]
		v, set := vals[f.Name]
		if !set {
			if !f.Optional && f.Default.Kind == DefaultNone {
				return nil, errors.NewValidationError("Argument `%s` is missing.", f.Name)
			}
			continue
		}
		if isNil(v) && !f.Optional {
			return nil, errors.NewValidationError("Argument `%s` must not be null.", f.Name)
		}
		enc, err := storable(f, v)
		if err != nil {
			return nil, err
		}
		vals[f.Name] = enc
		cols = append(cols, f.Name)
	}
	return cols, nil
}

// autoPK returns the autoincrement primary key field, if any.
func autoPK(m *Model) *Field {
	if len(m.PrimaryKey) != 1 {
		return nil
	}
	f := m.Field(m.PrimaryKey[0])
	if f.Default.Kind != DefaultAutoincrement {
		return nil
	}
	return f
}

// insertRow inserts one row and returns the affected row count. A generated
// autoincrement key is stored back into vals.
func insertRow(ctx context.Context, s *session, m *Model, cols []string, vals map[string]any, ignore bool) (int64, error) {
	w := newWriter(s.e.dialect)
	verb, suffix := "INSERT INTO", ""
	if ignore {
		verb, suffix = w.d.InsertIgnore()
	}
	w.write(verb, " ", w.table(m))
	if len(cols) == 0 {
		if w.d.Name() == "mysql" {
			w.write(" () VALUES ()")
		} else {
			w.write(" DEFAULT VALUES")
		}
	} else {
		w.write(" (")
		for i, c := range cols {
			if i > 0 {
				w.write(", ")
			}
			w.write(w.quote(m.Field(c).Column))
		}
		w.write(") VALUES (")
		for i, c := range cols {
			if i > 0 {
				w.write(", ")
			}
			w.write(w.bind(vals[c]))
		}
		w.write(")")
	}
	w.write(suffix)

	pk := autoPK(m)
	if pk != nil {
		if _, set := vals[pk.Name]; set {
			pk = nil
		}
	}
	if pk != nil && w.d.SupportsReturning() {
		w.write(" RETURNING ", w.quote(pk.Column))
		rows, err := s.query(ctx, w)
		if err != nil {
			return 0, err
		}
		var n int64
		err = s.scan(rows, 1, func(v []any) error {
			n++
			vals[pk.Name] = v[0]
			return nil
		})
		return n, err
	}

	res, err := s.exec(ctx, w)
	if err != nil {
		return 0, err
	}
	n := res.RowsAffected()
	if pk != nil && n > 0 {
		id, err := res.LastInsertId()
		if err != nil {
			return 0, errors.MapDriverError(err, s.op)
		}
		vals[pk.Name] = id
	}
	return n, nil
}

// backReference returns the owning relation on rel's target that points back
// at the parent through the same keys.
func backReference(parent *Model, rel *Relation) *Relation {
	target := rel.Target()
	for i := range target.Relations {
		r := &target.Relations[i]
		if r.Owner && r.Model == parent.Name && slices.Equal(r.Fields, rel.References) && slices.Equal(r.References, rel.Fields) {
			return r
		}
	}
	return nil
}

// resolveOwned returns the values of rel.References for the row a nested
// write on an owning relation points at, creating it when asked to.
func resolveOwned(ctx context.Context, s *session, rel *Relation, nw nestedWrite, depth int) ([]any, error) {
	target := rel.Target()
	if n := len(nw.creates) + len(nw.connects) + len(nw.connectOrCreate); n != 1 {
		return nil, errors.NewValidationError("Nested write on `%s` needs exactly one of create, connect, connectOrCreate", rel.Name)
	}
	var vals map[string]any
	switch {
	case len(nw.creates) == 1:
		v, err := create(ctx, s, target, nw.creates[0], depth+1)
		if err != nil {
			return nil, err
		}
		vals = v
	case len(nw.connects) == 1:
		v, found, err := lookup(ctx, s, target, nw.connects[0], rel.References)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, connectNotFound(target, rel, s.op)
		}
		vals = v
	default:
		coc := nw.connectOrCreate[0]
		v, found, err := lookup(ctx, s, target, coc.where, rel.References)
		if err != nil {
			return nil, err
		}
		if !found {
			v, err = create(ctx, s, target, coc.create, depth+1)
			if err != nil {
				return nil, err
			}
		}
		vals = v
	}
	if missing := missingFields(vals, rel.References); len(missing) > 0 {
		v, found, err := lookup(ctx, s, target, pkCond(target, vals), rel.References)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, connectNotFound(target, rel, s.op)
		}
		vals = v
	}
	out := make([]any, len(rel.References))
	for i, f := range rel.References {
		out[i] = vals[f]
	}
	return out, nil
}

func missingFields(vals map[string]any, fields []string) []string {
	var missing []string
	for _, f := range fields {
		if _, ok := vals[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}

// notFound is a P2025 error with an operation-specific message.
func notFound(m *Model, op errors.OperationType, msg string) error {
	err := errors.NewNotFoundError(m.Name, op)
	if pe, ok := err.(*errors.PrismaError); ok && !errors.ProductionMode {
		pe.Message = msg
	}
	return err
}

func connectNotFound(target *Model, rel *Relation, op errors.OperationType) error {
	return notFound(target, op, "No '"+target.Name+"' record was found for a nested connect on relation '"+rel.Name+"'.")
}

// writeChildren runs the nested writes on relations whose foreign key lives
// on the related model, after the parent row exists.
func writeChildren(ctx context.Context, s *session, m *Model, parent map[string]any, nested []nestedWrite, depth int) error {
	for _, nw := range nested {
		rel := m.Relation(nw.relation)
		if rel.Owner {
			continue
		}
		target := rel.Target()
		keys := make([]any, len(rel.Fields))
		for i, f := range rel.Fields {
			keys[i] = parent[f]
		}
		if !rel.List && len(nw.creates)+len(nw.connects)+len(nw.connectOrCreate) != 1 {
			return errors.NewValidationError("Nested write on `%s` needs exactly one of create, connect, connectOrCreate", rel.Name)
		}
		back := backReference(m, rel)

		childData := func(d *WriteData) *WriteData {
			c := d.clone()
			if back != nil {
				c.nested = slices.DeleteFunc(c.nested, func(n nestedWrite) bool { return n.relation == back.Name })
			}
			for i, f := range rel.References {
				c.Set(f, keys[i])
			}
			return c
		}

		for _, d := range nw.creates {
			if _, err := create(ctx, s, target, childData(d), depth+1); err != nil {
				return err
			}
		}
		for _, cond := range nw.connects {
			if err := relink(ctx, s, rel, cond, keys); err != nil {
				return err
			}
		}
		for _, coc := range nw.connectOrCreate {
			_, found, err := lookup(ctx, s, target, coc.where, target.PrimaryKey)
			if err != nil {
				return err
			}
			if found {
				err = relink(ctx, s, rel, coc.where, keys)
			} else {
				_, err = create(ctx, s, target, childData(coc.create), depth+1)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// relink points the row matching cond at a new parent.
func relink(ctx context.Context, s *session, rel *Relation, cond Condition, keys []any) error {
	target := rel.Target()
	vals, found, err := lookup(ctx, s, target, cond, target.PrimaryKey)
	if err != nil {
		return err
	}
	if !found {
		return connectNotFound(target, rel, s.op)
	}
	sets := make([]fieldValue, len(rel.References))
	for i, f := range rel.References {
		sets[i] = fieldValue{field: f, op: opSet, value: keys[i]}
	}
	_, err = updateRows(ctx, s, target, pkCond(target, vals), sets)
	return err
}

// create inserts data into m with its nested writes and returns the row's
// known field values.
func create(ctx context.Context, s *session, m *Model, data *WriteData, depth int) (map[string]any, error) {
	if data == nil {
		data = NewWriteData()
	}
	if data.err != nil {
		return nil, data.err
	}
	if depth > limits.MaxIncludeDepth {
		return nil, errors.NewValidationError("nested write depth exceeds %d", limits.MaxIncludeDepth)
	}
	vals := map[string]any{}
	for _, fv := range data.values {
		if m.Field(fv.field) == nil {
			return nil, errors.NewValidationError("Unknown argument `%s` for model `%s`", fv.field, m.Name)
		}
		if fv.op != opSet {
			return nil, errors.NewValidationError("Argument `%s`: only set is allowed in create", fv.field)
		}
		vals[fv.field] = fv.value
	}
	for _, nw := range data.nested {
		rel := m.Relation(nw.relation)
		if rel == nil {
			return nil, errors.NewValidationError("Unknown relation `%s` on model `%s`", nw.relation, m.Name)
		}
		if !rel.Owner {
			continue
		}
		keys, err := resolveOwned(ctx, s, rel, nw, depth)
		if err != nil {
			return nil, err
		}
		for i, f := range rel.Fields {
			vals[f] = keys[i]
		}
	}

	cols, err := prepareInsert(m, vals)
	if err != nil {
		return nil, err
	}
	if _, err := insertRow(ctx, s, m, cols, vals, false); err != nil {
		return nil, err
	}
	if err := writeChildren(ctx, s, m, vals, data.nested, depth); err != nil {
		return nil, err
	}
	return vals, nil
}

// renderSets writes the SET list of an UPDATE.
func renderSets(w *sqlWriter, m *Model, sets []fieldValue) {
	for i, fv := range sets {
		if i > 0 {
			w.write(", ")
		}
		col := w.quote(m.Field(fv.field).Column)
		w.write(col, " = ")
		switch fv.op {
		case opIncrement:
			w.write(col, " + ", w.bind(fv.value))
		case opDecrement:
			w.write(col, " - ", w.bind(fv.value))
		case opMultiply:
			w.write(col, " * ", w.bind(fv.value))
		case opDivide:
			w.write(col, " / ", w.bind(fv.value))
		default:
			w.write(w.bind(fv.value))
		}
	}
}

// checkSets validates and encodes scalar assignments of an update.
func checkSets(m *Model, values []fieldValue) ([]fieldValue, error) {
	sets := make([]fieldValue, 0, len(values))
	for _, fv := range values {
		f := m.Field(fv.field)
		if f == nil {
			return nil, errors.NewValidationError("Unknown argument `%s` for model `%s`", fv.field, m.Name)
		}
		if fv.op == opSet && isNil(fv.value) && !f.Optional {
			return nil, errors.NewValidationError("Argument `%s` must not be null.", fv.field)
		}
		if fv.op != opSet && !f.Type.Numeric() {
			return nil, errors.NewValidationError("Argument `%s`: arithmetic updates need a numeric field", fv.field)
		}
		if fv.op == opSet {
			enc, err := storable(f, fv.value)
			if err != nil {
				return nil, err
			}
			fv.value = enc
		}
		sets = append(sets, fv)
	}
	return sets, nil
}

// updateRows runs UPDATE ... SET sets WHERE cond and returns the matched row count.
func updateRows(ctx context.Context, s *session, m *Model, cond Condition, sets []fieldValue) (int64, error) {
	w := newWriter(s.e.dialect)
	sc := scope{model: m, alias: m.Table}
	w.write("UPDATE ", w.table(m), " SET ")
	renderSets(w, m, sets)
	if cond != nil {
		w.write(" WHERE ")
		cond.render(w, sc)
	}
	res, err := s.exec(ctx, w)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

// update applies data to the row matching where and returns its field values
// after the update.
func update(ctx context.Context, s *session, m *Model, where Condition, data *WriteData, depth int) (map[string]any, error) {
	if data == nil {
		data = NewWriteData()
	}
	if data.err != nil {
		return nil, data.err
	}
	vals, found, err := lookup(ctx, s, m, where, m.ScalarNames())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, notFound(m, s.op, "Record to update not found.")
	}

	values := append([]fieldValue(nil), data.values...)
	for _, nw := range data.nested {
		rel := m.Relation(nw.relation)
		if rel == nil {
			return nil, errors.NewValidationError("Unknown relation `%s` on model `%s`", nw.relation, m.Name)
		}
		if !rel.Owner {
			continue
		}
		keys, err := resolveOwned(ctx, s, rel, nw, depth)
		if err != nil {
			return nil, err
		}
		for i, f := range rel.Fields {
			values = append(values, fieldValue{field: f, op: opSet, value: keys[i]})
		}
	}
	sets, err := checkSets(m, values)
	if err != nil {
		return nil, err
	}
	if len(sets) > 0 {
		if _, err := updateRows(ctx, s, m, pkCond(m, vals), sets); err != nil {
			return nil, err
		}
		for _, fv := range sets {
			if fv.op == opSet {
				vals[fv.field] = fv.value
			}
		}
	}
	if err := writeChildren(ctx, s, m, vals, data.nested, depth); err != nil {
		return nil, err
	}
	return vals, nil
}

// deleteRows runs DELETE ... WHERE cond and returns the deleted row count.
func deleteRows(ctx context.Context, s *session, m *Model, cond Condition) (int64, error) {
	w := newWriter(s.e.dialect)
	sc := scope{model: m, alias: m.Table}
	w.write("DELETE FROM ", w.table(m))
	if cond != nil {
		w.write(" WHERE ")
		cond.render(w, sc)
	}
	res, err := s.exec(ctx, w)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

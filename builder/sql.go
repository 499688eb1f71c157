package builder

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/carlosnayan/prisma-go-marketplace/internal/dialect"
	"github.com/carlosnayan/prisma-go-marketplace/internal/errors"
)

// sqlWriter accumulates one statement. Placeholders are numbered as they are
// written, so fragments must be emitted left to right.
type sqlWriter struct {
	d       dialect.Dialect
	b       strings.Builder
	args    []any
	aliases int
	leaves  int
	err     error
}

func newWriter(d dialect.Dialect) *sqlWriter {
	return &sqlWriter{d: d}
}

func (w *sqlWriter) write(parts ...string) {
	for _, p := range parts {
		w.b.WriteString(p)
	}
}

// bind records v and returns its placeholder.
func (w *sqlWriter) bind(v any) string {
	w.args = append(w.args, bindValue(w.d, v))
	return w.d.GetPlaceholder(len(w.args))
}

// bindJSON encodes a JSON filter value and binds the text.
func (w *sqlWriter) bindJSON(v any) string {
	if jv, ok := v.(jsonValue); ok {
		v = jv.v
	}
	text, err := encodeJSON(v)
	if err != nil && w.err == nil {
		w.err = err
	}
	return w.bind(text)
}

func (w *sqlWriter) quote(name string) string {
	return w.d.QuoteIdentifier(name)
}

func (w *sqlWriter) table(m *Model) string {
	return w.d.QuoteIdentifier(m.Table)
}

// alias returns a fresh table alias: t0, t1, ...
func (w *sqlWriter) alias() string {
	a := fmt.Sprintf("t%d", w.aliases)
	w.aliases++
	return a
}

// fail keeps the first rendering error; rendering continues so callers check once.
func (w *sqlWriter) fail(format string, args ...any) {
	if w.err == nil {
		w.err = errors.NewValidationError(format, args...)
	}
}

func (w *sqlWriter) String() string { return w.b.String() }

// scope is the model and alias a predicate is rendered against.
type scope struct {
	model *Model
	alias string
}

// column renders "alias"."column" for a scalar field.
func (w *sqlWriter) column(sc scope, field string) string {
	f := sc.model.Field(field)
	if f == nil {
		w.fail("Unknown field `%s` on model `%s`", field, sc.model.Name)
		return "NULL"
	}
	if sc.alias == "" {
		return w.quote(f.Column)
	}
	return w.quote(sc.alias) + "." + w.quote(f.Column)
}

// joinOn renders the equality between a relation's target rows (inner) and its parent (outer).
func (w *sqlWriter) joinOn(rel *Relation, outer scope, inner string) {
	w.write(w.joinString(rel, outer, inner))
}

// bindValue converts Go values into what every driver accepts: times in UTC
// (fixed-width text on SQLite so they sort), JSON as text, named scalar types
// as their underlying kind.
func bindValue(d dialect.Dialect, v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		t := x.UTC()
		if d.Name() == "sqlite" {
			return t.Format(sqliteTimeLayout)
		}
		return t
	case json.RawMessage:
		if x == nil {
			return nil
		}
		return string(x)
	case string, bool, int64, float64, []byte:
		return x
	case int:
		return int64(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return bindValue(d, rv.Elem().Interface())
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Bool:
		return rv.Bool()
	}
	return v
}

const sqliteTimeLayout = "2006-01-02 15:04:05.000"

// encodeJSON turns a filter or write value into JSON text. Raw messages and
// byte slices are taken as already encoded.
func encodeJSON(v any) (string, error) {
	switch x := v.(type) {
	case json.RawMessage:
		if !json.Valid(x) {
			return "", errors.NewValidationError("invalid JSON value %q", string(x))
		}
		return string(x), nil
	case []byte:
		if !json.Valid(x) {
			return "", errors.NewValidationError("invalid JSON value %q", string(x))
		}
		return string(x), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", errors.NewValidationError("cannot encode JSON value: %v", err)
	}
	return string(b), nil
}

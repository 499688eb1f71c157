package parser

import (
	"fmt"
	"sort"
)

// ScalarTypes are the built-in field types.
var ScalarTypes = []string{"String", "Int", "BigInt", "Float", "Decimal", "Boolean", "DateTime", "Json", "Bytes"}

func IsScalarType(name string) bool {
	for _, t := range ScalarTypes {
		if t == name {
			return true
		}
	}
	return false
}

// DefaultFunctions are the functions accepted inside @default.
var DefaultFunctions = map[string]bool{
	"now": true, "uuid": true, "cuid": true, "autoincrement": true, "dbgenerated": true,
}

type validator struct {
	schema *Schema
	errors []string
}

// Validate checks semantic rules the grammar cannot express and returns one message per problem.
func Validate(schema *Schema) []string {
	v := &validator{schema: schema}
	v.validate()
	return v.errors
}

func (v *validator) errorf(line int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if line > 0 {
		msg = fmt.Sprintf("line %d: %s", line, msg)
	}
	v.errors = append(v.errors, msg)
}

func (v *validator) validate() {
	if len(v.schema.Datasources) > 1 {
		v.errorf(v.schema.Datasources[1].Line, "only one datasource is allowed")
	}
	for _, ds := range v.schema.Datasources {
		v.validateDatasource(ds)
	}
	for _, gen := range v.schema.Generators {
		if gen.Get("provider") == nil {
			v.errorf(gen.Line, "generator %q is missing provider", gen.Name)
		}
	}

	names := map[string]string{}
	for _, m := range v.schema.Models {
		if kind, dup := names[m.Name]; dup {
			v.errorf(m.Line, "%q is already defined as a %s", m.Name, kind)
		}
		names[m.Name] = "model"
	}
	for _, e := range v.schema.Enums {
		if kind, dup := names[e.Name]; dup {
			v.errorf(e.Line, "%q is already defined as a %s", e.Name, kind)
		}
		names[e.Name] = "enum"
		v.validateEnum(e)
	}
	for _, m := range v.schema.Models {
		v.validateModel(m)
	}
	for _, m := range v.schema.Models {
		v.validateRelations(m)
	}
}

func (v *validator) validateDatasource(ds *Datasource) {
	provider, ok := ds.Get("provider").(string)
	switch {
	case !ok:
		v.errorf(ds.Line, "datasource %q is missing provider", ds.Name)
	case provider != "postgresql" && provider != "mysql" && provider != "sqlite":
		v.errorf(ds.Line, "datasource %q has unsupported provider %q", ds.Name, provider)
	}
	if ds.Get("url") == nil {
		v.errorf(ds.Line, "datasource %q is missing url", ds.Name)
	}
}

func (v *validator) validateEnum(e *Enum) {
	if len(e.Values) == 0 {
		v.errorf(e.Line, "enum %q has no values", e.Name)
	}
	seen := map[string]bool{}
	for _, val := range e.Values {
		if seen[val.Name] {
			v.errorf(e.Line, "enum %q declares %q twice", e.Name, val.Name)
		}
		seen[val.Name] = true
	}
}

func (v *validator) validateModel(m *Model) {
	seen := map[string]bool{}
	ids := 0
	for _, f := range m.Fields {
		if seen[f.Name] {
			v.errorf(f.Line, "field %q is declared twice in model %q", f.Name, m.Name)
		}
		seen[f.Name] = true

		v.validateFieldType(m, f)
		if f.HasAttribute("id") {
			ids++
			if f.Type.IsOptional {
				v.errorf(f.Line, "@id field %s.%s cannot be optional", m.Name, f.Name)
			}
		}
		if def := f.Attribute("default"); def != nil {
			v.validateDefault(m, f, def)
		}
	}

	if m.Attribute("id") != nil {
		ids++
	}
	if ids == 0 {
		v.errorf(m.Line, "model %q has no @id or @@id", m.Name)
	} else if ids > 1 {
		v.errorf(m.Line, "model %q declares more than one primary key", m.Name)
	}

	for _, attr := range m.Attributes {
		switch attr.Name {
		case "id", "unique", "index":
			fields := Names(attr.Arg("fields", 0))
			if len(fields) == 0 {
				v.errorf(attr.Line, "@@%s in model %q needs a field list", attr.Name, m.Name)
			}
			for _, name := range fields {
				f := m.Field(name)
				if f == nil {
					v.errorf(attr.Line, "@@%s in model %q references unknown field %q", attr.Name, m.Name, name)
				} else if !IsScalarType(f.Type.Name) && v.schema.Enum(f.Type.Name) == nil {
					v.errorf(attr.Line, "@@%s in model %q references relation field %q", attr.Name, m.Name, name)
				}
			}
		case "map":
			if _, ok := attr.Arg("name", 0).(string); !ok {
				v.errorf(attr.Line, "@@map in model %q needs a string name", m.Name)
			}
		}
	}
}

func (v *validator) validateFieldType(m *Model, f *ModelField) {
	t := f.Type
	if t.IsUnsupported {
		return
	}
	switch {
	case IsScalarType(t.Name), v.schema.Enum(t.Name) != nil:
		if t.IsArray {
			v.errorf(f.Line, "scalar list %s.%s is not supported", m.Name, f.Name)
		}
	case v.schema.Model(t.Name) != nil:
		if t.IsArray && t.IsOptional {
			v.errorf(f.Line, "relation list %s.%s cannot be optional", m.Name, f.Name)
		}
	default:
		v.errorf(f.Line, "field %s.%s has unknown type %q", m.Name, f.Name, t.Name)
	}
}

func (v *validator) validateDefault(m *Model, f *ModelField, def *Attribute) {
	if len(def.Arguments) != 1 {
		v.errorf(def.Line, "@default on %s.%s takes exactly one value", m.Name, f.Name)
		return
	}
	switch val := def.Arguments[0].Value.(type) {
	case *FunctionCall:
		if !DefaultFunctions[val.Name] {
			v.errorf(def.Line, "@default on %s.%s uses unknown function %s()", m.Name, f.Name, val.Name)
		}
		if val.Name == "autoincrement" && f.Type.Name != "Int" && f.Type.Name != "BigInt" {
			v.errorf(def.Line, "autoincrement() on %s.%s requires Int or BigInt", m.Name, f.Name)
		}
	case Ident:
		e := v.schema.Enum(f.Type.Name)
		if e == nil {
			v.errorf(def.Line, "@default on %s.%s: %s is not a value", m.Name, f.Name, val)
			return
		}
		for _, ev := range e.Values {
			if ev.Name == string(val) {
				return
			}
		}
		v.errorf(def.Line, "@default on %s.%s: %s is not a member of enum %s", m.Name, f.Name, val, e.Name)
	}
}

// validateRelations checks @relation arguments and that every relation has a back-relation field.
func (v *validator) validateRelations(m *Model) {
	for _, f := range m.Fields {
		target := v.schema.Model(f.Type.Name)
		if target == nil {
			continue
		}
		rel := f.Attribute("relation")
		fields := Names(rel.Arg("fields", -1))
		refs := Names(rel.Arg("references", -1))

		if len(fields) != len(refs) {
			v.errorf(f.Line, "@relation on %s.%s needs matching fields and references", m.Name, f.Name)
		}
		if len(fields) > 0 && f.Type.IsArray {
			v.errorf(f.Line, "@relation fields belong on the to-one side, not on list %s.%s", m.Name, f.Name)
		}
		for _, name := range fields {
			own := m.Field(name)
			if own == nil {
				v.errorf(f.Line, "@relation on %s.%s references unknown field %q", m.Name, f.Name, name)
			} else if f.Type.IsOptional != own.Type.IsOptional {
				v.errorf(f.Line, "optionality of %s.%s must match foreign key %q", m.Name, f.Name, name)
			}
		}
		for _, name := range refs {
			if target.Field(name) == nil {
				v.errorf(f.Line, "@relation on %s.%s references unknown field %s.%s", m.Name, f.Name, target.Name, name)
			}
		}

		if back := v.backRelations(m, f, target); len(back) != 1 {
			if len(back) == 0 {
				v.errorf(f.Line, "relation %s.%s has no opposite field on model %s", m.Name, f.Name, target.Name)
			} else {
				v.errorf(f.Line, "relation %s.%s is ambiguous; name both sides with @relation(\"...\")", m.Name, f.Name)
			}
		}
	}
}

// backRelations returns the fields on target pointing back to m under the same relation name.
func (v *validator) backRelations(m *Model, f *ModelField, target *Model) []string {
	name := RelationName(f)
	var out []string
	for _, tf := range target.Fields {
		if tf.Type.Name != m.Name || (target == m && tf == f) {
			continue
		}
		if RelationName(tf) == name {
			out = append(out, tf.Name)
		}
	}
	sort.Strings(out)
	return out
}

// RelationName returns the explicit relation name of a relation field, or "".
func RelationName(f *ModelField) string {
	rel := f.Attribute("relation")
	if rel == nil {
		return ""
	}
	if s, ok := rel.Arg("name", 0).(string); ok {
		return s
	}
	return ""
}

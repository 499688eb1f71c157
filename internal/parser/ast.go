package parser

import "strings"

// Schema is the parsed schema file.
type Schema struct {
	Datasources []*Datasource
	Generators  []*Generator
	Models      []*Model
	Enums       []*Enum
}

type Datasource struct {
	Name   string
	Fields []*Field
	Line   int
}

type Generator struct {
	Name   string
	Fields []*Field
	Line   int
}

type Model struct {
	Name       string
	Fields     []*ModelField
	Attributes []*Attribute // block attributes (@@unique, @@map, ...)
	Line       int
}

type ModelField struct {
	Name       string
	Type       *FieldType
	Attributes []*Attribute
	Line       int
}

type FieldType struct {
	Name             string
	IsArray          bool
	IsOptional       bool
	IsUnsupported    bool
	UnsupportedValue string
}

type Enum struct {
	Name   string
	Values []*EnumValue
	Line   int
}

type EnumValue struct {
	Name       string
	Attributes []*Attribute
}

// Attribute is @name(args) or @@name(args). Namespaced attributes keep the dotted name ("db.VarChar").
type Attribute struct {
	Name      string
	Arguments []*AttributeArgument
	Line      int
}

// AttributeArgument holds a positional (Name == "") or named argument.
// Value is one of string, int64, float64, bool, Ident, *FunctionCall or []any.
type AttributeArgument struct {
	Name  string
	Value any
}

// Field is a key = value entry in a datasource or generator block.
type Field struct {
	Name  string
	Value any
}

// Ident is a bare identifier value such as a field reference or Cascade.
type Ident string

// FunctionCall is a value like now(), uuid() or env("DATABASE_URL").
type FunctionCall struct {
	Name string
	Args []any
}

func (s *Schema) Model(name string) *Model {
	for _, m := range s.Models {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func (s *Schema) Enum(name string) *Enum {
	for _, e := range s.Enums {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Provider returns the first datasource's provider, lower-cased, or "" when unset.
func (s *Schema) Provider() string {
	if len(s.Datasources) == 0 {
		return ""
	}
	if v, ok := s.Datasources[0].Get("provider").(string); ok {
		return strings.ToLower(v)
	}
	return ""
}

func (d *Datasource) Get(name string) any {
	return fieldValue(d.Fields, name)
}

func (g *Generator) Get(name string) any {
	return fieldValue(g.Fields, name)
}

func fieldValue(fields []*Field, name string) any {
	for _, f := range fields {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}

func (m *Model) Field(name string) *ModelField {
	for _, f := range m.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Attribute returns the first block attribute with name.
func (m *Model) Attribute(name string) *Attribute {
	return findAttribute(m.Attributes, name)
}

// AttributesNamed returns every block attribute with name, in declaration order.
func (m *Model) AttributesNamed(name string) []*Attribute {
	var out []*Attribute
	for _, a := range m.Attributes {
		if a.Name == name {
			out = append(out, a)
		}
	}
	return out
}

func (f *ModelField) Attribute(name string) *Attribute {
	return findAttribute(f.Attributes, name)
}

func (f *ModelField) HasAttribute(name string) bool {
	return f.Attribute(name) != nil
}

func findAttribute(attrs []*Attribute, name string) *Attribute {
	for _, a := range attrs {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Arg returns the named argument, falling back to the positional argument at pos when pos >= 0.
func (a *Attribute) Arg(name string, pos int) any {
	if a == nil {
		return nil
	}
	positional := 0
	for _, arg := range a.Arguments {
		if arg.Name == name && name != "" {
			return arg.Value
		}
		if arg.Name == "" {
			if positional == pos {
				return arg.Value
			}
			positional++
		}
	}
	return nil
}

// Names converts a list value ([a, b]) to identifier names.
func Names(v any) []string {
	list, ok := v.([]any)
	if !ok {
		if s := nameOf(v); s != "" {
			return []string{s}
		}
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s := nameOf(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func nameOf(v any) string {
	switch t := v.(type) {
	case Ident:
		return string(t)
	case string:
		return t
	case *FunctionCall:
		// sort-annotated field: email(sort: Desc)
		return t.Name
	}
	return ""
}

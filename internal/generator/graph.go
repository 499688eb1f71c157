package generator

import (
	"fmt"
	"strings"

	"github.com/carlosnayan/prisma-go-marketplace/internal/parser"
)

// Graph is the resolved form of a schema that the emitters and the DDL
// builder work from.
type Graph struct {
	Package  string
	Provider string
	Enums    []*Enum
	Models   []*Model
}

type Enum struct {
	Name   string
	Values []EnumValue
}

type EnumValue struct {
	Name   string
	GoName string
}

type Model struct {
	Name      string
	GoName    string
	Table     string
	Fields    []*Field
	Relations []*Relation
	// PrimaryKey lists the @id field, or the @@id fields.
	PrimaryKey []string
	// Uniques lists every unique key, the primary key first.
	Uniques []*Unique
	Indexes [][]string
}

// DefaultKind mirrors the runtime's default kinds.
type DefaultKind int

const (
	DefaultNone DefaultKind = iota
	DefaultValue
	DefaultUUID
	DefaultNow
	DefaultAutoincrement
	DefaultDBGenerated
)

type Default struct {
	Kind  DefaultKind
	Value any
}

type Field struct {
	Name   string
	GoName string
	Column string
	// Type is a scalar type name, or "Enum".
	Type       string
	Enum       string
	Optional   bool
	Default    Default
	ID         bool
	Unique     bool
	ForeignKey bool
}

type Relation struct {
	Name       string
	GoName     string
	Target     string
	List       bool
	Optional   bool
	Owner      bool
	Fields     []string
	References []string
	OnDelete   string
}

type Unique struct {
	Fields  []string
	GoName  string
	Primary bool
}

// Field looks up a scalar field.
func (m *Model) Field(name string) *Field {
	for _, f := range m.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Var is the name of the model's metadata variable in generated code.
func (m *Model) Var() string { return receiver(m.GoName) + "Model" }

// HasListRelations reports whether the model gets a _count output.
func (m *Model) HasListRelations() bool {
	for _, r := range m.Relations {
		if r.List {
			return true
		}
	}
	return false
}

func (m *Model) listRelations() []*Relation {
	var out []*Relation
	for _, r := range m.Relations {
		if r.List {
			out = append(out, r)
		}
	}
	return out
}

func (f *Field) Numeric() bool {
	switch f.Type {
	case "Int", "BigInt", "Float", "Decimal":
		return true
	}
	return false
}

// NewGraph resolves a validated schema. pkg names the generated package.
func NewGraph(schema *parser.Schema, pkg string) (*Graph, error) {
	g := &Graph{Package: pkg, Provider: schema.Provider()}
	if g.Provider == "" {
		g.Provider = "postgresql"
	}
	caser := newTitleCaser()
	for _, e := range schema.Enums {
		ge := &Enum{Name: e.Name}
		for _, v := range e.Values {
			ge.Values = append(ge.Values, EnumValue{Name: v.Name, GoName: enumConst(caser, e.Name, v.Name)})
		}
		g.Enums = append(g.Enums, ge)
	}
	for _, m := range schema.Models {
		gm, err := newModel(schema, m)
		if err != nil {
			return nil, err
		}
		g.Models = append(g.Models, gm)
	}
	for _, m := range g.Models {
		if err := g.linkBackRelations(schema, m); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func newModel(schema *parser.Schema, m *parser.Model) (*Model, error) {
	gm := &Model{Name: m.Name, GoName: pascal(m.Name), Table: m.Name}
	if name, ok := m.Attribute("map").Arg("name", 0).(string); ok {
		gm.Table = name
	}
	fks := make(map[string]bool)
	for _, f := range m.Fields {
		if schema.Model(f.Type.Name) == nil {
			continue
		}
		rel := f.Attribute("relation")
		r := &Relation{
			Name:     f.Name,
			GoName:   pascal(f.Name),
			Target:   f.Type.Name,
			List:     f.Type.IsArray,
			Optional: f.Type.IsOptional,
			Fields:   parser.Names(rel.Arg("fields", -1)),
		}
		r.References = parser.Names(rel.Arg("references", -1))
		r.Owner = len(r.Fields) > 0
		if v := parser.Names(rel.Arg("onDelete", -1)); len(v) == 1 {
			r.OnDelete = v[0]
		}
		for _, name := range r.Fields {
			fks[name] = true
		}
		gm.Relations = append(gm.Relations, r)
	}
	for _, f := range m.Fields {
		if schema.Model(f.Type.Name) != nil || f.Type.IsUnsupported {
			continue
		}
		if f.Type.IsArray {
			return nil, fmt.Errorf("%s.%s: scalar lists are not supported", m.Name, f.Name)
		}
		gf := &Field{
			Name:       f.Name,
			GoName:     pascal(f.Name),
			Column:     f.Name,
			Type:       f.Type.Name,
			Optional:   f.Type.IsOptional,
			ID:         f.HasAttribute("id"),
			Unique:     f.HasAttribute("unique"),
			ForeignKey: fks[f.Name],
		}
		if schema.Enum(f.Type.Name) != nil {
			gf.Type, gf.Enum = "Enum", f.Type.Name
		}
		if name, ok := f.Attribute("map").Arg("name", 0).(string); ok {
			gf.Column = name
		}
		if def := f.Attribute("default"); def != nil {
			gf.Default = defaultOf(gf, def.Arg("value", 0))
		}
		if gf.ID {
			gm.PrimaryKey = []string{f.Name}
		}
		gm.Fields = append(gm.Fields, gf)
	}
	if id := m.Attribute("id"); id != nil {
		gm.PrimaryKey = parser.Names(id.Arg("fields", 0))
	}
	if len(gm.PrimaryKey) == 0 {
		return nil, fmt.Errorf("model %s has no primary key", m.Name)
	}

	gm.Uniques = append(gm.Uniques, newUnique(gm, gm.PrimaryKey, true))
	for _, f := range gm.Fields {
		if f.Unique {
			gm.Uniques = append(gm.Uniques, newUnique(gm, []string{f.Name}, false))
		}
	}
	for _, a := range m.AttributesNamed("unique") {
		gm.Uniques = append(gm.Uniques, newUnique(gm, parser.Names(a.Arg("fields", 0)), false))
	}
	for _, a := range m.AttributesNamed("index") {
		gm.Indexes = append(gm.Indexes, parser.Names(a.Arg("fields", 0)))
	}
	return gm, nil
}

func newUnique(m *Model, fields []string, primary bool) *Unique {
	var b strings.Builder
	for _, name := range fields {
		if f := m.Field(name); f != nil {
			b.WriteString(f.GoName)
		} else {
			b.WriteString(pascal(name))
		}
	}
	return &Unique{Fields: fields, GoName: b.String(), Primary: primary}
}

func defaultOf(f *Field, v any) Default {
	if call, ok := v.(*parser.FunctionCall); ok {
		switch call.Name {
		case "uuid", "cuid":
			return Default{Kind: DefaultUUID}
		case "now":
			return Default{Kind: DefaultNow}
		case "autoincrement":
			return Default{Kind: DefaultAutoincrement}
		case "dbgenerated":
			return Default{Kind: DefaultDBGenerated}
		}
		return Default{}
	}
	switch t := v.(type) {
	case int64:
		if f.Type == "Float" || f.Type == "Decimal" {
			return Default{Kind: DefaultValue, Value: float64(t)}
		}
		if f.Type == "Int" {
			return Default{Kind: DefaultValue, Value: int(t)}
		}
		return Default{Kind: DefaultValue, Value: t}
	case parser.Ident:
		return Default{Kind: DefaultValue, Value: string(t)}
	case nil:
		return Default{}
	}
	return Default{Kind: DefaultValue, Value: v}
}

// linkBackRelations fills the join fields of the non-owning side from the
// owner on the target model.
func (g *Graph) linkBackRelations(schema *parser.Schema, m *Model) error {
	for _, r := range m.Relations {
		if r.Owner {
			continue
		}
		owner := g.model(r.Target).ownerOf(schema, m.Name, g.relationName(schema, m.Name, r.Name))
		if owner == nil {
			return fmt.Errorf("relation %s.%s has no owning side on %s", m.Name, r.Name, r.Target)
		}
		r.Fields, r.References = owner.References, owner.Fields
	}
	return nil
}

func (g *Graph) model(name string) *Model {
	for _, m := range g.Models {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func (g *Graph) relationName(schema *parser.Schema, model, field string) string {
	return parser.RelationName(schema.Model(model).Field(field))
}

func (m *Model) ownerOf(schema *parser.Schema, target, name string) *Relation {
	for _, r := range m.Relations {
		if r.Owner && r.Target == target && parser.RelationName(schema.Model(m.Name).Field(r.Name)) == name {
			return r
		}
	}
	return nil
}

package builder

import "fmt"

// FieldType is a schema scalar type.
type FieldType string

const (
	TypeString   FieldType = "String"
	TypeInt      FieldType = "Int"
	TypeBigInt   FieldType = "BigInt"
	TypeFloat    FieldType = "Float"
	TypeDecimal  FieldType = "Decimal"
	TypeBoolean  FieldType = "Boolean"
	TypeDateTime FieldType = "DateTime"
	TypeJSON     FieldType = "Json"
	TypeBytes    FieldType = "Bytes"
	TypeEnum     FieldType = "Enum"
)

// Numeric reports whether the type can be averaged and summed.
func (t FieldType) Numeric() bool {
	switch t {
	case TypeInt, TypeBigInt, TypeFloat, TypeDecimal:
		return true
	}
	return false
}

// DefaultKind says who fills a field the caller left out of a create.
type DefaultKind int

const (
	DefaultNone DefaultKind = iota
	// DefaultValue inserts Default.Value.
	DefaultValue
	// DefaultUUID generates a random UUID on the client.
	DefaultUUID
	// DefaultNow uses the current time on the client.
	DefaultNow
	// DefaultAutoincrement and DefaultDBGenerated leave the column to the database.
	DefaultAutoincrement
	DefaultDBGenerated
)

type Default struct {
	Kind  DefaultKind
	Value any
}

// Field describes one scalar field of a model.
type Field struct {
	Name     string
	Column   string
	Type     FieldType
	Optional bool
	Default  Default
}

// Relation describes a relation field. Rows are joined on
// target.References[i] = model.Fields[i]; Owner is set on the side that
// stores the foreign key.
type Relation struct {
	Name       string
	Model      string
	List       bool
	Optional   bool
	Owner      bool
	Fields     []string
	References []string

	target *Model
}

// Target returns the related model once the schema is linked.
func (r *Relation) Target() *Model { return r.target }

// Model is the runtime metadata of one table.
type Model struct {
	Name       string
	Table      string
	Fields     []Field
	Relations  []Relation
	PrimaryKey []string
	// Uniques lists the unique constraints other than the primary key.
	Uniques [][]string

	fields    map[string]*Field
	relations map[string]*Relation
}

// Field looks up a scalar field by name.
func (m *Model) Field(name string) *Field { return m.fields[name] }

// Relation looks up a relation field by name.
func (m *Model) Relation(name string) *Relation { return m.relations[name] }

// ScalarNames returns every scalar field name in declaration order.
func (m *Model) ScalarNames() []string {
	names := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		names[i] = f.Name
	}
	return names
}

// Schema is a linked set of models.
type Schema struct {
	Models []*Model
	byName map[string]*Model
}

// NewSchema indexes models and resolves relation targets. Inconsistent metadata
// is a bug in generated code, so it panics.
func NewSchema(models ...*Model) *Schema {
	s := &Schema{Models: models, byName: make(map[string]*Model, len(models))}
	for _, m := range models {
		m.fields = make(map[string]*Field, len(m.Fields))
		for i := range m.Fields {
			m.fields[m.Fields[i].Name] = &m.Fields[i]
		}
		m.relations = make(map[string]*Relation, len(m.Relations))
		for i := range m.Relations {
			m.relations[m.Relations[i].Name] = &m.Relations[i]
		}
		s.byName[m.Name] = m
	}
	for _, m := range models {
		for _, name := range m.PrimaryKey {
			if m.fields[name] == nil {
				panic(fmt.Sprintf("builder: model %s: primary key field %q not declared", m.Name, name))
			}
		}
		for i := range m.Relations {
			rel := &m.Relations[i]
			target := s.byName[rel.Model]
			if target == nil {
				panic(fmt.Sprintf("builder: model %s: relation %s targets unknown model %s", m.Name, rel.Name, rel.Model))
			}
			if len(rel.Fields) != len(rel.References) || len(rel.Fields) == 0 {
				panic(fmt.Sprintf("builder: model %s: relation %s has mismatched join fields", m.Name, rel.Name))
			}
			for j := range rel.Fields {
				if m.fields[rel.Fields[j]] == nil || target.fields[rel.References[j]] == nil {
					panic(fmt.Sprintf("builder: model %s: relation %s joins unknown fields", m.Name, rel.Name))
				}
			}
			rel.target = target
		}
	}
	return s
}

// Model returns the model called name, or nil.
func (s *Schema) Model(name string) *Model { return s.byName[name] }

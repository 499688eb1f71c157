package generator

import "github.com/dave/jennifer/jen"

// baseType is the Go type of a scalar value.
func baseType(f *Field) *jen.Statement {
	switch f.Type {
	case "Int":
		return jen.Int()
	case "BigInt":
		return jen.Int64()
	case "Float", "Decimal":
		return jen.Float64()
	case "Boolean":
		return jen.Bool()
	case "DateTime":
		return jen.Qual("time", "Time")
	case "Json":
		return jen.Qual("encoding/json", "RawMessage")
	case "Bytes":
		return jen.Index().Byte()
	case "Enum":
		return jen.Id(f.Enum)
	}
	return jen.String()
}

// nilable types carry NULL themselves and are never wrapped in a pointer.
func nilable(f *Field) bool { return f.Type == "Json" || f.Type == "Bytes" }

func ptr(c jen.Code) *jen.Statement { return jen.Op("*").Add(c) }

// recordType is the type of the field on the record struct.
func recordType(f *Field) *jen.Statement {
	if f.Optional && !nilable(f) {
		return ptr(baseType(f))
	}
	return baseType(f)
}

// filterType is the where-input member type for a field.
func filterType(f *Field) *jen.Statement {
	nullable := ""
	if f.Optional {
		nullable = "Nullable"
	}
	switch f.Type {
	case "Enum":
		return ptr(b("Enum" + nullable + "Filter").Types(jen.Id(f.Enum)))
	case "Bytes":
		if f.Optional {
			return ptr(b("NullableFilter").Types(jen.Index().Byte()))
		}
		return ptr(b("CompareFilter").Types(jen.Index().Byte()))
	}
	name := map[string]string{
		"String":   "String",
		"Int":      "Int",
		"BigInt":   "BigInt",
		"Float":    "Float",
		"Decimal":  "Float",
		"Boolean":  "Bool",
		"DateTime": "DateTime",
		"Json":     "JSON",
	}[f.Type]
	return ptr(b(name + nullable + "Filter"))
}

// builderType names the runtime FieldType constant.
func builderType(f *Field) string {
	switch f.Type {
	case "Json":
		return "TypeJSON"
	case "Enum":
		return "TypeEnum"
	}
	return "Type" + f.Type
}

var defaultKinds = map[DefaultKind]string{
	DefaultValue:         "DefaultValue",
	DefaultUUID:          "DefaultUUID",
	DefaultNow:           "DefaultNow",
	DefaultAutoincrement: "DefaultAutoincrement",
	DefaultDBGenerated:   "DefaultDBGenerated",
}

func defaultLit(d Default) jen.Code {
	items := []jen.Code{kv("Kind", b(defaultKinds[d.Kind]))}
	if d.Kind == DefaultValue {
		items = append(items, kv("Value", jen.Lit(d.Value)))
	}
	return b("Default").Values(items...)
}

// createType is the member type on create inputs. Members the database or
// a relation can fill are pointers; so are foreign keys unless flat is set.
func createType(f *Field, flat bool) *jen.Statement {
	switch f.Type {
	case "Json":
		return jen.Id("any")
	case "Bytes":
		return jen.Index().Byte()
	}
	if f.Optional || f.Default.Kind != DefaultNone || (f.ForeignKey && !flat) {
		return ptr(baseType(f))
	}
	return baseType(f)
}

// updateType is the member type on update inputs.
func updateType(f *Field) *jen.Statement {
	switch {
	case f.Numeric():
		return ptr(b("NumberUpdate").Types(baseType(f)))
	case f.Optional:
		return ptr(b("NullableSet").Types(baseType(f)))
	case f.Type == "Json":
		return jen.Id("any")
	case f.Type == "Bytes":
		return jen.Index().Byte()
	}
	return ptr(baseType(f))
}

package generator

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

// genInputs renders the write inputs and the args of the write operations.
func (g *Generator) genInputs(m *Model) *jen.File {
	f := g.newFile()
	X := m.GoName

	nestedRows := func() []jen.Code {
		var rows []jen.Code
		for _, r := range m.Relations {
			kind := "NestedOne"
			if r.List {
				kind = "NestedMany"
			}
			rows = append(rows, jen.Id(r.GoName).Op("*").Add(b(kind).Types(jen.Id(r.Target+"CreateInput"), jen.Id(r.Target+"WhereUniqueInput"))))
		}
		return rows
	}
	nestedApply := func() []jen.Code {
		var body []jen.Code
		for _, r := range m.Relations {
			fn := "ApplyNestedOne"
			if r.List {
				fn = "ApplyNestedMany"
			}
			body = append(body, b(fn).Call(jen.Id("d"), jen.Lit(r.Name), jen.Id("in").Dot(r.GoName)))
		}
		return body
	}
	dataFunc := func(name string, body []jen.Code) {
		body = append([]jen.Code{jen.Id("d").Op(":=").Add(b("NewWriteData")).Call()}, body...)
		body = append(body, jen.Return(jen.Id("d"), jen.Id("d").Dot("Err").Call()))
		f.Func().Params(jen.Id("in").Id(name)).Id("Data").Params().Params(ptr(b("WriteData")), jen.Error()).Block(body...)
	}

	// create
	var rows, body []jen.Code
	for _, fd := range m.Fields {
		rows = append(rows, jen.Id(fd.GoName).Add(createType(fd, false)))
		body = append(body, createSet(fd, false)...)
	}
	if len(m.Relations) > 0 {
		rows = append(append(rows, jen.Line()), nestedRows()...)
		body = append(body, nestedApply()...)
	}
	doc(f,
		fmt.Sprintf("%sCreateInput is the data of a new %s. Pointer members are optional; a", X, X),
		"foreign key may be left unset when the relation is written through its",
		"nested member instead.",
	)
	f.Type().Id(X + "CreateInput").Struct(rows...)
	f.Line()
	dataFunc(X+"CreateInput", body)

	rows, body = nil, nil
	for _, fd := range m.Fields {
		rows = append(rows, jen.Id(fd.GoName).Add(createType(fd, true)))
		body = append(body, createSet(fd, true)...)
	}
	f.Line()
	doc(f,
		fmt.Sprintf("%sCreateManyInput is one row of a CreateMany call. Relations are written", X),
		"through their foreign keys.",
	)
	f.Type().Id(X + "CreateManyInput").Struct(rows...)
	f.Line()
	dataFunc(X+"CreateManyInput", body)

	// update
	rows, body = nil, nil
	for _, fd := range m.Fields {
		rows = append(rows, jen.Id(fd.GoName).Add(updateType(fd)))
		body = append(body, updateSet(fd)...)
	}
	scalarRows, scalarBody := rows, body
	if len(m.Relations) > 0 {
		rows = append(append(append([]jen.Code{}, rows...), jen.Line()), nestedRows()...)
		body = append(append([]jen.Code{}, body...), nestedApply()...)
	}
	f.Line()
	doc(f, fmt.Sprintf("%sUpdateInput lists the changes to one %s. Unset members are left alone.", X, X))
	f.Type().Id(X + "UpdateInput").Struct(rows...)
	f.Line()
	dataFunc(X+"UpdateInput", body)

	f.Line()
	doc(f, fmt.Sprintf("%sUpdateManyInput lists the scalar changes applied by UpdateMany.", X))
	f.Type().Id(X + "UpdateManyInput").Struct(scalarRows...)
	f.Line()
	dataFunc(X+"UpdateManyInput", scalarBody)

	args := []struct {
		name string
		rows []jen.Code
	}{
		{"CreateArgs", []jen.Code{jen.Id("Data").Id(X + "CreateInput")}},
		{"CreateManyArgs", nil},
		{"CreateManyAndReturnArgs", nil},
		{"UpdateArgs", []jen.Code{jen.Id("Where").Id(X + "WhereUniqueInput"), jen.Id("Data").Id(X + "UpdateInput")}},
		{"UpdateManyArgs", nil},
		{"UpdateManyAndReturnArgs", nil},
		{"UpsertArgs", []jen.Code{jen.Id("Where").Id(X + "WhereUniqueInput"), jen.Id("Create").Id(X + "CreateInput"), jen.Id("Update").Id(X + "UpdateInput")}},
		{"DeleteArgs", []jen.Code{jen.Id("Where").Id(X + "WhereUniqueInput")}},
	}
	for _, a := range args {
		rows := a.rows
		switch a.name {
		case "CreateManyArgs", "CreateManyAndReturnArgs":
			rows = []jen.Code{jen.Id("Data").Index().Id(X + "CreateManyInput"), jen.Id("SkipDuplicates").Bool()}
		case "UpdateManyArgs", "UpdateManyAndReturnArgs":
			rows = []jen.Code{jen.Id("Where").Op("*").Id(X + "WhereInput"), jen.Id("Data").Id(X + "UpdateManyInput")}
		}
		if a.name != "CreateManyArgs" && a.name != "UpdateManyArgs" {
			rows = append(rows, selectRows(m)...)
		}
		f.Line()
		f.Type().Id(X + a.name).Struct(rows...)
	}
	return f
}

func setOptional(fd *Field) jen.Code {
	return b("SetOptional").Call(jen.Id("d"), jen.Lit(fd.Name), jen.Id("in").Dot(fd.GoName))
}

func set(fd *Field) jen.Code {
	return jen.Id("d").Dot("Set").Call(jen.Lit(fd.Name), jen.Id("in").Dot(fd.GoName))
}

func setIfPresent(fd *Field) jen.Code {
	return jen.If(jen.Id("in").Dot(fd.GoName).Op("!=").Nil()).Block(set(fd))
}

func createSet(fd *Field, flat bool) []jen.Code {
	if nilable(fd) {
		if fd.Optional || fd.Default.Kind != DefaultNone {
			return []jen.Code{setIfPresent(fd)}
		}
		return []jen.Code{set(fd)}
	}
	if fd.Optional || fd.Default.Kind != DefaultNone || (fd.ForeignKey && !flat) {
		return []jen.Code{setOptional(fd)}
	}
	return []jen.Code{set(fd)}
}

func updateSet(fd *Field) []jen.Code {
	switch {
	case fd.Numeric():
		return []jen.Code{b("ApplyNumber").Call(jen.Id("d"), jen.Lit(fd.Name), jen.Id("in").Dot(fd.GoName))}
	case fd.Optional:
		return []jen.Code{b("ApplyNullable").Call(jen.Id("d"), jen.Lit(fd.Name), jen.Id("in").Dot(fd.GoName))}
	case nilable(fd):
		return []jen.Code{setIfPresent(fd)}
	}
	return []jen.Code{setOptional(fd)}
}

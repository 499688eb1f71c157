package generator

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

// genModel renders the record, its metadata and the read-side inputs.
func (g *Generator) genModel(m *Model) *jen.File {
	f := g.newFile()
	X := m.GoName

	var rels []jen.Code
	for _, r := range m.Relations {
		t := ptr(jen.Id(r.Target))
		if r.List {
			t = jen.Index().Id(r.Target)
		}
		rels = append(rels, jen.Id(r.GoName).Add(t).Tag(map[string]string{"json": r.Name + ",omitempty"}))
	}
	if m.HasListRelations() {
		rels = append(rels, jen.Id("Count").Op("*").Id(X+"CountOutput").Tag(map[string]string{"json": "_count,omitempty"}))
	}
	var rows []jen.Code
	for _, fd := range m.Fields {
		rows = append(rows, jen.Id(fd.GoName).Add(recordType(fd)).Tag(map[string]string{"db": fd.Column, "json": fd.Name}))
	}
	if len(rels) > 0 {
		rows = append(append(rows, jen.Line()), rels...)
	}
	doc(f, fmt.Sprintf("%s is a row of the %s table.", X, m.Table))
	f.Type().Id(X).Struct(rows...)

	if m.HasListRelations() {
		var counts []jen.Code
		for _, r := range m.listRelations() {
			counts = append(counts, jen.Id(r.GoName).Int().Tag(map[string]string{"json": r.Name}))
		}
		f.Line()
		doc(f, fmt.Sprintf("%sCountOutput holds the related-row counts requested through _count.", X))
		f.Type().Id(X + "CountOutput").Struct(counts...)
	}

	f.Line()
	doc(f, fmt.Sprintf("%sScalarField names a scalar field of %s.", X, X))
	f.Type().Id(X + "ScalarField").String()
	f.Line()
	var consts []jen.Code
	for _, fd := range m.Fields {
		consts = append(consts, jen.Id(X+"ScalarField"+fd.GoName).Id(X+"ScalarField").Op("=").Lit(fd.Name))
	}
	f.Const().Defs(consts...)

	f.Line()
	g.genMetadata(f, m)
	f.Line()
	g.genWhere(f, m)
	f.Line()
	g.genOrderBy(f, m)
	f.Line()
	g.genSelect(f, m)
	f.Line()
	g.genFindArgs(f, m)
	return f
}

func (g *Generator) genMetadata(f *jen.File, m *Model) {
	var fields []jen.Code
	for _, fd := range m.Fields {
		items := []jen.Code{
			kv("Name", jen.Lit(fd.Name)),
			kv("Column", jen.Lit(fd.Column)),
			kv("Type", b(builderType(fd))),
		}
		if fd.Optional {
			items = append(items, kv("Optional", jen.True()))
		}
		if fd.Default.Kind != DefaultNone {
			items = append(items, kv("Default", defaultLit(fd.Default)))
		}
		fields = append(fields, jen.Values(items...))
	}
	items := []jen.Code{
		kv("Name", jen.Lit(m.Name)),
		kv("Table", jen.Lit(m.Table)),
		kv("Fields", jen.Index().Add(b("Field")).Values(multi(fields...)...)),
	}
	if len(m.Relations) > 0 {
		var rels []jen.Code
		for _, r := range m.Relations {
			ri := []jen.Code{kv("Name", jen.Lit(r.Name)), kv("Model", jen.Lit(r.Target))}
			if r.List {
				ri = append(ri, kv("List", jen.True()))
			}
			if r.Optional {
				ri = append(ri, kv("Optional", jen.True()))
			}
			if r.Owner {
				ri = append(ri, kv("Owner", jen.True()))
			}
			ri = append(ri, kv("Fields", stringList(r.Fields)), kv("References", stringList(r.References)))
			rels = append(rels, jen.Values(ri...))
		}
		items = append(items, kv("Relations", jen.Index().Add(b("Relation")).Values(multi(rels...)...)))
	}
	items = append(items, kv("PrimaryKey", stringList(m.PrimaryKey)))
	var uniques []jen.Code
	for _, u := range m.Uniques {
		if u.Primary {
			continue
		}
		var names []jen.Code
		for _, n := range u.Fields {
			names = append(names, jen.Lit(n))
		}
		uniques = append(uniques, jen.Values(names...))
	}
	if len(uniques) > 0 {
		items = append(items, kv("Uniques", jen.Index().Index().String().Values(uniques...)))
	}
	f.Var().Id(m.Var()).Op("=").Op("&").Add(b("Model")).Values(multi(items...)...)
}

func (g *Generator) genWhere(f *jen.File, m *Model) {
	X := m.GoName
	junctions := func(t string) []jen.Code {
		return []jen.Code{
			jen.Id("AND").Index().Id(t),
			jen.Id("OR").Index().Id(t),
			jen.Id("NOT").Index().Id(t),
			jen.Line(),
		}
	}
	junctionConds := []jen.Code{
		b("AllOf").Call(jen.Id("w").Dot("AND")),
		b("AnyOf").Call(jen.Id("w").Dot("OR")),
		b("NoneOf").Call(jen.Id("w").Dot("NOT")),
	}

	rows := junctions(X + "WhereInput")
	conds := append([]jen.Code{}, junctionConds...)
	for _, fd := range m.Fields {
		rows = append(rows, jen.Id(fd.GoName).Add(filterType(fd)))
		conds = append(conds, jen.Id("w").Dot(fd.GoName).Dot("Cond").Call(jen.Lit(fd.Name)))
	}
	if len(m.Relations) > 0 {
		rows = append(rows, jen.Line())
		for _, r := range m.Relations {
			kind := "RelationFilter"
			if r.List {
				kind = "ListRelationFilter"
			}
			rows = append(rows, jen.Id(r.GoName).Op("*").Add(b(kind).Types(jen.Id(r.Target+"WhereInput"))))
			conds = append(conds, jen.Id("w").Dot(r.GoName).Dot("Cond").Call(jen.Lit(r.Name)))
		}
	}
	doc(f, fmt.Sprintf("%sWhereInput filters %s rows. Members are combined with AND.", X, X))
	f.Type().Id(X + "WhereInput").Struct(rows...)
	f.Line()
	f.Func().Params(jen.Id("w").Id(X+"WhereInput")).Id("Cond").Params().Add(b("Condition")).Block(
		jen.Return(b("And").Call(multi(conds...)...)),
	)

	// unique lookups
	f.Line()
	var urows []jen.Code
	var compounds []*Unique
	for _, u := range m.Uniques {
		if len(u.Fields) == 1 {
			urows = append(urows, jen.Id(u.GoName).Add(ptr(baseType(m.Field(u.Fields[0])))))
			continue
		}
		urows = append(urows, jen.Id(u.GoName).Op("*").Id(compoundName(m, u)))
		compounds = append(compounds, u)
	}
	doc(f, fmt.Sprintf("%sWhereUniqueInput selects one %s by a unique key. At least one key must be set.", X, X))
	f.Type().Id(X + "WhereUniqueInput").Struct(urows...)
	for _, u := range compounds {
		var crows []jen.Code
		for _, name := range u.Fields {
			fd := m.Field(name)
			crows = append(crows, jen.Id(fd.GoName).Add(baseType(fd)))
		}
		f.Line()
		f.Type().Id(compoundName(m, u)).Struct(crows...)
	}
	body := []jen.Code{jen.Var().Id("conds").Index().Add(b("Condition"))}
	for _, u := range m.Uniques {
		var set jen.Code
		if len(u.Fields) == 1 {
			set = jen.Id("conds").Op("=").Append(jen.Id("conds"), b("Equals").Call(jen.Lit(u.Fields[0]), jen.Op("*").Id("u").Dot(u.GoName)))
		} else {
			var eqs []jen.Code
			for _, name := range u.Fields {
				eqs = append(eqs, b("Equals").Call(jen.Lit(name), jen.Id("u").Dot(u.GoName).Dot(m.Field(name).GoName)))
			}
			set = jen.Id("conds").Op("=").Append(append([]jen.Code{jen.Id("conds")}, multi(eqs...)...)...)
		}
		body = append(body, jen.If(jen.Id("u").Dot(u.GoName).Op("!=").Nil()).Block(set))
	}
	body = append(body,
		jen.If(jen.Len(jen.Id("conds")).Op("==").Lit(0)).Block(
			jen.Return(jen.Nil(), b("UniqueRequired").Call(jen.Lit(m.Name))),
		),
		jen.Return(b("And").Call(jen.Id("conds").Op("...")), jen.Nil()),
	)
	f.Line()
	f.Func().Params(jen.Id("u").Id(X+"WhereUniqueInput")).Id("UniqueCond").Params().Params(b("Condition"), jen.Error()).Block(body...)

	// group-by having
	f.Line()
	rows = junctions(X + "ScalarWhereWithAggregatesInput")
	conds = append([]jen.Code{}, junctionConds...)
	for _, fd := range m.Fields {
		rows = append(rows, jen.Id(fd.GoName).Op("*").Add(b("AggregatesFilter").Types(filterType(fd))))
		conds = append(conds, jen.Id("w").Dot(fd.GoName).Dot("Cond").Call(jen.Lit(fd.Name)))
	}
	doc(f,
		fmt.Sprintf("%sScalarWhereWithAggregatesInput filters groupBy results. Each member filters", X),
		"the grouped value or an aggregate over the group.",
	)
	f.Type().Id(X + "ScalarWhereWithAggregatesInput").Struct(rows...)
	f.Line()
	f.Func().Params(jen.Id("w").Id(X+"ScalarWhereWithAggregatesInput")).Id("Cond").Params().Add(b("Condition")).Block(
		jen.Return(b("And").Call(multi(conds...)...)),
	)
}

func compoundName(m *Model, u *Unique) string {
	return m.GoName + u.GoName + "CompoundUniqueInput"
}

var aggregates = []struct{ name, sql string }{
	{"Count", "COUNT"},
	{"Avg", "AVG"},
	{"Sum", "SUM"},
	{"Min", "MIN"},
	{"Max", "MAX"},
}

func (g *Generator) genOrderBy(f *jen.File, m *Model) {
	X := m.GoName
	var sortable []*Field
	for _, fd := range m.Fields {
		if fd.Type != "Json" {
			sortable = append(sortable, fd)
		}
	}
	scalarRows := func() []jen.Code {
		var rows []jen.Code
		for _, fd := range sortable {
			rows = append(rows, jen.Id(fd.GoName).Op("*").Add(b("SortOrder")))
		}
		return rows
	}
	scalarOrders := func() []jen.Code {
		body := []jen.Code{jen.Var().Id("out").Index().Add(b("Order"))}
		for _, fd := range sortable {
			body = append(body, jen.Id("out").Op("=").Add(b("AppendOrder")).Call(jen.Id("out"), jen.Lit(fd.Name), jen.Id("o").Dot(fd.GoName)))
		}
		return body
	}
	orders := func(name string, body []jen.Code) {
		body = append(body, jen.Return(jen.Id("out")))
		f.Func().Params(jen.Id("o").Id(name)).Id("Orders").Params().Index().Add(b("Order")).Block(body...)
	}

	rows := scalarRows()
	body := scalarOrders()
	if len(m.Relations) > 0 {
		rows = append(rows, jen.Line())
		for _, r := range m.Relations {
			if r.List {
				rows = append(rows, jen.Id(r.GoName).Op("*").Add(b("CountOrder")))
				body = append(body, jen.Id("out").Op("=").Add(b("AppendCountOrder")).Call(jen.Id("out"), jen.Lit(r.Name), jen.Id("o").Dot(r.GoName)))
			} else {
				rows = append(rows, jen.Id(r.GoName).Op("*").Id(r.Target+"OrderByInput"))
				body = append(body, jen.Id("out").Op("=").Add(b("AppendNestedOrder")).Call(jen.Id("out"), jen.Lit(r.Name), jen.Id("o").Dot(r.GoName)))
			}
		}
	}
	doc(f,
		fmt.Sprintf("%sOrderByInput is one ordering term. Set one member per element; the", X),
		"slice order is the sort priority.",
	)
	f.Type().Id(X + "OrderByInput").Struct(rows...)
	f.Line()
	orders(X+"OrderByInput", body)

	f.Line()
	doc(f, fmt.Sprintf("%sScalarOrderByInput orders by scalar fields only.", X))
	f.Type().Id(X + "ScalarOrderByInput").Struct(scalarRows()...)
	f.Line()
	orders(X+"ScalarOrderByInput", scalarOrders())

	rows = append(scalarRows(), jen.Line())
	body = scalarOrders()
	for _, a := range aggregates {
		rows = append(rows, jen.Id(a.name).Op("*").Id(X+"ScalarOrderByInput"))
		body = append(body, jen.Id("out").Op("=").Add(b("AppendAggOrders")).Call(jen.Id("out"), jen.Lit(a.sql), jen.Id("o").Dot(a.name)))
	}
	f.Line()
	doc(f,
		fmt.Sprintf("%sOrderByWithAggregationInput orders groupBy results by a grouped field or", X),
		"an aggregate.",
	)
	f.Type().Id(X + "OrderByWithAggregationInput").Struct(rows...)
	f.Line()
	orders(X+"OrderByWithAggregationInput", body)
}

func (g *Generator) genSelect(f *jen.File, m *Model) {
	X := m.GoName
	relRows := func() []jen.Code {
		var rows []jen.Code
		for _, r := range m.Relations {
			if r.List {
				rows = append(rows, jen.Id(r.GoName).Op("*").Id(r.Target+"FindManyArgs"))
			} else {
				rows = append(rows, jen.Id(r.GoName).Op("*").Id(r.Target+"Args"))
			}
		}
		if m.HasListRelations() {
			rows = append(rows, jen.Id("Count").Op("*").Id(X+"CountSelect"))
		}
		return rows
	}
	relAdds := func() []jen.Code {
		var body []jen.Code
		for _, r := range m.Relations {
			body = append(body, b("AddRelation").Call(jen.Id("sel"), jen.Lit(r.Name), jen.Id("s").Dot(r.GoName)))
		}
		if m.HasListRelations() {
			body = append(body, jen.Id("s").Dot("Count").Dot("add").Call(jen.Id("sel")))
		}
		return body
	}
	selection := func(name string, body []jen.Code) {
		body = append([]jen.Code{jen.Id("sel").Op(":=").Op("&").Add(b("Selection")).Values()}, body...)
		body = append(body, jen.Return(jen.Id("sel"), jen.Id("sel").Dot("Err").Call()))
		f.Func().Params(jen.Id("s").Id(name)).Id("Selection").Params().Params(ptr(b("Selection")), jen.Error()).Block(body...)
	}

	var rows, body []jen.Code
	for _, fd := range m.Fields {
		rows = append(rows, jen.Id(fd.GoName).Bool())
		body = append(body, jen.Id("sel").Dot("AddScalar").Call(jen.Lit(fd.Name), jen.Id("s").Dot(fd.GoName)))
	}
	if len(m.Relations) > 0 {
		rows = append(append(rows, jen.Line()), relRows()...)
		body = append(body, relAdds()...)
	}
	doc(f,
		fmt.Sprintf("%sSelect picks the fields a query returns. Unselected fields keep their", X),
		"zero value.",
	)
	f.Type().Id(X + "Select").Struct(rows...)
	f.Line()
	selection(X+"Select", body)

	if len(m.Relations) > 0 {
		f.Line()
		doc(f, fmt.Sprintf("%sInclude loads relations next to every scalar field.", X))
		f.Type().Id(X + "Include").Struct(relRows()...)
		f.Line()
		selection(X+"Include", relAdds())
	}

	if m.HasListRelations() {
		var crows, adds []jen.Code
		for _, r := range m.listRelations() {
			crows = append(crows, jen.Id(r.GoName).Op("*").Id(r.Target+"WhereInput"))
			adds = append(adds, b("AddCount").Call(jen.Id("sel"), jen.Lit(r.Name), jen.Id("c").Dot(r.GoName)))
		}
		f.Line()
		doc(f,
			fmt.Sprintf("%sCountSelect counts related rows into _count. An empty where input counts", X),
			"every related row.",
		)
		f.Type().Id(X + "CountSelect").Struct(crows...)
		f.Line()
		f.Func().Params(jen.Id("c").Op("*").Id(X+"CountSelect")).Id("add").Params(jen.Id("sel").Add(ptr(b("Selection")))).Block(
			append([]jen.Code{jen.If(jen.Id("c").Op("==").Nil()).Block(jen.Return())}, adds...)...,
		)
	}
}

// selectionOf resolves the Select/Include pair of an args value in generated code.
func selectionOf(m *Model, recv string) *jen.Statement {
	if len(m.Relations) > 0 {
		return b("SelectionOf").Call(jen.Id(recv).Dot("Select"), jen.Id(recv).Dot("Include"))
	}
	return b("SelectionOf").Types(jen.Id(m.GoName+"Select"), jen.Id(m.GoName+"Select")).Call(jen.Id(recv).Dot("Select"), jen.Nil())
}

// selectRows are the Select and Include members of an args struct.
func selectRows(m *Model) []jen.Code {
	rows := []jen.Code{jen.Id("Select").Op("*").Id(m.GoName + "Select")}
	if len(m.Relations) > 0 {
		rows = append(rows, jen.Id("Include").Op("*").Id(m.GoName+"Include"))
	}
	return rows
}

func windowRows(m *Model) []jen.Code {
	X := m.GoName
	return []jen.Code{
		jen.Id("Where").Op("*").Id(X + "WhereInput"),
		jen.Id("OrderBy").Index().Id(X + "OrderByInput"),
		jen.Id("Cursor").Op("*").Id(X + "WhereUniqueInput"),
		jen.Id("Take").Op("*").Int(),
		jen.Id("Skip").Op("*").Int(),
	}
}

func (g *Generator) genFindArgs(f *jen.File, m *Model) {
	X := m.GoName

	doc(f, fmt.Sprintf("%sArgs shapes a to-one relation load.", X))
	f.Type().Id(X + "Args").Struct(selectRows(m)...)
	f.Line()
	f.Func().Params(jen.Id("a").Id(X+"Args")).Id("FindArgs").Params().Params(b("FindArgs"), jen.Error()).Block(
		jen.List(jen.Id("sel"), jen.Err()).Op(":=").Add(selectionOf(m, "a")),
		jen.Return(b("FindArgs").Values(kv("Select", jen.Id("sel"))), jen.Err()),
	)

	f.Line()
	f.Type().Id(X + "FindUniqueArgs").Struct(append([]jen.Code{jen.Id("Where").Id(X + "WhereUniqueInput")}, selectRows(m)...)...)

	rows := append(windowRows(m), jen.Id("Distinct").Index().Id(X+"ScalarField"))
	rows = append(rows, selectRows(m)...)
	f.Line()
	doc(f,
		fmt.Sprintf("%sFindManyArgs are the arguments of FindMany, FindFirst and relation loads.", X),
		"A negative Take reads backwards from the cursor or the end.",
	)
	f.Type().Id(X + "FindManyArgs").Struct(rows...)
	f.Line()
	f.Func().Params(jen.Id("a").Id(X+"FindManyArgs")).Id("FindArgs").Params().Params(b("FindArgs"), jen.Error()).Block(
		jen.List(jen.Id("sel"), jen.Err()).Op(":=").Add(selectionOf(m, "a")),
		ifErr(b("FindArgs").Values()),
		jen.List(jen.Id("cursor"), jen.Err()).Op(":=").Add(b("UniqueCondOf")).Call(jen.Id("a").Dot("Cursor")),
		ifErr(b("FindArgs").Values()),
		jen.Return(b("FindArgs").Values(multi(
			kv("Where", b("CondOf").Call(jen.Id("a").Dot("Where"))),
			kv("OrderBy", b("OrdersOf").Call(jen.Id("a").Dot("OrderBy"))),
			kv("Cursor", jen.Id("cursor")),
			kv("Take", jen.Id("a").Dot("Take")),
			kv("Skip", jen.Id("a").Dot("Skip")),
			kv("Distinct", b("FieldNames").Call(jen.Id("a").Dot("Distinct"))),
			kv("Select", jen.Id("sel")),
		)...), jen.Nil()),
	)

	f.Line()
	f.Type().Id(X + "CountArgs").Struct(windowRows(m)...)
	f.Line()
	f.Func().Params(jen.Id("a").Id(X+"CountArgs")).Id("FindArgs").Params().Params(b("FindArgs"), jen.Error()).Block(
		jen.List(jen.Id("cursor"), jen.Err()).Op(":=").Add(b("UniqueCondOf")).Call(jen.Id("a").Dot("Cursor")),
		ifErr(b("FindArgs").Values()),
		jen.Return(b("FindArgs").Values(multi(
			kv("Where", b("CondOf").Call(jen.Id("a").Dot("Where"))),
			kv("OrderBy", b("OrdersOf").Call(jen.Id("a").Dot("OrderBy"))),
			kv("Cursor", jen.Id("cursor")),
			kv("Take", jen.Id("a").Dot("Take")),
			kv("Skip", jen.Id("a").Dot("Skip")),
		)...), jen.Nil()),
	)
}

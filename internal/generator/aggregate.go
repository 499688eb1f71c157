package generator

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

// genAggregate renders the aggregate and group-by inputs and outputs.
func (g *Generator) genAggregate(m *Model) *jen.File {
	f := g.newFile()
	X := m.GoName

	var numeric, minmax []*Field
	for _, fd := range m.Fields {
		if fd.Numeric() {
			numeric = append(numeric, fd)
		}
		if fd.Type != "Json" {
			minmax = append(minmax, fd)
		}
	}

	boolRows := func(fs []*Field) []jen.Code {
		var rows []jen.Code
		for _, fd := range fs {
			rows = append(rows, jen.Id(fd.GoName).Bool())
		}
		return rows
	}
	fieldsFunc := func(name string, fs []*Field, all bool) {
		body := []jen.Code{jen.Var().Id("out").Index().String()}
		appendIf := func(member, value string) jen.Code {
			return jen.If(jen.Id("in").Dot(member)).Block(
				jen.Id("out").Op("=").Append(jen.Id("out"), jen.Lit(value)),
			)
		}
		if all {
			body = append(body, appendIf("All", "_all"))
		}
		for _, fd := range fs {
			body = append(body, appendIf(fd.GoName, fd.Name))
		}
		body = append(body, jen.Return(jen.Id("out")))
		f.Line()
		f.Func().Params(jen.Id("in").Id(name)).Id("Fields").Params().Index().String().Block(body...)
	}
	jsonRows := func(fs []*Field, typ func(*Field) jen.Code) []jen.Code {
		var rows []jen.Code
		for _, fd := range fs {
			rows = append(rows, jen.Id(fd.GoName).Add(typ(fd)).Tag(map[string]string{"json": fd.Name}))
		}
		return rows
	}

	doc(f, fmt.Sprintf("%sCountAggregateInput picks the fields _count counts. All counts rows.", X))
	f.Type().Id(X + "CountAggregateInput").Struct(append([]jen.Code{jen.Id("All").Bool(), jen.Line()}, boolRows(m.Fields)...)...)
	fieldsFunc(X+"CountAggregateInput", m.Fields, true)
	if len(numeric) > 0 {
		f.Line()
		doc(f, fmt.Sprintf("%sNumericAggregateInput picks the numeric fields for _avg and _sum.", X))
		f.Type().Id(X + "NumericAggregateInput").Struct(boolRows(numeric)...)
		fieldsFunc(X+"NumericAggregateInput", numeric, false)
	}
	f.Line()
	doc(f, fmt.Sprintf("%sMinMaxAggregateInput picks the fields for _min and _max.", X))
	f.Type().Id(X + "MinMaxAggregateInput").Struct(boolRows(minmax)...)
	fieldsFunc(X+"MinMaxAggregateInput", minmax, false)

	f.Line()
	f.Type().Id(X + "CountAggregateOutput").Struct(append(
		[]jen.Code{jen.Id("All").Int().Tag(map[string]string{"json": "_all"})},
		jsonRows(m.Fields, func(*Field) jen.Code { return jen.Int() })...,
	)...)
	if len(numeric) > 0 {
		f.Line()
		f.Type().Id(X + "AvgAggregateOutput").Struct(jsonRows(numeric, func(*Field) jen.Code { return ptr(jen.Float64()) })...)
		f.Line()
		f.Type().Id(X + "SumAggregateOutput").Struct(jsonRows(numeric, func(fd *Field) jen.Code { return ptr(baseType(fd)) })...)
	}
	f.Line()
	f.Type().Id(X + "MinMaxAggregateOutput").Struct(jsonRows(minmax, func(fd *Field) jen.Code { return ptr(baseType(fd)) })...)

	buckets := func(in bool) []jen.Code {
		type bucket struct{ name, tag, in, out string }
		list := []bucket{{"Count", "_count", "CountAggregateInput", "CountAggregateOutput"}}
		if len(numeric) > 0 {
			list = append(list,
				bucket{"Avg", "_avg", "NumericAggregateInput", "AvgAggregateOutput"},
				bucket{"Sum", "_sum", "NumericAggregateInput", "SumAggregateOutput"},
			)
		}
		list = append(list,
			bucket{"Min", "_min", "MinMaxAggregateInput", "MinMaxAggregateOutput"},
			bucket{"Max", "_max", "MinMaxAggregateInput", "MinMaxAggregateOutput"},
		)
		var rows []jen.Code
		for _, bk := range list {
			if in {
				rows = append(rows, jen.Id(bk.name).Op("*").Id(X+bk.in))
			} else {
				rows = append(rows, jen.Id(bk.name).Op("*").Id(X+bk.out).Tag(map[string]string{"json": bk.tag}))
			}
		}
		return rows
	}
	bucketValues := func() []jen.Code {
		names := []string{"Count"}
		if len(numeric) > 0 {
			names = append(names, "Avg", "Sum")
		}
		names = append(names, "Min", "Max")
		var items []jen.Code
		for _, n := range names {
			items = append(items, kv(n, b("FieldsOf").Call(jen.Id("a").Dot(n))))
		}
		return items
	}

	f.Line()
	doc(f, fmt.Sprintf("%sAggregateResult holds the aggregates an Aggregate call selected.", X))
	f.Type().Id(X + "AggregateResult").Struct(buckets(false)...)

	rows := append(windowRows(m), jen.Line())
	f.Line()
	doc(f, fmt.Sprintf("%sAggregateArgs computes aggregates over the rows the window selects.", X))
	f.Type().Id(X + "AggregateArgs").Struct(append(rows, buckets(true)...)...)
	f.Line()
	items := []jen.Code{
		kv("Where", b("CondOf").Call(jen.Id("a").Dot("Where"))),
		kv("OrderBy", b("OrdersOf").Call(jen.Id("a").Dot("OrderBy"))),
		kv("Cursor", jen.Id("cursor")),
		kv("Take", jen.Id("a").Dot("Take")),
		kv("Skip", jen.Id("a").Dot("Skip")),
	}
	f.Func().Params(jen.Id("a").Id(X+"AggregateArgs")).Id("build").Params().Params(b("AggregateArgs"), jen.Error()).Block(
		jen.List(jen.Id("cursor"), jen.Err()).Op(":=").Add(b("UniqueCondOf")).Call(jen.Id("a").Dot("Cursor")),
		ifErr(b("AggregateArgs").Values()),
		jen.Return(b("AggregateArgs").Values(multi(append(items, bucketValues()...)...)...), jen.Nil()),
	)

	rows = []jen.Code{
		jen.Id("By").Index().Id(X + "ScalarField"),
		jen.Id("Where").Op("*").Id(X + "WhereInput"),
		jen.Id("Having").Op("*").Id(X + "ScalarWhereWithAggregatesInput"),
		jen.Id("OrderBy").Index().Id(X + "OrderByWithAggregationInput"),
		jen.Id("Take").Op("*").Int(),
		jen.Id("Skip").Op("*").Int(),
		jen.Line(),
	}
	f.Line()
	doc(f, fmt.Sprintf("%sGroupByArgs groups rows by the By fields. Take and Skip need an OrderBy.", X))
	f.Type().Id(X + "GroupByArgs").Struct(append(rows, buckets(true)...)...)
	f.Line()
	items = []jen.Code{
		kv("By", b("FieldNames").Call(jen.Id("a").Dot("By"))),
		kv("Where", b("CondOf").Call(jen.Id("a").Dot("Where"))),
		kv("Having", b("CondOf").Call(jen.Id("a").Dot("Having"))),
		kv("OrderBy", b("OrdersOf").Call(jen.Id("a").Dot("OrderBy"))),
		kv("Take", jen.Id("a").Dot("Take")),
		kv("Skip", jen.Id("a").Dot("Skip")),
	}
	f.Func().Params(jen.Id("a").Id(X+"GroupByArgs")).Id("build").Params().Add(b("GroupByArgs")).Block(
		jen.Return(b("GroupByArgs").Values(multi(append(items, bucketValues()...)...)...)),
	)

	rows = jsonRows(m.Fields, func(fd *Field) jen.Code { return recordType(fd) })
	rows = append(rows, jen.Line())
	f.Line()
	doc(f, fmt.Sprintf("%sGroupByOutput is one group: the By fields and the selected aggregates.", X))
	f.Type().Id(X + "GroupByOutput").Struct(append(rows, buckets(false)...)...)
	return f
}

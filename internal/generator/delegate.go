package generator

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

type method struct {
	doc    string
	name   string
	params jen.Code
	result jen.Code
	body   []jen.Code
}

// genDelegate renders the per-model delegate. Every method builds its inputs
// inside the deferred closure so validation errors surface on Exec.
func (g *Generator) genDelegate(m *Model) *jen.File {
	f := g.newFile()
	X := m.GoName
	model := jen.Id(m.Var())

	record := ptr(jen.Id(X))
	records := jen.Index().Id(X)
	batch := jen.Id("BatchPayload")
	nilZero := jen.Nil()
	batchZero := jen.Id("BatchPayload").Values()

	assign := func(name string, value jen.Code, zero jen.Code) []jen.Code {
		return []jen.Code{jen.List(jen.Id(name), jen.Err()).Op(":=").Add(value), ifErr(zero)}
	}
	args := func(suffix string) jen.Code { return jen.Id("args").Id(X + suffix) }
	unique := func() []jen.Code {
		return append(
			assign("where", jen.Id("args").Dot("Where").Dot("UniqueCond").Call(), nilZero),
			assign("sel", selectionOf(m, "args"), nilZero)...,
		)
	}
	sel := func() []jen.Code { return assign("sel", selectionOf(m, "args"), nilZero) }
	findArgs := func(zero jen.Code) []jen.Code {
		return assign("fa", jen.Id("args").Dot("FindArgs").Call(), zero)
	}
	call := func(op string, typed bool, a ...jen.Code) jen.Code {
		fn := b(op)
		if typed {
			fn = fn.Types(jen.Id(X))
		}
		return jen.Return(fn.Call(append([]jen.Code{jen.Id("ctx"), jen.Id("e"), model}, a...)...))
	}
	join := func(parts ...[]jen.Code) []jen.Code {
		var out []jen.Code
		for _, p := range parts {
			out = append(out, p...)
		}
		return out
	}
	id := jen.Id

	methods := []method{
		{
			fmt.Sprintf("FindUnique returns the %s matching a unique key, or nil.", X),
			"FindUnique", args("FindUniqueArgs"), record,
			append(unique(), call("FindUnique", true, id("where"), id("sel"))),
		},
		{
			"FindUniqueOrThrow is FindUnique with ErrNotFound instead of nil.",
			"FindUniqueOrThrow", args("FindUniqueArgs"), record,
			append(unique(), call("FindUniqueOrThrow", true, id("where"), id("sel"))),
		},
		{
			fmt.Sprintf("FindFirst returns the first %s matching args, or nil.", X),
			"FindFirst", args("FindManyArgs"), record,
			append(findArgs(nilZero), call("FindFirst", true, id("fa"))),
		},
		{
			"FindFirstOrThrow is FindFirst with ErrNotFound instead of nil.",
			"FindFirstOrThrow", args("FindManyArgs"), record,
			append(findArgs(nilZero), call("FindFirstOrThrow", true, id("fa"))),
		},
		{
			fmt.Sprintf("FindMany returns every %s matching args.", X),
			"FindMany", args("FindManyArgs"), records,
			append(findArgs(nilZero), call("FindMany", true, id("fa"))),
		},
		{
			fmt.Sprintf("Create inserts a %s with its nested writes.", X),
			"Create", args("CreateArgs"), record,
			join(
				assign("data", id("args").Dot("Data").Dot("Data").Call(), nilZero),
				sel(),
				[]jen.Code{call("Create", true, id("data"), id("sel"))},
			),
		},
		{
			"CreateMany inserts rows and reports how many were inserted.",
			"CreateMany", args("CreateManyArgs"), batch,
			append(
				assign("data", b("DataOf").Call(id("args").Dot("Data")), batchZero),
				call("CreateMany", false, id("data"), id("args").Dot("SkipDuplicates")),
			),
		},
		{
			"CreateManyAndReturn inserts rows and returns them in input order.",
			"CreateManyAndReturn", args("CreateManyAndReturnArgs"), records,
			join(
				assign("data", b("DataOf").Call(id("args").Dot("Data")), nilZero),
				sel(),
				[]jen.Code{call("CreateManyAndReturn", true, id("data"), id("args").Dot("SkipDuplicates"), id("sel"))},
			),
		},
		{
			fmt.Sprintf("Update changes the %s matching a unique key. A missing row is ErrNotFound.", X),
			"Update", args("UpdateArgs"), record,
			join(
				assign("where", id("args").Dot("Where").Dot("UniqueCond").Call(), nilZero),
				assign("data", id("args").Dot("Data").Dot("Data").Call(), nilZero),
				sel(),
				[]jen.Code{call("Update", true, id("where"), id("data"), id("sel"))},
			),
		},
		{
			fmt.Sprintf("UpdateMany changes every %s matching args.Where.", X),
			"UpdateMany", args("UpdateManyArgs"), batch,
			append(
				assign("data", id("args").Dot("Data").Dot("Data").Call(), batchZero),
				call("UpdateMany", false, b("CondOf").Call(id("args").Dot("Where")), id("data")),
			),
		},
		{
			fmt.Sprintf("UpdateManyAndReturn changes every %s matching args.Where and returns them.", X),
			"UpdateManyAndReturn", args("UpdateManyAndReturnArgs"), records,
			join(
				assign("data", id("args").Dot("Data").Dot("Data").Call(), nilZero),
				sel(),
				[]jen.Code{call("UpdateManyAndReturn", true, b("CondOf").Call(id("args").Dot("Where")), id("data"), id("sel"))},
			),
		},
		{
			fmt.Sprintf("Upsert updates the %s matching a unique key, or creates it.", X),
			"Upsert", args("UpsertArgs"), record,
			join(
				assign("where", id("args").Dot("Where").Dot("UniqueCond").Call(), nilZero),
				assign("create", id("args").Dot("Create").Dot("Data").Call(), nilZero),
				assign("update", id("args").Dot("Update").Dot("Data").Call(), nilZero),
				sel(),
				[]jen.Code{call("Upsert", true, id("where"), id("create"), id("update"), id("sel"))},
			),
		},
		{
			fmt.Sprintf("Delete removes the %s matching a unique key and returns it.", X),
			"Delete", args("DeleteArgs"), record,
			append(unique(), call("Delete", true, id("where"), id("sel"))),
		},
		{
			fmt.Sprintf("DeleteMany removes every %s matching where; nil matches every row.", X),
			"DeleteMany", jen.Id("where").Op("*").Id(X + "WhereInput"), batch,
			[]jen.Code{call("DeleteMany", false, b("CondOf").Call(id("where")))},
		},
		{
			fmt.Sprintf("Count counts the %s rows matching args.", X),
			"Count", args("CountArgs"), jen.Int(),
			append(findArgs(jen.Lit(0)), call("Count", false, id("fa"))),
		},
		{
			"Aggregate computes the aggregates args selects.",
			"Aggregate", args("AggregateArgs"), ptr(jen.Id(X + "AggregateResult")),
			append(
				assign("aa", id("args").Dot("build").Call(), nilZero),
				jen.Return(b("Aggregate").Types(jen.Id(X+"AggregateResult")).Call(id("ctx"), id("e"), model, id("aa"))),
			),
		},
		{
			fmt.Sprintf("GroupBy groups the %s rows matching args.", X),
			"GroupBy", args("GroupByArgs"), jen.Index().Id(X + "GroupByOutput"),
			[]jen.Code{jen.Return(b("GroupBy").Types(jen.Id(X+"GroupByOutput")).Call(id("ctx"), id("e"), model, id("args").Dot("build").Call()))},
		},
	}

	doc(f,
		fmt.Sprintf("%sDelegate runs queries on the %s table. Every method returns a deferred", X, m.Table),
		"operation that runs on Exec or inside Client.Batch.",
	)
	f.Type().Id(X + "Delegate").Struct(jen.Id("core").Op("*").Qual(modulePath, "Core"))
	for _, mt := range methods {
		f.Line()
		f.Comment(mt.doc)
		f.Func().Params(jen.Id("d").Op("*").Id(X+"Delegate")).Id(mt.name).Params(mt.params).Op("*").Add(b("Deferred").Types(mt.result)).Block(
			jen.Return(b("NewDeferred").Call(
				jen.Id("d").Dot("core").Dot("Engine").Call(),
				jen.Func().Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("e").Op("*").Add(b("Engine"))).Params(mt.result, jen.Error()).Block(mt.body...),
			)),
		)
	}
	return f
}

package generator

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

func (g *Generator) genClient() *jen.File {
	f := g.newFile()
	core := func() *jen.Statement { return jen.Qual(modulePath, "Core") }

	doc(f, "Provider is the datasource provider the client was generated for.")
	f.Const().Id("Provider").Op("=").Lit(g.graph.Provider)
	f.Line()
	var models []jen.Code
	for _, m := range g.graph.Models {
		models = append(models, jen.Id(m.Var()))
	}
	f.Var().Id("_").Op("=").Add(b("NewSchema")).Call(multi(models...)...)

	rows := []jen.Code{jen.Op("*").Add(core()), jen.Line()}
	items := []jen.Code{kv("Core", jen.Id("core"))}
	for _, m := range g.graph.Models {
		rows = append(rows, jen.Id(m.GoName).Op("*").Id(m.GoName+"Delegate"))
		items = append(items, kv(m.GoName, jen.Op("&").Id(m.GoName+"Delegate").Values(kv("core", jen.Id("core")))))
	}
	f.Line()
	doc(f,
		"Client is the typed database client. The embedded Core provides Connect,",
		"Disconnect, the raw query methods and Batch.",
	)
	f.Type().Id("Client").Struct(rows...)

	f.Line()
	doc(f,
		"NewClient returns an unconnected client. Call Connect before running",
		"operations.",
	)
	f.Func().Id("NewClient").Params(jen.Id("opts").Op("...").Id("Option")).Op("*").Id("Client").Block(
		jen.Return(jen.Id("newClient").Call(jen.Qual(modulePath, "NewCore").Call(jen.Id("Provider"), jen.Id("opts").Op("...")))),
	)
	f.Line()
	f.Func().Id("newClient").Params(jen.Id("core").Op("*").Add(core())).Op("*").Id("Client").Block(
		jen.Return(jen.Op("&").Id("Client").Values(multi(items...)...)),
	)

	ctx := func() *jen.Statement { return jen.Id("ctx").Qual("context", "Context") }
	f.Line()
	doc(f,
		"Transaction runs fn in a transaction, committing when it returns nil and",
		"rolling back when it fails or panics. Operations must go through tx.",
	)
	f.Func().Params(jen.Id("c").Op("*").Id("Client")).Id("Transaction").Params(
		ctx(),
		jen.Id("fn").Func().Params(ctx(), jen.Id("tx").Op("*").Id("Client")).Error(),
	).Error().Block(
		jen.Return(jen.Id("c").Dot("Core").Dot("Transaction").Call(
			jen.Id("ctx"),
			jen.Func().Params(ctx(), jen.Id("core").Op("*").Add(core())).Error().Block(
				jen.Return(jen.Id("fn").Call(jen.Id("ctx"), jen.Id("newClient").Call(jen.Id("core")))),
			),
		)),
	)
	return f
}

func (g *Generator) genEnums() *jen.File {
	f := g.newFile()
	var aliases []jen.Code
	for i, e := range g.graph.Enums {
		if i > 0 {
			f.Line()
		}
		var consts, ids []jen.Code
		for _, v := range e.Values {
			consts = append(consts, jen.Id(v.GoName).Id(e.Name).Op("=").Lit(v.Name))
			ids = append(ids, jen.Id(v.GoName))
		}
		f.Type().Id(e.Name).String()
		f.Line()
		f.Const().Defs(consts...)
		f.Line()
		doc(f, fmt.Sprintf("Values returns every %s in schema order.", e.Name))
		f.Func().Params(jen.Id(e.Name)).Id("Values").Params().Index().Id(e.Name).Block(
			jen.Return(jen.Index().Id(e.Name).Values(ids...)),
		)
		f.Line()
		doc(f, fmt.Sprintf("IsValid reports whether e is a declared %s.", e.Name))
		f.Func().Params(jen.Id("e").Id(e.Name)).Id("IsValid").Params().Bool().Block(
			jen.Switch(jen.Id("e")).Block(jen.Case(ids...).Block(jen.Return(jen.True()))),
			jen.Return(jen.False()),
		)
		aliases = append(aliases,
			jen.Id(e.Name+"Filter").Op("=").Add(b("EnumFilter").Types(jen.Id(e.Name))),
			jen.Id(e.Name+"NullableFilter").Op("=").Add(b("EnumNullableFilter").Types(jen.Id(e.Name))),
		)
	}
	f.Line()
	f.Type().Defs(aliases...)
	return f
}

// alias is one name = pkg.Name line of a grouped declaration; an empty name
// leaves a blank line.
type alias struct {
	name string
	pkg  string
	to   string
}

func aliasDefs(list []alias) []jen.Code {
	var out []jen.Code
	for _, a := range list {
		if a.name == "" {
			out = append(out, jen.Line())
			continue
		}
		out = append(out, jen.Id(a.name).Op("=").Qual(a.pkg, a.to))
	}
	return out
}

func (g *Generator) genRuntime() *jen.File {
	f := g.newFile()

	f.Type().Defs(aliasDefs([]alias{
		{"Option", modulePath, "Option"},
		{"BatchPayload", builderPkg, "BatchPayload"},
		{"SortOrder", builderPkg, "SortOrder"},
		{"CountOrder", builderPkg, "CountOrder"},
		{"QueryMode", builderPkg, "QueryMode"},
		{"Error", modulePath, "Error"},
	})...)

	var filters []alias
	for _, name := range []string{"String", "Int", "BigInt", "Float", "DateTime", "Bool", "JSON"} {
		filters = append(filters,
			alias{name + "Filter", builderPkg, name + "Filter"},
			alias{name + "NullableFilter", builderPkg, name + "NullableFilter"},
		)
	}
	f.Line()
	f.Comment("Scalar filters.")
	f.Type().Defs(aliasDefs(filters)...)

	f.Line()
	f.Const().Defs(aliasDefs([]alias{
		{"SortAsc", builderPkg, "Asc"},
		{"SortDesc", builderPkg, "Desc"},
		{"ModeDefault", builderPkg, "ModeDefault"},
		{"ModeInsensitive", builderPkg, "ModeInsensitive"},
		{"Version", modulePath, "Version"},
	})...)

	f.Line()
	f.Var().Defs(aliasDefs([]alias{
		{"WithDatasourceURL", modulePath, "WithDatasourceURL"},
		{"WithDB", modulePath, "WithDB"},
		{"WithLog", modulePath, "WithLog"},
		{"WithLogger", modulePath, "WithLogger"},
		{"WithConfigFile", modulePath, "WithConfigFile"},
		{"LogLevels", modulePath, "LogLevels"},
		{},
		{"ErrNotFound", modulePath, "ErrNotFound"},
		{"ErrUniqueConstraint", modulePath, "ErrUniqueConstraint"},
		{"ErrForeignKeyConstraint", modulePath, "ErrForeignKeyConstraint"},
		{"ErrNullConstraint", modulePath, "ErrNullConstraint"},
		{"ErrTimeout", modulePath, "ErrTimeout"},
		{"ErrNotConnected", modulePath, "ErrNotConnected"},
		{"ErrValidation", modulePath, "ErrValidation"},
		{},
		{"IsNotFound", modulePath, "IsNotFound"},
		{"IsUniqueConstraint", modulePath, "IsUniqueConstraint"},
		{"IsForeignKeyConstraint", modulePath, "IsForeignKeyConstraint"},
		{"IsValidation", modulePath, "IsValidation"},
		{},
		{"SQL", rawPkg, "SQL"},
	})...)

	f.Line()
	doc(f, "Ptr returns a pointer to v, for optional inputs.")
	f.Func().Id("Ptr").Types(jen.Id("T").Id("any")).Params(jen.Id("v").Id("T")).Op("*").Id("T").Block(
		jen.Return(jen.Op("&").Id("v")),
	)
	return f
}

package generator

import (
	"context"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderMarketplace(t *testing.T) map[string][]byte {
	t.Helper()
	files, err := New(marketplaceGraph(t), t.TempDir()).WithWorkers(4).Render(context.Background())
	require.NoError(t, err)
	return files
}

// decls parses src and indexes its top-level types and functions by name.
// Methods are keyed Recv.Name.
func decls(t *testing.T, name string, src []byte) map[string]ast.Node {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), name, src, parser.ParseComments)
	require.NoError(t, err, name)
	out := make(map[string]ast.Node)
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.GenDecl:
			for _, s := range d.Specs {
				if ts, ok := s.(*ast.TypeSpec); ok {
					out[ts.Name.Name] = ts
				}
			}
		case *ast.FuncDecl:
			key := d.Name.Name
			if d.Recv != nil && len(d.Recv.List) > 0 {
				typ := d.Recv.List[0].Type
				if star, ok := typ.(*ast.StarExpr); ok {
					typ = star.X
				}
				if id, ok := typ.(*ast.Ident); ok {
					key = id.Name + "." + key
				}
			}
			out[key] = d
		}
	}
	return out
}

func structFields(t *testing.T, n ast.Node) []string {
	t.Helper()
	ts, ok := n.(*ast.TypeSpec)
	require.True(t, ok)
	st, ok := ts.Type.(*ast.StructType)
	require.True(t, ok, ts.Name.Name)
	var names []string
	for _, f := range st.Fields.List {
		for _, id := range f.Names {
			names = append(names, id.Name)
		}
		if len(f.Names) == 0 {
			names = append(names, "embedded")
		}
	}
	return names
}

func TestRenderFiles(t *testing.T) {
	files := renderMarketplace(t)

	g := New(marketplaceGraph(t), "")
	names := g.FileNames()
	assert.Len(t, names, 7*4+3)
	assert.Contains(t, names, "client.go")
	assert.Contains(t, names, "enums.go")
	assert.Contains(t, names, "runtime.go")
	assert.Contains(t, names, "milestone_delegate.go")

	for _, name := range names {
		src, ok := files[name]
		require.True(t, ok, name)
		assert.True(t, strings.HasPrefix(string(src), "// "+headerComment), name)
		assert.Contains(t, string(src), "package db\n", name)
		decls(t, name, src)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	first := renderMarketplace(t)
	second := renderMarketplace(t)
	require.Equal(t, len(first), len(second))
	for name, src := range first {
		assert.Equal(t, string(src), string(second[name]), name)
	}
}

// TestRenderMatchesCommittedClient keeps the checked-in db package in step
// with the generator. Run `prisma generate` after changing either side.
func TestRenderMatchesCommittedClient(t *testing.T) {
	files := renderMarketplace(t)

	committed, err := filepath.Glob("../../db/*.go")
	require.NoError(t, err)
	var names []string
	for _, path := range committed {
		if !strings.HasSuffix(path, "_test.go") {
			names = append(names, filepath.Base(path))
		}
	}
	assert.ElementsMatch(t, New(marketplaceGraph(t), "").FileNames(), names)

	for name, src := range files {
		want, err := os.ReadFile(filepath.Join("../../db", name))
		require.NoError(t, err, name)
		want, err = format.Source(want)
		require.NoError(t, err, name)
		got, err := format.Source(src)
		require.NoError(t, err, name)
		assert.Equal(t, string(want), string(got), name)
	}
}

func TestRenderWhereInputs(t *testing.T) {
	files := renderMarketplace(t)
	g := marketplaceGraph(t)

	for _, m := range g.Models {
		d := decls(t, snake(m.Name)+".go", files[snake(m.Name)+".go"])
		fields := structFields(t, d[m.GoName+"WhereInput"])
		assert.Subset(t, fields, []string{"AND", "OR", "NOT"}, m.Name)
		for _, fd := range m.Fields {
			assert.Contains(t, fields, fd.GoName, m.Name)
		}
		for _, r := range m.Relations {
			assert.Contains(t, fields, r.GoName, m.Name)
		}
		assert.Contains(t, d, m.GoName+"WhereInput.Cond")
		assert.Contains(t, d, m.GoName+"WhereUniqueInput.UniqueCond")
	}
}

func TestRenderCompoundUnique(t *testing.T) {
	files := renderMarketplace(t)
	d := decls(t, "proposal.go", files["proposal.go"])

	require.Contains(t, d, "ProposalProjectIDFreelancerIDCompoundUniqueInput")
	assert.Equal(t, []string{"ProjectID", "FreelancerID"},
		structFields(t, d["ProposalProjectIDFreelancerIDCompoundUniqueInput"]))
	assert.Contains(t, structFields(t, d["ProposalWhereUniqueInput"]), "ProjectIDFreelancerID")
}

func TestRenderCountSelect(t *testing.T) {
	files := renderMarketplace(t)

	d := decls(t, "user.go", files["user.go"])
	assert.Equal(t, []string{
		"Services", "Projects", "Proposals", "ClientContracts",
		"FreelancerContracts", "ReviewsGiven", "ReviewsReceived",
	}, structFields(t, d["UserCountOutput"]))
	assert.Contains(t, d, "UserCountSelect")
	assert.Contains(t, structFields(t, d["User"]), "Count")

	// no list relations, no _count
	d = decls(t, "review.go", files["review.go"])
	assert.NotContains(t, d, "ReviewCountOutput")
	assert.NotContains(t, d, "ReviewCountSelect")
	assert.NotContains(t, structFields(t, d["Review"]), "Count")
}

func TestRenderNumericAggregates(t *testing.T) {
	files := renderMarketplace(t)

	d := decls(t, "review_aggregate.go", files["review_aggregate.go"])
	assert.Equal(t, []string{"Rating"}, structFields(t, d["ReviewNumericAggregateInput"]))
	assert.Equal(t, []string{"Count", "Avg", "Sum", "Min", "Max"}, structFields(t, d["ReviewAggregateResult"]))

	d = decls(t, "service_aggregate.go", files["service_aggregate.go"])
	assert.Equal(t, []string{"Price", "DeliveryDays", "Rating", "TotalReviews"},
		structFields(t, d["ServiceAvgAggregateOutput"]))

	// Json fields have no min or max
	d = decls(t, "user_aggregate.go", files["user_aggregate.go"])
	assert.NotContains(t, structFields(t, d["UserMinMaxAggregateInput"]), "Skills")
	assert.Contains(t, structFields(t, d["UserCountAggregateInput"]), "Skills")
}

func TestRenderDelegate(t *testing.T) {
	files := renderMarketplace(t)
	d := decls(t, "contract_delegate.go", files["contract_delegate.go"])

	for _, op := range []string{
		"FindUnique", "FindUniqueOrThrow", "FindFirst", "FindFirstOrThrow", "FindMany",
		"Create", "CreateMany", "CreateManyAndReturn", "Update", "UpdateMany",
		"UpdateManyAndReturn", "Upsert", "Delete", "DeleteMany", "Count", "Aggregate", "GroupBy",
	} {
		assert.Contains(t, d, "ContractDelegate."+op)
	}
	assert.Contains(t, string(files["contract_delegate.go"]), `prisma "github.com/carlosnayan/prisma-go-marketplace"`)
}

func TestRenderClient(t *testing.T) {
	files := renderMarketplace(t)
	d := decls(t, "client.go", files["client.go"])

	assert.Equal(t, []string{"embedded", "User", "Service", "Project", "Proposal", "Contract", "Milestone", "Review"},
		structFields(t, d["Client"]))
	assert.Contains(t, d, "NewClient")
	assert.Contains(t, d, "Client.Transaction")
	assert.Contains(t, string(files["client.go"]), `const Provider = "postgresql"`)

	e := decls(t, "enums.go", files["enums.go"])
	assert.Contains(t, e, "ProjectStatus.IsValid")
	assert.Contains(t, e, "ProjectStatusFilter")
	assert.Contains(t, string(files["enums.go"]), `ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"`)
}

func TestGenerateWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	g := New(marketplaceGraph(t), dir)
	require.NoError(t, g.Generate(context.Background()))

	for _, name := range g.FileNames() {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := New(marketplaceGraph(t), t.TempDir()).Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

package generator

import (
	"testing"

	"github.com/carlosnayan/prisma-go-marketplace/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marketplaceGraph(t *testing.T) *Graph {
	t.Helper()
	schema, problems, err := parser.ParseFile("../../prisma/schema.prisma")
	require.NoError(t, err, parser.FormatErrors(problems))
	g, err := NewGraph(schema, "db")
	require.NoError(t, err)
	return g
}

func TestNewGraphModels(t *testing.T) {
	g := marketplaceGraph(t)

	assert.Equal(t, "postgresql", g.Provider)
	require.Len(t, g.Models, 7)
	require.Len(t, g.Enums, 6)

	user := g.model("User")
	require.NotNil(t, user)
	assert.Equal(t, "users", user.Table)
	assert.Equal(t, []string{"id"}, user.PrimaryKey)
	assert.Equal(t, "userModel", user.Var())
	assert.True(t, user.HasListRelations())
	assert.Len(t, user.listRelations(), 7)

	rate := user.Field("hourlyRate")
	require.NotNil(t, rate)
	assert.Equal(t, "HourlyRate", rate.GoName)
	assert.Equal(t, "hourly_rate", rate.Column)
	assert.True(t, rate.Optional)
	assert.True(t, rate.Numeric())

	role := user.Field("role")
	assert.Equal(t, "Enum", role.Type)
	assert.Equal(t, "Role", role.Enum)
	assert.Equal(t, Default{Kind: DefaultValue, Value: "CLIENT"}, role.Default)

	assert.Equal(t, Default{Kind: DefaultUUID}, user.Field("id").Default)
	assert.Equal(t, Default{Kind: DefaultNow}, user.Field("createdAt").Default)
	assert.True(t, user.Field("email").Unique)
}

func TestNewGraphDefaults(t *testing.T) {
	g := marketplaceGraph(t)
	service := g.model("Service")

	assert.Equal(t, Default{Kind: DefaultValue, Value: float64(0)}, service.Field("rating").Default)
	assert.Equal(t, Default{Kind: DefaultValue, Value: 0}, service.Field("totalReviews").Default)
	assert.Equal(t, [][]string{{"freelancerId"}, {"category"}}, service.Indexes)
	assert.True(t, service.Field("freelancerId").ForeignKey)
	assert.False(t, service.Field("title").ForeignKey)
}

func TestNewGraphUniques(t *testing.T) {
	g := marketplaceGraph(t)

	proposal := g.model("Proposal")
	require.Len(t, proposal.Uniques, 2)
	assert.True(t, proposal.Uniques[0].Primary)
	assert.Equal(t, []string{"id"}, proposal.Uniques[0].Fields)
	assert.Equal(t, []string{"projectId", "freelancerId"}, proposal.Uniques[1].Fields)
	assert.Equal(t, "ProjectIDFreelancerID", proposal.Uniques[1].GoName)

	user := g.model("User")
	require.Len(t, user.Uniques, 2)
	assert.Equal(t, []string{"email"}, user.Uniques[1].Fields)
}

func TestNewGraphRelations(t *testing.T) {
	g := marketplaceGraph(t)

	contract := g.model("Contract")
	var client *Relation
	for _, r := range contract.Relations {
		if r.Name == "client" {
			client = r
		}
	}
	require.NotNil(t, client)
	assert.True(t, client.Owner)
	assert.Equal(t, []string{"clientId"}, client.Fields)
	assert.Equal(t, []string{"id"}, client.References)
	assert.Empty(t, client.OnDelete)

	project := contract.Relations[0]
	assert.Equal(t, "project", project.Name)
	assert.Equal(t, "Cascade", project.OnDelete)

	// back relations take their join from the owning side
	user := g.model("User")
	for _, r := range user.Relations {
		require.False(t, r.Owner, r.Name)
		require.True(t, r.List, r.Name)
		assert.Equal(t, []string{"id"}, r.Fields, r.Name)
	}
	var clientContracts *Relation
	for _, r := range user.Relations {
		if r.Name == "clientContracts" {
			clientContracts = r
		}
	}
	require.NotNil(t, clientContracts)
	assert.Equal(t, "Contract", clientContracts.Target)
	assert.Equal(t, []string{"clientId"}, clientContracts.References)
}

func TestNewGraphErrors(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		err    string
	}{
		{
			name: "scalar list",
			schema: `
model Tag {
  id    String   @id
  names String[]
}
`,
			err: "scalar lists are not supported",
		},
		{
			name: "no primary key",
			schema: `
model Tag {
  name String
}
`,
			err: "has no primary key",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := parser.NewParser(parser.NewLexer(tt.schema)).ParseSchema()
			_, err := NewGraph(schema, "db")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

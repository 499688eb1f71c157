package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndexWithKeywordField(t *testing.T) {
	input := `
model Category {
  id   String @id
  type String
  @@index([type], map: "idx_categories_type")
}
`
	schema := NewParser(NewLexer(input)).ParseSchema()
	require.Len(t, schema.Models, 1)

	model := schema.Models[0]
	require.Len(t, model.Attributes, 1)
	attr := model.Attributes[0]
	assert.Equal(t, "index", attr.Name)
	assert.Equal(t, []string{"type"}, Names(attr.Arg("fields", 0)))
	assert.Equal(t, "idx_categories_type", attr.Arg("map", -1))
}

func TestParseLiterals(t *testing.T) {
	input := `
model Wallet {
  id       Int     @id @default(autoincrement())
  balance  Float   @default(-12.5)
  offset   Int     @default(-3)
  active   Boolean @default(true)
  note     String  @default("say \"hi\"")
  label    String  @db.VarChar(191)
}
`
	schema := NewParser(NewLexer(input)).ParseSchema()
	require.Len(t, schema.Models, 1)
	m := schema.Models[0]

	assert.Equal(t, &FunctionCall{Name: "autoincrement", Args: []any{}}, m.Field("id").Attribute("default").Arg("", 0))
	assert.Equal(t, -12.5, m.Field("balance").Attribute("default").Arg("", 0))
	assert.Equal(t, int64(-3), m.Field("offset").Attribute("default").Arg("", 0))
	assert.Equal(t, true, m.Field("active").Attribute("default").Arg("", 0))
	assert.Equal(t, `say "hi"`, m.Field("note").Attribute("default").Arg("", 0))

	varchar := m.Field("label").Attribute("db.VarChar")
	require.NotNil(t, varchar)
	assert.Equal(t, int64(191), varchar.Arg("", 0))
}

func TestParseMarketplaceSchema(t *testing.T) {
	schema, problems, err := ParseFile("../../prisma/schema.prisma")
	require.NoError(t, err, FormatErrors(problems))

	assert.Equal(t, "postgresql", schema.Provider())
	assert.Len(t, schema.Models, 7)
	assert.Len(t, schema.Enums, 6)

	url, ok := schema.Datasources[0].Get("url").(*FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "env", url.Name)
	assert.Equal(t, []any{"DATABASE_URL"}, url.Args)

	proposal := schema.Model("Proposal")
	require.NotNil(t, proposal)
	unique := proposal.Attribute("unique")
	require.NotNil(t, unique)
	assert.Equal(t, []string{"projectId", "freelancerId"}, Names(unique.Arg("fields", 0)))

	contract := schema.Model("Contract")
	rel := contract.Field("freelancer").Attribute("relation")
	assert.Equal(t, "ContractFreelancer", RelationName(contract.Field("freelancer")))
	assert.Equal(t, []string{"freelancerId"}, Names(rel.Arg("fields", -1)))
	assert.Equal(t, Ident("Cascade"), contract.Field("project").Attribute("relation").Arg("onDelete", -1))

	user := schema.Model("User")
	assert.True(t, user.Field("bio").Type.IsOptional)
	assert.True(t, user.Field("services").Type.IsArray)
	assert.Equal(t, "users", user.Attribute("map").Arg("name", 0))
}

func TestValidateReportsProblems(t *testing.T) {
	cases := map[string]struct {
		input string
		want  string
	}{
		"unknown type": {
			input: `model A {
  id String @id
  b  Thing
}`,
			want: `unknown type "Thing"`,
		},
		"missing id": {
			input: `model A {
  name String
}`,
			want: "has no @id",
		},
		"missing back relation": {
			input: `model A {
  id  String @id
  bId String
  b   B      @relation(fields: [bId], references: [id])
}
model B {
  id String @id
}`,
			want: "has no opposite field",
		},
		"ambiguous relation": {
			input: `model A {
  id   String @id
  b1Id String
  b2Id String
  b1   B      @relation(fields: [b1Id], references: [id])
  b2   B      @relation(fields: [b2Id], references: [id])
}
model B {
  id String @id
  as A[]
}`,
			want: "ambiguous",
		},
		"bad enum default": {
			input: `enum Color {
  RED
}
model A {
  id String @id
  c  Color  @default(BLUE)
}`,
			want: "not a member of enum Color",
		},
		"unique on unknown field": {
			input: `model A {
  id String @id
  @@unique([nope])
}`,
			want: `unknown field "nope"`,
		},
		"bad provider": {
			input: `datasource db {
  provider = "oracle"
  url = "x"
}`,
			want: `unsupported provider "oracle"`,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, problems, err := Parse(tc.input)
			require.Error(t, err)
			assert.Contains(t, FormatErrors(problems), tc.want)
		})
	}
}

func TestParseSyntaxErrorHasPosition(t *testing.T) {
	_, problems, err := Parse("model A {\n  id String @id(\n}")
	require.Error(t, err)
	require.NotEmpty(t, problems)
	assert.Contains(t, problems[0], "line ")
}

func TestLexerSkipsComments(t *testing.T) {
	l := NewLexer("// heading\nmodel /* inline */ A {}")
	var types []TokenType
	for tok := l.NextToken(); tok.Type != TokenEOF; tok = l.NextToken() {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{TokenModel, TokenIdent, TokenLBrace, TokenRBrace}, types)
}

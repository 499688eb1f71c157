package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateValidSchema(t *testing.T) {
	buf := setupTestDir(t)
	createTestConfig(t, "")
	createTestSchema(t, "")

	require.NoError(t, Run([]string{"validate"}))
	assert.Contains(t, buf.String(), "is valid")
}

func TestValidateMarketplaceSchema(t *testing.T) {
	path, err := filepath.Abs("../../../prisma/schema.prisma")
	require.NoError(t, err)
	buf := setupTestDir(t)

	require.NoError(t, Run([]string{"validate", "--schema", path}))
	assert.Contains(t, buf.String(), "is valid")
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		want   string
	}{
		{
			name:   "syntax",
			schema: "model Post {\n  id String @id\n",
			want:   "line ",
		},
		{
			name: "unknown type and missing id",
			schema: `datasource db {
  provider = "sqlite"
  url      = "file:dev.db"
}

model Post {
  title  String
  author Writer
}
`,
			want: "Validation Error Count: 2",
		},
		{
			name: "relation without back-relation",
			schema: `datasource db {
  provider = "sqlite"
  url      = "file:dev.db"
}

model Author {
  id String @id
}

model Post {
  id       String @id
  authorId String
  author   Author @relation(fields: [authorId], references: [id])
}
`,
			want: "has no opposite field on model Author",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := setupTestDir(t)
			createTestConfig(t, "")
			createTestSchema(t, tt.schema)

			err := Run([]string{"validate"})
			require.Error(t, err)
			assert.EqualError(t, err, "invalid schema")
			assert.Contains(t, buf.String(), "Prisma schema validation errors:")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

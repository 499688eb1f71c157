package cmd

import (
	"context"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	buf := setupTestDir(t)
	createTestConfig(t, "")
	createTestSchema(t, "")

	require.NoError(t, Run([]string{"generate"}))
	assert.Contains(t, buf.String(), "Generated Prisma Client")
	assert.Contains(t, buf.String(), "for 2 models")

	for _, name := range []string{
		"author.go", "author_input.go", "author_aggregate.go", "author_delegate.go",
		"post.go", "post_input.go", "post_aggregate.go", "post_delegate.go",
		"client.go", "runtime.go", "enums.go",
	} {
		path := filepath.Join("db", name)
		require.True(t, fileExists(path), name)
		f, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.PackageClauseOnly)
		require.NoError(t, err)
		assert.Equal(t, "db", f.Name.Name)
	}
}

func TestGenerateWithoutConfig(t *testing.T) {
	setupTestDir(t)
	createTestSchema(t, "")

	// output comes from the schema's generator block, relative to the schema
	require.NoError(t, Run([]string{"generate", "--schema", "prisma/schema.prisma", "--workers", "2"}))
	assert.True(t, fileExists(filepath.Join("db", "client.go")))
}

func TestGenerateCustomPackage(t *testing.T) {
	setupTestDir(t)
	createTestConfig(t, `[datasource]
url = "file:dev.db"

[generator]
output = "internal/store"
package = "store"
`)
	createTestSchema(t, "")

	require.NoError(t, Run([]string{"generate"}))
	content := readFile(t, filepath.Join("internal", "store", "client.go"))
	assert.True(t, strings.Contains(content, "package store"))
}

func TestGenerateInvalidSchema(t *testing.T) {
	buf := setupTestDir(t)
	createTestConfig(t, "")
	createTestSchema(t, `datasource db {
  provider = "sqlite"
  url      = "file:dev.db"
}

model Post {
  id     String @id
  author Writer
}
`)

	err := Run([]string{"generate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schema")
	assert.Contains(t, buf.String(), "Errors found in schema:")
	assert.False(t, fileExists("db"))
}

func TestWatchGenerate(t *testing.T) {
	setupTestDir(t)
	createTestConfig(t, "")
	path := createTestSchema(t, "")
	target := resolveGenerateTarget()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watchGenerate(ctx, target) }()

	authorFile := filepath.Join("db", "author.go")
	require.Eventually(t, func() bool { return fileExists(authorFile) }, 5*time.Second, 20*time.Millisecond)

	extended := strings.Replace(testSchema, "  name      String?\n", "  name      String?\n  nickname  String?\n", 1)
	require.NoError(t, os.WriteFile(path, []byte(extended), 0644))

	require.Eventually(t, func() bool {
		content, err := os.ReadFile(authorFile)
		return err == nil && strings.Contains(string(content), "Nickname")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

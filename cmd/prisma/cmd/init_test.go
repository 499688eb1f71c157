package cmd

import (
	"strings"
	"testing"

	"github.com/carlosnayan/prisma-go-marketplace/internal/config"
	"github.com/carlosnayan/prisma-go-marketplace/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	buf := setupTestDir(t)

	require.NoError(t, Run([]string{"init", "--provider", "sqlite", "--database", "file:dev.db"}))
	assert.Contains(t, buf.String(), "Project initialized successfully!")
	assert.True(t, fileExists("prisma.conf"))
	assert.True(t, fileExists("prisma/schema.prisma"))

	cfg, err := config.Load("prisma.conf")
	require.NoError(t, err)
	assert.Equal(t, "file:dev.db", cfg.GetDatabaseURL())
	assert.Equal(t, "db", cfg.GetOutputPath())
	assert.Equal(t, []string{"warn", "error"}, cfg.Log)

	schema, problems, err := parser.ParseFile("prisma/schema.prisma")
	require.NoError(t, err, parser.FormatErrors(problems))
	assert.Equal(t, "sqlite", schema.Provider())
	assert.NotNil(t, schema.Model("User"))
}

func TestInitRefusesToOverwrite(t *testing.T) {
	setupTestDir(t)
	createTestConfig(t, "")

	err := Run([]string{"init", "--provider", "postgresql"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, testConfig, readFile(t, "prisma.conf"))
}

func TestInitForceOverwrites(t *testing.T) {
	setupTestDir(t)
	createTestConfig(t, "")
	createTestSchema(t, "")

	require.NoError(t, Run([]string{"init", "--provider", "mysql", "--force"}))
	assert.Contains(t, readFile(t, "prisma.conf"), `url = "env('DATABASE_URL')"`)
	assert.Contains(t, readFile(t, "prisma/schema.prisma"), `provider = "mysql"`)
}

func TestInitKeepsExistingSchema(t *testing.T) {
	buf := setupTestDir(t)
	createTestSchema(t, "")

	require.NoError(t, Run([]string{"init", "--provider", "sqlite"}))
	assert.Contains(t, buf.String(), "Kept existing")
	assert.Equal(t, testSchema, readFile(t, "prisma/schema.prisma"))
}

func TestInitUnsupportedProvider(t *testing.T) {
	setupTestDir(t)

	err := Run([]string{"init", "--provider", "oracle"})
	require.Error(t, err)
	assert.False(t, fileExists("prisma.conf"))
}

func TestPromptForProvider(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"\n", "postgresql"},
		{"2\n", "mysql"},
		{"sqlite\n", "sqlite"},
		{"9\n", "postgresql"},
		{"", "postgresql"},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			setupTestDir(t)
			in = strings.NewReader(tt.input)
			assert.Equal(t, tt.want, promptForProvider())
		})
	}
}

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	prisma "github.com/carlosnayan/prisma-go-marketplace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	buf := setupTestDir(t)

	require.NoError(t, Run([]string{"version"}))
	assert.Equal(t, "prisma "+prisma.Version+"\n", buf.String())
}

func TestUsageListsCommands(t *testing.T) {
	buf := setupTestDir(t)

	require.NoError(t, Run(nil))
	for _, name := range []string{"init", "generate", "validate", "format", "db", "version"} {
		assert.Contains(t, buf.String(), name)
	}
	assert.NotContains(t, buf.String(), "migrate")
}

func TestCommandsRequireProject(t *testing.T) {
	setupTestDir(t)

	for _, name := range []string{"generate", "validate", "format"} {
		err := Run([]string{name})
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), "prisma init")
	}
}

func TestGetSchemaPath(t *testing.T) {
	setupTestDir(t)
	dir, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "prisma/schema.prisma", getSchemaPath())

	createTestConfig(t, `schema = "schemas/main.prisma"

[datasource]
url = "file:dev.db"
`)
	// resolved against the directory of prisma.conf
	assert.Equal(t, filepath.Join(dir, "schemas", "main.prisma"), getSchemaPath())

	schemaPath = "custom.prisma"
	assert.Equal(t, "custom.prisma", getSchemaPath())
}

func TestLoadConfigExpandsEnv(t *testing.T) {
	setupTestDir(t)
	t.Setenv("CLI_TEST_DATABASE_URL", "file:from-env.db")
	createTestConfig(t, `[datasource]
url = "env('CLI_TEST_DATABASE_URL')"
`)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "file:from-env.db", cfg.GetDatabaseURL())
	assert.Equal(t, "schema.prisma", filepath.Base(cfg.GetSchemaPath()))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MARKET_DB_URL", "file:./market.db")
	p := writeFile(t, dir, "prisma.conf", `
schema = "prisma/schema.prisma"
log = ["query", "warn"]

[datasource]
url = 'env("MARKET_DB_URL")'

[generator]
output = "internal/db"

[pool]
maxConns = 4
maxConnIdleTime = "90s"
`)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "file:./market.db", cfg.GetDatabaseURL())
	assert.Equal(t, []string{"query", "warn"}, cfg.Log)
	assert.Equal(t, filepath.Join(dir, "prisma/schema.prisma"), cfg.GetSchemaPath())
	assert.Equal(t, filepath.Join(dir, "internal/db"), cfg.GetOutputPath())
	assert.Equal(t, "db", cfg.Generator.Package)
	assert.Equal(t, int32(4), cfg.Pool.MaxConns)
	assert.Equal(t, 90*time.Second, cfg.Pool.MaxConnIdleTime.Duration)
}

func TestLoadYAMLWithDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("YAML_ONLY_DB_URL", "")
	os.Unsetenv("YAML_ONLY_DB_URL")
	writeFile(t, dir, ".env", "YAML_ONLY_DB_URL=postgresql://localhost/market\n")
	p := writeFile(t, dir, "prisma.yaml", `
datasource:
  url: ${YAML_ONLY_DB_URL}
  provider: postgresql
log: [error]
`)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "postgresql://localhost/market", cfg.GetDatabaseURL())
	assert.Equal(t, "postgresql", cfg.Datasource.Provider)
	assert.Equal(t, DefaultSchemaPath, cfg.Schema)
	assert.Equal(t, filepath.Join(dir, DefaultOutput), cfg.GetOutputPath())
}

func TestLoadRejectsMissingDatasource(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "prisma.conf", `schema = "schema.prisma"`)
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "datasource is required")
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("[datasource]\nurl = \"x\"\nurll = \"y\"\n"), ".conf")
	assert.Error(t, err)

	_, err = Parse([]byte("datasource:\n  uri: x\n"), ".yaml")
	assert.Error(t, err)
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	want := writeFile(t, root, "prisma.yml", "datasource:\n  url: x\n")

	got, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExpandString(t *testing.T) {
	t.Setenv("DB_USER", "ana")
	t.Setenv("DB_HOST", "db.local")
	assert.Equal(t, "mysql://ana@db.local/x", ExpandString(`mysql://${DB_USER}@env('DB_HOST')/x`))
	assert.Equal(t, "ana", ExpandString(`env( "DB_USER" )`))
	assert.Equal(t, "", ExpandString(`env("DEFINITELY_NOT_SET_123")`))
}

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messySchema = `datasource db {
provider = "sqlite"
    url = "file:dev.db"
}
model Tag {
id String @id
      label String   @unique
}
`

func TestFormat(t *testing.T) {
	buf := setupTestDir(t)
	createTestConfig(t, "")
	path := createTestSchema(t, messySchema)

	require.NoError(t, Run([]string{"format"}))
	assert.Contains(t, buf.String(), "Formatted")
	assert.Equal(t, `datasource db {
  provider = "sqlite"
  url      = "file:dev.db"
}

model Tag {
  id    String @id
  label String @unique
}
`, readFile(t, path))

	buf.Reset()
	require.NoError(t, Run([]string{"format"}))
	assert.Contains(t, buf.String(), "already formatted")
}

func TestFormatCheck(t *testing.T) {
	buf := setupTestDir(t)
	createTestConfig(t, "")
	path := createTestSchema(t, messySchema)

	err := Run([]string{"format", "--check"})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "There are unformatted files")
	assert.Equal(t, messySchema, readFile(t, path))

	resetGlobalFlags()
	require.NoError(t, Run([]string{"format"}))
	buf.Reset()
	require.NoError(t, Run([]string{"format", "--check"}))
	assert.Contains(t, buf.String(), "All files are formatted correctly!")
}

func TestFormatRejectsInvalidSchema(t *testing.T) {
	setupTestDir(t)
	createTestConfig(t, "")
	path := createTestSchema(t, "model {")

	err := Run([]string{"format"})
	require.Error(t, err)
	assert.Equal(t, "model {", readFile(t, path))
}

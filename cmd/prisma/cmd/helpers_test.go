package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSchema = `datasource db {
  provider = "sqlite"
  url      = "file:dev.db"
}

generator client {
  provider = "prisma-go-marketplace"
  output   = "../db"
}

enum Status {
  DRAFT
  PUBLISHED
}

model Author {
  id        String   @id @default(uuid())
  email     String   @unique
  name      String?
  createdAt DateTime @default(now()) @map("created_at")
  posts     Post[]

  @@map("authors")
}

model Post {
  id       String @id @default(uuid())
  authorId String @map("author_id")
  title    String
  status   Status @default(DRAFT)
  author   Author @relation(fields: [authorId], references: [id], onDelete: Cascade)

  @@index([title])
  @@map("posts")
}
`

const testConfig = `schema = "prisma/schema.prisma"

[datasource]
url = "file:dev.db"

[generator]
output = "db"
`

// setupTestDir moves the test into a fresh directory, resets the command
// flags and captures the command output.
func setupTestDir(t *testing.T) *bytes.Buffer {
	t.Helper()
	dir := t.TempDir()

	oldDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))

	var buf bytes.Buffer
	oldOut, oldIn, oldOpen := out, in, openDB
	out = &buf
	resetGlobalFlags()

	t.Cleanup(func() {
		_ = os.Chdir(oldDir)
		out, in, openDB = oldOut, oldIn, oldOpen
		resetGlobalFlags()
	})
	return &buf
}

// createTestSchema writes content (or testSchema) to prisma/schema.prisma
func createTestSchema(t *testing.T, content string) string {
	t.Helper()
	if content == "" {
		content = testSchema
	}
	path := filepath.Join("prisma", "schema.prisma")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// createTestConfig writes content (or testConfig) to prisma.conf
func createTestConfig(t *testing.T, content string) string {
	t.Helper()
	if content == "" {
		content = testConfig
	}
	require.NoError(t, os.WriteFile("prisma.conf", []byte(content), 0644))
	return "prisma.conf"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

// resetGlobalFlags resets all flag variables between runs
func resetGlobalFlags() {
	configFile = ""
	schemaPath = ""
	verbose = false
	providerFlag = ""
	databaseFlag = ""
	outputFlag = ""
	forceFlag = false
	formatCheckFlag = false
	watchFlag = false
	workersFlag = 0
	dbPushForceResetFlag = false
	dbPushDryRunFlag = false
	dbPushPrintFlag = false
	dbPushSkipGenerateFlag = false
}

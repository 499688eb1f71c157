package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger([]string{"warn", "ERROR", "bogus"}, &buf)

	l.Info("hidden %d", 1)
	l.Warn("slow query %s", "x")
	l.Error("boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] slow query x")
	assert.Contains(t, out, "[ERROR] boom")
	assert.Equal(t, []string{"warn", "error"}, l.Levels())
}

func TestLoggerQueryFormatting(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger([]string{"query"}, &buf)

	l.Query(`SELECT * FROM "users" WHERE "email" = $1 AND "role" = $2`, []any{"ana@example.com", "CLIENT"}, time.Millisecond)
	assert.Contains(t, buf.String(), `"email" = 'ana@example.com' AND "role" = 'CLIENT'`)

	buf.Reset()
	l.Query("UPDATE users SET password = ? WHERE id = ?", []any{"$2a$10$abcdefghijklmnopqrstuv", 7}, 0)
	assert.Contains(t, buf.String(), "password = '***REDACTED***' WHERE id = 7")
}

func TestFormatQueryManyPlaceholders(t *testing.T) {
	args := make([]any, 11)
	for i := range args {
		args[i] = i + 1
	}
	got := formatQuery("VALUES ($1, $10, $11)", args)
	assert.Equal(t, "VALUES (1, 10, 11)", got)
}

func TestNilLogger(t *testing.T) {
	var l *Logger
	assert.False(t, l.Enabled(LogLevelError))
	l.Error("no panic")
	l.Query("SELECT 1", nil, 0)
}

func TestParseLevel(t *testing.T) {
	lvl, ok := ParseLevel("Warning")
	assert.True(t, ok)
	assert.Equal(t, LogLevelWarn, lvl)

	_, ok = ParseLevel("trace")
	assert.False(t, ok)
}

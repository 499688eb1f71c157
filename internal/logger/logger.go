package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel is one of the client log channels.
type LogLevel int

const (
	LogLevelQuery LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelQuery:
		return "query"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel maps a level name ("query", "info", "warn"/"warning", "error") to a LogLevel.
func ParseLevel(s string) (LogLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "query":
		return LogLevelQuery, true
	case "info":
		return LogLevelInfo, true
	case "warn", "warning":
		return LogLevelWarn, true
	case "error":
		return LogLevelError, true
	}
	return 0, false
}

// Logger writes leveled client logs as "[timestamp] [LEVEL] message" lines.
type Logger struct {
	mu     sync.Mutex
	levels map[LogLevel]bool
	writer io.Writer
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = &Logger{levels: map[LogLevel]bool{}, writer: os.Stdout}
)

// NewLogger returns a logger emitting only the named levels. Unknown names are ignored.
func NewLogger(levels []string, writer io.Writer) *Logger {
	if writer == nil {
		writer = os.Stdout
	}
	l := &Logger{levels: make(map[LogLevel]bool), writer: writer}
	for _, name := range levels {
		if lvl, ok := ParseLevel(name); ok {
			l.levels[lvl] = true
		}
	}
	return l
}

func SetDefaultLogger(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

func GetDefaultLogger() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Enabled reports whether the level is emitted. A nil logger emits nothing.
func (l *Logger) Enabled(level LogLevel) bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.levels[level]
}

// Levels returns the enabled level names in severity order.
func (l *Logger) Levels() []string {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []LogLevel
	for lvl, on := range l.levels {
		if on {
			out = append(out, lvl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	names := make([]string, len(out))
	for i, lvl := range out {
		names[i] = lvl.String()
	}
	return names
}

func (l *Logger) write(level LogLevel, msg string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.levels[level] {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(l.writer, "[%s] [%s] %s\n", timestamp, strings.ToUpper(level.String()), msg)
}

// Query logs a SQL statement with its arguments inlined and its duration.
func (l *Logger) Query(query string, args []any, duration time.Duration) {
	if !l.Enabled(LogLevelQuery) {
		return
	}
	l.write(LogLevelQuery, fmt.Sprintf("%s (took %v)", formatQuery(query, args), duration))
}

func (l *Logger) Info(format string, args ...any) {
	l.write(LogLevelInfo, fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.write(LogLevelWarn, fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.write(LogLevelError, fmt.Sprintf(format, args...))
}

// formatQuery inlines args into "$n" (PostgreSQL) or "?" (MySQL, SQLite) placeholders.
func formatQuery(query string, args []any) string {
	if len(args) == 0 {
		return query
	}

	if strings.Contains(query, "$1") {
		// Replace from the highest index so "$1" does not clobber "$10".
		formatted := query
		for i := len(args); i >= 1; i-- {
			formatted = strings.ReplaceAll(formatted, fmt.Sprintf("$%d", i), formatArg(args[i-1]))
		}
		return formatted
	}

	var b strings.Builder
	argIndex := 0
	for _, r := range query {
		if r == '?' && argIndex < len(args) {
			b.WriteString(formatArg(args[argIndex]))
			argIndex++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// formatArg renders an argument for the log, redacting values that look like secrets.
func formatArg(arg any) string {
	switch v := arg.(type) {
	case string:
		if isSensitiveData(v) {
			return "'***REDACTED***'"
		}
		if len(v) > 100 {
			return fmt.Sprintf("'%s...' (truncated)", v[:100])
		}
		return fmt.Sprintf("'%s'", v)
	case []byte:
		if len(v) > 0 {
			return "'***REDACTED***'"
		}
		return "''"
	case time.Time:
		return fmt.Sprintf("'%s'", v.Format(time.RFC3339Nano))
	case nil:
		return "NULL"
	default:
		str := fmt.Sprintf("%v", v)
		if isSensitiveData(str) {
			return "***REDACTED***"
		}
		return str
	}
}

var sensitiveKeywords = []string{
	"password", "passwd", "secret", "token", "api_key", "apikey",
	"access_token", "refresh_token", "authorization", "credential",
	"private_key", "credit_card", "cvv",
}

var sensitivePrefixes = []string{
	"eyj",       // JWT
	"sk_", "pk_", // Stripe keys
	"ghp_",       // GitHub tokens
	"xoxb-", "xoxp-",
	"$2a$", "$2b$", "$2y$", // bcrypt hashes
	"$argon2",
}

func isSensitiveData(s string) bool {
	s = strings.ToLower(s)
	for _, keyword := range sensitiveKeywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	if len(s) > 20 {
		for _, prefix := range sensitivePrefixes {
			if strings.HasPrefix(s, prefix) {
				return true
			}
		}
	}
	return false
}

func Query(query string, args []any, duration time.Duration) {
	GetDefaultLogger().Query(query, args, duration)
}

func Info(format string, args ...any) {
	GetDefaultLogger().Info(format, args...)
}

func Warn(format string, args ...any) {
	GetDefaultLogger().Warn(format, args...)
}

func Error(format string, args ...any) {
	GetDefaultLogger().Error(format, args...)
}

// SetLogLevels replaces the default logger with one emitting levels to stdout.
func SetLogLevels(levels []string) {
	SetDefaultLogger(NewLogger(levels, os.Stdout))
}

// FileLogger returns a logger appending to filename.
func FileLogger(filename string, levels []string) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return NewLogger(levels, file), nil
}

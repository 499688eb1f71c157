package builder

import (
	"strings"
	"time"

	"github.com/carlosnayan/prisma-go-marketplace/internal/logger"
)

// detectQueryType returns the statement verb (SELECT, INSERT, UPDATE, DELETE).
func detectQueryType(query string) string {
	upper := strings.ToUpper(strings.TrimSpace(query))
	for _, verb := range []string{"SELECT", "INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(upper, verb) {
			return verb
		}
	}
	return "UNKNOWN"
}

// logQueryWithTiming logs database time and client overhead separately.
// processStart marks the start of the whole operation, queryStart the driver call.
func (e *Engine) logQueryWithTiming(query string, args []any, queryStart, processStart time.Time, queryDuration time.Duration) {
	l := e.getLogger()
	if l == nil {
		return
	}

	processDuration := time.Since(processStart)
	overheadDuration := processDuration - queryDuration

	l.Query(query, args, queryDuration)

	queryType := detectQueryType(query)
	l.Info("%s query: %v, overhead: %v (total: %v)", queryType, queryDuration, overheadDuration, processDuration)

	if queryType == "SELECT" && l.Enabled(logger.LogLevelWarn) {
		if alert, ok := e.repeats.Record(query, time.Now()); ok {
			l.Warn("%s; load the relation with Include or a single FindMany", alert)
		}
	}

	if queryDuration > 1000*time.Millisecond {
		l.Warn("Slow query detected: %s took %v", queryType, queryDuration)
	}

	if overheadDuration > 0 && queryDuration > 0 && overheadDuration > queryDuration*2 {
		l.Warn("ORM overhead high: %v (query: %v, overhead: %v, %.1f%% overhead)",
			processDuration, queryDuration, overheadDuration,
			float64(overheadDuration)/float64(queryDuration)*100)
	}
}

// SetLogLevels configures the default logger's levels.
func SetLogLevels(levels []string) {
	logger.SetLogLevels(levels)
}

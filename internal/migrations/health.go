package migrations

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/carlosnayan/prisma-go-marketplace/internal/driver"
)

// HealthCheck is the result of probing a database before a push.
type HealthCheck struct {
	Status       string        `json:"status"` // "healthy", "unhealthy"
	Provider     string        `json:"provider"`
	Tables       int           `json:"tables"`
	ResponseTime time.Duration `json:"response_time"`
	Error        string        `json:"error,omitempty"`
}

// CheckHealth pings db, runs a trivial query and counts the existing tables.
func CheckHealth(ctx context.Context, db driver.DB, provider string, timeout time.Duration) (*HealthCheck, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	check := &HealthCheck{Provider: provider}
	fail := func(err error) (*HealthCheck, error) {
		check.Status = "unhealthy"
		check.Error = err.Error()
		check.ResponseTime = time.Since(start)
		return check, err
	}

	if err := db.Ping(ctx); err != nil {
		return fail(err)
	}
	var one int
	if err := db.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return fail(err)
	}
	tables, err := ListTables(ctx, db, provider)
	if err != nil {
		return fail(err)
	}
	check.ResponseTime = time.Since(start)
	check.Tables = len(tables)
	check.Status = "healthy"
	return check, nil
}

// PrintHealthCheck writes the check in a readable format.
func PrintHealthCheck(w io.Writer, check *HealthCheck) {
	fmt.Fprintf(w, "Health Check:\n")
	fmt.Fprintf(w, "  Status: %s\n", check.Status)
	fmt.Fprintf(w, "  Provider: %s\n", check.Provider)
	fmt.Fprintf(w, "  Tables: %d\n", check.Tables)
	fmt.Fprintf(w, "  Response Time: %v\n", check.ResponseTime)
	if check.Error != "" {
		fmt.Fprintf(w, "  Error: %s\n", check.Error)
	}
}

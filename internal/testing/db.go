package testing

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/carlosnayan/prisma-go-marketplace/internal/driver"
)

// SetupTestDB connects to the provider's test database. SQLite runs in
// memory; PostgreSQL and MySQL need TEST_DATABASE_URL_<PROVIDER> and are
// skipped without it.
func SetupTestDB(t *testing.T, provider string) (driver.DB, func()) {
	t.Helper()
	if provider == "sqlite" {
		return SetupSQLite(t)
	}
	url := GetTestDatabaseURL(provider)
	if url == "" {
		t.Skipf("TEST_DATABASE_URL_%s not set, skipping %s test", provider, provider)
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db, err := driver.Open(ctx, provider, url, nil)
	if err != nil {
		t.Fatalf("failed to connect to %s: %v", provider, err)
	}
	return db, func() { _ = db.Close() }
}

// GetTestDatabaseURL gets test database URL from environment variables
func GetTestDatabaseURL(provider string) string {
	var key string
	switch provider {
	case "postgresql":
		key = "TEST_DATABASE_URL_POSTGRESQL"
	case "mysql":
		key = "TEST_DATABASE_URL_MYSQL"
	case "sqlite":
		key = "TEST_DATABASE_URL_SQLITE"
	}
	if url := os.Getenv(key); url != "" {
		return url
	}
	return os.Getenv("TEST_DATABASE_URL")
}

// Package prisma is the runtime behind the generated marketplace client.
//
// The generator reads prisma/schema.prisma and writes a typed package (db by
// default) whose Client embeds a Core from this package:
//
//	client := db.NewClient(db.WithLog("query", "warn"))
//	if err := client.Connect(ctx); err != nil {
//	    return err
//	}
//	defer client.Disconnect()
//
//	open, err := client.Project.FindMany(db.ProjectFindManyArgs{
//	    Where:   &db.ProjectWhereInput{Status: &db.ProjectStatusFilter{Equals: db.Ptr(db.ProjectStatusOpen)}},
//	    OrderBy: []db.ProjectOrderByInput{{CreatedAt: db.Ptr(db.SortDesc)}},
//	    Take:    db.Ptr(20),
//	}).Exec(ctx)
//
// CLI Commands:
//
//	prisma init                  # Create prisma.conf and a starter schema
//	prisma generate [--watch]    # Generate the typed client
//	prisma validate              # Check the schema
//	prisma format                # Rewrite the schema in canonical form
//	prisma db push               # Create the schema's tables in the database
package prisma

import (
	"github.com/carlosnayan/prisma-go-marketplace/internal/logger"
)

const Version = "0.3.0"

// Log levels accepted by WithLog and LogLevels.
const (
	LogQuery = "query"
	LogInfo  = "info"
	LogWarn  = "warn"
	LogError = "error"
)

// LogLevels configures the levels of the default logger, used by clients
// created without WithLog or WithLogger.
func LogLevels(levels ...string) {
	logger.SetLogLevels(levels)
}

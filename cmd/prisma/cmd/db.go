package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/carlosnayan/prisma-go-marketplace/cli"
	"github.com/carlosnayan/prisma-go-marketplace/internal/driver"
	"github.com/carlosnayan/prisma-go-marketplace/internal/generator"
	"github.com/carlosnayan/prisma-go-marketplace/internal/migrations"
	"github.com/carlosnayan/prisma-go-marketplace/internal/parser"
)

const healthTimeout = 5 * time.Second

var (
	dbPushForceResetFlag   bool
	dbPushDryRunFlag       bool
	dbPushPrintFlag        bool
	dbPushSkipGenerateFlag bool
)

// openDB connects to the datasource. Tests replace it with an in-memory database.
var openDB = func(ctx context.Context, provider, url string) (driver.DB, error) {
	return driver.Open(ctx, provider, url, nil)
}

var dbCmd = &cli.Command{
	Name:  "db",
	Short: "Database management commands",
	Long: `Commands to interact directly with the database:
  - push: Create the schema's tables in the database`,
	Subcommands: []*cli.Command{
		dbPushCmd,
	},
}

var dbPushCmd = &cli.Command{
	Name:  "push",
	Short: "Create the schema's tables in the database",
	Long: `Creates the tables, primary keys, unique indexes and foreign keys of
schema.prisma that are missing from the database. Existing tables are not
altered; use --force-reset to drop and recreate every table of the schema.`,
	Usage: "prisma db push [--force-reset] [--dry-run] [--print] [--skip-generate]",
	Flags: []*cli.Flag{
		{
			Name:  "force-reset",
			Usage: "Drop the schema's tables before creating them (deletes data)",
			Value: &dbPushForceResetFlag,
		},
		{
			Name:  "dry-run",
			Usage: "Show the statements that would run without applying them",
			Value: &dbPushDryRunFlag,
		},
		{
			Name:  "print",
			Usage: "Print the full schema SQL without connecting to the database",
			Value: &dbPushPrintFlag,
		},
		{
			Name:  "skip-generate",
			Usage: "Do not run prisma generate after push",
			Value: &dbPushSkipGenerateFlag,
		},
	},
	Run: runDbPush,
}

func runDbPush(args []string) error {
	if err := checkProjectRoot(); err != nil {
		return err
	}

	path := getSchemaPath()
	schema, problems, err := parser.ParseFile(path)
	if err != nil {
		if len(problems) > 0 {
			printProblems(problems)
		}
		return fmt.Errorf("error parsing schema: %w", err)
	}
	graph, err := generator.NewGraph(schema, "db")
	if err != nil {
		return fmt.Errorf("error resolving schema: %w", err)
	}

	if dbPushPrintFlag {
		fmt.Fprint(out, migrations.SchemaSQL(graph, graph.Provider))
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	url := cfg.GetDatabaseURL()
	provider := cfg.Datasource.Provider
	if provider == "" {
		provider = graph.Provider
	}
	if provider == "" {
		provider = driver.DetectProvider(url)
	}

	ctx := context.Background()
	db, err := openDB(ctx, provider, url)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	check, err := migrations.CheckHealth(ctx, db, provider, healthTimeout)
	if verbose || err != nil {
		migrations.PrintHealthCheck(out, check)
	}
	if err != nil {
		return fmt.Errorf("database is not reachable: %w", err)
	}

	fmt.Fprintf(out, "Datasource %q: %s database\n\n", "db", provider)

	result, err := migrations.Push(ctx, db, graph, provider, migrations.PushOptions{
		ForceReset: dbPushForceResetFlag,
		DryRun:     dbPushDryRunFlag,
	})
	if err != nil {
		return err
	}
	printPushResult(result)

	if dbPushDryRunFlag || dbPushSkipGenerateFlag {
		return nil
	}
	fmt.Fprintln(out)
	return generateOnce(ctx, resolveGenerateTarget())
}

func printPushResult(result *migrations.PushResult) {
	if dbPushDryRunFlag {
		fmt.Fprintln(out, Info("-- dry run, nothing was applied"))
		for _, stmt := range result.Statements {
			fmt.Fprintf(out, "%s;\n", stmt)
		}
		return
	}
	if len(result.Dropped) > 0 {
		fmt.Fprintf(out, "%s dropped %s\n", Warning("Reset:"), strings.Join(result.Dropped, ", "))
	}
	if result.InSync() {
		fmt.Fprintln(out, Success("The database is already in sync with the Prisma schema."))
		return
	}
	for _, name := range result.Created {
		fmt.Fprintf(out, "  + %s\n", Name(name))
	}
	fmt.Fprintf(out, "%s Your database is now in sync with your Prisma schema (%d tables created).\n",
		Success("✔"), len(result.Created))
}

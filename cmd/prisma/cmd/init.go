package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/carlosnayan/prisma-go-marketplace/cli"
	"github.com/carlosnayan/prisma-go-marketplace/internal/config"
)

var (
	providerFlag string
	databaseFlag string
	outputFlag   string
	forceFlag    bool
)

// in is read by the provider prompt.
var in io.Reader = os.Stdin

var initCmd = &cli.Command{
	Name:  "init",
	Short: "Initialize a new Prisma project",
	Long: `Creates the initial structure of a Prisma project:
  - prisma.conf with the datasource and generator settings
  - prisma/schema.prisma with a starter model`,
	Usage: "prisma init [--provider postgresql|mysql|sqlite] [--database URL] [--output DIR]",
	Flags: []*cli.Flag{
		{
			Name:  "provider",
			Short: "p",
			Usage: "Database provider (postgresql, mysql, sqlite)",
			Value: &providerFlag,
		},
		{
			Name:  "database",
			Short: "d",
			Usage: "Database connection URL (default: env(\"DATABASE_URL\"))",
			Value: &databaseFlag,
		},
		{
			Name:  "output",
			Short: "o",
			Usage: "Directory of the generated client (default: db)",
			Value: &outputFlag,
		},
		{
			Name:  "force",
			Short: "f",
			Usage: "Overwrite an existing prisma.conf",
			Value: &forceFlag,
		},
	},
	Run: runInit,
}

func runInit(args []string) error {
	fmt.Fprintln(out, "Initializing Prisma project...")
	fmt.Fprintln(out)

	if _, err := os.Stat("prisma.conf"); err == nil && !forceFlag {
		return fmt.Errorf("prisma.conf already exists in this directory. Use 'prisma init --force' to overwrite")
	}

	provider := providerFlag
	if provider == "" {
		provider = promptForProvider()
	}
	switch provider {
	case "postgresql", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported provider %q (use postgresql, mysql or sqlite)", provider)
	}

	output := outputFlag
	if output == "" {
		output = config.DefaultOutput
	}

	if err := os.WriteFile("prisma.conf", []byte(generateConfig(output)), 0644); err != nil {
		return fmt.Errorf("error creating prisma.conf: %w", err)
	}
	fmt.Fprintf(out, "Created %s\n", Name("prisma.conf"))

	if err := os.MkdirAll(filepath.Dir(config.DefaultSchemaPath), 0755); err != nil {
		return fmt.Errorf("error creating prisma directory: %w", err)
	}
	if _, err := os.Stat(config.DefaultSchemaPath); err == nil && !forceFlag {
		fmt.Fprintf(out, "Kept existing %s\n", Name(config.DefaultSchemaPath))
	} else {
		if err := os.WriteFile(config.DefaultSchemaPath, []byte(generateSchema(provider, output)), 0644); err != nil {
			return fmt.Errorf("error creating schema.prisma: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n", Name(config.DefaultSchemaPath))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, Success("Project initialized successfully!"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	if databaseFlag == "" {
		fmt.Fprintln(out, "  1. Set the DATABASE_URL environment variable (or add it to .env)")
	} else {
		fmt.Fprintln(out, "  1. Check the datasource url in prisma.conf")
	}
	fmt.Fprintln(out, "  2. Edit prisma/schema.prisma with your models")
	fmt.Fprintln(out, "  3. Run 'prisma db push' to create the tables")
	fmt.Fprintln(out, "  4. Run 'prisma generate' to generate the client")
	return nil
}

func generateConfig(output string) string {
	url := `env('DATABASE_URL')`
	if databaseFlag != "" {
		url = databaseFlag
	}

	return fmt.Sprintf(`# Prisma for Go configuration
# The datasource url may reference the environment: env('DATABASE_URL'), ${DATABASE_URL}

schema = %q
log = ["warn", "error"]

[datasource]
url = %q

[generator]
output = %q
`, config.DefaultSchemaPath, url, output)
}

func generateSchema(provider, output string) string {
	return fmt.Sprintf(`// prisma.conf's datasource url takes precedence over the one below.

datasource db {
  provider = %q
  url      = env("DATABASE_URL")
}

generator client {
  provider = "prisma-go-marketplace"
  output   = %q
}

model User {
  id        String   @id @default(uuid())
  email     String   @unique
  name      String?
  createdAt DateTime @default(now()) @map("created_at")

  @@map("users")
}
`, provider, filepath.ToSlash(filepath.Join("..", output)))
}

// promptForProvider asks for the database provider on stdin
func promptForProvider() string {
	reader := bufio.NewReader(in)

	fmt.Fprintln(out, "Select a database provider:")
	fmt.Fprintln(out, "  1) PostgreSQL")
	fmt.Fprintln(out, "  2) MySQL")
	fmt.Fprintln(out, "  3) SQLite")
	fmt.Fprint(out, "Enter choice (1-3) [default: 1]: ")

	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		fmt.Fprintln(out, Info("No input, defaulting to PostgreSQL"))
		return "postgresql"
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "1", "postgresql", "postgres":
		return "postgresql"
	case "2", "mysql":
		return "mysql"
	case "3", "sqlite":
		return "sqlite"
	default:
		fmt.Fprintf(out, "Invalid choice '%s', defaulting to PostgreSQL\n", strings.TrimSpace(input))
		return "postgresql"
	}
}

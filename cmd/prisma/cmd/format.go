package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/carlosnayan/prisma-go-marketplace/cli"
	"github.com/carlosnayan/prisma-go-marketplace/internal/formatter"
	"github.com/carlosnayan/prisma-go-marketplace/internal/parser"
)

var formatCheckFlag bool

var formatCmd = &cli.Command{
	Name:  "format",
	Short: "Format the schema.prisma file",
	Long: `Formats the schema.prisma file:
  - Two-space indentation
  - Aligned field names, types and attributes
  - One blank line between blocks`,
	Usage: "prisma format [--check]",
	Flags: []*cli.Flag{
		{
			Name:  "check",
			Usage: "Only check if file is formatted (does not write)",
			Value: &formatCheckFlag,
		},
	},
	Run: runFormat,
}

func runFormat(args []string) error {
	if err := checkProjectRoot(); err != nil {
		return err
	}

	start := time.Now()
	path := getSchemaPath()
	fmt.Fprintf(out, "Prisma schema loaded from %s\n\n", relPath(path))

	original, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	schema, problems, err := parser.Parse(string(original))
	if err != nil {
		if len(problems) > 0 {
			fmt.Fprintln(out, Warning("Errors found in schema:"))
			fmt.Fprint(out, parser.FormatErrors(problems))
		}
		return fmt.Errorf("cannot format schema with errors - fix errors first")
	}

	formatted := formatter.FormatSchema(schema)
	if _, problems, err := parser.Parse(formatted); err != nil {
		return fmt.Errorf("formatted schema does not parse:\n%s", parser.FormatErrors(problems))
	}

	if normalize(string(original)) == normalize(formatted) {
		if formatCheckFlag {
			fmt.Fprintln(out, "All files are formatted correctly!")
			return nil
		}
		fmt.Fprintf(out, "The schema at %s is already formatted!\n", relPath(path))
		return nil
	}

	if formatCheckFlag {
		fmt.Fprintf(out, "There are unformatted files. Run %s to format them.\n", Name("prisma format"))
		return fmt.Errorf("schema is not formatted")
	}

	if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}
	fmt.Fprintf(out, "Formatted %s in %dms %s\n", relPath(path), time.Since(start).Milliseconds(), Success("✔"))
	return nil
}

// normalize drops trailing whitespace and CRs so only layout differences count.
func normalize(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

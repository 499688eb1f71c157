package cmd

import (
	"fmt"

	"github.com/carlosnayan/prisma-go-marketplace/cli"
	"github.com/carlosnayan/prisma-go-marketplace/internal/generator"
	"github.com/carlosnayan/prisma-go-marketplace/internal/parser"
)

var validateCmd = &cli.Command{
	Name:  "validate",
	Short: "Validate the schema.prisma",
	Long: `Validates the syntax and consistency of schema.prisma:
  - Checks correct syntax
  - Validates types, defaults and attributes
  - Validates relations and their back-relations
  - Resolves the model graph used by generate and db push`,
	Usage: "prisma validate [--schema PATH]",
	Run:   runValidate,
}

func runValidate(args []string) error {
	if err := checkProjectRoot(); err != nil {
		return err
	}

	path := getSchemaPath()
	fmt.Fprintf(out, "Prisma schema loaded from %s\n\n", relPath(path))

	schema, problems, err := parser.ParseFile(path)
	if err != nil && len(problems) == 0 {
		return fmt.Errorf("error parsing schema: %w", err)
	}
	if len(problems) == 0 {
		// Problems the validator leaves to the graph, such as a missing primary key.
		if _, gerr := generator.NewGraph(schema, "db"); gerr != nil {
			problems = []string{gerr.Error()}
		}
	}
	if len(problems) > 0 {
		printProblems(problems)
		return fmt.Errorf("invalid schema")
	}

	fmt.Fprintf(out, "The schema at %s is %s\n", relPath(path), Success("valid"))
	return nil
}

func printProblems(problems []string) {
	fmt.Fprintln(out, Warning("Prisma schema validation errors:"))
	fmt.Fprintln(out)
	fmt.Fprint(out, parser.FormatErrors(problems))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Validation Error Count: %d\n", len(problems))
}

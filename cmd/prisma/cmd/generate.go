package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	prisma "github.com/carlosnayan/prisma-go-marketplace"
	"github.com/carlosnayan/prisma-go-marketplace/cli"
	"github.com/carlosnayan/prisma-go-marketplace/internal/config"
	"github.com/carlosnayan/prisma-go-marketplace/internal/generator"
	"github.com/carlosnayan/prisma-go-marketplace/internal/logger"
	"github.com/carlosnayan/prisma-go-marketplace/internal/parser"
)

// watchDebounce groups the burst of events an editor emits for one save.
const watchDebounce = 100 * time.Millisecond

var (
	watchFlag   bool
	workersFlag int
)

var generateCmd = &cli.Command{
	Name:  "generate",
	Short: "Generate the typed client from schema.prisma",
	Long: `Generates the typed client package from schema.prisma:
  - A record struct and delegate per model
  - Where, unique, order-by, select and include inputs
  - Create, update, aggregate and group-by inputs
  - The Client with one delegate per model`,
	Usage: "prisma generate [--watch] [--workers N]",
	Flags: []*cli.Flag{
		{
			Name:  "watch",
			Short: "w",
			Usage: "Watch the Prisma schema and rerun after a change",
			Value: &watchFlag,
		},
		{
			Name:  "workers",
			Usage: "Number of files rendered in parallel (default: number of CPUs)",
			Value: &workersFlag,
		},
	},
	Run: runGenerate,
}

// generateTarget is where and how the client is written.
type generateTarget struct {
	schemaPath string
	outDir     string
	pkg        string
}

func runGenerate(args []string) error {
	if err := checkProjectRoot(); err != nil {
		return err
	}
	target := resolveGenerateTarget()

	if watchFlag {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchGenerate(ctx, target)
	}
	return generateOnce(context.Background(), target)
}

// resolveGenerateTarget prefers prisma.conf's generator settings and falls
// back to the schema's generator block, resolved against the schema directory.
func resolveGenerateTarget() generateTarget {
	target := generateTarget{schemaPath: getSchemaPath()}
	if cfg, err := loadConfig(); err == nil {
		target.outDir = cfg.GetOutputPath()
		target.pkg = cfg.Generator.Package
	}
	return target
}

func (t generateTarget) resolve(schema *parser.Schema) generateTarget {
	if t.outDir == "" {
		output := config.DefaultOutput
		if len(schema.Generators) > 0 {
			if v, ok := schema.Generators[0].Get("output").(string); ok && v != "" {
				output = v
			}
		}
		if !filepath.IsAbs(output) {
			output = filepath.Join(filepath.Dir(t.schemaPath), output)
		}
		t.outDir = output
	}
	if t.pkg == "" {
		t.pkg = filepath.Base(t.outDir)
	}
	return t
}

func generateOnce(ctx context.Context, target generateTarget) error {
	fmt.Fprintf(out, "Prisma schema loaded from %s\n", relPath(target.schemaPath))
	start := time.Now()

	schema, problems, err := parser.ParseFile(target.schemaPath)
	if err != nil {
		if len(problems) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, Warning("Errors found in schema:"))
			fmt.Fprint(out, parser.FormatErrors(problems))
			return fmt.Errorf("cannot generate code with invalid schema")
		}
		return fmt.Errorf("error parsing schema: %w", err)
	}

	target = target.resolve(schema)
	graph, err := generator.NewGraph(schema, target.pkg)
	if err != nil {
		return fmt.Errorf("error resolving schema: %w", err)
	}

	gen := generator.New(graph, target.outDir)
	if workersFlag > 0 {
		gen = gen.WithWorkers(workersFlag)
	}
	if err := gen.Generate(ctx); err != nil {
		return fmt.Errorf("error generating client: %w", err)
	}

	fmt.Fprintf(out, "%s Generated Prisma Client (%s) for %d models to %s in %dms\n",
		Success("✔"), prisma.Version, len(graph.Models), Name(relPath(target.outDir)), time.Since(start).Milliseconds())
	return nil
}

// watchGenerate generates once, then again on every change of the schema
// file until ctx is done. Generation errors are reported and watching goes on.
func watchGenerate(ctx context.Context, target generateTarget) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error starting watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file on save, so the directory is watched.
	schemaFile, err := filepath.Abs(target.schemaPath)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(schemaFile)); err != nil {
		return fmt.Errorf("error watching %s: %w", filepath.Dir(schemaFile), err)
	}

	if err := generateOnce(ctx, target); err != nil {
		fmt.Fprintf(out, "%s %v\n", Warning("Error in initial generation:"), err)
	}
	fmt.Fprintf(out, "\nWatching... %s\n\n", relPath(target.schemaPath))

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "Stopping watch mode...")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != schemaFile {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				debounce = time.After(watchDebounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-debounce:
			debounce = nil
			fmt.Fprintf(out, "Change detected in %s\n", relPath(target.schemaPath))
			if err := generateOnce(ctx, target); err != nil {
				fmt.Fprintf(out, "%s %v\n\n", Warning("Error during generation:"), err)
				continue
			}
			fmt.Fprintf(out, "\nWatching... %s\n\n", relPath(target.schemaPath))
		}
	}
}

// relPath shortens p relative to the working directory for display.
func relPath(p string) string {
	if rel, err := filepath.Rel(".", p); err == nil {
		return rel
	}
	return p
}

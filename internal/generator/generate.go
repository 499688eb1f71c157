// Package generator turns a parsed schema into the typed client package.
//
// Each model gets four files (record and query inputs, write inputs,
// aggregates, delegate); the package also gets client.go, enums.go and
// runtime.go. Output is built with jennifer, so imports are tracked and the
// source is gofmt-formatted.
package generator

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
)

const (
	modulePath = "github.com/carlosnayan/prisma-go-marketplace"
	builderPkg = modulePath + "/builder"
	rawPkg     = modulePath + "/raw"

	headerComment = "Code generated by prisma-go-marketplace. DO NOT EDIT."
)

// Generator writes the client package for one graph.
type Generator struct {
	graph   *Graph
	outDir  string
	workers int
}

// New returns a generator writing into outDir.
func New(g *Graph, outDir string) *Generator {
	return &Generator{graph: g, outDir: outDir, workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers sets the number of files rendered in parallel.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

type fileJob struct {
	name   string
	render func() *jen.File
}

func (g *Generator) jobs() []fileJob {
	var jobs []fileJob
	for _, m := range g.graph.Models {
		m := m
		base := snake(m.Name)
		jobs = append(jobs,
			fileJob{base + ".go", func() *jen.File { return g.genModel(m) }},
			fileJob{base + "_input.go", func() *jen.File { return g.genInputs(m) }},
			fileJob{base + "_aggregate.go", func() *jen.File { return g.genAggregate(m) }},
			fileJob{base + "_delegate.go", func() *jen.File { return g.genDelegate(m) }},
		)
	}
	jobs = append(jobs,
		fileJob{"client.go", g.genClient},
		fileJob{"runtime.go", g.genRuntime},
	)
	if len(g.graph.Enums) > 0 {
		jobs = append(jobs, fileJob{"enums.go", g.genEnums})
	}
	return jobs
}

// Generate renders every file in parallel and writes them to the output
// directory. Files of models no longer in the schema are left alone.
func (g *Generator) Generate(ctx context.Context) error {
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for _, job := range g.jobs() {
		job := job
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return g.writeFile(job.render(), job.name)
		})
	}
	return errg.Wait()
}

// Render returns the generated sources keyed by file name without writing them.
func (g *Generator) Render(ctx context.Context) (map[string][]byte, error) {
	var (
		mu  sync.Mutex
		out = make(map[string][]byte)
	)
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for _, job := range g.jobs() {
		job := job
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := job.render().Render(&buf); err != nil {
				return fmt.Errorf("failed to render %s: %w", job.name, err)
			}
			mu.Lock()
			out[job.name] = buf.Bytes()
			mu.Unlock()
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Generator) writeFile(f *jen.File, name string) error {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(g.outDir, name), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// FileNames lists the files Generate writes, sorted.
func (g *Generator) FileNames() []string {
	var names []string
	for _, job := range g.jobs() {
		names = append(names, job.name)
	}
	sort.Strings(names)
	return names
}

func (g *Generator) newFile() *jen.File {
	f := jen.NewFile(g.graph.Package)
	f.HeaderComment(headerComment)
	f.ImportAlias(modulePath, "prisma")
	f.ImportName(builderPkg, "builder")
	f.ImportName(rawPkg, "raw")
	return f
}

// multi lays items out one per line, each followed by a comma.
func multi(items ...jen.Code) []jen.Code {
	out := make([]jen.Code, 0, len(items)+1)
	for _, it := range items {
		out = append(out, jen.Line().Add(it))
	}
	return append(out, jen.Line())
}

// kv is a key: value element of a composite literal.
func kv(key string, value jen.Code) jen.Code {
	return jen.Id(key).Op(":").Add(value)
}

func doc(f *jen.File, lines ...string) {
	for _, l := range lines {
		f.Comment(l)
	}
}

func b(name string) *jen.Statement { return jen.Qual(builderPkg, name) }

func ifErr(zero ...jen.Code) jen.Code {
	return jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(append(zero, jen.Err())...))
}

func stringList(ss []string) jen.Code {
	items := make([]jen.Code, len(ss))
	for i, s := range ss {
		items[i] = jen.Lit(s)
	}
	return jen.Index().String().Values(items...)
}

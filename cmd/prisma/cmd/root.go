package cmd

import (
	"fmt"
	"io"
	"os"

	prisma "github.com/carlosnayan/prisma-go-marketplace"
	"github.com/carlosnayan/prisma-go-marketplace/cli"
	"github.com/carlosnayan/prisma-go-marketplace/internal/config"
	"github.com/carlosnayan/prisma-go-marketplace/internal/logger"
)

var (
	configFile string
	schemaPath string
	verbose    bool
)

// out receives command output. Tests swap it for a buffer.
var out io.Writer = os.Stdout

// Execute runs the CLI application
func Execute() error {
	return Run(os.Args[1:])
}

// Run runs the CLI with args, excluding the program name.
func Run(args []string) error {
	app := cli.NewApp(
		"prisma",
		prisma.Version,
		"Prisma CLI for Go - schema tooling for the marketplace client",
	)
	app.Out = out

	// Global flags
	app.AddGlobalFlag(&cli.Flag{
		Name:  "config",
		Short: "c",
		Usage: "Path to configuration file (default: prisma.conf)",
		Value: &configFile,
	})
	app.AddGlobalFlag(&cli.Flag{
		Name:  "schema",
		Short: "s",
		Usage: "Path to schema.prisma (default: prisma/schema.prisma)",
		Value: &schemaPath,
	})
	app.AddGlobalFlag(&cli.Flag{
		Name:  "verbose",
		Usage: "Verbose mode (log every statement)",
		Value: &verbose,
	})

	// Commands
	app.AddCommand(initCmd)
	app.AddCommand(generateCmd)
	app.AddCommand(validateCmd)
	app.AddCommand(formatCmd)
	app.AddCommand(dbCmd)
	app.AddCommand(versionCmd)

	return app.Run(args)
}

var versionCmd = &cli.Command{
	Name:  "version",
	Short: "Print the CLI version",
	Run: func(args []string) error {
		fmt.Fprintf(out, "prisma %s\n", prisma.Version)
		return nil
	},
}

// getConfigPath returns the path to the configuration file, or "" when none is found
func getConfigPath() string {
	if configFile != "" {
		return configFile
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	path, err := config.Find(wd)
	if err != nil {
		return ""
	}
	return path
}

// getSchemaPath returns the path to schema.prisma
func getSchemaPath() string {
	if schemaPath != "" {
		return schemaPath
	}
	if cfg, err := loadConfig(); err == nil {
		return cfg.GetSchemaPath()
	}
	if _, err := os.Stat(config.DefaultSchemaPath); err == nil {
		return config.DefaultSchemaPath
	}
	// Fallback: schema.prisma in root
	if _, err := os.Stat("schema.prisma"); err == nil {
		return "schema.prisma"
	}
	return config.DefaultSchemaPath
}

// checkProjectRoot checks if we are in a Prisma project. An explicit
// --schema is enough for the commands that only read the schema.
func checkProjectRoot() error {
	if schemaPath != "" || getConfigPath() != "" {
		return nil
	}
	return fmt.Errorf("prisma.conf not found. Run 'prisma init' to initialize the project")
}

// loadConfig loads the configuration and applies its log levels
func loadConfig() (*config.Config, error) {
	configPath := getConfigPath()
	if configPath == "" {
		return nil, fmt.Errorf("prisma.conf not found")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	levels := cfg.Log
	if verbose {
		levels = append(levels, "query", "info")
	}
	if len(levels) > 0 {
		logger.SetDefaultLogger(logger.NewLogger(levels, os.Stderr))
	}
	return cfg, nil
}

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Command represents a CLI command
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	Subcommands []*Command
	Flags       []*Flag
}

// Flag represents a command flag
type Flag struct {
	Name     string
	Short    string
	Usage    string
	Required bool
	Value    any // *string, *bool, *int
}

// App represents the CLI application
type App struct {
	Name        string
	Version     string
	Description string
	Commands    []*Command
	GlobalFlags []*Flag

	// Out receives usage and version output.
	Out io.Writer
}

// NewApp creates a new CLI application writing to stdout
func NewApp(name, version, description string) *App {
	return &App{
		Name:        name,
		Version:     version,
		Description: description,
		Commands:    []*Command{},
		GlobalFlags: []*Flag{},
		Out:         os.Stdout,
	}
}

// AddCommand adds a command to the app
func (a *App) AddCommand(cmd *Command) {
	a.Commands = append(a.Commands, cmd)
}

// AddGlobalFlag adds a global flag to the app
func (a *App) AddGlobalFlag(flag *Flag) {
	a.GlobalFlags = append(a.GlobalFlags, flag)
}

// Execute runs the application with the process arguments
func (a *App) Execute() error {
	return a.Run(os.Args[1:])
}

// Run dispatches args to the matching command. Global flags may appear
// anywhere before the command name.
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return nil
	}

	switch args[0] {
	case "--version":
		fmt.Fprintf(a.Out, "%s version %s\n", a.Name, a.Version)
		return nil
	case "--help", "-h", "help":
		a.printUsage()
		return nil
	}

	remaining, err := parseFlags(args, a.GlobalFlags, true)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		a.printUsage()
		return nil
	}

	cmd := findCommand(a.Commands, remaining[0])
	if cmd == nil {
		a.printUsage()
		return fmt.Errorf("unknown command: %s", remaining[0])
	}
	return a.runCommand(cmd, remaining[1:])
}

func (a *App) runCommand(cmd *Command, args []string) error {
	if len(args) > 0 && len(cmd.Subcommands) > 0 && !strings.HasPrefix(args[0], "-") {
		sub := findCommand(cmd.Subcommands, args[0])
		if sub == nil {
			cmd.PrintUsage(a.Out)
			return fmt.Errorf("unknown subcommand: %s %s", cmd.Name, args[0])
		}
		return a.runCommand(sub, args[1:])
	}

	if wantsHelp(args) {
		cmd.PrintUsage(a.Out)
		return nil
	}
	if cmd.Run == nil {
		cmd.PrintUsage(a.Out)
		return nil
	}

	flags := append(append([]*Flag{}, cmd.Flags...), a.GlobalFlags...)
	finalArgs, err := parseFlags(args, flags, false)
	if err != nil {
		return err
	}
	return cmd.Run(finalArgs)
}

func findCommand(cmds []*Command, name string) *Command {
	for _, c := range cmds {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

// parseFlags sets the values of flags found in args and returns the rest.
// With stopAtArg set, parsing ends at the first positional argument so that
// global flags do not consume command flags.
func parseFlags(args []string, flags []*Flag, stopAtArg bool) ([]string, error) {
	seen := make(map[string]bool)
	remaining := []string{}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(arg) < 2 || arg[0] != '-' {
			if stopAtArg {
				return append(remaining, args[i:]...), checkRequired(flags, seen)
			}
			remaining = append(remaining, arg)
			continue
		}

		name := strings.TrimLeft(arg, "-")
		value, hasValue := "", false
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			name, value, hasValue = name[:eq], name[eq+1:], true
		}

		flag := lookupFlag(flags, name)
		if flag == nil {
			// Unknown flag, treat as argument
			remaining = append(remaining, arg)
			continue
		}

		if _, isBool := flag.Value.(*bool); isBool {
			if !hasValue {
				value = "true"
			}
		} else if !hasValue {
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				return nil, fmt.Errorf("flag --%s requires a value", flag.Name)
			}
			i++
			value = args[i]
		}
		if err := setFlagValue(flag, value); err != nil {
			return nil, err
		}
		seen[flag.Name] = true
	}

	return remaining, checkRequired(flags, seen)
}

func lookupFlag(flags []*Flag, name string) *Flag {
	for _, f := range flags {
		if f.Name == name || (f.Short != "" && f.Short == name) {
			return f
		}
	}
	return nil
}

func checkRequired(flags []*Flag, seen map[string]bool) error {
	for _, flag := range flags {
		if flag.Required && !seen[flag.Name] {
			return fmt.Errorf("flag --%s is required", flag.Name)
		}
	}
	return nil
}

// setFlagValue sets the value of a flag
func setFlagValue(flag *Flag, value string) error {
	switch v := flag.Value.(type) {
	case *string:
		*v = value
	case *bool:
		*v = value == "true" || value == "1"
	case *int:
		if _, err := fmt.Sscanf(value, "%d", v); err != nil {
			return fmt.Errorf("flag --%s: invalid number %q", flag.Name, value)
		}
	default:
		return fmt.Errorf("flag --%s has unsupported type %T", flag.Name, flag.Value)
	}
	return nil
}

// printUsage prints the usage information
func (a *App) printUsage() {
	w := a.Out
	fmt.Fprintf(w, "%s - %s\n\n", a.Name, a.Description)
	fmt.Fprintf(w, "Usage:\n  %s [command] [flags] [arguments]\n\n", a.Name)

	if len(a.Commands) > 0 {
		fmt.Fprintln(w, "Commands:")
		for _, cmd := range a.Commands {
			fmt.Fprintf(w, "  %-15s %s\n", cmd.Name, cmd.Short)
		}
		fmt.Fprintln(w)
	}

	if len(a.GlobalFlags) > 0 {
		fmt.Fprintln(w, "Global Flags:")
		printFlags(w, a.GlobalFlags)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Use '%s [command] --help' for more information about a command.\n", a.Name)
}

// PrintUsage prints usage for a specific command
func (cmd *Command) PrintUsage(w io.Writer) {
	if cmd.Long != "" {
		fmt.Fprintln(w, cmd.Long)
		fmt.Fprintln(w)
	}

	usage := cmd.Usage
	if usage == "" {
		usage = cmd.Name
	}
	fmt.Fprintf(w, "Usage:\n  %s\n\n", usage)

	if len(cmd.Flags) > 0 {
		fmt.Fprintln(w, "Flags:")
		printFlags(w, cmd.Flags)
		fmt.Fprintln(w)
	}

	if len(cmd.Subcommands) > 0 {
		fmt.Fprintln(w, "Subcommands:")
		for _, sub := range cmd.Subcommands {
			fmt.Fprintf(w, "  %-15s %s\n", sub.Name, sub.Short)
		}
		fmt.Fprintln(w)
	}
}

func printFlags(w io.Writer, flags []*Flag) {
	for _, flag := range flags {
		short := ""
		if flag.Short != "" {
			short = fmt.Sprintf("-%s, ", flag.Short)
		}
		required := ""
		if flag.Required {
			required = " (required)"
		}
		fmt.Fprintf(w, "  %s--%s\t%s%s\n", short, flag.Name, flag.Usage, required)
	}
}

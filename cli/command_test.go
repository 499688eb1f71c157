package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp() (*App, *bytes.Buffer) {
	var out bytes.Buffer
	app := NewApp("test", "1.0.0", "Test app")
	app.Out = &out
	return app, &out
}

func TestNewApp(t *testing.T) {
	app := NewApp("test", "1.0.0", "Test app")

	assert.Equal(t, "test", app.Name)
	assert.Equal(t, "1.0.0", app.Version)
	assert.Equal(t, "Test app", app.Description)
	assert.Empty(t, app.Commands)
	assert.Empty(t, app.GlobalFlags)
	assert.NotNil(t, app.Out)
}

func TestParseFlags(t *testing.T) {
	var name string
	var force bool
	var count int
	flags := []*Flag{
		{Name: "name", Short: "n", Value: &name},
		{Name: "force", Value: &force},
		{Name: "count", Value: &count},
	}

	remaining, err := parseFlags([]string{"-n", "value", "--force", "arg", "--count=3", "--other"}, flags, false)
	require.NoError(t, err)
	assert.Equal(t, "value", name)
	assert.True(t, force)
	assert.Equal(t, 3, count)
	assert.Equal(t, []string{"arg", "--other"}, remaining)
}

func TestParseFlagsBoolDoesNotConsumeArgument(t *testing.T) {
	var force bool
	remaining, err := parseFlags([]string{"--force", "remaining"}, []*Flag{{Name: "force", Value: &force}}, false)
	require.NoError(t, err)
	assert.True(t, force)
	assert.Equal(t, []string{"remaining"}, remaining)
}

func TestParseFlagsErrors(t *testing.T) {
	var name string
	var count int

	_, err := parseFlags([]string{"--name"}, []*Flag{{Name: "name", Value: &name}}, false)
	assert.EqualError(t, err, "flag --name requires a value")

	_, err = parseFlags([]string{"other"}, []*Flag{{Name: "name", Required: true, Value: &name}}, false)
	assert.EqualError(t, err, "flag --name is required")

	_, err = parseFlags([]string{"--count", "many"}, []*Flag{{Name: "count", Value: &count}}, false)
	assert.Error(t, err)
}

func TestParseFlagsStopAtArg(t *testing.T) {
	var config string
	remaining, err := parseFlags([]string{"--config", "x.conf", "generate", "--config", "y.conf"},
		[]*Flag{{Name: "config", Value: &config}}, true)
	require.NoError(t, err)
	assert.Equal(t, "x.conf", config)
	assert.Equal(t, []string{"generate", "--config", "y.conf"}, remaining)
}

func TestRunVersionAndHelp(t *testing.T) {
	app, out := testApp()
	app.AddCommand(&Command{Name: "hello", Short: "Say hello"})

	require.NoError(t, app.Run([]string{"--version"}))
	assert.Equal(t, "test version 1.0.0\n", out.String())

	out.Reset()
	require.NoError(t, app.Run(nil))
	assert.Contains(t, out.String(), "hello")
	assert.Contains(t, out.String(), "Say hello")
}

func TestRunUnknownCommand(t *testing.T) {
	app, _ := testApp()
	err := app.Run([]string{"unknown"})
	assert.EqualError(t, err, "unknown command: unknown")
}

func TestRunSubcommand(t *testing.T) {
	app, out := testApp()
	var got []string
	var dry bool
	app.AddCommand(&Command{
		Name: "db",
		Subcommands: []*Command{{
			Name:  "push",
			Flags: []*Flag{{Name: "dry-run", Value: &dry}},
			Run: func(args []string) error {
				got = args
				return nil
			},
		}},
	})

	require.NoError(t, app.Run([]string{"db", "push", "--dry-run", "extra"}))
	assert.True(t, dry)
	assert.Equal(t, []string{"extra"}, got)

	// a parent without Run prints its subcommands
	require.NoError(t, app.Run([]string{"db"}))
	assert.Contains(t, out.String(), "push")

	assert.Error(t, app.Run([]string{"db", "pull"}))
}

func TestRunCommandSeesGlobalFlags(t *testing.T) {
	app, _ := testApp()
	var config string
	app.AddGlobalFlag(&Flag{Name: "config", Short: "c", Value: &config})

	var ran bool
	app.AddCommand(&Command{
		Name: "generate",
		Run: func(args []string) error {
			ran = true
			assert.Empty(t, args)
			return nil
		},
	})

	require.NoError(t, app.Run([]string{"generate", "-c", "custom.conf"}))
	assert.True(t, ran)
	assert.Equal(t, "custom.conf", config)
}

func TestRunPropagatesCommandError(t *testing.T) {
	app, _ := testApp()
	boom := errors.New("boom")
	app.AddCommand(&Command{Name: "fail", Run: func([]string) error { return boom }})

	assert.ErrorIs(t, app.Run([]string{"fail"}), boom)
}

func TestCommandHelp(t *testing.T) {
	app, out := testApp()
	var ran bool
	app.AddCommand(&Command{
		Name:  "generate",
		Long:  "Generates the client",
		Usage: "test generate [flags]",
		Flags: []*Flag{{Name: "watch", Short: "w", Usage: "Watch the schema", Value: new(bool)}},
		Run:   func([]string) error { ran = true; return nil },
	})

	require.NoError(t, app.Run([]string{"generate", "--help"}))
	assert.False(t, ran)
	assert.Contains(t, out.String(), "Generates the client")
	assert.Contains(t, out.String(), "-w, --watch\tWatch the schema")
}

package cmd

import (
	"os"
	"sync"
)

// ANSI color codes
const (
	Reset = "\033[0m"
	Gray  = "\033[90m"
	Cyan  = "\033[36m"
	Red   = "\033[31m"
	Green = "\033[32m"
)

var (
	colorOnce    sync.Once
	colorEnabled bool
)

// supportsColor reports whether stdout is a terminal that accepts ANSI codes.
// NO_COLOR (https://no-color.org/) and TERM=dumb turn colors off.
func supportsColor() bool {
	colorOnce.Do(func() {
		if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
			return
		}
		if out != os.Stdout {
			return
		}
		info, err := os.Stdout.Stat()
		colorEnabled = err == nil && info.Mode()&os.ModeCharDevice != 0
	})
	return colorEnabled
}

func paint(color, text string) string {
	if !supportsColor() {
		return text
	}
	return color + text + Reset
}

// Info colors informational text gray
func Info(text string) string { return paint(Gray, text) }

// Name colors table, model and file names cyan
func Name(text string) string { return paint(Cyan, text) }

// Warning colors warnings red
func Warning(text string) string { return paint(Red, text) }

// Success colors success messages green
func Success(text string) string { return paint(Green, text) }

package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

// SetVerbose enables debug-level output.
func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// Debugf logs at debug level; only visible with --verbose.
func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Infof logs at info level.
func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

// Warnf logs at warn level.
func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

// Errorf logs at error level.
func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}

// Successf prints a green confirmation line to stdout.
func Successf(format string, args ...any) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// IsInteractive reports whether stdout is attached to a terminal.
// Interactive selection and paging are skipped when it is not.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

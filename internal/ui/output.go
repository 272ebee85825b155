// Package ui prints status lines and terminal previews.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	boldColor    = color.New(color.Bold)
)

// Success prints a success message
func Success(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, "✓ %s\n", fmt.Sprintf(format, args...))
}

// Error prints an error message
func Error(w io.Writer, format string, args ...any) {
	errorColor.Fprintf(w, "✗ Error: %s\n", fmt.Sprintf(format, args...))
}

// Warning prints a warning message
func Warning(w io.Writer, format string, args ...any) {
	warningColor.Fprintf(w, "⚠ Warning: %s\n", fmt.Sprintf(format, args...))
}

// Info prints an info message
func Info(w io.Writer, format string, args ...any) {
	infoColor.Fprintf(w, "ℹ %s\n", fmt.Sprintf(format, args...))
}

// Bold prints a bold line
func Bold(w io.Writer, format string, args ...any) {
	boldColor.Fprintln(w, fmt.Sprintf(format, args...))
}

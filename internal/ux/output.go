package ux

import (
	"fmt"
	"io"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// Error prints a command error without ending the session.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "%serror:%s %v\n", Red, Reset, err)
}

// Saved prints the path of a written export.
func Saved(w io.Writer, path string) {
	fmt.Fprintf(w, "%s✓ Saved%s %s\n", Green, Reset, path)
}

// Copied prints the clipboard confirmation.
func Copied(w io.Writer) {
	fmt.Fprintf(w, "%s✓ Copied!%s worksheet JSON is on the clipboard\n", Green, Reset)
}

// Prompt returns the interactive prompt for the active tab.
func Prompt(active, total int, label string, copied bool) string {
	mark := ""
	if copied {
		mark = " ✓ copied"
	}
	return fmt.Sprintf("[%d/%d] %s%s> ", active+1, total, label, mark)
}

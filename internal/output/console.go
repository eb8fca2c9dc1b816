// Package output prints the operator-facing console lines.
package output

import (
	"fmt"
	"io"
)

// Console writes status lines to stdout and errors to stderr
type Console struct {
	out       io.Writer
	errOut    io.Writer
	outColors *ColorScheme
	errColors *ColorScheme
}

// NewConsole creates a console. Colors are used only for writers that are
// terminals, and never when noColor is set.
func NewConsole(out, errOut io.Writer, noColor bool) *Console {
	return &Console{
		out:       out,
		errOut:    errOut,
		outColors: schemeFor(out, noColor),
		errColors: schemeFor(errOut, noColor),
	}
}

func schemeFor(w io.Writer, noColor bool) *ColorScheme {
	if noColor || !IsTerminal(w) {
		return NoColorScheme()
	}
	return ForcedColorScheme()
}

// ServerRunning announces the URL the page is served on
func (c *Console) ServerRunning(url string) {
	fmt.Fprintf(c.out, "Server running at %s\n", c.outColors.URL.Sprint(url))
}

// Error reports a fatal error
func (c *Console) Error(err error) {
	fmt.Fprintf(c.errOut, "%s %v\n", c.errColors.Error.Sprint("Error:"), err)
}

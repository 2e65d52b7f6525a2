package runner

import (
	"io"

	"github.com/fatih/color"
)

// Color helpers (shared across all output)
var (
	Bold   = color.New(color.Bold)
	Green  = color.New(color.FgGreen)
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
	Cyan   = color.New(color.FgCyan)
)

func colorFprintln(w io.Writer, c *color.Color, a ...any) {
	_, _ = c.Fprintln(w, a...)
}

func colorFprintf(w io.Writer, c *color.Color, format string, a ...any) {
	_, _ = c.Fprintf(w, format, a...)
}

// Package ui renders diagnostics for idgen on stderr. Standard output is
// reserved for command results, so every Printer method writes to the
// diagnostic stream.
package ui

import (
	"fmt"
	"io"

	"github.com/papapumpkin/idgen/internal/ansi"
	"github.com/papapumpkin/idgen/internal/traceid"
)

// Printer writes styled diagnostics.
type Printer struct {
	w       io.Writer
	verbose bool
}

// NewWriter returns a Printer writing to w.
func NewWriter(w io.Writer, verbose bool) *Printer {
	return &Printer{w: w, verbose: verbose}
}

// Usage prints the one-line invocation synopsis.
func (p *Printer) Usage(synopsis string) {
	fmt.Fprintf(p.w, "Usage: %s\n", synopsis)
}

// Error prints a failure.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, ansi.Red+ansi.Bold+"error: "+ansi.Reset+"%s\n", msg)
}

// Warn prints a non-fatal problem.
func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.w, ansi.Yellow+ansi.Bold+"warning: "+ansi.Reset+"%s\n", msg)
}

// Info prints a detail line when verbose output is enabled.
func (p *Printer) Info(msg string) {
	if !p.verbose {
		return
	}
	fmt.Fprintf(p.w, ansi.Dim+"%s"+ansi.Reset+"\n", msg)
}

// Issued reports, in verbose mode, the counter transition behind id.
func (p *Printer) Issued(id traceid.ID, path string) {
	if !p.verbose {
		return
	}
	fmt.Fprintf(p.w, ansi.Green+"✓ issued"+ansi.Reset+" %s "+ansi.Dim+"(next %d → %s)"+ansi.Reset+"\n",
		id, id.Counter+1, path)
}

// Package console prints user-facing progress and results.
//
// Progress lines go to the error stream and are gated by the verbosity level;
// results go to the output stream unconditionally. Styling is resolved by a
// lipgloss renderer bound to each writer, so writers that are not terminals
// receive plain text.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Verbosity thresholds.
const (
	LevelNormal  = 1
	LevelVerbose = 2
)

// Printer writes styled, verbosity-gated messages.
type Printer struct {
	out       io.Writer
	err       io.Writer
	verbosity int
	styles    styles
}

// NewPrinter returns a Printer writing results to out and everything else to
// errOut.
func NewPrinter(out, errOut io.Writer, verbosity int) *Printer {
	return &Printer{
		out:       out,
		err:       errOut,
		verbosity: verbosity,
		styles:    newStyles(lipgloss.NewRenderer(errOut)),
	}
}

// Verbosity returns the configured verbosity level.
func (p *Printer) Verbosity() int {
	return p.verbosity
}

// Step announces an operation about to start. Shown at verbosity ≥ 2.
func (p *Printer) Step(format string, args ...any) {
	if p.verbosity < LevelVerbose {
		return
	}
	p.line(p.err, p.styles.step.Render("»"), format, args...)
}

// Done reports a completed operation. Shown at verbosity ≥ 1.
func (p *Printer) Done(format string, args ...any) {
	if p.verbosity < LevelNormal {
		return
	}
	p.line(p.err, p.styles.done.Render("✓"), format, args...)
}

// Warn reports a non-fatal anomaly. Shown at verbosity ≥ 1.
func (p *Printer) Warn(format string, args ...any) {
	if p.verbosity < LevelNormal {
		return
	}
	p.line(p.err, p.styles.warn.Render("!"), format, args...)
}

// Info prints an unprefixed informational line. Shown at verbosity ≥ 1.
func (p *Printer) Info(format string, args ...any) {
	if p.verbosity < LevelNormal {
		return
	}
	fmt.Fprintf(p.err, format+"\n", args...)
}

// Result prints command output to the output stream regardless of verbosity.
func (p *Printer) Result(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Error prints err as "error: <message>" regardless of verbosity.
func (p *Printer) Error(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(p.err, "%s %s\n", p.styles.error.Render("error:"), err)
}

func (p *Printer) line(w io.Writer, prefix, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

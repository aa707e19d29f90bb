// Package console prints the fetcher's human-readable progress messages.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes emoji-coded status lines. Colors are applied only when
// the color package detects a terminal.
type Printer struct {
	w       io.Writer
	bold    *color.Color
	success *color.Color
	warning *color.Color
	failure *color.Color
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{
		w:       w,
		bold:    color.New(color.Bold),
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed),
	}
}

// Writer returns the underlying writer for plain table output.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Printf writes an unstyled message.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Heading writes a bold line.
func (p *Printer) Heading(format string, args ...any) {
	p.bold.Fprintf(p.w, format, args...)
	fmt.Fprintln(p.w)
}

// Success writes an indented green line.
func (p *Printer) Success(format string, args ...any) {
	p.line(p.success, format, args...)
}

// Warn writes an indented yellow line.
func (p *Printer) Warn(format string, args ...any) {
	p.line(p.warning, format, args...)
}

// Fail writes an indented red line.
func (p *Printer) Fail(format string, args ...any) {
	p.line(p.failure, format, args...)
}

func (p *Printer) line(c *color.Color, format string, args ...any) {
	fmt.Fprint(p.w, "   ")
	c.Fprintf(p.w, format, args...)
	fmt.Fprintln(p.w)
}

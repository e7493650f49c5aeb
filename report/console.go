package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Console prints lifecycle events as an indented, aligned tree with one
// header per context and one result line per unit.
type Console struct {
	out   io.Writer
	width int

	pass *color.Color
	fail *color.Color
	head *color.Color
	diag *color.Color
}

// NewConsole creates a Console writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{
		out:  out,
		pass: color.New(color.FgGreen),
		fail: color.New(color.FgRed),
		head: color.New(color.FgCyan),
		diag: color.New(color.FgYellow),
	}
}

// ContextStarted prints the context header and remembers the alignment
// width for the unit lines that follow.
func (c *Console) ContextStarted(name string, width int) {
	c.width = width
	c.head.Fprintf(c.out, "%s...\n", name)
}

// UnitResult prints one aligned pass/fail line, followed by the failure
// diagnostics if there are any.
func (c *Console) UnitResult(r UnitResult) {
	fmt.Fprintf(c.out, "  %-*s", c.width, Humanize(r.Unit))
	if r.Passed {
		c.pass.Fprintln(c.out, "ok")
	} else {
		c.fail.Fprintln(c.out, "FAILED")
	}
	for _, d := range r.Diagnostics {
		c.diag.Fprintf(c.out, "    %s\n", d)
	}
}

// ContextFinished prints the context's aggregate status.
func (c *Console) ContextFinished(name string, passed bool) {
	if passed {
		c.pass.Fprintln(c.out, "  succeeded")
	} else {
		c.fail.Fprintln(c.out, "  failed")
	}
}

// ContextNotFound reports a requested context that has no registrations.
func (c *Console) ContextNotFound(name string) {
	c.fail.Fprintf(c.out, "%s... not found\n", name)
}

package cli

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"utest"
	"utest/internal/registry"
	"utest/report"
)

// ListCommand handles the list command.
type ListCommand struct {
	engine *utest.Engine
	filter *registry.Filter
	flags  *Flags
	out    io.Writer
}

// NewListCommand creates a new ListCommand.
func NewListCommand(engine *utest.Engine, filter *registry.Filter, flags *Flags) *ListCommand {
	return &ListCommand{engine: engine, filter: filter, flags: flags, out: os.Stdout}
}

// Execute runs the command.
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	reg := lc.engine.Registry()
	names := lc.filter.FilterNames(reg, lc.flags.Filter)
	if len(names) == 0 {
		color.New(color.FgYellow).Fprintln(lc.out, "No contexts found")
		return nil
	}

	head := color.New(color.FgCyan)
	unit := color.New(color.FgYellow)
	green := color.New(color.FgGreen)

	green.Fprintf(lc.out, "Found %d context(s):\n", len(names))
	for i, name := range names {
		c := reg.Find(name)
		last := i == len(names)-1
		if last {
			head.Fprintf(lc.out, "└── %s\n", c.Name)
		} else {
			head.Fprintf(lc.out, "├── %s\n", c.Name)
		}
		if !lc.flags.Units {
			continue
		}
		for j, u := range c.Units {
			prefix := "│   ├── "
			switch {
			case last && j == len(c.Units)-1:
				prefix = "    └── "
			case last:
				prefix = "    ├── "
			case j == len(c.Units)-1:
				prefix = "│   └── "
			}
			unit.Fprintf(lc.out, "%s%s\n", prefix, report.Humanize(u.Name))
		}
	}
	return nil
}

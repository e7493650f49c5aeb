package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"utest"
	"utest/internal/registry"
	"utest/report"
)

// RunCommand handles the run command.
type RunCommand struct {
	engine   *utest.Engine
	filter   *registry.Filter
	flags    *Flags
	exitCode int
}

// NewRunCommand creates a new RunCommand.
func NewRunCommand(engine *utest.Engine, filter *registry.Filter, flags *Flags) *RunCommand {
	return &RunCommand{engine: engine, filter: filter, flags: flags}
}

// ExitCode returns the exit code of the last Execute: 0 for a fully passing
// run, 1 otherwise.
func (rc *RunCommand) ExitCode() int {
	return rc.exitCode
}

// Execute runs the command. Test failures surface through ExitCode, not as
// an error; the returned error is reserved for operational problems.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := rc.engine.Config()
	quiet := rc.flags.Quiet || cfg.Quiet
	if rc.flags.NoColor || cfg.NoColor {
		color.NoColor = true
	}

	reg := rc.engine.Registry()
	names := args
	runAll := len(args) == 0
	if rc.flags.Filter != "" {
		names = rc.filter.FilterNames(reg, rc.flags.Filter)
		runAll = false
		if len(names) == 0 {
			if !quiet {
				color.Yellow("No contexts match %q", rc.flags.Filter)
			}
			rc.exitCode = 0
			return nil
		}
	}

	var reporters report.Multi
	if !quiet {
		reporters = append(reporters, report.NewConsole(os.Stdout))
	}
	var progress *report.Progress
	if rc.flags.Progress || cfg.Progress {
		progress = report.NewProgress(rc.unitTotal(reg, names, runAll))
		reporters = append(reporters, progress)
	}
	collector := report.NewCollector()
	reporters = append(reporters, collector)

	if runAll {
		rc.exitCode = rc.engine.RunAllWith(reporters)
	} else {
		rc.exitCode = rc.engine.RunNamedWith(reporters, names)
	}
	if progress != nil {
		progress.Finish()
	}

	if rc.flags.Review && len(collector.Failures()) > 0 {
		return NewReviewer().View(collector.Failures())
	}
	return nil
}

// unitTotal counts the units the selection is expected to run, for sizing
// the progress bar. Unknown names count zero; duplicated names count twice.
func (rc *RunCommand) unitTotal(reg *registry.Registry, names []string, runAll bool) int {
	if runAll {
		return reg.UnitCount()
	}
	var total int
	for _, name := range names {
		if c := reg.Find(name); c != nil {
			total += len(c.Units)
		}
	}
	return total
}

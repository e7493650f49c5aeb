// Package cli is an embeddable cobra front end for a binary with compiled-in
// tests: `run` executes registered contexts (all, named or filtered) and
// `list` shows what is registered. The engine never discovers tests from
// disk; everything the commands operate on was registered before Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"utest"
	"utest/internal/registry"
)

// Commands holds all CLI commands.
type Commands struct {
	Run  *RunCommand
	List *ListCommand
}

// NewCommands creates all commands with their dependencies.
func NewCommands(engine *utest.Engine, flags *Flags) *Commands {
	filter := registry.NewFilter()
	return &Commands{
		Run:  NewRunCommand(engine, filter, flags),
		List: NewListCommand(engine, filter, flags),
	}
}

// Register registers all commands with cobra.
func (c *Commands) Register(rootCmd *cobra.Command, flags *Flags) {
	runCmd := &cobra.Command{
		Use:   "run [context...]",
		Short: "Run registered test contexts",
		Long: "Execute registered contexts sequentially. With no arguments every " +
			"context runs in registration order; arguments select contexts by name " +
			"and fix their order (a name listed twice runs twice).",
		RunE: c.Run.Execute,
	}
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Select contexts by wildcard pattern (e.g. 'parser_*' or '*codec*')")
	runCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while units run")
	runCmd.Flags().BoolVar(&flags.Review, "review", false, "Open the interactive failure viewer when the run finishes with failures")
	runCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress per-unit output; only the exit code remains")
	runCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered contexts",
		Long:  "Show every registered context, optionally with its units, without executing anything.",
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Select contexts by wildcard pattern")
	listCmd.Flags().BoolVarP(&flags.Units, "units", "u", false, "List units under each context")
	rootCmd.AddCommand(listCmd)
}

// New returns the root command for an embedding test binary.
func New(engine *utest.Engine) *cobra.Command {
	root, _ := newRoot(engine)
	return root
}

// Main executes the root command against os.Args and returns the process
// exit code: 0 when every selected context passed, 1 otherwise.
func Main(engine *utest.Engine) int {
	root, cmds := newRoot(engine)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return cmds.Run.ExitCode()
}

func newRoot(engine *utest.Engine) (*cobra.Command, *Commands) {
	rootCmd := &cobra.Command{
		Use:   "utest",
		Short: "In-process unit test runner",
		Long:  "Run and inspect the unit tests compiled into this binary.",
	}
	var flags Flags
	cmds := NewCommands(engine, &flags)
	cmds.Register(rootCmd, &flags)
	return rootCmd, cmds
}

package utest

import (
	"os"

	"github.com/fatih/color"

	"utest/internal/config"
	"utest/internal/executor"
	"utest/internal/registry"
	"utest/report"
)

// Engine bundles a registry with the configuration used to run it. Most
// programs use the process-wide default engine through the package-level
// functions; constructing engines explicitly is for embedders that want to
// inject their own instance instead of sharing global state.
//
// Registration and execution are assumed to happen on a single goroutine,
// matching the register-before-run lifecycle; the engine takes no locks.
type Engine struct {
	cfg *config.Config
	reg *registry.Registry
}

// New creates an engine configured from the environment (see the
// UTEST_* variables and the optional .env file).
func New() *Engine {
	return newEngine(config.Load())
}

func newEngine(cfg *config.Config) *Engine {
	return &Engine{cfg: cfg, reg: registry.New(cfg.Padding)}
}

// Register adds a unit under the named context, creating the context on
// first use. Always returns true so it can seed a package-level
// `var _ = ...` initializer.
func (e *Engine) Register(fn func(*T), unitName, contextName string, mustPass bool) bool {
	e.reg.RegisterUnit(contextName, registry.Unit{
		Name:     unitName,
		Run:      func() registry.Outcome { return runBody(fn) },
		MustPass: mustPass,
	})
	return true
}

// RegisterHooks sets the named context's setup and teardown hooks, creating
// the context if needed. Either hook may be nil; an absent hook counts as
// success. Hooks run once per context execution, teardown unconditionally.
func (e *Engine) RegisterHooks(contextName string, setup, teardown func() bool) {
	c := e.reg.FindOrCreate(contextName)
	c.OnSetup = setup
	c.OnTeardown = teardown
}

// RunAll runs every registered context in first-seen order and returns the
// process exit code: 0 if everything succeeded, 1 otherwise.
func (e *Engine) RunAll() int {
	return e.RunAllWith(e.defaultReporter())
}

// RunNamed runs the named contexts in the given order (a name listed twice
// runs twice) and returns the exit code. An unknown name is reported and
// counts as a failure.
func (e *Engine) RunNamed(names ...string) int {
	return e.RunNamedWith(e.defaultReporter(), names)
}

// RunAllWith is RunAll with a caller-supplied reporter.
func (e *Engine) RunAllWith(rep report.Reporter) int {
	return executor.New(e.reg, rep).RunAll()
}

// RunNamedWith is RunNamed with a caller-supplied reporter.
func (e *Engine) RunNamedWith(rep report.Reporter, names []string) int {
	return executor.New(e.reg, rep).RunNamed(names)
}

// Registry exposes the engine's registry to in-module collaborators such as
// the cli package.
func (e *Engine) Registry() *registry.Registry {
	return e.reg
}

// Config returns the engine's configuration.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

func (e *Engine) defaultReporter() report.Reporter {
	if e.cfg.Quiet {
		return report.Nop{}
	}
	if e.cfg.NoColor {
		color.NoColor = true
	}
	return report.NewConsole(os.Stdout)
}

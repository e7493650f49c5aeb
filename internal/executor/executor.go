// Package executor runs registered contexts sequentially and reduces their
// results to a process exit code.
package executor

import (
	"utest/internal/registry"
	"utest/report"
)

// Executor pulls contexts from a registry, runs them and emits lifecycle
// events to a reporter. Execution is synchronous and single-threaded; the
// only short-circuit is a must-pass unit failure, which aborts the remaining
// units of its own context and nothing else.
type Executor struct {
	reg *registry.Registry
	rep report.Reporter
}

// New creates an Executor over the given registry and reporter.
func New(reg *registry.Registry, rep report.Reporter) *Executor {
	if rep == nil {
		rep = report.Nop{}
	}
	return &Executor{reg: reg, rep: rep}
}

// RunAll runs every registered context in first-seen order. Every context is
// attempted regardless of earlier failures. Returns 0 if all contexts
// succeeded, 1 otherwise.
func (e *Executor) RunAll() int {
	status := true
	for _, c := range e.reg.Contexts() {
		if !e.runContext(c) {
			status = false
		}
	}
	return exitCode(status)
}

// RunNamed runs the named contexts in the caller's order. Duplicates are
// honored: a context named twice runs twice. An unresolvable name is
// reported and counted as a failure, and processing continues with the next
// name. Returns 0 only if every name resolved and every run succeeded.
func (e *Executor) RunNamed(names []string) int {
	status := true
	for _, name := range names {
		c := e.reg.Find(name)
		if c == nil {
			e.rep.ContextNotFound(name)
			status = false
			continue
		}
		if !e.runContext(c) {
			status = false
		}
	}
	return exitCode(status)
}

// runContext drives one context through setup, units and teardown. A setup
// failure degrades the aggregate status but does not gate unit execution;
// teardown always runs.
func (e *Executor) runContext(c *registry.Context) bool {
	status := true
	e.rep.ContextStarted(c.Name, c.DisplayWidth)
	if c.OnSetup != nil && !c.OnSetup() {
		status = false
	}
	if !e.runUnits(c) {
		status = false
	}
	if c.OnTeardown != nil && !c.OnTeardown() {
		status = false
	}
	e.rep.ContextFinished(c.Name, status)
	return status
}

// runUnits runs the context's units in registration order. A failing
// must-pass unit stops the iteration; the skipped units do not run and emit
// no events.
func (e *Executor) runUnits(c *registry.Context) bool {
	status := true
	for _, u := range c.Units {
		out := u.Run()
		e.rep.UnitResult(report.UnitResult{
			Context:     c.Name,
			Unit:        u.Name,
			Passed:      out.Passed,
			MustPass:    u.MustPass,
			Asserts:     out.Asserts,
			Diagnostics: out.Diagnostics,
		})
		if !out.Passed {
			status = false
			if u.MustPass {
				break
			}
		}
	}
	return status
}

func exitCode(ok bool) int {
	if ok {
		return 0
	}
	return 1
}

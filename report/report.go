// Package report defines the reporter boundary of the test engine and ships
// the built-in sinks: a colored console reporter, a progress-bar reporter and
// a failure collector. Reporters are purely observational; nothing in the
// engine's control flow or aggregate status depends on them.
package report

// UnitResult describes the outcome of one executed unit.
type UnitResult struct {
	Context     string
	Unit        string
	Passed      bool
	MustPass    bool
	Asserts     uint64
	Diagnostics []string
}

// Reporter receives lifecycle events while contexts execute.
type Reporter interface {
	// ContextStarted is emitted before a context's setup hook runs. width
	// is the context's display width for column alignment.
	ContextStarted(name string, width int)
	// UnitResult is emitted once per executed unit. Units skipped by a
	// must-pass failure produce no event.
	UnitResult(r UnitResult)
	// ContextFinished is emitted after teardown with the context's final
	// aggregate status.
	ContextFinished(name string, passed bool)
	// ContextNotFound is emitted when a requested context name is not
	// registered.
	ContextNotFound(name string)
}

// Nop is a Reporter that discards every event.
type Nop struct{}

func (Nop) ContextStarted(string, int)   {}
func (Nop) UnitResult(UnitResult)        {}
func (Nop) ContextFinished(string, bool) {}
func (Nop) ContextNotFound(string)       {}

// Multi fans every event out to each reporter in order.
type Multi []Reporter

func (m Multi) ContextStarted(name string, width int) {
	for _, r := range m {
		r.ContextStarted(name, width)
	}
}

func (m Multi) UnitResult(res UnitResult) {
	for _, r := range m {
		r.UnitResult(res)
	}
}

func (m Multi) ContextFinished(name string, passed bool) {
	for _, r := range m {
		r.ContextFinished(name, passed)
	}
}

func (m Multi) ContextNotFound(name string) {
	for _, r := range m {
		r.ContextNotFound(name)
	}
}

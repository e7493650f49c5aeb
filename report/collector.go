package report

// Collector records unit failures and unresolvable context names so they can
// be inspected after a run, e.g. by the interactive review screen.
type Collector struct {
	failures []UnitResult
	missing  []string
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) ContextStarted(string, int) {}

// UnitResult keeps failed results, in execution order.
func (c *Collector) UnitResult(r UnitResult) {
	if !r.Passed {
		c.failures = append(c.failures, r)
	}
}

func (c *Collector) ContextFinished(string, bool) {}

// ContextNotFound records the unresolvable name.
func (c *Collector) ContextNotFound(name string) {
	c.missing = append(c.missing, name)
}

// Failures returns the failed unit results in the order they occurred.
func (c *Collector) Failures() []UnitResult {
	return c.failures
}

// Missing returns the context names that could not be resolved.
func (c *Collector) Missing() []string {
	return c.missing
}

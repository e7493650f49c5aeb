package registry

// Unit represents a single registered test: a display name, the runnable
// body and the must-pass policy flag.
type Unit struct {
	Name     string
	Run      func() Outcome
	MustPass bool // a failure aborts the remaining units of the context
}

// Outcome captures one execution of a unit's body.
type Outcome struct {
	Passed      bool
	Asserts     uint64
	Diagnostics []string
}

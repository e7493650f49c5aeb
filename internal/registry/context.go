package registry

// Context is a named, ordered group of units, conventionally one group per
// source file. A context is created lazily on first registration under its
// name and lives for the rest of the process.
type Context struct {
	Name       string
	Units      []Unit
	OnSetup    func() bool
	OnTeardown func() bool

	// DisplayWidth is the longest unit name registered so far plus padding.
	// Reporters use it to align result columns; it never decreases.
	DisplayWidth int
}

// Append adds a unit to the end of the context's run order and widens
// DisplayWidth if needed. Duplicate names are permitted; both run.
func (c *Context) Append(u Unit, padding int) {
	c.Units = append(c.Units, u)
	if w := len(u.Name) + padding; w > c.DisplayWidth {
		c.DisplayWidth = w
	}
}

// Package registry stores registered test units grouped into named contexts,
// preserving first-seen context order and per-context registration order.
package registry

// Registry is the process-wide store of contexts. Registration and execution
// are assumed to happen on a single goroutine, so no locking is done here.
type Registry struct {
	contexts []*Context
	// lastTouched caches the most recently looked-up or inserted context.
	// Consecutive registrations overwhelmingly target the same context, so
	// this turns the common lookup into a single string compare.
	lastTouched *Context
	padding     int
}

// New returns an empty registry. padding is added to unit name lengths when
// tracking a context's DisplayWidth.
func New(padding int) *Registry {
	return &Registry{padding: padding}
}

// Find returns the context with the exact given name, or nil. The cache is
// consulted first; on a miss the contexts are scanned in insertion order and
// the cache is updated to the result (nil included).
func (r *Registry) Find(name string) *Context {
	if r.lastTouched != nil && r.lastTouched.Name == name {
		return r.lastTouched
	}
	r.lastTouched = nil
	for _, c := range r.contexts {
		if c.Name == name {
			r.lastTouched = c
			break
		}
	}
	return r.lastTouched
}

// FindOrCreate returns the context with the given name, creating and
// appending an empty one if it does not exist yet.
func (r *Registry) FindOrCreate(name string) *Context {
	if c := r.Find(name); c != nil {
		return c
	}
	c := &Context{Name: name}
	r.contexts = append(r.contexts, c)
	r.lastTouched = c
	return c
}

// RegisterUnit appends a unit to the named context, creating the context on
// first use. Registration cannot fail.
func (r *Registry) RegisterUnit(contextName string, u Unit) {
	r.FindOrCreate(contextName).Append(u, r.padding)
}

// Contexts returns the contexts in first-seen order. The returned slice is
// the registry's own; callers must not reorder it.
func (r *Registry) Contexts() []*Context {
	return r.contexts
}

// Len returns the number of distinct contexts.
func (r *Registry) Len() int {
	return len(r.contexts)
}

// UnitCount returns the total number of registered units across all contexts.
func (r *Registry) UnitCount() int {
	var n int
	for _, c := range r.contexts {
		n += len(c.Units)
	}
	return n
}

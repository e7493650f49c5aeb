package utest

// defaultEngine backs the package-level registration and run functions. It is
// created lazily on first use, mirroring the register-before-run lifecycle:
// everything happens on one goroutine, so no locking is needed.
var defaultEngine *Engine

// Default returns the process-wide engine, creating it on first use.
func Default() *Engine {
	if defaultEngine == nil {
		defaultEngine = New()
	}
	return defaultEngine
}

// Register adds a unit to the default engine under the named context.
// Always returns true, so a test file can self-register before main:
//
//	var _ = utest.Register(body, "parses_empty_input", "parser_test", false)
func Register(fn func(*T), unitName, contextName string, mustPass bool) bool {
	return Default().Register(fn, unitName, contextName, mustPass)
}

// RegisterHooks sets a context's setup and teardown hooks on the default
// engine.
func RegisterHooks(contextName string, setup, teardown func() bool) {
	Default().RegisterHooks(contextName, setup, teardown)
}

// RunAll runs every context registered with the default engine and returns
// the process exit code.
func RunAll() int {
	return Default().RunAll()
}

// RunNamed runs the named contexts of the default engine in the given order
// and returns the process exit code.
func RunNamed(names ...string) int {
	return Default().RunNamed(names...)
}

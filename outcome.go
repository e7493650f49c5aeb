package utest

import (
	"fmt"
	"path/filepath"
	"runtime"

	"utest/internal/registry"
)

// T tracks the outcome of a single unit run. One T is created per execution
// of a unit's body and discarded afterwards; a failed T never becomes
// successful again.
type T struct {
	asserts uint64
	failed  bool
	diags   []string
}

// stopBody aborts the test body after a failed assertion. Recovered by
// runBody, never visible to callers.
type stopBody struct{}

// Assert evaluates one check. It increments the assert count; if cond is
// false it records a diagnostic (assert index, caller position and the
// detail text, conventionally the asserted expression) and stops the test
// body. Remaining assertions in the body are skipped; sibling units are
// unaffected.
func (t *T) Assert(cond bool, detail string) {
	t.asserts++
	if cond {
		return
	}
	t.failed = true
	if _, file, line, ok := runtime.Caller(1); ok {
		t.diags = append(t.diags, fmt.Sprintf("#%d @%s:%d: <<%s>> is false",
			t.asserts, filepath.Base(file), line, detail))
	} else {
		t.diags = append(t.diags, fmt.Sprintf("#%d: <<%s>> is false", t.asserts, detail))
	}
	panic(stopBody{})
}

// Fail marks the run failed without stopping the body.
func (t *T) Fail() {
	t.failed = true
}

// AssertCount returns the number of assertions evaluated so far.
func (t *T) AssertCount() uint64 {
	return t.asserts
}

// Succeeded reports whether no assertion has failed so far.
func (t *T) Succeeded() bool {
	return !t.failed
}

// Failed reports whether the run has failed.
func (t *T) Failed() bool {
	return t.failed
}

// runBody executes a test body with a fresh T and converts the result into
// an outcome. A panic out of the body (other than the assertion stop) is
// recorded as a failure rather than crashing the run.
func runBody(fn func(*T)) registry.Outcome {
	t := &T{}
	func() {
		defer func() {
			switch r := recover().(type) {
			case nil, stopBody:
			default:
				t.failed = true
				t.diags = append(t.diags, fmt.Sprintf("panic: %v", r))
			}
		}()
		fn(t)
	}()
	return registry.Outcome{
		Passed:      t.Succeeded(),
		Asserts:     t.asserts,
		Diagnostics: t.diags,
	}
}

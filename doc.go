// Package utest is a minimal in-process unit-test engine for applications
// that compile their tests into the binary. Tests register themselves into
// named contexts (conventionally one context per source file) and a single
// entry point runs some or all contexts, reducing the results to a process
// exit code.
//
// A test is a plain function taking a *T:
//
//	var _ = utest.Register(func(t *utest.T) {
//		sum := Add(2, 2)
//		t.Assert(sum == 4, "sum == 4")
//	}, "adds_two_numbers", "calc_test", false)
//
// The blank-var idiom registers the test before main starts. Registration
// order across files is whatever the runtime's initialization order happens
// to be, so contexts are created lazily on first use rather than declared up
// front. Explicit registration from an init function or a setup phase works
// the same way.
//
// Running:
//
//	os.Exit(utest.RunAll())             // every context, first-seen order
//	os.Exit(utest.RunNamed("calc_test")) // a selection, caller's order
//
// A unit registered with mustPass set aborts the remaining units of its
// context when it fails; sibling contexts still run. For an embeddable
// command-line front end see the cli package.
package utest

package utest

import (
	"fmt"
	"testing"

	"utest/internal/config"
	"utest/report"
)

// eventLog records reporter events in order.
type eventLog struct {
	events []string
}

func (l *eventLog) ContextStarted(name string, width int) {
	l.events = append(l.events, "start:"+name)
}

func (l *eventLog) UnitResult(r report.UnitResult) {
	l.events = append(l.events, fmt.Sprintf("unit:%s:%v", r.Unit, r.Passed))
}

func (l *eventLog) ContextFinished(name string, passed bool) {
	l.events = append(l.events, fmt.Sprintf("end:%s:%v", name, passed))
}

func (l *eventLog) ContextNotFound(name string) {
	l.events = append(l.events, "notfound:"+name)
}

func testEngine() *Engine {
	return newEngine(config.New())
}

func pass(t *T) { t.Assert(true, "true") }
func fail(t *T) { t.Assert(false, "false") }

func TestEngine_RegisterReturnsTrue(t *testing.T) {
	e := testEngine()
	if !e.Register(pass, "unit", "ctx", false) {
		t.Error("Register must always return true")
	}
}

func TestEngine_MustPassScenario(t *testing.T) {
	// u1 passes, u2 fails with must-pass set, u3 must never run.
	e := testEngine()
	var u3Ran bool
	e.Register(pass, "u1", "C", false)
	e.Register(fail, "u2", "C", true)
	e.Register(func(t *T) { u3Ran = true }, "u3", "C", false)

	log := &eventLog{}
	if code := e.RunAllWith(log); code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if u3Ran {
		t.Error("u3 ran after a must-pass failure")
	}
	want := []string{"start:C", "unit:u1:true", "unit:u2:false", "end:C:false"}
	if len(log.events) != len(want) {
		t.Fatalf("expected %v, got %v", want, log.events)
	}
	for i := range want {
		if log.events[i] != want[i] {
			t.Errorf("event %d: expected %q, got %q", i, want[i], log.events[i])
		}
	}
}

func TestEngine_RunNamedSelectsAndOrders(t *testing.T) {
	// C2 fails, C1 passes; both attempted in the caller's order.
	e := testEngine()
	e.Register(pass, "p", "C1", false)
	e.Register(fail, "f", "C2", false)

	log := &eventLog{}
	if code := e.RunNamedWith(log, []string{"C2", "C1"}); code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	want := []string{
		"start:C2", "unit:f:false", "end:C2:false",
		"start:C1", "unit:p:true", "end:C1:true",
	}
	for i := range want {
		if log.events[i] != want[i] {
			t.Errorf("event %d: expected %q, got %q", i, want[i], log.events[i])
		}
	}
}

func TestEngine_RunNamedUnknown(t *testing.T) {
	e := testEngine()
	log := &eventLog{}
	if code := e.RunNamedWith(log, []string{"missing"}); code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if len(log.events) != 1 || log.events[0] != "notfound:missing" {
		t.Errorf("expected a not-found event, got %v", log.events)
	}
}

func TestEngine_Hooks(t *testing.T) {
	e := testEngine()
	var order []string
	e.RegisterHooks("C",
		func() bool { order = append(order, "setup"); return true },
		func() bool { order = append(order, "teardown"); return true },
	)
	e.Register(func(t *T) { order = append(order, "unit") }, "u", "C", false)

	if code := e.RunAllWith(report.Nop{}); code != 0 {
		t.Errorf("expected exit 0, got %d", code)
	}
	want := []string{"setup", "unit", "teardown"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("step %d: expected %s, got %s", i, want[i], order[i])
		}
	}
}

func TestEngine_SetupFailureStillRunsUnits(t *testing.T) {
	e := testEngine()
	var unitRan bool
	e.RegisterHooks("C", func() bool { return false }, nil)
	e.Register(func(t *T) { unitRan = true }, "u", "C", false)

	if code := e.RunAllWith(report.Nop{}); code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if !unitRan {
		t.Error("setup failure must not gate unit execution")
	}
}

func TestEngine_DiagnosticsReachReporter(t *testing.T) {
	e := testEngine()
	e.Register(func(t *T) {
		t.Assert(2+2 == 5, "2+2 == 5")
	}, "arithmetic", "C", false)

	collector := report.NewCollector()
	e.RunAllWith(collector)
	failures := collector.Failures()
	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(failures))
	}
	if failures[0].Asserts != 1 {
		t.Errorf("expected 1 assert, got %d", failures[0].Asserts)
	}
	if len(failures[0].Diagnostics) != 1 {
		t.Errorf("expected 1 diagnostic, got %v", failures[0].Diagnostics)
	}
}

func TestDefault_SharedAcrossPackageFunctions(t *testing.T) {
	old := defaultEngine
	defaultEngine = nil
	t.Cleanup(func() { defaultEngine = old })

	if !Register(pass, "u", "C", false) {
		t.Error("Register must return true")
	}
	if Default().Registry().Len() != 1 {
		t.Error("package-level Register did not hit the default engine")
	}
	if Default() != Default() {
		t.Error("Default must return the same engine")
	}
	if code := Default().RunAllWith(report.Nop{}); code != 0 {
		t.Errorf("expected exit 0, got %d", code)
	}
}

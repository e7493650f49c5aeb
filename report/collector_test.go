package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollector(t *testing.T) {
	c := NewCollector()

	c.ContextStarted("ctx", 8)
	c.UnitResult(UnitResult{Context: "ctx", Unit: "passes", Passed: true})
	c.UnitResult(UnitResult{Context: "ctx", Unit: "fails_first", Passed: false})
	c.UnitResult(UnitResult{Context: "ctx", Unit: "fails_second", Passed: false})
	c.ContextFinished("ctx", false)
	c.ContextNotFound("ghost")

	failures := c.Failures()
	assert.Len(t, failures, 2)
	assert.Equal(t, "fails_first", failures[0].Unit)
	assert.Equal(t, "fails_second", failures[1].Unit)
	assert.Equal(t, []string{"ghost"}, c.Missing())
}

func TestMulti_FansOut(t *testing.T) {
	a := NewCollector()
	b := NewCollector()
	m := Multi{a, b}

	m.UnitResult(UnitResult{Unit: "broken", Passed: false})
	m.ContextNotFound("gone")

	assert.Len(t, a.Failures(), 1)
	assert.Len(t, b.Failures(), 1)
	assert.Equal(t, []string{"gone"}, a.Missing())
	assert.Equal(t, []string{"gone"}, b.Missing())
}

package depscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClosure(t *testing.T, deps DependencyGraph) *Closure {
	t.Helper()
	closure, err := NewClosure(deps)
	require.NoError(t, err)
	return closure
}

func TestClosure_AcyclicChain(t *testing.T) {
	closure := newClosure(t, DependencyGraph{
		"a.c": {"b.h"},
		"b.h": {"c.h"},
		"c.h": nil,
	})

	result, err := closure.Of("a.c")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.h", "c.h"}, result)
}

func TestClosure_ExcludesStartWithoutCycle(t *testing.T) {
	closure := newClosure(t, DependencyGraph{
		"a.c": {"b.h"},
		"b.h": nil,
	})

	result, err := closure.Of("a.c")
	require.NoError(t, err)
	assert.NotContains(t, result, "a.c")
}

func TestClosure_CycleTerminatesAndDeduplicates(t *testing.T) {
	closure := newClosure(t, DependencyGraph{
		"a.h": {"b.h"},
		"b.h": {"a.h"},
	})

	result, err := closure.Of("a.h")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.h", "b.h"}, result)
}

func TestClosure_DiamondDeduplicates(t *testing.T) {
	closure := newClosure(t, DependencyGraph{
		"a.c": {"b.h", "c.h"},
		"b.h": {"d.h"},
		"c.h": {"d.h"},
		"d.h": nil,
	})

	result, err := closure.Of("a.c")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.h", "c.h", "d.h"}, result)
}

func TestClosure_NoDependencies(t *testing.T) {
	closure := newClosure(t, DependencyGraph{
		"a.c": nil,
	})

	result, err := closure.Of("a.c")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestClosure_UnknownFile(t *testing.T) {
	closure := newClosure(t, DependencyGraph{
		"a.c": {"b.h"},
		"b.h": nil,
	})

	result, err := closure.Of("never-scanned.c")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestClosure_ResultIsSorted(t *testing.T) {
	closure := newClosure(t, DependencyGraph{
		"a.c": {"z.h", "m.h", "b.h"},
		"z.h": nil,
		"m.h": nil,
		"b.h": nil,
	})

	result, err := closure.Of("a.c")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.h", "m.h", "z.h"}, result)
}

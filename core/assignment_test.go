package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equicut/equicut/core"
)

// TestTimeAssignment covers put/get/touch and the cached maximum.
func TestTimeAssignment(t *testing.T) {
	ta := core.NewTimeAssignment()
	assert.True(t, math.IsInf(ta.MaximumTimestamp(), -1))
	assert.Equal(t, 0, ta.Size())

	c := continuous(t, "c", 1, 0.1, 0)

	require.NoError(t, ta.Put("v", c, 2.5))
	got, err := ta.Get("v", c)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)
	assert.Equal(t, 2.5, ta.MaximumTimestamp())
	assert.True(t, ta.Contains("v", c))
	assert.True(t, ta.ContainsNode("v"))

	// A touched node appears without any contract entry.
	ta.Touch("u")
	assert.True(t, ta.ContainsNode("u"))
	assert.Equal(t, 2, ta.Size())
	assert.Equal(t, []string{"v", "u"}, ta.Nodes())

	_, err = ta.Get("u", c)
	assert.ErrorIs(t, err, core.ErrNoAssignment)
	_, err = ta.Get("w", c)
	assert.ErrorIs(t, err, core.ErrNoAssignment)

	assert.ErrorIs(t, ta.Put("", c, 1), core.ErrEmptyName)
	assert.ErrorIs(t, ta.Put("v", nil, 1), core.ErrNilContract)
	assert.ErrorIs(t, ta.Put("v", c, math.NaN()), core.ErrBadTimestamp)
	assert.ErrorIs(t, ta.Put("v", c, math.Inf(1)), core.ErrBadTimestamp)
}

// TestDebtCutAssignment covers the cut map, the running sum, and the
// no-solution sentinel.
func TestDebtCutAssignment(t *testing.T) {
	dca := core.NewDebtCutAssignment(7.0)
	assert.Equal(t, 7.0, dca.EquilibriumTime())
	assert.False(t, dca.IsNoSolution())
	assert.Equal(t, 0.0, dca.Sum())

	a := continuous(t, "a", 1, 0.1, 0)
	b := continuous(t, "b", 1, 0.1, 0)

	require.NoError(t, dca.Put(a, 1.5))
	require.NoError(t, dca.Put(b, 0.5))
	assert.Equal(t, 2.0, dca.Sum())
	assert.Equal(t, 2, dca.Size())
	assert.Equal(t, []*core.Contract{a, b}, dca.Contracts())

	// Re-putting replaces the previous cut and fixes the sum.
	require.NoError(t, dca.Put(a, 1.0))
	assert.Equal(t, 1.5, dca.Sum())
	assert.Equal(t, 2, dca.Size())

	got, err := dca.Get(a)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
	assert.True(t, dca.Contains(a))

	c := continuous(t, "c", 1, 0.1, 0)
	_, err = dca.Get(c)
	assert.ErrorIs(t, err, core.ErrContractNotFound)
	_, err = dca.Get(nil)
	assert.ErrorIs(t, err, core.ErrNilContract)

	assert.ErrorIs(t, dca.Put(nil, 1), core.ErrNilContract)
	assert.ErrorIs(t, dca.Put(c, -0.1), core.ErrBadDebtCut)
	assert.ErrorIs(t, dca.Put(c, math.NaN()), core.ErrBadDebtCut)
	assert.ErrorIs(t, dca.Put(c, math.Inf(1)), core.ErrBadDebtCut)

	ns := core.NoSolution()
	assert.True(t, ns.IsNoSolution())
	assert.True(t, math.IsInf(ns.EquilibriumTime(), -1))
	assert.Equal(t, 0, ns.Size())
}

// TestSetEpsilon checks the silent clamp on the process-wide
// tolerance.
func TestSetEpsilon(t *testing.T) {
	original := core.Epsilon()
	defer core.SetEpsilon(original)

	core.SetEpsilon(0.01)
	assert.Equal(t, 0.01, core.Epsilon())

	// Out-of-range values leave the previous epsilon in place.
	for _, bad := range []float64{0, -1, 1.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		core.SetEpsilon(bad)
		assert.Equal(t, 0.01, core.Epsilon(), "epsilon must ignore %v", bad)
	}

	assert.True(t, core.EpsilonEquals(1.0, 1.005))
	assert.False(t, core.EpsilonEquals(1.0, 1.05))
}

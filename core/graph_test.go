package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equicut/equicut/core"
)

// continuous is a test helper constructing a continuous contract.
func continuous(t *testing.T, name string, principal, rate, timestamp float64) *core.Contract {
	t.Helper()
	c, err := core.NewContinuousContract(name, principal, rate, timestamp)
	require.NoError(t, err)

	return c
}

// TestGraph_AddNode covers node insertion, lookup, and duplicates.
func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph("g")
	assert.Equal(t, "g", g.Name())

	u, err := g.AddNode("u")
	require.NoError(t, err)
	assert.Equal(t, "u", u.Name())
	assert.True(t, g.Contains("u"))
	assert.False(t, g.Contains("v"))
	assert.Equal(t, 1, g.NodeCount())

	_, err = g.AddNode("u")
	assert.ErrorIs(t, err, core.ErrDuplicateNode)
	_, err = g.AddNode("")
	assert.ErrorIs(t, err, core.ErrEmptyName)

	got, ok := g.Node("u")
	assert.True(t, ok)
	assert.Same(t, u, got)
}

// TestGraph_AddContract verifies incidence mirroring and the cached
// edge, contract, and timestamp aggregates.
func TestGraph_AddContract(t *testing.T) {
	g := core.NewGraph("g")
	_, err := g.AddNode("u")
	require.NoError(t, err)
	_, err = g.AddNode("v")
	require.NoError(t, err)

	c1 := continuous(t, "c1", 1, 0.1, 2.0)
	c2 := continuous(t, "c2", 2, 0.1, 5.0)

	require.NoError(t, g.AddContract("u", "v", c1))
	assert.Equal(t, 1, g.EdgeAmount())
	assert.Equal(t, 1, g.ContractAmount())
	assert.Equal(t, 2.0, g.MaximumTimestamp())

	// A parallel contract on the same pair adds no edge.
	require.NoError(t, g.AddContract("u", "v", c2))
	assert.Equal(t, 1, g.EdgeAmount())
	assert.Equal(t, 2, g.ContractAmount())
	assert.Equal(t, 5.0, g.MaximumTimestamp())

	u, _ := g.Node("u")
	v, _ := g.Node("v")
	assert.Equal(t, []string{"v"}, u.Debtors())
	assert.Equal(t, []string{"u"}, v.Lenders())
	assert.Len(t, u.ContractsTo("v"), 2)
	assert.Len(t, v.ContractsFrom("u"), 2)
	assert.Len(t, u.OutgoingContracts(), 2)
	assert.Len(t, v.IncomingContracts(), 2)
	assert.Empty(t, u.IncomingContracts())
	assert.Equal(t, 5.0, u.MaximumTimestamp())
	assert.Equal(t, 5.0, v.MaximumTimestamp())

	// Unknown parties and nil contracts are rejected.
	assert.ErrorIs(t, g.AddContract("u", "w", c1), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddContract("w", "v", c1), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddContract("u", "v", nil), core.ErrNilContract)
}

// TestGraph_RemoveNode checks that detaching a node restores every
// counter and strips the mirrored incidence.
func TestGraph_RemoveNode(t *testing.T) {
	g := core.NewGraph("g")
	for _, name := range []string{"a", "b", "c"} {
		_, err := g.AddNode(name)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddContract("a", "b", continuous(t, "ab", 10, 0.15, 3)))
	require.NoError(t, g.AddContract("b", "c", continuous(t, "bc", 10, 0.15, 3)))
	require.NoError(t, g.AddContract("c", "a", continuous(t, "ca", 10, 0.15, 3)))

	require.NoError(t, g.RemoveNode("b"))
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeAmount())
	assert.Equal(t, 1, g.ContractAmount())

	a, _ := g.Node("a")
	c, _ := g.Node("c")
	assert.Empty(t, a.Debtors())
	assert.Equal(t, []string{"c"}, a.Lenders())
	assert.Equal(t, []string{"a"}, c.Debtors())
	assert.Empty(t, c.Lenders())

	assert.ErrorIs(t, g.RemoveNode("b"), core.ErrNodeNotFound)
}

// TestGraph_EquityAndEquilibrium covers equity, the equilibrium probe,
// MaxEquity, and TotalFlowAt on a symmetric two-node graph.
func TestGraph_EquityAndEquilibrium(t *testing.T) {
	g := core.NewGraph("g")
	_, err := g.AddNode("u")
	require.NoError(t, err)
	_, err = g.AddNode("v")
	require.NoError(t, err)

	require.NoError(t, g.AddContract("u", "v", continuous(t, "uv", 1, 0.1, 0)))
	require.NoError(t, g.AddContract("v", "u", continuous(t, "vu", 1, 0.1, 0)))

	// Symmetric positions cancel at every time.
	e, err := g.Equity("u", 2.0)
	require.NoError(t, err)
	assert.InDelta(t, 0, e, 1e-12)

	ok, err := g.IsInEquilibriumAt(2.0)
	require.NoError(t, err)
	assert.True(t, ok)

	max, err := g.MaxEquity(2.0)
	require.NoError(t, err)
	assert.InDelta(t, 0, max, 1e-12)

	flow, err := g.TotalFlowAt(2.0)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Exp(0.2), flow, 1e-9)

	_, err = g.Equity("w", 2.0)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestGraph_ApplyDebtCuts_Empty verifies that an empty assignment
// copies the node set but no contracts.
func TestGraph_ApplyDebtCuts_Empty(t *testing.T) {
	g := core.NewGraph("g")
	_, err := g.AddNode("u")
	require.NoError(t, err)
	_, err = g.AddNode("v")
	require.NoError(t, err)
	c := continuous(t, "uv", 1, 0.1, 0)
	require.NoError(t, g.AddContract("u", "v", c))

	ta := core.NewTimeAssignment()
	require.NoError(t, ta.Put("v", c, 1.0))
	ta.Touch("u")

	out, err := g.ApplyDebtCuts(core.NewDebtCutAssignment(2.0), ta)
	require.NoError(t, err)
	assert.Equal(t, g.NodeCount(), out.NodeCount())
	assert.Equal(t, 0, out.ContractAmount())
	assert.Equal(t, 0, out.EdgeAmount())

	_, err = g.ApplyDebtCuts(nil, ta)
	assert.ErrorIs(t, err, core.ErrNilAssignment)
}

// TestGraph_ApplyDebtCuts_ReplacesContracts checks the copied graph
// holds the post-cut contracts.
func TestGraph_ApplyDebtCuts_ReplacesContracts(t *testing.T) {
	g := core.NewGraph("g")
	_, err := g.AddNode("u")
	require.NoError(t, err)
	_, err = g.AddNode("v")
	require.NoError(t, err)
	c := continuous(t, "uv", 10, 0.1, 0)
	require.NoError(t, g.AddContract("u", "v", c))

	ta := core.NewTimeAssignment()
	require.NoError(t, ta.Put("v", c, 2.0))
	ta.Touch("u")

	dca := core.NewDebtCutAssignment(5.0)
	require.NoError(t, dca.Put(c, 4.0))

	out, err := g.ApplyDebtCuts(dca, ta)
	require.NoError(t, err)
	assert.Equal(t, 1, out.ContractAmount())

	u, _ := out.Node("u")
	replaced := u.ContractsTo("v")
	require.Len(t, replaced, 1)
	assert.Equal(t, 2.0, replaced[0].Timestamp())
	value, err := c.Evaluate(2.0)
	require.NoError(t, err)
	assert.InDelta(t, value-4.0, replaced[0].Principal(), 1e-12)
}

// TestGraph_CopyTimeAssignment copies a schedule for the graph's own
// contracts and touches every node.
func TestGraph_CopyTimeAssignment(t *testing.T) {
	g := core.NewGraph("g")
	_, err := g.AddNode("u")
	require.NoError(t, err)
	_, err = g.AddNode("v")
	require.NoError(t, err)
	c := continuous(t, "uv", 1, 0.1, 0)
	require.NoError(t, g.AddContract("u", "v", c))

	ta := core.NewTimeAssignment()
	require.NoError(t, ta.Put("v", c, 1.5))
	ta.Touch("u")

	cp, err := g.CopyTimeAssignment(ta)
	require.NoError(t, err)
	got, err := cp.Get("v", c)
	require.NoError(t, err)
	assert.Equal(t, 1.5, got)
	assert.True(t, cp.ContainsNode("u"))
}

// TestGraph_Describe smoke-tests the textual dump.
func TestGraph_Describe(t *testing.T) {
	g := core.NewGraph("g")
	_, err := g.AddNode("u")
	require.NoError(t, err)
	_, err = g.AddNode("v")
	require.NoError(t, err)
	require.NoError(t, g.AddContract("u", "v", continuous(t, "uv", 1, 0.1, 0)))

	s, err := g.Describe(2.0)
	require.NoError(t, err)
	assert.Contains(t, s, "[Node u]")
	assert.Contains(t, s, "[Node v]")
	assert.Contains(t, s, "uv")
}

// TestGraph_FindWithoutFinder ensures the delegation fails loudly when
// no solver is installed.
func TestGraph_FindWithoutFinder(t *testing.T) {
	g := core.NewGraph("g")
	_, err := g.FindEquilibrialDebtCuts(1.0, core.NewTimeAssignment())
	assert.ErrorIs(t, err, core.ErrNoFinder)
}

// TestTrivialFinder checks the everything-forgiven baseline yields
// equilibrium.
func TestTrivialFinder(t *testing.T) {
	g := core.NewGraph("g")
	_, err := g.AddNode("u")
	require.NoError(t, err)
	_, err = g.AddNode("v")
	require.NoError(t, err)
	c := continuous(t, "uv", 10, 0.2, 0)
	require.NoError(t, g.AddContract("u", "v", c))

	ta := core.NewTimeAssignment()
	require.NoError(t, ta.Put("v", c, 1.0))
	ta.Touch("u")

	g.SetDebtCutFinder(core.TrivialFinder{})
	dca, err := g.FindEquilibrialDebtCuts(3.0, ta)
	require.NoError(t, err)

	value, err := c.Evaluate(1.0)
	require.NoError(t, err)
	got, err := dca.Get(c)
	require.NoError(t, err)
	assert.InDelta(t, value, got, 1e-12)

	out, err := g.ApplyDebtCuts(dca, ta)
	require.NoError(t, err)
	ok, err := out.IsInEquilibriumAt(3.0)
	require.NoError(t, err)
	assert.True(t, ok)
}

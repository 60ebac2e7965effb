package randgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equicut/equicut/core"
	"github.com/equicut/equicut/randgraph"
)

// TestGraph_Deterministic: the same seed reproduces the identical
// instance; a different seed does not.
func TestGraph_Deterministic(t *testing.T) {
	a, err := randgraph.Graph("a", randgraph.WithNodes(6), randgraph.WithSeed(42))
	require.NoError(t, err)
	b, err := randgraph.Graph("b", randgraph.WithNodes(6), randgraph.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, a.NodeCount(), b.NodeCount())
	assert.Equal(t, a.EdgeAmount(), b.EdgeAmount())
	assert.Equal(t, a.ContractAmount(), b.ContractAmount())

	// Contract attributes match pairwise across the two instances.
	aNodes, bNodes := a.Nodes(), b.Nodes()
	for i := range aNodes {
		ac, bc := aNodes[i].OutgoingContracts(), bNodes[i].OutgoingContracts()
		require.Equal(t, len(ac), len(bc))
		for j := range ac {
			assert.True(t, ac[j].EqualsWithin(bc[j], 0), "contract %s differs", ac[j].Name())
		}
	}

	c, err := randgraph.Graph("c", randgraph.WithNodes(6), randgraph.WithSeed(43))
	require.NoError(t, err)
	same := a.ContractAmount() == c.ContractAmount()
	if same {
		// Counts may coincide; attributes almost surely do not.
		equal := true
		cNodes := c.Nodes()
		for i := range aNodes {
			ac, cc := aNodes[i].OutgoingContracts(), cNodes[i].OutgoingContracts()
			if len(ac) != len(cc) {
				equal = false
				break
			}
			for j := range ac {
				if !ac[j].EqualsWithin(cc[j], 1e-9) {
					equal = false
					break
				}
			}
		}
		assert.False(t, equal, "different seeds must differ")
	}
}

// TestGraph_EdgeProbabilityExtremes: probability 0 yields no
// contracts, probability 1 the full pair set.
func TestGraph_EdgeProbabilityExtremes(t *testing.T) {
	empty, err := randgraph.Graph("none", randgraph.WithNodes(5), randgraph.WithEdgeProbability(0))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.ContractAmount())

	full, err := randgraph.Graph("all", randgraph.WithNodes(5), randgraph.WithEdgeProbability(1))
	require.NoError(t, err)
	assert.Equal(t, 5*4, full.ContractAmount(), "every ordered pair of distinct nodes")
	assert.Equal(t, 5*4, full.EdgeAmount())
}

// TestGraph_ContinuousShareExtremes pins the contract kind mix.
func TestGraph_ContinuousShareExtremes(t *testing.T) {
	allCont, err := randgraph.Graph("cont",
		randgraph.WithNodes(4),
		randgraph.WithEdgeProbability(1),
		randgraph.WithContinuousShare(1),
	)
	require.NoError(t, err)
	for _, n := range allCont.Nodes() {
		for _, c := range n.OutgoingContracts() {
			assert.True(t, c.IsContinuous())
		}
	}

	allPeriodic, err := randgraph.Graph("per",
		randgraph.WithNodes(4),
		randgraph.WithEdgeProbability(1),
		randgraph.WithContinuousShare(0),
	)
	require.NoError(t, err)
	for _, n := range allPeriodic.Nodes() {
		for _, c := range n.OutgoingContracts() {
			assert.False(t, c.IsContinuous())
		}
	}
}

// TestTimeAssignment_Complete: the schedule covers every node and
// every contract, with payments after every admission.
func TestTimeAssignment_Complete(t *testing.T) {
	g, err := randgraph.Graph("g", randgraph.WithNodes(7), randgraph.WithSeed(5))
	require.NoError(t, err)

	ta, err := randgraph.TimeAssignment(g, 5, 2.5)
	require.NoError(t, err)

	for _, node := range g.Nodes() {
		assert.True(t, ta.ContainsNode(node.Name()))
		for _, debtor := range node.Debtors() {
			for _, c := range node.ContractsTo(debtor) {
				payTime, err := ta.Get(debtor, c)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, payTime, c.Timestamp())
				assert.LessOrEqual(t, payTime, g.MaximumTimestamp()+2.5)
			}
		}
	}
}

// TestTimeAssignment_Validation covers the argument guards.
func TestTimeAssignment_Validation(t *testing.T) {
	_, err := randgraph.TimeAssignment(nil, 1, 1)
	assert.ErrorIs(t, err, randgraph.ErrNilGraph)

	g := core.NewGraph("g")
	_, err = randgraph.TimeAssignment(g, 1, 0)
	assert.ErrorIs(t, err, randgraph.ErrBadHorizon)
	_, err = randgraph.TimeAssignment(g, 1, -2)
	assert.ErrorIs(t, err, randgraph.ErrBadHorizon)
}

// TestOptions_IgnoreInvalid: out-of-range options keep defaults.
func TestOptions_IgnoreInvalid(t *testing.T) {
	g, err := randgraph.Graph("g",
		randgraph.WithNodes(0),
		randgraph.WithEdgeProbability(2),
		randgraph.WithContinuousShare(-1),
		randgraph.WithPrincipalRange(-1, 0),
		randgraph.WithRateRange(5, 1),
		randgraph.WithPeriodsRange(0, 0),
		randgraph.WithMaxTimestamp(-3),
	)
	require.NoError(t, err)
	assert.Equal(t, randgraph.DefaultNodes, g.NodeCount())
}

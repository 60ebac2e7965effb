package randgraph

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/equicut/equicut/core"
)

// ErrBadHorizon indicates a non-positive payment horizon.
var ErrBadHorizon = errors.New("randgraph: horizon must be positive")

// ErrNilGraph indicates TimeAssignment received a nil graph.
var ErrNilGraph = errors.New("randgraph: graph is nil")

// Graph generates a random financial graph. Node names are "n0",
// "n1", ...; contract names encode the lender→debtor pair. The same
// options always produce the identical graph.
func Graph(name string, opts ...Option) (*core.Graph, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := rand.New(rand.NewSource(cfg.seed))

	g := core.NewGraph(name)
	for i := 0; i < cfg.nodes; i++ {
		if _, err := g.AddNode(nodeName(i)); err != nil {
			return nil, err
		}
	}

	var i, j int
	for i = 0; i < cfg.nodes; i++ {
		for j = 0; j < cfg.nodes; j++ {
			if i == j || rng.Float64() >= cfg.edgeProbability {
				continue
			}
			c, err := randomContract(rng, &cfg, i, j)
			if err != nil {
				return nil, err
			}
			if err = g.AddContract(nodeName(i), nodeName(j), c); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// TimeAssignment schedules a payment for every contract of g,
// uniformly between the graph's maximum timestamp and horizon beyond
// it, and touches every node so the schedule is solver-complete.
// The horizon must be positive.
func TimeAssignment(g *core.Graph, seed int64, horizon float64) (*core.TimeAssignment, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if horizon <= 0 {
		return nil, ErrBadHorizon
	}
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	// An empty graph has maximum timestamp -Inf; anchor at zero then.
	base := g.MaximumTimestamp()
	if g.ContractAmount() == 0 {
		base = 0
	}

	ta := core.NewTimeAssignment()
	for _, node := range g.Nodes() {
		ta.Touch(node.Name())
	}
	for _, node := range g.Nodes() {
		for _, debtor := range node.Debtors() {
			for _, c := range node.ContractsTo(debtor) {
				payTime := base + rng.Float64()*horizon
				if err := ta.Put(debtor, c, payTime); err != nil {
					return nil, err
				}
			}
		}
	}

	return ta, nil
}

// randomContract draws one contract for the lender→debtor pair (i, j).
func randomContract(rng *rand.Rand, cfg *config, i, j int) (*core.Contract, error) {
	name := fmt.Sprintf("c-%s-%s", nodeName(i), nodeName(j))
	principal := uniform(rng, cfg.minPrincipal, cfg.maxPrincipal)
	rate := uniform(rng, cfg.minRate, cfg.maxRate)
	timestamp := uniform(rng, 0, cfg.maxTimestamp)

	if rng.Float64() < cfg.continuousShare {
		return core.NewContinuousContract(name, principal, rate, timestamp)
	}

	periods := uniform(rng, cfg.minPeriods, cfg.maxPeriods)

	return core.NewPeriodicContract(name, principal, rate, periods, timestamp)
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func nodeName(i int) string {
	return fmt.Sprintf("n%d", i)
}

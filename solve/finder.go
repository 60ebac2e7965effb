// SPDX-License-Identifier: MIT

package solve

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/equicut/equicut/core"
	"github.com/equicut/equicut/simplex"
)

// Stats reports the shape and cost of the most recent Compute run.
type Stats struct {
	// MatrixReductionTime is the wall-clock time spent in Gauss-Jordan
	// reduction.
	MatrixReductionTime time.Duration

	// MinimizationTime is the wall-clock time spent in the simplex
	// backend (zero when the system had no free variables).
	MinimizationTime time.Duration

	// Rank is the rank of the reduced equilibrium matrix.
	Rank int

	// Variables is the number of unknowns (contracts).
	Variables int

	// FreeVariables is the number of LP decision variables.
	FreeVariables int
}

// Finder is the default equilibrial debt-cut finder. Construct with
// New; a zero Finder is not usable.
//
// A Finder holds no state between runs except the last run's Stats.
// It is not safe for concurrent use: two goroutines must not share one
// instance.
type Finder struct {
	eps    float64
	logger *zap.Logger
	stats  Stats
}

// New constructs a Finder. The tolerance defaults to the process-wide
// epsilon at construction time; see WithEpsilon and WithLogger.
func New(opts ...Option) *Finder {
	f := &Finder{
		eps:    core.Epsilon(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Stats returns the statistics of the most recent Compute run; the
// zero value before any run.
func (f *Finder) Stats() Stats { return f.stats }

// Compute finds the debt cuts that bring g into equilibrium at
// equilibriumTime, with cuts taken at the payment times in ta.
//
// When the equilibrium system is over-constrained the no-solution
// sentinel is returned with a nil error. Simplex failures
// (simplex.ErrInfeasible, simplex.ErrUnbounded) propagate verbatim.
func (f *Finder) Compute(g *core.Graph, ta *core.TimeAssignment, equilibriumTime float64) (*core.DebtCutAssignment, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if ta == nil {
		return nil, ErrNilAssignment
	}
	if math.IsNaN(equilibriumTime) || math.IsInf(equilibriumTime, 0) {
		return nil, ErrBadEquilibriumTime
	}
	if err := checkAssignment(g, ta, equilibriumTime); err != nil {
		return nil, err
	}

	r := newRun(g, ta, equilibriumTime, f.eps)
	if err := r.buildColumns(); err != nil {
		return nil, err
	}

	// A graph without contracts is already in equilibrium everywhere.
	if len(r.cols) == 0 {
		f.stats = Stats{}

		return core.NewDebtCutAssignment(equilibriumTime), nil
	}

	if err := r.loadMatrix(); err != nil {
		return nil, err
	}

	start := time.Now()
	r.rank = r.m.ReduceToRREF()
	reduction := time.Since(start)

	ok, err := r.m.HasSolution()
	if err != nil {
		return nil, err
	}
	if !ok {
		f.stats = Stats{MatrixReductionTime: reduction, Rank: r.rank, Variables: len(r.cols)}
		f.logger.Debug("equilibrium system inconsistent",
			zap.Int("rank", r.rank),
			zap.Int("variables", len(r.cols)))

		return core.NoSolution(), nil
	}

	r.findFreeColumns()

	var point []float64
	var minimization time.Duration
	if len(r.freeCols) > 0 {
		lp := r.buildProgram()
		start = time.Now()
		sol, err := simplex.Minimize(lp)
		minimization = time.Since(start)
		if err != nil {
			return nil, err
		}
		point = sol.Point
	}

	dca, err := r.extract(point)
	if err != nil {
		return nil, err
	}

	f.stats = Stats{
		MatrixReductionTime: reduction,
		MinimizationTime:    minimization,
		Rank:                r.rank,
		Variables:           len(r.cols),
		FreeVariables:       len(r.freeCols),
	}
	f.logger.Debug("debt cuts computed",
		zap.Int("nodes", g.NodeCount()),
		zap.Int("contracts", len(r.cols)),
		zap.Int("rank", r.rank),
		zap.Int("freeVariables", len(r.freeCols)),
		zap.Duration("reduction", reduction),
		zap.Duration("minimization", minimization),
		zap.Float64("totalCut", dca.Sum()))

	return dca, nil
}

// checkAssignment verifies the payment schedule covers every node and
// every contract, pays no contract before its admission, and precedes
// the equilibrium time.
func checkAssignment(g *core.Graph, ta *core.TimeAssignment, equilibriumTime float64) error {
	for _, node := range g.Nodes() {
		if !ta.ContainsNode(node.Name()) {
			return ErrIncompleteAssignment
		}
	}
	for _, node := range g.Nodes() {
		for _, debtor := range node.Debtors() {
			for _, c := range node.ContractsTo(debtor) {
				payTime, err := ta.Get(debtor, c)
				if err != nil {
					return ErrIncompleteAssignment
				}
				if payTime < c.Timestamp() {
					return ErrBadPayTime
				}
				if equilibriumTime < payTime {
					return ErrBadEquilibriumTime
				}
			}
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

package solve

import (
	"math"

	"github.com/equicut/equicut/core"
	"github.com/equicut/equicut/matrix"
	"github.com/equicut/equicut/simplex"
)

// column is the solver's view of one contract: its owner pair, its
// payment time, and the two derived quantities every later phase
// needs.
type column struct {
	orig    *core.Contract
	lender  string
	debtor  string
	payTime float64

	// growth is the factor the contract accrues between its payment
	// time and the equilibrium time. Cutting the contract restarts its
	// clock at the payment time, so for a periodic contract this is
	// exactly (1+r/n)^⌊n·(tEq−pay)⌋: a compounding tick lands on the
	// cut moment by construction, and the pre-cut value composes with
	// the post-cut growth without a residual fraction.
	growth float64

	// preCut is the value accrued at the payment time on the caller's
	// clock: the amount outstanding when the cut is taken, and the
	// cut's upper bound.
	preCut float64
}

// run carries the per-invocation state of one Compute call. It is
// created at the top of Compute and garbage once Compute returns,
// which is what keeps Finder instances stateless between runs.
type run struct {
	g   *core.Graph
	ta  *core.TimeAssignment
	tEq float64
	eps float64

	cols  []column
	index map[*core.Contract]int // original contract → column

	m    *matrix.Matrix
	rank int

	pivots   []int       // row → pivot column
	lpIndex  map[int]int // free column → LP variable index
	freeCols []int       // LP variable index → free column
}

func newRun(g *core.Graph, ta *core.TimeAssignment, tEq, eps float64) *run {
	return &run{
		g:       g,
		ta:      ta,
		tEq:     tEq,
		eps:     eps,
		index:   make(map[*core.Contract]int),
		lpIndex: make(map[int]int),
	}
}

// buildColumns assigns a column to every contract, in node insertion
// order and outgoing order within each node, and prepares the growth
// and pre-cut values for each. The caller's contracts are never
// modified.
func (r *run) buildColumns() error {
	for _, node := range r.g.Nodes() {
		for _, debtor := range node.Debtors() {
			for _, c := range node.ContractsTo(debtor) {
				payTime, err := r.ta.Get(debtor, c)
				if err != nil {
					return err
				}
				preCut, err := c.Evaluate(payTime - c.Timestamp())
				if err != nil {
					return err
				}
				growth, err := c.GrowthFactor(r.tEq - payTime)
				if err != nil {
					return err
				}

				r.index[c] = len(r.cols)
				r.cols = append(r.cols, column{
					orig:    c,
					lender:  node.Name(),
					debtor:  debtor,
					payTime: payTime,
					growth:  growth,
					preCut:  preCut,
				})
			}
		}
	}

	return nil
}

// loadMatrix builds the augmented equilibrium system. Row v states
// that node v's equity at the equilibrium time is zero once the cuts
// are taken:
//
//	Σ_out growth·cut − Σ_in growth·cut = no-cut equity at tEq
//
// because forgiving `cut` at the payment time removes cut×growth from
// the lender's position and returns it to the debtor's. The constant
// entry is the node's equity at tEq with every contract re-admitted at
// its payment time and nothing forgiven.
func (r *run) loadMatrix() error {
	cols := len(r.cols) + 1
	m, err := matrix.New(r.g.NodeCount(), cols, matrix.WithEpsilon(r.eps))
	if err != nil {
		return err
	}

	for row, node := range r.g.Nodes() {
		entries := make([]float64, cols)
		for _, c := range node.OutgoingContracts() {
			j := r.index[c]
			entries[j] += r.cols[j].growth
			entries[cols-1] += r.cols[j].preCut * r.cols[j].growth
		}
		for _, c := range node.IncomingContracts() {
			j := r.index[c]
			entries[j] -= r.cols[j].growth
			entries[cols-1] -= r.cols[j].preCut * r.cols[j].growth
		}
		for j, v := range entries {
			if v == 0 {
				continue
			}
			if err = m.Set(row, j, v); err != nil {
				return err
			}
		}
	}

	r.m = m

	return nil
}

// findFreeColumns walks the reduced rows in order: the leading 1 of
// each row marks a dependent (pivot) column; every other column with a
// non-zero entry after some leading 1 is free and receives the next LP
// variable index the first time it is seen.
func (r *run) findFreeColumns() {
	vars := len(r.cols)
	r.pivots = make([]int, r.rank)

	var row, c int
	var v float64
	for row = 0; row < r.rank; row++ {
		leading := -1
		for c = row; c < vars; c++ {
			v = r.at(row, c)
			if leading == -1 {
				if math.Abs(v-1) <= r.eps {
					leading = c
				}
				continue
			}
			if math.Abs(v) <= r.eps {
				continue
			}
			if _, seen := r.lpIndex[c]; !seen {
				r.lpIndex[c] = len(r.freeCols)
				r.freeCols = append(r.freeCols, c)
			}
		}
		r.pivots[row] = leading
	}
}

// buildProgram translates the reduced system into the cut-minimizing
// linear program over the free variables y.
//
// Each dependent cut is x_p = b_r − Σ M[r,j]·y[j], so the bounds
// 0 ≤ x_p ≤ V_p become
//
//	Σ (−M[r,j])·y ≥ −b_r            (x_p stays non-negative)
//	Σ (−M[r,j])·y ≤ V_p − b_r       (x_p stays within the contract value)
//
// and each free cut is bounded by its own contract value. The
// objective Σ x over all columns (the total forgiven amount) reduces
// to Σ b_r plus, per free variable, 1 − Σ_r M[r,j].
func (r *run) buildProgram() *simplex.LinearProgram {
	vars := len(r.cols)
	nFree := len(r.freeCols)

	objective := make([]float64, nFree)
	constant := 0.0
	constraints := make([]simplex.Constraint, 0, 2*r.rank+nFree)

	var row, c, p int
	var b, v float64
	for row = 0; row < r.rank; row++ {
		p = r.pivots[row]
		b = r.at(row, vars)
		constant += b

		coef := make([]float64, nFree)
		for c = p + 1; c < vars; c++ {
			v = r.at(row, c)
			if math.Abs(v) <= r.eps {
				continue
			}
			i := r.lpIndex[c]
			coef[i] = -v
			objective[i] -= v
		}

		constraints = append(constraints, simplex.Constraint{
			Coefficients: coef,
			Rel:          simplex.GEQ,
			RHS:          -b,
		})

		upper := make([]float64, nFree)
		copy(upper, coef)
		constraints = append(constraints, simplex.Constraint{
			Coefficients: upper,
			Rel:          simplex.LEQ,
			RHS:          r.cols[p].preCut - b,
		})
	}

	for i, c := range r.freeCols {
		coef := make([]float64, nFree)
		coef[i] = 1
		constraints = append(constraints, simplex.Constraint{
			Coefficients: coef,
			Rel:          simplex.LEQ,
			RHS:          r.cols[c].preCut,
		})
		objective[i] += 1
	}

	return &simplex.LinearProgram{
		Objective:   objective,
		Constant:    constant,
		Constraints: constraints,
		NonNegative: true,
	}
}

// extract assembles the debt-cut assignment from the LP point: free
// cuts verbatim, dependent cuts recomputed from their rows, and any
// column no equation references (a self-extended contract cancels out
// of its own row) forgiven nothing.
func (r *run) extract(point []float64) (*core.DebtCutAssignment, error) {
	vars := len(r.cols)
	dca := core.NewDebtCutAssignment(r.tEq)
	assigned := make([]bool, vars)

	for i, c := range r.freeCols {
		if err := dca.Put(r.cols[c].orig, r.clampCut(point[i], r.cols[c].preCut)); err != nil {
			return nil, err
		}
		assigned[c] = true
	}

	var row, c, p int
	var cut, v float64
	for row = 0; row < r.rank; row++ {
		p = r.pivots[row]
		cut = r.at(row, vars)
		for c = p + 1; c < vars; c++ {
			v = r.at(row, c)
			if math.Abs(v) <= r.eps {
				continue
			}
			cut -= point[r.lpIndex[c]] * v
		}
		if err := dca.Put(r.cols[p].orig, r.clampCut(cut, r.cols[p].preCut)); err != nil {
			return nil, err
		}
		assigned[p] = true
	}

	for c, ok := range assigned {
		if ok {
			continue
		}
		if err := dca.Put(r.cols[c].orig, 0); err != nil {
			return nil, err
		}
	}

	return dca, nil
}

// clampCut snaps a computed cut to 0 within the tolerance and pulls
// float fuzz just past the contract value back onto the bound. Values
// violating the bounds by more than the tolerance pass through and
// fail DebtCutAssignment.Put, which is the desired loud failure.
func (r *run) clampCut(cut, bound float64) float64 {
	if math.Abs(cut) <= r.eps {
		return 0
	}
	if cut > bound && cut-bound <= r.eps {
		return bound
	}

	return cut
}

// at reads the reduced matrix without error plumbing; indices are
// always in range by construction.
func (r *run) at(row, col int) float64 {
	v, _ := r.m.At(row, col)

	return v
}

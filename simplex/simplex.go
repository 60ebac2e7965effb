// SPDX-License-Identifier: MIT

package simplex

import "math"

// maxPivots caps the pivot loop. Bland's rule makes cycling
// impossible, so the cap only guards against implementation bugs.
const maxPivots = 100000

// Minimize solves the given linear program and returns the minimizing
// point together with the objective value there.
//
// Errors: ErrBadProgram for malformed input, ErrUnsupported when
// NonNegative is false, ErrInfeasible when no feasible point exists,
// ErrUnbounded when the objective has no lower bound, and
// ErrIterationLimit if the safety cap is hit.
func Minimize(lp *LinearProgram, opts ...Option) (*Solution, error) {
	if err := validate(lp); err != nil {
		return nil, err
	}

	cfg := config{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}
	tol := cfg.tol

	n := len(lp.Objective)
	m := len(lp.Constraints)

	// No constraints: with x ≥ 0, each variable sits at 0 unless its
	// objective coefficient is negative, which makes the program
	// unbounded below.
	if m == 0 {
		for _, c := range lp.Objective {
			if c < -tol {
				return nil, ErrUnbounded
			}
		}

		return &Solution{Point: make([]float64, n), Value: lp.Constant}, nil
	}

	// Normalize to non-negative right-hand sides; count the auxiliary
	// variables each relation needs.
	rows := make([][]float64, m)
	rels := make([]Relation, m)
	rhs := make([]float64, m)
	nSlack, nArt := 0, 0
	for i, c := range lp.Constraints {
		row := make([]float64, n)
		copy(row, c.Coefficients)
		rel, b := c.Rel, c.RHS
		if b < 0 {
			for j := range row {
				row[j] = -row[j]
			}
			b = -b
			switch rel {
			case LEQ:
				rel = GEQ
			case GEQ:
				rel = LEQ
			}
		}
		rows[i], rels[i], rhs[i] = row, rel, b

		switch rel {
		case LEQ:
			nSlack++
		case GEQ:
			nSlack++ // surplus
			nArt++
		case EQ:
			nArt++
		}
	}

	// Tableau layout: decision | slack/surplus | artificial | RHS.
	artStart := n + nSlack
	width := artStart + nArt + 1
	tab := make([][]float64, m)
	basis := make([]int, m)
	si, ai := 0, 0
	for i := 0; i < m; i++ {
		row := make([]float64, width)
		copy(row, rows[i])
		row[width-1] = rhs[i]
		switch rels[i] {
		case LEQ:
			row[n+si] = 1
			basis[i] = n + si
			si++
		case GEQ:
			row[n+si] = -1
			si++
			row[artStart+ai] = 1
			basis[i] = artStart + ai
			ai++
		case EQ:
			row[artStart+ai] = 1
			basis[i] = artStart + ai
			ai++
		}
		tab[i] = row
	}

	// Phase 1: minimize the sum of artificial variables.
	if nArt > 0 {
		cost := make([]float64, width)
		for j := artStart; j < width-1; j++ {
			cost[j] = 1
		}
		// Price out the basic artificial columns.
		for i := 0; i < m; i++ {
			if basis[i] >= artStart {
				subtractRow(cost, tab[i], 1)
			}
		}
		if err := pivotLoop(tab, cost, basis, artStart, tol); err != nil {
			return nil, err
		}
		if -cost[width-1] > tol {
			return nil, ErrInfeasible
		}
		driveOutArtificials(tab, cost, basis, artStart, tol)
	}

	// Phase 2: minimize the caller's objective, artificial columns
	// barred from entering.
	cost := make([]float64, width)
	copy(cost, lp.Objective)
	for i := 0; i < m; i++ {
		if basis[i] < n && cost[basis[i]] != 0 {
			subtractRow(cost, tab[i], lp.Objective[basis[i]])
		}
	}
	if err := pivotLoop(tab, cost, basis, artStart, tol); err != nil {
		return nil, err
	}

	// Extract the decision variables from the basis.
	x := make([]float64, n)
	for i, b := range basis {
		if b < n {
			v := tab[i][width-1]
			if v < 0 {
				v = 0 // feasible basics sit within tolerance of 0
			}
			x[b] = v
		}
	}
	value := lp.Constant
	for j := 0; j < n; j++ {
		value += lp.Objective[j] * x[j]
	}

	return &Solution{Point: x, Value: value}, nil
}

// validate rejects malformed programs up front.
func validate(lp *LinearProgram) error {
	if lp == nil || len(lp.Objective) == 0 {
		return ErrBadProgram
	}
	if !lp.NonNegative {
		return ErrUnsupported
	}
	if math.IsNaN(lp.Constant) || math.IsInf(lp.Constant, 0) {
		return ErrBadProgram
	}
	for _, v := range lp.Objective {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadProgram
		}
	}
	n := len(lp.Objective)
	for _, c := range lp.Constraints {
		if len(c.Coefficients) != n {
			return ErrBadProgram
		}
		if math.IsNaN(c.RHS) || math.IsInf(c.RHS, 0) {
			return ErrBadProgram
		}
		for _, v := range c.Coefficients {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrBadProgram
			}
		}
	}

	return nil
}

// pivotLoop runs simplex iterations until optimality. Entering columns
// are restricted to indices below limit (keeps artificial variables
// out); both choices follow Bland's rule.
func pivotLoop(tab [][]float64, cost []float64, basis []int, limit int, tol float64) error {
	width := len(cost)
	var iter, enter, leave, i, j int
	var a, ratio, best float64
	for iter = 0; iter < maxPivots; iter++ {
		// Entering column: smallest index with a negative reduced cost.
		enter = -1
		for j = 0; j < limit; j++ {
			if cost[j] < -tol {
				enter = j
				break
			}
		}
		if enter == -1 {
			return nil // optimal
		}

		// Leaving row: minimum ratio, ties to the smallest basis index.
		leave = -1
		for i = 0; i < len(tab); i++ {
			a = tab[i][enter]
			if a <= tol {
				continue
			}
			ratio = tab[i][width-1] / a
			if leave == -1 || ratio < best-tol ||
				(math.Abs(ratio-best) <= tol && basis[i] < basis[leave]) {
				leave, best = i, ratio
			}
		}
		if leave == -1 {
			return ErrUnbounded
		}

		pivot(tab, cost, basis, leave, enter)
	}

	return ErrIterationLimit
}

// pivot performs one simplex pivot at (leave, enter): scales the pivot
// row, eliminates the entering column everywhere else (cost row
// included), and updates the basis.
func pivot(tab [][]float64, cost []float64, basis []int, leave, enter int) {
	width := len(cost)
	inv := 1.0 / tab[leave][enter]
	for j := 0; j < width; j++ {
		tab[leave][j] *= inv
	}
	for i := range tab {
		if i == leave {
			continue
		}
		if f := tab[i][enter]; f != 0 {
			subtractRow(tab[i], tab[leave], f)
		}
	}
	if f := cost[enter]; f != 0 {
		subtractRow(cost, tab[leave], f)
	}
	basis[leave] = enter
}

// driveOutArtificials pivots basic artificial variables (all at zero
// after a feasible phase 1) out of the basis wherever a real column is
// available. Rows with no such column are redundant constraints: their
// real entries are all ~0, so later pivots never touch them.
func driveOutArtificials(tab [][]float64, cost []float64, basis []int, artStart int, tol float64) {
	for i := range tab {
		if basis[i] < artStart {
			continue
		}
		for j := 0; j < artStart; j++ {
			if math.Abs(tab[i][j]) > tol {
				pivot(tab, cost, basis, i, j)
				break
			}
		}
	}
}

// subtractRow subtracts factor×src from dst element-wise.
func subtractRow(dst, src []float64, factor float64) {
	for j := range dst {
		dst[j] -= factor * src[j]
	}
}

// SPDX-License-Identifier: MIT

// Package simplex minimizes linear objectives under linear equality
// and inequality constraints with non-negative variables, the exact
// shape of program the equilibrial debt-cut solver produces.
//
// Algorithm: two-phase primal simplex on a dense tableau.
//
//  1. Constraints are normalized to non-negative right-hand sides;
//     slack variables absorb ≤ rows, surplus plus artificial variables
//     absorb ≥ rows, and artificial variables absorb = rows.
//  2. Phase 1 minimizes the sum of the artificial variables. A
//     positive minimum means no feasible point exists (ErrInfeasible).
//  3. Phase 2 minimizes the caller's objective over the feasible
//     basis, with artificial columns barred from re-entering.
//
// Pivoting follows Bland's rule (smallest eligible index for both the
// entering and the leaving variable), so degenerate programs cannot
// cycle. An entering column with no positive ratio reveals an
// unbounded program (ErrUnbounded).
//
// All comparisons use a small pivoting tolerance (default 1e-9,
// WithTolerance to override), deliberately finer than the module's
// modeling epsilon, since simplex ratios are numerically delicate.
package simplex

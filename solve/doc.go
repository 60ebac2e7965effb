// SPDX-License-Identifier: MIT

// Package solve implements the equilibrial debt-cut finder: given a
// graph of loan contracts, a payment schedule, and a target time, it
// computes how much principal to forgive on each contract so that
// every party's equity is zero at that time and the total forgiven
// amount is minimal.
//
// The pipeline, in the order Compute runs it:
//
//  1. Load. An n×(m+1) augmented matrix is built: one row per node,
//     one column per contract plus the constant column. The unknown of
//     column j is the amount forgiven on contract j, denominated at
//     its payment time. A contract contributes +growth to its lender's
//     row and −growth to its debtor's row, where growth is the factor
//     accrued between payment and target time; the constant entry is
//     the node's no-cut equity at the target time. Cutting a contract
//     re-admits it at the payment time, so a compounding tick lands on
//     the cut moment and the pre-cut value composes exactly with the
//     post-cut growth; the caller's graph is never mutated.
//  2. Reduce. Gauss-Jordan to reduced row echelon form. An
//     inconsistent system yields the no-solution sentinel.
//  3. Split. Pivot columns become dependent variables; the remaining
//     columns become the decision variables of a linear program, in
//     discovery order.
//  4. Minimize. The LP minimizes the total forgiven amount subject to
//     every cut staying within [0, value-at-payment-time], and runs on
//     the package simplex backend. Infeasible and unbounded programs
//     propagate as-is.
//  5. Extract. Free cuts come straight from the LP point; dependent
//     cuts are recomputed from their rows; everything is snapped to
//     zero within the tolerance and keyed by the caller's original
//     contracts.
//
// A Finder keeps no per-run state between calls beyond the timing and
// size statistics of the most recent run (Stats). It is not safe for
// concurrent use.
package solve

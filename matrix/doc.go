// SPDX-License-Identifier: MIT

// Package matrix implements the dense augmented matrices the
// equilibrium solver reduces: real-valued, row-major, with the last
// column holding the constant terms of a linear system.
//
// The central operation is ReduceToRREF, Gauss-Jordan elimination to
// reduced row echelon form:
//
//  1. For each coefficient column k (the augmentation column is never
//     pivoted on), find the topmost unprocessed row whose entry at k
//     exceeds the tolerance in magnitude; skip the column if none.
//  2. Swap that row up, scale it so the pivot becomes exactly 1, and
//     eliminate column k from every other row.
//  3. The number of rows processed this way is the rank.
//
// After a reduction, and only then, HasSolution inspects the rows: a
// row whose coefficient entries are all ~0 but whose augmentation
// entry is not marks an inconsistent system. Any mutation (Set or a
// row operation) invalidates the reduced state; probing an unreduced
// matrix returns ErrNotReduced.
//
// Pivot detection and the consistency probe compare against a
// per-matrix tolerance, defaulting to the process-wide epsilon
// (core.Epsilon) at construction time and overridable per matrix with
// WithEpsilon.
package matrix

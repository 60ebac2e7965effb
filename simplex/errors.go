// SPDX-License-Identifier: MIT
// Package simplex: sentinel error set.

package simplex

import "errors"

var (
	// ErrBadProgram indicates a malformed linear program: nil input,
	// empty objective, constraint rows of mismatched length, or
	// non-finite coefficients.
	ErrBadProgram = errors.New("simplex: invalid linear program")

	// ErrUnsupported indicates a program shape this backend does not
	// accept (currently: NonNegative == false).
	ErrUnsupported = errors.New("simplex: unsupported program")

	// ErrInfeasible indicates the constraint set admits no point.
	ErrInfeasible = errors.New("simplex: infeasible program")

	// ErrUnbounded indicates the objective decreases without bound over
	// the feasible region.
	ErrUnbounded = errors.New("simplex: unbounded program")

	// ErrIterationLimit indicates the pivot loop exceeded its safety cap.
	// Bland's rule precludes cycling, so hitting this signals a bug or a
	// pathologically large program.
	ErrIterationLimit = errors.New("simplex: iteration limit exceeded")
)

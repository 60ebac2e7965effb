// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message carries the "matrix: ..." prefix; callers match with
// errors.Is. User-triggered conditions never panic.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows ≤ 0 or cols ≤ 0, or no room for the augmentation column).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are
	// required: entries on Set and factors in row operations.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNotReduced indicates HasSolution was called on a matrix whose
	// most recent mutation was not a reduction.
	ErrNotReduced = errors.New("matrix: matrix not in reduced form")

	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

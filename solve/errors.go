// SPDX-License-Identifier: MIT
// Package solve: sentinel error set.

package solve

import "errors"

var (
	// ErrNilGraph indicates Compute received a nil graph.
	ErrNilGraph = errors.New("solve: graph is nil")

	// ErrNilAssignment indicates Compute received a nil time assignment.
	ErrNilAssignment = errors.New("solve: time assignment is nil")

	// ErrIncompleteAssignment indicates the time assignment misses a
	// node or an incoming contract of a node.
	ErrIncompleteAssignment = errors.New("solve: incomplete time assignment")

	// ErrBadPayTime indicates a contract is scheduled to pay before its
	// own timestamp.
	ErrBadPayTime = errors.New("solve: payment precedes contract timestamp")

	// ErrBadEquilibriumTime indicates the equilibrium time is NaN,
	// infinite, or earlier than some payment time.
	ErrBadEquilibriumTime = errors.New("solve: invalid equilibrium time")
)

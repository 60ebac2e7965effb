// Package core: sentinel error set.
// All core APIs return these sentinels (optionally wrapped with
// fmt.Errorf("...: %w", err) for context); callers match them with
// errors.Is. User-triggered conditions never panic.

package core

import "errors"

var (
	// ErrNilContract indicates a nil *Contract was passed where a contract is required.
	ErrNilContract = errors.New("core: contract is nil")

	// ErrNilAssignment indicates a nil TimeAssignment or DebtCutAssignment argument.
	ErrNilAssignment = errors.New("core: assignment is nil")

	// ErrEmptyName indicates an empty node or contract name.
	ErrEmptyName = errors.New("core: name is empty")

	// ErrBadPrincipal indicates a principal that is NaN, infinite, or not positive.
	ErrBadPrincipal = errors.New("core: invalid principal")

	// ErrBadInterestRate indicates an interest rate that is NaN, infinite, or negative.
	ErrBadInterestRate = errors.New("core: invalid interest rate")

	// ErrBadCompounding indicates compounding periods that are NaN, negative, or zero,
	// or positive infinity passed to NewPeriodicContract (+Inf denotes continuous
	// compounding, which NewContinuousContract constructs).
	ErrBadCompounding = errors.New("core: invalid compounding periods")

	// ErrBadTimestamp indicates a timestamp that is NaN or infinite.
	ErrBadTimestamp = errors.New("core: invalid timestamp")

	// ErrBadDuration indicates a duration that is NaN, infinite, or negative.
	ErrBadDuration = errors.New("core: invalid duration")

	// ErrBadDebtCut indicates a debt cut that is NaN, infinite, negative,
	// or larger than the contract value it would be subtracted from.
	ErrBadDebtCut = errors.New("core: invalid debt cut")

	// ErrDuplicateNode indicates an attempt to add a node whose name is taken.
	ErrDuplicateNode = errors.New("core: node already present")

	// ErrNodeNotFound indicates an operation referenced a node that is not
	// part of the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrContractNotFound indicates a contract has no entry in a
	// DebtCutAssignment.
	ErrContractNotFound = errors.New("core: contract not in assignment")

	// ErrNoAssignment indicates a (node, contract) pair has no entry in a
	// TimeAssignment.
	ErrNoAssignment = errors.New("core: no time assigned")

	// ErrNoFinder indicates FindEquilibrialDebtCuts was called on a graph
	// without an installed DebtCutFinder.
	ErrNoFinder = errors.New("core: no debt cut finder installed")
)

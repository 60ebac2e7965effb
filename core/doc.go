// Package core defines the financial model underlying equicut: loan
// Contracts with periodic or continuous compounding, Nodes (the
// borrowing and lending parties), the directed multigraph of contracts
// between them, and the two assignment objects the solver consumes and
// produces (TimeAssignment and DebtCutAssignment).
//
// A Graph owns its Nodes; every mutation of the incidence structure
// goes through Graph methods so that the cached edge, contract and
// timestamp aggregates stay consistent. Nodes never hold a reference
// back to their Graph. Node and contract iteration follows insertion
// order, so every traversal, and therefore every downstream
// computation, is deterministic.
//
// Contract values are functions of a non-negative duration measured
// from the contract's timestamp:
//
//	periodic:   p · (1 + r/n)^⌊n·d⌋
//	continuous: p · e^(r·d)
//
// Equity of a node at time t is the sum of its outgoing contract
// values minus the sum of its incoming contract values at t. A graph
// is in equilibrium at t when every node's equity is zero within the
// package-wide tolerance (see SetEpsilon).
//
// Errors:
//
//	ErrNilContract        - contract reference is nil.
//	ErrEmptyName          - node or contract name is the empty string.
//	ErrBadPrincipal       - principal is NaN, infinite, or not positive.
//	ErrBadInterestRate    - interest rate is NaN, infinite, or negative.
//	ErrBadCompounding     - compounding periods are NaN or not positive,
//	                        or infinite for a periodic contract.
//	ErrBadTimestamp       - timestamp is NaN or infinite.
//	ErrBadDuration        - duration is NaN, infinite, or negative.
//	ErrBadDebtCut         - debt cut is NaN, infinite, negative, or
//	                        exceeds the contract value it applies to.
//	ErrDuplicateNode      - node name already present in the graph.
//	ErrNodeNotFound       - referenced node does not exist in the graph.
//	ErrContractNotFound   - contract missing from a DebtCutAssignment.
//	ErrNoAssignment       - (node, contract) pair missing from a
//	                        TimeAssignment.
//	ErrNoFinder           - no DebtCutFinder installed on the graph.
package core

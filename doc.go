// Package equicut computes equilibrial debt cuts on graphs of loan
// contracts: given a set of parties connected by interest-bearing loans
// and a future point in time, it determines how much principal must be
// forgiven on each loan so that every party's net position is exactly
// zero at that moment, while keeping the total forgiven amount minimal.
//
// What is equicut?
//
//	A small, deterministic library built from five pieces:
//		• core/     — parties, loan contracts (periodic & continuous
//		              compounding), the financial multigraph, time and
//		              debt-cut assignments
//		• matrix/   — dense augmented matrices with Gauss-Jordan
//		              reduction to reduced row echelon form
//		• simplex/  — a two-phase simplex minimizer for the bounded
//		              linear programs the solver produces
//		• solve/    — the equilibrial debt-cut finder: equilibrium
//		              system → RREF → linear program → cuts
//		• randgraph/ — seeded random instance generation for demos
//		              and stress tests
//
// The typical flow:
//
//	g := core.NewGraph("market")
//	... add nodes and contracts ...
//	g.SetDebtCutFinder(solve.New())
//	dca, err := g.FindEquilibrialDebtCuts(t, ta)
//	cutGraph, err := g.ApplyDebtCuts(dca, ta)
//	ok, _ := cutGraph.IsInEquilibriumAt(t) // true
//
// Equity checks, matrix pivot detection, and debt-cut snapping share
// one configurable tolerance (core.SetEpsilon); the simplex backend
// pivots with its own finer tolerance (simplex.WithTolerance). Every
// algorithm is single-threaded and fully deterministic for a given
// input and seed.
//
//	go get github.com/equicut/equicut
package equicut

package core

import "math"

// DebtCutAssignment maps contracts to the amount of principal forgiven
// on each: the debt cut, never the remaining principal. It records
// the equilibrium time it was computed for and keeps a running sum of
// all inserted cuts. Consumers treat it as read-only.
type DebtCutAssignment struct {
	cuts            map[*Contract]float64
	order           []*Contract
	equilibriumTime float64
	sum             float64
}

// NewDebtCutAssignment constructs an empty assignment for the given
// equilibrium time.
func NewDebtCutAssignment(equilibriumTime float64) *DebtCutAssignment {
	return &DebtCutAssignment{
		cuts:            make(map[*Contract]float64),
		equilibriumTime: equilibriumTime,
	}
}

// NoSolution returns the sentinel assignment used when the equilibrium
// system is over-constrained: empty, with equilibrium time -Inf.
func NoSolution() *DebtCutAssignment {
	return NewDebtCutAssignment(math.Inf(-1))
}

// IsNoSolution reports whether this assignment is the no-solution
// sentinel.
func (dca *DebtCutAssignment) IsNoSolution() bool {
	return math.IsInf(dca.equilibriumTime, -1) && len(dca.cuts) == 0
}

// Put records the forgiven amount for contract c. A repeated Put for
// the same contract replaces the previous cut. The cut must be
// non-negative and finite.
func (dca *DebtCutAssignment) Put(c *Contract, cut float64) error {
	if c == nil {
		return ErrNilContract
	}
	if err := checkDebtCut(cut); err != nil {
		return err
	}

	if old, ok := dca.cuts[c]; ok {
		dca.sum -= old
	} else {
		dca.order = append(dca.order, c)
	}
	dca.cuts[c] = cut
	dca.sum += cut

	return nil
}

// Get returns the forgiven amount recorded for c.
// Returns ErrContractNotFound when c has no entry.
func (dca *DebtCutAssignment) Get(c *Contract) (float64, error) {
	if c == nil {
		return 0, ErrNilContract
	}
	cut, ok := dca.cuts[c]
	if !ok {
		return 0, ErrContractNotFound
	}

	return cut, nil
}

// Contains reports whether c has an entry.
func (dca *DebtCutAssignment) Contains(c *Contract) bool {
	_, ok := dca.cuts[c]

	return ok
}

// Contracts returns the contracts with entries, in insertion order.
func (dca *DebtCutAssignment) Contracts() []*Contract {
	out := make([]*Contract, len(dca.order))
	copy(out, dca.order)

	return out
}

// Size returns the number of contracts with entries.
func (dca *DebtCutAssignment) Size() int { return len(dca.cuts) }

// Sum returns the running sum of all recorded cuts.
func (dca *DebtCutAssignment) Sum() float64 { return dca.sum }

// EquilibriumTime returns the time this assignment targets.
func (dca *DebtCutAssignment) EquilibriumTime() float64 { return dca.equilibriumTime }

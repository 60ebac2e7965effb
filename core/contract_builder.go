package core

import "math"

// ContractBuilder is a fluent convenience over the two contract
// constructors:
//
//	c, err := core.NewContract("loan-1").
//		Principal(10.0).
//		Rate(0.15).
//		Periods(12).
//		At(3.0)
//
// Omit Periods (or call Continuous) for continuous compounding.
// Validation happens once, in At; invalid values surface there with
// the same sentinels the constructors use.
type ContractBuilder struct {
	name      string
	principal float64
	rate      float64
	periods   float64
	kind      ContractKind
}

// NewContract starts building a contract with the given name.
// The builder defaults to continuous compounding.
func NewContract(name string) *ContractBuilder {
	return &ContractBuilder{
		name:    name,
		periods: math.Inf(1),
		kind:    Continuous,
	}
}

// Principal sets the principal amount.
func (b *ContractBuilder) Principal(p float64) *ContractBuilder {
	b.principal = p

	return b
}

// Rate sets the annual interest rate.
func (b *ContractBuilder) Rate(r float64) *ContractBuilder {
	b.rate = r

	return b
}

// Periods selects periodic compounding with n periods per unit of time.
func (b *ContractBuilder) Periods(n float64) *ContractBuilder {
	b.periods = n
	b.kind = Periodic

	return b
}

// Continuous selects continuous compounding.
func (b *ContractBuilder) Continuous() *ContractBuilder {
	b.periods = math.Inf(1)
	b.kind = Continuous

	return b
}

// At finalizes the builder into a contract admitted at ts.
func (b *ContractBuilder) At(ts float64) (*Contract, error) {
	if b.kind == Periodic {
		return NewPeriodicContract(b.name, b.principal, b.rate, b.periods, ts)
	}

	return NewContinuousContract(b.name, b.principal, b.rate, ts)
}

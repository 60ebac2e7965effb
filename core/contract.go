package core

import "math"

// ContractKind discriminates the two compounding schemes a Contract
// can follow.
type ContractKind int

const (
	// Periodic compounds interest n times per unit of time; the value
	// function is a step function with a tick every 1/n.
	Periodic ContractKind = iota

	// Continuous compounds interest continuously (n = +Inf); the value
	// function is smooth.
	Continuous
)

// Contract is an immutable loan instrument between two parties.
//
// A contract carries four numeric attributes: the principal lent, the
// annual interest rate, the number of compounding periods per unit of
// time (+Inf for continuous compounding), and the timestamp at which
// the loan was admitted. All evaluations take a duration measured from
// the timestamp; callers convert absolute times themselves.
type Contract struct {
	name               string
	kind               ContractKind
	principal          float64
	interestRate       float64
	compoundingPeriods float64 // +Inf iff kind == Continuous
	timestamp          float64
}

// NewPeriodicContract constructs a contract compounding n times per
// unit of time. Principal must be positive and finite, rate
// non-negative and finite, periods positive and finite, timestamp
// finite.
func NewPeriodicContract(name string, principal, rate, periods, timestamp float64) (*Contract, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := checkPrincipal(principal); err != nil {
		return nil, err
	}
	if err := checkInterestRate(rate); err != nil {
		return nil, err
	}
	if err := checkCompoundingPeriods(periods); err != nil {
		return nil, err
	}
	if math.IsInf(periods, 1) {
		// +Inf periods means continuous compounding; use the dedicated constructor.
		return nil, ErrBadCompounding
	}
	if err := checkTimestamp(timestamp); err != nil {
		return nil, err
	}

	return &Contract{
		name:               name,
		kind:               Periodic,
		principal:          principal,
		interestRate:       rate,
		compoundingPeriods: periods,
		timestamp:          timestamp,
	}, nil
}

// NewContinuousContract constructs a continuously compounding contract
// (compounding periods = +Inf).
func NewContinuousContract(name string, principal, rate, timestamp float64) (*Contract, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := checkPrincipal(principal); err != nil {
		return nil, err
	}
	if err := checkInterestRate(rate); err != nil {
		return nil, err
	}
	if err := checkTimestamp(timestamp); err != nil {
		return nil, err
	}

	return &Contract{
		name:               name,
		kind:               Continuous,
		principal:          principal,
		interestRate:       rate,
		compoundingPeriods: math.Inf(1),
		timestamp:          timestamp,
	}, nil
}

// Name returns the contract's name.
func (c *Contract) Name() string { return c.name }

// Kind returns the compounding scheme of this contract.
func (c *Contract) Kind() ContractKind { return c.kind }

// IsContinuous reports whether the contract compounds continuously.
func (c *Contract) IsContinuous() bool { return c.kind == Continuous }

// Principal returns the principal amount.
func (c *Contract) Principal() float64 { return c.principal }

// InterestRate returns the annual interest rate.
func (c *Contract) InterestRate() float64 { return c.interestRate }

// CompoundingPeriods returns the compounding periods per unit of time
// (+Inf for continuous contracts).
func (c *Contract) CompoundingPeriods() float64 { return c.compoundingPeriods }

// Timestamp returns the moment the contract was admitted.
func (c *Contract) Timestamp() float64 { return c.timestamp }

// GrowthFactor returns the multiplicative factor the principal has
// accrued after the given duration:
//
//	periodic:   (1 + r/n)^⌊n·d⌋
//	continuous: e^(r·d)
//
// Returns ErrBadDuration when d is negative, NaN, or infinite.
func (c *Contract) GrowthFactor(d float64) (float64, error) {
	if err := checkDuration(d); err != nil {
		return 0, err
	}
	if c.kind == Continuous {
		return math.Exp(c.interestRate * d), nil
	}

	n := c.compoundingPeriods

	return math.Pow(1.0+c.interestRate/n, math.Floor(n*d)), nil
}

// Evaluate returns the value of this contract after the given duration
// from its timestamp: principal times the growth factor.
// Returns ErrBadDuration when d is negative, NaN, or infinite.
func (c *Contract) Evaluate(d float64) (float64, error) {
	f, err := c.GrowthFactor(d)
	if err != nil {
		return 0, err
	}

	return c.principal * f, nil
}

// ShiftCorrection returns the fractional part of n·d for a periodic
// contract and 0 for a continuous one: how far past the most recent
// compounding tick the moment d falls, measured in periods. Moving the
// contract's origin later by correction/n units of time puts a
// compounding tick exactly at d.
func (c *Contract) ShiftCorrection(d float64) (float64, error) {
	if err := checkDuration(d); err != nil {
		return 0, err
	}
	if c.kind == Continuous {
		return 0, nil
	}

	nd := c.compoundingPeriods * d

	return nd - math.Floor(nd), nil
}

// Clone returns a copy of this contract.
func (c *Contract) Clone() *Contract {
	cp := *c

	return &cp
}

// WithTimestamp returns a copy of this contract admitted at ts.
func (c *Contract) WithTimestamp(ts float64) (*Contract, error) {
	if err := checkTimestamp(ts); err != nil {
		return nil, err
	}
	cp := *c
	cp.timestamp = ts

	return &cp, nil
}

// WithPrincipal returns a copy of this contract whose principal is p.
// Zero is admitted: a fully forgiven contract has no principal left.
func (c *Contract) WithPrincipal(p float64) (*Contract, error) {
	if err := checkPrincipalAllowZero(p); err != nil {
		return nil, err
	}
	cp := *c
	cp.principal = p

	return &cp, nil
}

// Equals reports whether both contracts agree within the process-wide
// tolerance. See EqualsWithin.
func (c *Contract) Equals(o *Contract) bool {
	return c.EqualsWithin(o, Epsilon())
}

// EqualsWithin reports whether both contracts share the same kind and
// all four numeric attributes agree within eps.
func (c *Contract) EqualsWithin(o *Contract, eps float64) bool {
	if o == nil || c.kind != o.kind {
		return false
	}
	if math.Abs(c.principal-o.principal) > eps ||
		math.Abs(c.interestRate-o.interestRate) > eps ||
		math.Abs(c.timestamp-o.timestamp) > eps {
		return false
	}
	if c.kind == Periodic && math.Abs(c.compoundingPeriods-o.compoundingPeriods) > eps {
		return false
	}

	return true
}

// ApplyDebtCut returns the contract as it stands after its cut from
// dca is taken at absoluteTime: same kind, rate, and compounding, the
// timestamp moved to absoluteTime, and the principal reduced to the
// accrued value at that moment minus the forgiven amount.
//
// Returns ErrContractNotFound when dca holds no entry for this
// contract, ErrBadDebtCut when the cut exceeds the accrued value, and
// ErrBadDuration when absoluteTime precedes the contract's timestamp.
func (c *Contract) ApplyDebtCut(dca *DebtCutAssignment, absoluteTime float64) (*Contract, error) {
	if dca == nil {
		return nil, ErrNilAssignment
	}
	cut, err := dca.Get(c)
	if err != nil {
		return nil, err
	}
	value, err := c.Evaluate(absoluteTime - c.timestamp)
	if err != nil {
		return nil, err
	}
	if cut > value {
		return nil, ErrBadDebtCut
	}

	cp := *c
	cp.principal = value - cut
	cp.timestamp = absoluteTime

	return &cp, nil
}

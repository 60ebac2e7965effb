package core

// DebtCutFinder computes, for a graph and a payment schedule, the debt
// cuts that bring every node's equity to zero at equilibriumTime.
//
// A finder returns the NoSolution sentinel (not an error) when the
// equilibrium system is over-constrained; errors are reserved for
// invalid inputs and optimizer failures.
type DebtCutFinder interface {
	Compute(g *Graph, ta *TimeAssignment, equilibriumTime float64) (*DebtCutAssignment, error)
}

// TrivialFinder is the baseline DebtCutFinder: it forgives every
// contract completely, cutting each down to zero principal at its
// payment time. The result is trivially equilibrial and maximally
// expensive. Useful as a reference point in tests and demos.
type TrivialFinder struct{}

// Compute cuts every contract in g down to zero.
func (TrivialFinder) Compute(g *Graph, ta *TimeAssignment, equilibriumTime float64) (*DebtCutAssignment, error) {
	if g == nil || ta == nil {
		return nil, ErrNilAssignment
	}

	dca := NewDebtCutAssignment(equilibriumTime)
	for _, node := range g.Nodes() {
		for _, debtor := range node.Debtors() {
			for _, c := range node.ContractsTo(debtor) {
				payTime, err := ta.Get(debtor, c)
				if err != nil {
					return nil, err
				}
				value, err := c.Evaluate(payTime - c.Timestamp())
				if err != nil {
					return nil, err
				}
				if err = dca.Put(c, value); err != nil {
					return nil, err
				}
			}
		}
	}

	return dca, nil
}

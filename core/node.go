package core

import "math"

// Node is a party in a financial graph: a lender on its outgoing
// contracts, a borrower on its incoming ones.
//
// A Node belongs to exactly one Graph and never references it; all
// incidence mutation goes through Graph.AddContract and
// Graph.RemoveNode so that the graph-level aggregates stay in step.
// Both incidence maps keep insertion-ordered key slices so traversal
// order is deterministic.
type Node struct {
	name string

	out      map[string][]*Contract // debtor name → contracts this node extends
	in       map[string][]*Contract // lender name → contracts this node received
	outOrder []string
	inOrder  []string

	maxTimestamp float64
}

// newNode constructs a detached node; Graph.AddNode is the only caller.
func newNode(name string) *Node {
	return &Node{
		name:         name,
		out:          make(map[string][]*Contract),
		in:           make(map[string][]*Contract),
		maxTimestamp: math.Inf(-1),
	}
}

// Name returns the identity of this node, unique within its graph.
func (n *Node) Name() string { return n.name }

// MaximumTimestamp returns the largest contract timestamp seen on this
// node, or -Inf when no contract touches it.
func (n *Node) MaximumTimestamp() float64 { return n.maxTimestamp }

// Debtors lists the parties this node lends to, in first-contract order.
func (n *Node) Debtors() []string {
	out := make([]string, len(n.outOrder))
	copy(out, n.outOrder)

	return out
}

// Lenders lists the parties this node borrows from, in first-contract order.
func (n *Node) Lenders() []string {
	out := make([]string, len(n.inOrder))
	copy(out, n.inOrder)

	return out
}

// ContractsTo returns the contracts this node extends to debtor, in
// insertion order. The slice is a copy; the contracts are shared.
func (n *Node) ContractsTo(debtor string) []*Contract {
	list := n.out[debtor]
	out := make([]*Contract, len(list))
	copy(out, list)

	return out
}

// ContractsFrom returns the contracts this node received from lender,
// in insertion order.
func (n *Node) ContractsFrom(lender string) []*Contract {
	list := n.in[lender]
	out := make([]*Contract, len(list))
	copy(out, list)

	return out
}

// OutgoingContracts returns every contract this node extends, debtors
// in first-contract order, contracts in insertion order within each.
func (n *Node) OutgoingContracts() []*Contract {
	var out []*Contract
	for _, debtor := range n.outOrder {
		out = append(out, n.out[debtor]...)
	}

	return out
}

// IncomingContracts returns every contract this node received,
// lenders in first-contract order.
func (n *Node) IncomingContracts() []*Contract {
	var out []*Contract
	for _, lender := range n.inOrder {
		out = append(out, n.in[lender]...)
	}

	return out
}

// Equity returns this node's net position at absolute time t: the sum
// of outgoing contract values minus the sum of incoming contract
// values. Fails with ErrBadDuration when t precedes any incident
// contract's timestamp.
func (n *Node) Equity(t float64) (float64, error) {
	var equity float64
	for _, debtor := range n.outOrder {
		for _, c := range n.out[debtor] {
			v, err := c.Evaluate(t - c.Timestamp())
			if err != nil {
				return 0, err
			}
			equity += v
		}
	}
	for _, lender := range n.inOrder {
		for _, c := range n.in[lender] {
			v, err := c.Evaluate(t - c.Timestamp())
			if err != nil {
				return 0, err
			}
			equity -= v
		}
	}

	return equity, nil
}

// OutgoingFlowAt returns the total value of this node's outgoing
// contracts at absolute time t.
func (n *Node) OutgoingFlowAt(t float64) (float64, error) {
	var flow float64
	for _, debtor := range n.outOrder {
		for _, c := range n.out[debtor] {
			v, err := c.Evaluate(t - c.Timestamp())
			if err != nil {
				return 0, err
			}
			flow += v
		}
	}

	return flow, nil
}

// noteTimestamp refreshes the cached maximum contract timestamp.
func (n *Node) noteTimestamp(ts float64) {
	if ts > n.maxTimestamp {
		n.maxTimestamp = ts
	}
}

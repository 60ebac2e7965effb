package core

import (
	"fmt"
	"math"
	"strings"
)

// Graph is a directed multigraph of loan contracts between named
// parties. It owns its nodes, caches the edge and contract counts and
// the maximum contract timestamp, and delegates debt-cut computation
// to an installed DebtCutFinder.
//
// Nodes iterate in insertion order everywhere, which keeps the solver's
// row and column layout and all printed output deterministic.
//
// Graph is not safe for concurrent use.
type Graph struct {
	name  string
	nodes map[string]*Node
	order []string

	edgeAmount     int // ordered (lender, debtor) pairs with ≥1 contract
	contractAmount int
	maxTimestamp   float64

	finder DebtCutFinder
}

// NewGraph constructs an empty graph with the given name.
func NewGraph(name string) *Graph {
	return &Graph{
		name:         name,
		nodes:        make(map[string]*Node),
		maxTimestamp: math.Inf(-1),
	}
}

// Name returns the name of this graph.
func (g *Graph) Name() string { return g.name }

// AddNode creates a node with the given name and adds it to the graph.
// Returns ErrEmptyName for an empty name and ErrDuplicateNode when the
// name is already taken.
func (g *Graph) AddNode(name string) (*Node, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, exists := g.nodes[name]; exists {
		return nil, ErrDuplicateNode
	}

	n := newNode(name)
	g.nodes[name] = n
	g.order = append(g.order, name)

	return n, nil
}

// Node returns the node with the given name, if present.
func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.nodes[name]

	return n, ok
}

// Contains reports whether a node with the given name is in the graph.
func (g *Graph) Contains(name string) bool {
	_, ok := g.nodes[name]

	return ok
}

// Nodes returns the graph's nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.nodes[name])
	}

	return out
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeAmount returns the number of ordered (lender, debtor) pairs
// connected by at least one contract.
func (g *Graph) EdgeAmount() int { return g.edgeAmount }

// ContractAmount returns the total number of contracts in the graph.
func (g *Graph) ContractAmount() int { return g.contractAmount }

// MaximumTimestamp returns the largest contract timestamp in the
// graph, or -Inf when the graph has no contracts.
func (g *Graph) MaximumTimestamp() float64 { return g.maxTimestamp }

// AddContract admits a contract from lender to debtor. The contract is
// appended to the lender's outgoing and the debtor's incoming
// incidence; the first contract for the ordered pair also counts a new
// edge. All cached maximum timestamps are refreshed.
//
// Returns ErrNodeNotFound when either party is not in this graph and
// ErrNilContract for a nil contract.
func (g *Graph) AddContract(lender, debtor string, c *Contract) error {
	if c == nil {
		return ErrNilContract
	}
	from, ok := g.nodes[lender]
	if !ok {
		return fmt.Errorf("lender %q: %w", lender, ErrNodeNotFound)
	}
	to, ok := g.nodes[debtor]
	if !ok {
		return fmt.Errorf("debtor %q: %w", debtor, ErrNodeNotFound)
	}

	if _, seen := from.out[debtor]; !seen {
		from.outOrder = append(from.outOrder, debtor)
		g.edgeAmount++
	}
	from.out[debtor] = append(from.out[debtor], c)

	if _, seen := to.in[lender]; !seen {
		to.inOrder = append(to.inOrder, lender)
	}
	to.in[lender] = append(to.in[lender], c)

	g.contractAmount++
	from.noteTimestamp(c.Timestamp())
	to.noteTimestamp(c.Timestamp())
	if c.Timestamp() > g.maxTimestamp {
		g.maxTimestamp = c.Timestamp()
	}

	return nil
}

// RemoveNode detaches every contract incident to the named node,
// adjusts the edge and contract counters, and removes the node.
// Returns ErrNodeNotFound when the node is absent.
func (g *Graph) RemoveNode(name string) error {
	n, ok := g.nodes[name]
	if !ok {
		return ErrNodeNotFound
	}

	for _, debtor := range n.outOrder {
		other := g.nodes[debtor]
		g.contractAmount -= len(n.out[debtor])
		g.edgeAmount--
		delete(other.in, name)
		other.inOrder = removeName(other.inOrder, name)
	}
	for _, lender := range n.inOrder {
		other := g.nodes[lender]
		g.contractAmount -= len(n.in[lender])
		g.edgeAmount--
		delete(other.out, name)
		other.outOrder = removeName(other.outOrder, name)
	}

	delete(g.nodes, name)
	g.order = removeName(g.order, name)

	return nil
}

// Equity returns the named node's net position at absolute time t.
func (g *Graph) Equity(name string, t float64) (float64, error) {
	n, ok := g.nodes[name]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return n.Equity(t)
}

// IsInEquilibriumAt reports whether every node's equity at absolute
// time t is zero within the process-wide tolerance.
func (g *Graph) IsInEquilibriumAt(t float64) (bool, error) {
	for _, name := range g.order {
		e, err := g.nodes[name].Equity(t)
		if err != nil {
			return false, err
		}
		if !EpsilonEquals(e, 0) {
			return false, nil
		}
	}

	return true, nil
}

// MaxEquity returns the largest absolute node equity at time t.
func (g *Graph) MaxEquity(t float64) (float64, error) {
	var max float64
	for _, name := range g.order {
		e, err := g.nodes[name].Equity(t)
		if err != nil {
			return 0, err
		}
		if math.Abs(e) > max {
			max = math.Abs(e)
		}
	}

	return max, nil
}

// TotalFlowAt returns the sum of outgoing contract values over all
// nodes at time t.
func (g *Graph) TotalFlowAt(t float64) (float64, error) {
	var flow float64
	for _, name := range g.order {
		f, err := g.nodes[name].OutgoingFlowAt(t)
		if err != nil {
			return 0, err
		}
		flow += f
	}

	return flow, nil
}

// SetDebtCutFinder installs the solver used by FindEquilibrialDebtCuts
// and returns the graph for chaining.
func (g *Graph) SetDebtCutFinder(f DebtCutFinder) *Graph {
	g.finder = f

	return g
}

// FindEquilibrialDebtCuts computes the debt cuts that put this graph
// in equilibrium at equilibriumTime, delegating to the installed
// finder. Returns ErrNoFinder when none is installed.
func (g *Graph) FindEquilibrialDebtCuts(equilibriumTime float64, ta *TimeAssignment) (*DebtCutAssignment, error) {
	if g.finder == nil {
		return nil, ErrNoFinder
	}

	return g.finder.Compute(g, ta, equilibriumTime)
}

// ApplyDebtCuts returns a new graph with the same nodes in which every
// contract present in dca is replaced by its post-cut version, taken
// at that contract's payment time from ta. Contracts absent from dca
// are not copied.
func (g *Graph) ApplyDebtCuts(dca *DebtCutAssignment, ta *TimeAssignment) (*Graph, error) {
	if dca == nil || ta == nil {
		return nil, ErrNilAssignment
	}

	out := NewGraph(g.name)
	out.finder = g.finder
	for _, name := range g.order {
		if _, err := out.AddNode(name); err != nil {
			return nil, err
		}
	}

	for _, name := range g.order {
		n := g.nodes[name]
		for _, debtor := range n.outOrder {
			for _, c := range n.out[debtor] {
				if !dca.Contains(c) {
					continue
				}
				payTime, err := ta.Get(debtor, c)
				if err != nil {
					return nil, err
				}
				cut, err := c.ApplyDebtCut(dca, payTime)
				if err != nil {
					return nil, err
				}
				if err = out.AddContract(name, debtor, cut); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// CopyTimeAssignment returns a copy of ta restricted to this graph:
// every node is touched and every (debtor, contract) entry of this
// graph is carried over verbatim. Entries for contracts this graph does
// not hold are dropped. Contracts are matched by identity, so the copy
// holds no entries for the new contracts of a graph produced by
// ApplyDebtCuts; called on such a graph with the original schedule it
// returns ErrNoAssignment.
func (g *Graph) CopyTimeAssignment(ta *TimeAssignment) (*TimeAssignment, error) {
	if ta == nil {
		return nil, ErrNilAssignment
	}

	out := NewTimeAssignment()
	for _, name := range g.order {
		n := g.nodes[name]
		out.Touch(name)
		for _, debtor := range n.outOrder {
			for _, c := range n.out[debtor] {
				t, err := ta.Get(debtor, c)
				if err != nil {
					return nil, err
				}
				if err = out.Put(debtor, c, t); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// Describe renders a human-readable listing of every node with the
// values of its outgoing and incoming contracts at absolute time t.
func (g *Graph) Describe(t float64) (string, error) {
	var sb strings.Builder
	for _, name := range g.order {
		n := g.nodes[name]
		fmt.Fprintf(&sb, "[Node %s]\n  Debtors:\n", name)
		for _, debtor := range n.outOrder {
			fmt.Fprintf(&sb, "    [Node %s]\n", debtor)
			for _, c := range n.out[debtor] {
				v, err := c.Evaluate(t - c.Timestamp())
				if err != nil {
					return "", err
				}
				fmt.Fprintf(&sb, "      %s: %g\n", c.Name(), v)
			}
		}
		sb.WriteString("  Lenders:\n")
		for _, lender := range n.inOrder {
			fmt.Fprintf(&sb, "    [Node %s]\n", lender)
			for _, c := range n.in[lender] {
				v, err := c.Evaluate(t - c.Timestamp())
				if err != nil {
					return "", err
				}
				fmt.Fprintf(&sb, "      %s: %g\n", c.Name(), v)
			}
		}
	}

	return sb.String(), nil
}

// removeName deletes the first occurrence of name from list, keeping order.
func removeName(list []string, name string) []string {
	for i, v := range list {
		if v == name {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}

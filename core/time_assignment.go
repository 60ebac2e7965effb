package core

import "math"

// TimeAssignment maps each (node, contract) pair to the absolute
// moment at which that node pays the contract's debt cut. The solver
// requires an entry for every incoming contract of every node; nodes
// with no incoming contracts must still appear (use Touch).
type TimeAssignment struct {
	entries map[string]map[*Contract]float64
	order   []string
	maxTime float64
}

// NewTimeAssignment constructs an empty time assignment.
func NewTimeAssignment() *TimeAssignment {
	return &TimeAssignment{
		entries: make(map[string]map[*Contract]float64),
		maxTime: math.Inf(-1),
	}
}

// Put records that node pays the cut of contract c at absolute time t.
// Returns ErrEmptyName, ErrNilContract, or ErrBadTimestamp on invalid
// arguments.
func (ta *TimeAssignment) Put(node string, c *Contract, t float64) error {
	if node == "" {
		return ErrEmptyName
	}
	if c == nil {
		return ErrNilContract
	}
	if err := checkTimestamp(t); err != nil {
		return err
	}

	ta.Touch(node)
	ta.entries[node][c] = t
	if t > ta.maxTime {
		ta.maxTime = t
	}

	return nil
}

// Touch ensures node has an (possibly empty) entry. Nodes without
// incoming contracts use this to satisfy the solver's completeness
// check.
func (ta *TimeAssignment) Touch(node string) {
	if _, ok := ta.entries[node]; ok {
		return
	}
	ta.entries[node] = make(map[*Contract]float64)
	ta.order = append(ta.order, node)
}

// Get returns the payment time assigned to (node, c).
// Returns ErrNoAssignment when the pair has no entry.
func (ta *TimeAssignment) Get(node string, c *Contract) (float64, error) {
	m, ok := ta.entries[node]
	if !ok {
		return 0, ErrNoAssignment
	}
	t, ok := m[c]
	if !ok {
		return 0, ErrNoAssignment
	}

	return t, nil
}

// ContainsNode reports whether node has an entry (possibly empty).
func (ta *TimeAssignment) ContainsNode(node string) bool {
	_, ok := ta.entries[node]

	return ok
}

// Contains reports whether the (node, c) pair has an assigned time.
func (ta *TimeAssignment) Contains(node string, c *Contract) bool {
	m, ok := ta.entries[node]
	if !ok {
		return false
	}
	_, ok = m[c]

	return ok
}

// Nodes returns the assigned node names in first-insertion order.
func (ta *TimeAssignment) Nodes() []string {
	out := make([]string, len(ta.order))
	copy(out, ta.order)

	return out
}

// Size returns the number of nodes with entries.
func (ta *TimeAssignment) Size() int { return len(ta.entries) }

// MaximumTimestamp returns the largest assigned payment time, or -Inf
// when no time has been assigned.
func (ta *TimeAssignment) MaximumTimestamp() float64 { return ta.maxTime }

// Package randgraph generates random, fully reproducible financial
// graphs and payment schedules for demos, benchmarks, and stress
// tests.
//
// Determinism policy: every generator takes a seed; seed 0 selects a
// fixed default, so the zero value still reproduces. No generator ever
// reads the clock or global RNG state.
//
// A generated graph has n nodes and, for every ordered pair of
// distinct nodes, an independent chance of carrying a contract. Each
// contract draws its principal, interest rate, and timestamp uniformly
// from configurable ranges and is continuous or periodic according to
// a configurable share. The companion TimeAssignment schedules each
// contract's payment uniformly between the graph's maximum timestamp
// and a configurable horizon beyond it, which keeps every payment
// after every admission.
package randgraph

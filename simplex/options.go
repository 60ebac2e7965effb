// SPDX-License-Identifier: MIT
// Package simplex: functional options.

package simplex

import "math"

// DefaultTolerance is the pivoting tolerance used unless WithTolerance
// overrides it.
const DefaultTolerance = 1e-9

// Option configures a single Minimize call.
type Option func(*config)

type config struct {
	tol float64
}

// WithTolerance sets the pivoting tolerance. Values that are NaN,
// infinite, or non-positive are silently ignored.
func WithTolerance(v float64) Option {
	return func(c *config) {
		if !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0 {
			c.tol = v
		}
	}
}

// SPDX-License-Identifier: MIT
// Package matrix: functional options.

package matrix

import "github.com/equicut/equicut/core"

// Option configures a Matrix at construction time.
type Option func(*Matrix)

// WithEpsilon sets the comparison tolerance used for pivot detection
// and the consistency probe. Values outside (0, 1], NaN, and infinite
// values are silently ignored and the matrix keeps the process-wide
// default, mirroring core.SetEpsilon.
func WithEpsilon(v float64) Option {
	return func(m *Matrix) {
		if core.ValidEpsilon(v) {
			m.eps = v
		}
	}
}

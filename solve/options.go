// SPDX-License-Identifier: MIT
// Package solve: functional options.

package solve

import (
	"go.uber.org/zap"

	"github.com/equicut/equicut/core"
)

// Option configures a Finder at construction time.
type Option func(*Finder)

// WithEpsilon sets the comparison tolerance this finder threads
// through its matrix and extraction phases. Values outside (0, 1] are
// silently ignored and the finder keeps the process-wide default.
func WithEpsilon(v float64) Option {
	return func(f *Finder) {
		if core.ValidEpsilon(v) {
			f.eps = v
		}
	}
}

// WithLogger installs a zap logger for phase-level diagnostics
// (matrix size, rank, phase durations at Debug). The default is a
// no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *Finder) {
		if l != nil {
			f.logger = l
		}
	}
}

// Package randgraph: functional options and defaults.

package randgraph

// Default generation parameters, used unless an option overrides them.
const (
	DefaultNodes           = 10
	DefaultEdgeProbability = 0.5
	DefaultContinuousShare = 0.5
	DefaultMinPrincipal    = 1.0
	DefaultMaxPrincipal    = 20.0
	DefaultMinRate         = 0.01
	DefaultMaxRate         = 0.25
	DefaultMinPeriods      = 1.0
	DefaultMaxPeriods      = 12.0
	DefaultMaxTimestamp    = 5.0
)

// defaultSeed is the fixed seed used when callers pass seed 0, keeping
// zero-value runs reproducible.
const defaultSeed int64 = 1

type config struct {
	nodes           int
	seed            int64
	edgeProbability float64
	continuousShare float64
	minPrincipal    float64
	maxPrincipal    float64
	minRate         float64
	maxRate         float64
	minPeriods      float64
	maxPeriods      float64
	maxTimestamp    float64
}

func defaultConfig() config {
	return config{
		nodes:           DefaultNodes,
		seed:            defaultSeed,
		edgeProbability: DefaultEdgeProbability,
		continuousShare: DefaultContinuousShare,
		minPrincipal:    DefaultMinPrincipal,
		maxPrincipal:    DefaultMaxPrincipal,
		minRate:         DefaultMinRate,
		maxRate:         DefaultMaxRate,
		minPeriods:      DefaultMinPeriods,
		maxPeriods:      DefaultMaxPeriods,
		maxTimestamp:    DefaultMaxTimestamp,
	}
}

// Option configures graph generation.
type Option func(*config)

// WithNodes sets the node count. Values below 1 are ignored.
func WithNodes(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.nodes = n
		}
	}
}

// WithSeed sets the RNG seed; 0 selects the fixed default.
func WithSeed(seed int64) Option {
	return func(c *config) {
		if seed != 0 {
			c.seed = seed
		}
	}
}

// WithEdgeProbability sets the chance that an ordered pair of distinct
// nodes carries a contract. Values outside [0, 1] are ignored.
func WithEdgeProbability(p float64) Option {
	return func(c *config) {
		if p >= 0 && p <= 1 {
			c.edgeProbability = p
		}
	}
}

// WithContinuousShare sets the fraction of contracts that compound
// continuously rather than periodically. Values outside [0, 1] are
// ignored.
func WithContinuousShare(p float64) Option {
	return func(c *config) {
		if p >= 0 && p <= 1 {
			c.continuousShare = p
		}
	}
}

// WithPrincipalRange sets the uniform range principals draw from.
// Ignored unless 0 < min ≤ max.
func WithPrincipalRange(min, max float64) Option {
	return func(c *config) {
		if min > 0 && min <= max {
			c.minPrincipal, c.maxPrincipal = min, max
		}
	}
}

// WithRateRange sets the uniform range interest rates draw from.
// Ignored unless 0 ≤ min ≤ max.
func WithRateRange(min, max float64) Option {
	return func(c *config) {
		if min >= 0 && min <= max {
			c.minRate, c.maxRate = min, max
		}
	}
}

// WithPeriodsRange sets the uniform range compounding periods draw
// from for periodic contracts. Ignored unless 0 < min ≤ max.
func WithPeriodsRange(min, max float64) Option {
	return func(c *config) {
		if min > 0 && min <= max {
			c.minPeriods, c.maxPeriods = min, max
		}
	}
}

// WithMaxTimestamp sets the upper end of the uniform [0, max] range
// contract timestamps draw from. Negative values are ignored.
func WithMaxTimestamp(max float64) Option {
	return func(c *config) {
		if max >= 0 {
			c.maxTimestamp = max
		}
	}
}

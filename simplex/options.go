package simplex

import "math"

const (
	// DefaultEpsilon is the tolerance for every comparison against zero.
	DefaultEpsilon = 1e-9

	// iterationsPerVar scales the automatic iteration limit with m+n.
	iterationsPerVar = 50
	minIterations    = 100
)

const (
	panicEpsilonInvalid = "simplex: WithEpsilon: eps must be finite and non-negative"
	panicRuleNil        = "simplex: WithRule: rule must not be nil"
)

// Options controls a Solve call. Build it through Option values.
type Options struct {
	Epsilon float64

	// MaxIterations bounds the number of pivots; 0 means
	// max(100, 50*(m+n)).
	MaxIterations int

	Rule PivotRule

	// Observer, if set, is called after every pivot.
	Observer func(Iteration)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the options Solve uses when none are given.
func DefaultOptions() Options {
	return Options{
		Epsilon: DefaultEpsilon,
		Rule:    Dantzig{},
	}
}

// WithEpsilon sets the zero tolerance. It panics on a negative or non-finite
// eps.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxIterations sets the pivot budget. n <= 0 restores the automatic
// limit.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxIterations = n
	}
}

func WithRule(r PivotRule) Option {
	if r == nil {
		panic(panicRuleNil)
	}
	return func(o *Options) { o.Rule = r }
}

func WithObserver(fn func(Iteration)) Option {
	return func(o *Options) { o.Observer = fn }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o Options) iterationLimit(m, n int) int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}
	return max(minIterations, iterationsPerVar*(m+n))
}

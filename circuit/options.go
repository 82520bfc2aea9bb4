// SPDX-License-Identifier: MIT

package circuit

import "github.com/katalvlaran/qsim/matrix"

// Option configures a Circuit.
type Option func(*Options)

// Options holds the effective Circuit configuration.
type Options struct {
	kind    matrix.Kind
	eps     float64
	logger  *Logger
	tracing bool
}

// WithKind selects the storage backend for the state and every gate.
// Panics when k is not a known matrix.Kind.
func WithKind(k matrix.Kind) Option {
	matrix.WithKind(k) // validates k
	return func(o *Options) { o.kind = k }
}

// WithEpsilon sets the equality tolerance of every Operator and Vector.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	matrix.WithEpsilon(eps) // validates eps
	return func(o *Options) { o.eps = eps }
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTrace records the target probability after every Grover iteration.
func WithTrace() Option {
	return func(o *Options) { o.tracing = true }
}

func newOptions(opts ...Option) Options {
	o := Options{
		kind:   matrix.DefaultKind,
		eps:    matrix.DefaultEpsilon,
		logger: NoopLogger(),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// matrixOptions maps the circuit configuration onto matrix options.
func (o Options) matrixOptions() []matrix.Option {
	return []matrix.Option{matrix.WithKind(o.kind), matrix.WithEpsilon(o.eps)}
}

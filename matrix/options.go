// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for backend selection and numeric
// policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - NewOptions, which resolves defaults and applies setters in order.
//
// Design goals:
//   - Deterministic behavior: no global state. The backend is chosen per call
//     site through WithKind instead of a process-wide sparsity switch.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultKind is the storage backend used when no WithKind option is given.
	DefaultKind = KindDense

	// DefaultEpsilon is the tolerance used by Equal (absolute and relative).
	// Repeated tensoring/scaling by 1/√2 accumulates error well below this.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicKindInvalid    = "matrix: WithKind: unknown storage kind"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the accessor methods.
type Options struct {
	kind           Kind    // DefaultKind
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithKind selects the storage backend for matrices built with these options.
// Panics when k is not a known Kind.
func WithKind(k Kind) Option {
	if !k.Valid() {
		panic(panicKindInvalid)
	}

	return func(o *Options) { o.kind = k }
}

// WithDense is shorthand for WithKind(KindDense).
func WithDense() Option { return WithKind(KindDense) }

// WithSparse is shorthand for WithKind(KindSparse).
func WithSparse() Option { return WithKind(KindSparse) }

// WithEpsilon sets the tolerance used by equality checks.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithNoValidateNaNInf disables NaN/Inf rejection on Set for newly created matrices.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves defaults and applies opts in order (last write wins).
// Nil setters are skipped.
func NewOptions(opts ...Option) Options {
	o := Options{
		kind:           DefaultKind,
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Kind returns the configured storage backend.
func (o Options) Kind() Kind { return o.kind }

// Epsilon returns the configured equality tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether Set rejects non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// isNonFinite reports whether any component of v is NaN or ±Inf.
func isNonFinite(v complex128) bool {
	re, im := real(v), imag(v)

	return math.IsNaN(re) || math.IsInf(re, 0) || math.IsNaN(im) || math.IsInf(im, 0)
}

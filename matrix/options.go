// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction, numeric policy,
// tolerance-based comparison and SubMatrix diagnostics. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Numeric policy is per instance: validateNaNInf is captured when a Dense
//     is created and carried by Clone/Copy/Map/T and every derived result.
//   - Exact-value semantics of Equal/IsSingular are NOT affected by eps; the
//     tolerance only drives ApproxEqual.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSize is the order of the square matrix built by New() without shape options.
	DefaultSize = 4

	// DefaultEpsilon defines the non-negative tolerance used by ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set, setters and Map.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	// shape (New only)
	rows int // DefaultSize
	cols int // DefaultSize

	// numeric policy
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf

	// diagnostics
	trace TraceFunc // nil: SubMatrix copies silently
}

// ---------- Constructors (WithX) ----------

// WithShape sets an explicit rows×cols shape for New.
// Non-positive values are not rejected here: New reports ErrInvalidDimensions,
// matching NewDense.
func WithShape(rows, cols int) Option {
	return func(o *Options) {
		o.rows = rows
		o.cols = cols
	}
}

// WithSize sets a square n×n shape for New.
func WithSize(n int) Option { return WithShape(n, n) }

// WithEpsilon sets the numeric tolerance eps used by ApproxEqual.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Equal and IsSingular stay exact; eps never leaks into them.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// Affects matrices created with these options; existing matrices keep their policy.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Allows ±Inf/NaN to be stored in newly created matrices.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithTrace installs a diagnostic hook invoked once per element copied by SubMatrix.
// A nil fn disables tracing. The hook never influences the result.
func WithTrace(fn TraceFunc) Option {
	return func(o *Options) { o.trace = fn }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Pure function; last-writer-wins for repeated setters.
// Complexity: O(k) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the effective comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		rows:           DefaultSize,
		cols:           DefaultSize,
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (last-writer-wins); nil setters are skipped.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

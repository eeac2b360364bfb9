// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the cofactor routines.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Determinant and Inverse are the only consumers. The defaults reproduce
//     the plain expansion exactly; options can only add a guard, never
//     change the expansion order or the zero-line pruning.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxOrder is the largest matrix order Determinant/Inverse accept.
	// 0 means unlimited. Cofactor expansion is O(n!), so callers running on
	// small stacks or time budgets may want a finite guard via WithMaxOrder.
	DefaultMaxOrder = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxOrderInvalid = "matrix: WithMaxOrder: n must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; construct
// it through NewMatrixOptions or pass ...Option to the consuming methods.
type Options struct {
	maxOrder int // 0 = unlimited
}

// MaxOrder returns the configured order guard (0 = unlimited).
func (o Options) MaxOrder() int { return o.maxOrder }

// WithMaxOrder rejects cofactor routines on matrices whose order exceeds n.
// Implementation:
//   - Stage 1: validate n >= 0; panic otherwise.
//   - Stage 2: return setter.
//
// Behavior highlights:
//   - n == 0 is an explicit "unlimited", same as WithUnlimitedOrder.
//   - The check runs once, at the top-level call, before any recursion.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithMaxOrder(n int) Option {
	if n < 0 {
		panic(panicMaxOrderInvalid)
	}

	return func(o *Options) { o.maxOrder = n }
}

// WithUnlimitedOrder removes the order guard (the default).
func WithUnlimitedOrder() Option {
	return func(o *Options) { o.maxOrder = 0 }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins for repeated setters.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{maxOrder: DefaultMaxOrder}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// allows reports whether a matrix of order n passes the guard.
func (o Options) allows(n int) bool {
	return o.maxOrder == 0 || n <= o.maxOrder
}

// SPDX-License-Identifier: MIT
// Package mem: functional configuration for basis construction.
// Option setters are resolved against documented defaults with
// last-writer-wins semantics; public entry points accept ...Option.

package mem

// Policy filters the eigenvalue/eigenvector pairs retained by New.
type Policy int

const (
	// NonNull keeps only strictly non-null eigenvalues (relative test,
	// see DefaultNullTol). This is the default.
	NonNull Policy = iota

	// All keeps every non-null eigenvector and, when two or more
	// eigenvalues tie at (near-)zero, exactly one representative of the
	// tie, yielding up to n-1 vectors. A lone null eigenvalue is the
	// trivial constant mode and is always dropped.
	All

	// Positive keeps only strictly positive, non-null eigenvalues
	// (positive spatial autocorrelation).
	Positive

	// Negative keeps only strictly negative, non-null eigenvalues.
	Negative

	policyCount // sentinel for validation; keep last
)

// String returns the policy tag.
func (p Policy) String() string {
	switch p {
	case NonNull:
		return "non-null"
	case All:
		return "all"
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "policy(?)"
	}
}

// DefaultNullTol is the relative tolerance of the null-eigenvalue test:
// λ is null iff |λ/λmax| < DefaultNullTol, with λmax the eigenvalue of
// largest absolute value. A ratio test is required because eigenvalue
// magnitudes scale with the weighting style; an absolute cutoff would
// silently mis-classify.
const DefaultNullTol = 1e-12

const panicNullTolInvalid = "mem: WithNullTol: tol must be in (0, 1)"

// Option mutates construction options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	rowWeights []float64
	policy     Policy
	nullTol    float64
	keepGraph  bool
}

func defaultOptions() options {
	return options{
		policy:  NonNull,
		nullTol: DefaultNullTol,
	}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, set := range opts {
		set(&o)
	}
	return o
}

// WithRowWeights sets the per-node weights of the inner product used for
// centering and orthonormalization. Default is uniform (all ones). The
// slice is validated (positive, finite, length n) at New; invalid weights
// fail with ErrInvalidWeight.
func WithRowWeights(wt []float64) Option {
	return func(o *options) { o.rowWeights = wt }
}

// WithPolicy selects the autocorrelation-sign filter applied to the
// eigenvalue/eigenvector pairs. Default NonNull.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithNullTol overrides the relative null-eigenvalue tolerance.
// Panics when tol is outside (0, 1): programmer error.
func WithNullTol(tol float64) Option {
	if !(tol > 0) || !(tol < 1) {
		panic(panicNullTolInvalid)
	}
	return func(o *options) { o.nullTol = tol }
}

// WithKeepGraph retains the source graph on the basis, enabling
// MoranFactor and Rebuild (needed whenever resampling-based significance
// testing is anticipated). Default off.
func WithKeepGraph() Option {
	return func(o *options) { o.keepGraph = true }
}

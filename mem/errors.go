// SPDX-License-Identifier: MIT
// Package mem: sentinel error set. Matched via errors.Is; every failure is
// deterministic given its input.

package mem

import "errors"

var (
	// ErrNilGraph reports a nil source graph passed to New.
	ErrNilGraph = errors.New("mem: nil source graph")

	// ErrInvalidWeight reports row weights that are missing entries,
	// non-positive, or non-finite.
	ErrInvalidWeight = errors.New("mem: row weights must be positive and finite")

	// ErrIndexOutOfRange reports a subsetting index outside the basis
	// dimensions.
	ErrIndexOutOfRange = errors.New("mem: index out of range")

	// ErrNotOrthonormal reports a basis whose columns no longer satisfy the
	// weighted orthonormality invariant (row-subsetted or column-duplicated
	// views); consumers that rely on orthogonal projections must reject it.
	ErrNotOrthonormal = errors.New("mem: basis is not orthonormal")

	// ErrNoSourceGraph reports an operation that needs the originating
	// graph (MoranFactor, Rebuild) on a basis built without WithKeepGraph.
	ErrNoSourceGraph = errors.New("mem: basis retains no source graph")

	// ErrNonUniformWeight reports a Moran-link query on a basis built with
	// non-uniform row weights; the eigenvalue-to-Moran's-I relation is then
	// column-dependent and no single constant exists.
	ErrNonUniformWeight = errors.New("mem: row weights are not uniform")
)

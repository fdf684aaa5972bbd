// SPDX-License-Identifier: MIT
// Package spweights: sentinel error set.
// All constructors and normalizers return these sentinels (possibly wrapped
// with fmt.Errorf("ctx: %w", ...) for context); callers match via errors.Is.
// Every failure here is deterministic given its input; there is no transient
// mode, so callers fix input rather than retry.

package spweights

import "errors"

var (
	// ErrInvalidGraph reports malformed input detected before any numeric
	// work: mismatched neighbor/weight list lengths, out-of-range neighbor
	// indices, negative or non-finite weights, or an unknown style.
	ErrInvalidGraph = errors.New("spweights: invalid graph input")

	// ErrDegenerateRow reports a node with neighbors whose weights sum to
	// zero, which makes row-wise normalization undefined. Isolated nodes
	// (no neighbors at all) are not degenerate; they yield all-zero rows.
	ErrDegenerateRow = errors.New("spweights: zero weight sum on non-isolated row")

	// ErrDegenerateGraph reports a graph whose weights are all zero: there
	// is no variance to normalize or decompose.
	ErrDegenerateGraph = errors.New("spweights: graph carries no weight")
)

// SPDX-License-Identifier: MIT
// Package spweights: domain types for weighted neighbor graphs.
// Graph is immutable after construction: every accessor returns copies and
// every transform (WithStyle, Reweight) returns a new value, so the same
// Graph can safely back several downstream pipelines.

package spweights

import (
	"fmt"
	"math"
)

// Style selects how raw edge weights are normalized into the influence
// matrix consumed downstream. Raw weights are never mutated; normalization
// is computed on demand by Dense and RowNormalized.
type Style int

const (
	// Binary ignores supplied weights and uses 1 for every declared edge.
	Binary Style = iota

	// RowStandardized divides each row's weights by that row's weight sum.
	RowStandardized

	// GlobalStandardized divides every weight by the grand total of all
	// weights.
	GlobalStandardized

	// VarianceStabilized divides each row's weights by the square root of
	// that row's weight sum. The result is symmetric after renormalization
	// only if the graph itself is symmetric.
	VarianceStabilized

	// MinMax divides every weight by the largest row sum.
	MinMax

	styleCount // sentinel for validation; keep last
)

// String returns the conventional short tag for the style.
func (s Style) String() string {
	switch s {
	case Binary:
		return "binary"
	case RowStandardized:
		return "row-standardized"
	case GlobalStandardized:
		return "globally-standardized"
	case VarianceStabilized:
		return "variance-stabilizing"
	case MinMax:
		return "minmax-standardized"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// Graph is an immutable weighted neighbor graph over nodes 0..n-1.
// neighbors[i] lists the neighbors of node i in caller order; weights[i] is
// parallel to neighbors[i]. The graph may be asymmetric (directed); most
// consumers symmetrize before spectral work.
type Graph struct {
	neighbors [][]int
	weights   [][]float64
	style     Style
	n         int
}

// NewGraph validates and deep-copies the given neighbor and weight lists.
//
// If weights is nil, every declared edge gets weight 1 (binary-equivalent
// input). Malformed input (mismatched list lengths, out-of-range neighbor
// indices, negative or non-finite weights, an unknown style) fails with
// ErrInvalidGraph before any numeric work begins.
//
// Complexity: O(V+E) time and space.
func NewGraph(neighbors [][]int, weights [][]float64, style Style) (*Graph, error) {
	if neighbors == nil {
		return nil, fmt.Errorf("NewGraph: nil neighbor lists: %w", ErrInvalidGraph)
	}
	if style < 0 || style >= styleCount {
		return nil, fmt.Errorf("NewGraph: unknown style %d: %w", int(style), ErrInvalidGraph)
	}
	n := len(neighbors)
	if weights != nil && len(weights) != n {
		return nil, fmt.Errorf("NewGraph: %d neighbor lists vs %d weight lists: %w",
			n, len(weights), ErrInvalidGraph)
	}

	nbrs := make([][]int, n)
	wts := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := neighbors[i]
		if weights != nil && len(weights[i]) != len(row) {
			return nil, fmt.Errorf("NewGraph: row %d has %d neighbors but %d weights: %w",
				i, len(row), len(weights[i]), ErrInvalidGraph)
		}
		nbrs[i] = make([]int, len(row))
		wts[i] = make([]float64, len(row))
		for k, j := range row {
			if j < 0 || j >= n {
				return nil, fmt.Errorf("NewGraph: row %d references node %d (n=%d): %w",
					i, j, n, ErrInvalidGraph)
			}
			nbrs[i][k] = j
			w := 1.0
			if weights != nil {
				w = weights[i][k]
			}
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return nil, fmt.Errorf("NewGraph: row %d weight %g at position %d: %w",
					i, w, k, ErrInvalidGraph)
			}
			wts[i][k] = w
		}
	}

	return &Graph{neighbors: nbrs, weights: wts, style: style, n: n}, nil
}

// NodeCount returns the number of nodes n.
func (g *Graph) NodeCount() int { return g.n }

// Style returns the normalization style tag.
func (g *Graph) Style() Style { return g.style }

// Degree returns the number of declared neighbors of node i, or 0 if i is
// out of range.
func (g *Graph) Degree(i int) int {
	if i < 0 || i >= g.n {
		return 0
	}
	return len(g.neighbors[i])
}

// Neighbors returns a copy of node i's neighbor list, or nil if i is out of
// range.
func (g *Graph) Neighbors(i int) []int {
	if i < 0 || i >= g.n {
		return nil
	}
	out := make([]int, len(g.neighbors[i]))
	copy(out, g.neighbors[i])
	return out
}

// Weights returns a copy of node i's raw weight list (parallel to
// Neighbors(i)), or nil if i is out of range.
func (g *Graph) Weights(i int) []float64 {
	if i < 0 || i >= g.n {
		return nil
	}
	out := make([]float64, len(g.weights[i]))
	copy(out, g.weights[i])
	return out
}

// WithStyle returns a graph sharing this graph's (immutable) lists but
// normalizing under a different style. O(1); the underlying slices are
// shared, which is safe because neither value ever mutates them.
func (g *Graph) WithStyle(s Style) (*Graph, error) {
	if s < 0 || s >= styleCount {
		return nil, fmt.Errorf("WithStyle: unknown style %d: %w", int(s), ErrInvalidGraph)
	}
	return &Graph{neighbors: g.neighbors, weights: g.weights, style: s, n: g.n}, nil
}

// IsSymmetric reports whether the raw graph is weight-symmetric: for every
// edge (i,j,w) there is a matching edge (j,i,w). Parallel edges are summed
// per ordered pair before comparison.
func (g *Graph) IsSymmetric() bool {
	type key struct{ u, v int }
	acc := make(map[key]float64, g.n*2)
	for i := 0; i < g.n; i++ {
		for k, j := range g.neighbors[i] {
			acc[key{i, j}] += g.weights[i][k]
		}
	}
	for k, w := range acc {
		if acc[key{k.v, k.u}] != w {
			return false
		}
	}
	return true
}

// SPDX-License-Identifier: MIT
// Package spweights: canonical lattice constructors.
//
// Contract (shared by Cycle, Path, Grid):
//   - Nodes are indexed in ascending order; edges are emitted in a stable
//     order, so repeated construction is bit-identical.
//   - All edges carry weight 1 and are mirrored (the result is symmetric).
//   - Returns only sentinel errors; never panics at runtime.
//
// These graphs serve tests and candidate families for the model-selection
// scan; production neighbor graphs come from external collaborators.

package spweights

import "fmt"

const (
	minCycleNodes = 3
	minPathNodes  = 2
	minGridSide   = 1
)

// Cycle builds the n-node simple cycle C_n with uniform weights.
// n must be at least 3, else ErrInvalidGraph.
func Cycle(n int, style Style) (*Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrInvalidGraph)
	}
	nbrs := make([][]int, n)
	for i := 0; i < n; i++ {
		nbrs[i] = []int{(i - 1 + n) % n, (i + 1) % n}
	}
	return NewGraph(nbrs, nil, style)
}

// Path builds the n-node path P_n with uniform weights.
// n must be at least 2, else ErrInvalidGraph.
func Path(n int, style Style) (*Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrInvalidGraph)
	}
	nbrs := make([][]int, n)
	for i := 0; i < n; i++ {
		switch i {
		case 0:
			nbrs[i] = []int{1}
		case n - 1:
			nbrs[i] = []int{n - 2}
		default:
			nbrs[i] = []int{i - 1, i + 1}
		}
	}
	return NewGraph(nbrs, nil, style)
}

// Grid builds the r×c rook-adjacency lattice (4-neighborhood) with uniform
// weights. Node (i,j) has index i*c+j. Both sides must be at least 1 and
// the lattice must have at least 2 nodes, else ErrInvalidGraph.
func Grid(r, c int, style Style) (*Graph, error) {
	if r < minGridSide || c < minGridSide || r*c < 2 {
		return nil, fmt.Errorf("Grid: %dx%d lattice too small: %w", r, c, ErrInvalidGraph)
	}
	nbrs := make([][]int, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			id := i*c + j
			var row []int
			if i > 0 {
				row = append(row, id-c)
			}
			if j > 0 {
				row = append(row, id-1)
			}
			if j < c-1 {
				row = append(row, id+1)
			}
			if i < r-1 {
				row = append(row, id+c)
			}
			nbrs[id] = row
		}
	}
	return NewGraph(nbrs, nil, style)
}

// SPDX-License-Identifier: MIT
// Package spweights: on-demand style normalization.
// Normalization never mutates the graph and is never cached destructively;
// Dense and RowNormalized recompute from the raw lists each call.

package spweights

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// effective returns the raw weight of edge slot k on row i under the
// current style (Binary replaces stored weights with 1).
func (g *Graph) effective(i, k int) float64 {
	if g.style == Binary {
		return 1
	}
	return g.weights[i][k]
}

// rowSums returns the per-row sums of effective weights and their grand
// total. O(E).
func (g *Graph) rowSums() (rows []float64, total float64) {
	rows = make([]float64, g.n)
	for i := 0; i < g.n; i++ {
		for k := range g.neighbors[i] {
			rows[i] += g.effective(i, k)
		}
		total += rows[i]
	}
	return rows, total
}

// rowScale returns the divisor applied to row i under the current style.
// rows/total/maxRow come from rowSums; the caller has already rejected a
// zero grand total.
func (g *Graph) rowScale(i int, rows []float64, total, maxRow float64) (float64, error) {
	switch g.style {
	case Binary:
		return 1, nil
	case RowStandardized:
		if rows[i] == 0 && len(g.neighbors[i]) > 0 {
			return 0, fmt.Errorf("row %d: %w", i, ErrDegenerateRow)
		}
		if rows[i] == 0 {
			return 1, nil // isolated node, all-zero row
		}
		return rows[i], nil
	case VarianceStabilized:
		if rows[i] == 0 && len(g.neighbors[i]) > 0 {
			return 0, fmt.Errorf("row %d: %w", i, ErrDegenerateRow)
		}
		if rows[i] == 0 {
			return 1, nil
		}
		return math.Sqrt(rows[i]), nil
	case GlobalStandardized:
		return total, nil
	case MinMax:
		return maxRow, nil
	}
	return 0, fmt.Errorf("style %v: %w", g.style, ErrInvalidGraph)
}

// RowSums returns the per-row sums of effective weights (under Binary each
// declared edge counts as 1). Isolated nodes sum to zero.
func (g *Graph) RowSums() []float64 {
	rows, _ := g.rowSums()
	return rows
}

// Dense materializes the n×n normalized influence matrix W under the
// graph's style. Parallel edges accumulate into the same cell. The matrix
// is freshly allocated on every call.
//
// Errors: ErrDegenerateGraph when all effective weights are zero,
// ErrDegenerateRow when a row-wise style meets a non-isolated zero-sum row.
//
// Complexity: O(n²) space, O(n²+E) time.
func (g *Graph) Dense() (*mat.Dense, error) {
	rows, total := g.rowSums()
	if total == 0 {
		return nil, fmt.Errorf("Dense: %w", ErrDegenerateGraph)
	}
	maxRow := 0.0
	for _, r := range rows {
		if r > maxRow {
			maxRow = r
		}
	}

	w := mat.NewDense(g.n, g.n, nil)
	for i := 0; i < g.n; i++ {
		scale, err := g.rowScale(i, rows, total, maxRow)
		if err != nil {
			return nil, fmt.Errorf("Dense: %w", err)
		}
		for k, j := range g.neighbors[i] {
			w.Set(i, j, w.At(i, j)+g.effective(i, k)/scale)
		}
	}
	return w, nil
}

// RowNormalized returns node i's normalized weights, parallel to
// Neighbors(i). Same degeneracy rules as Dense.
func (g *Graph) RowNormalized(i int) ([]float64, error) {
	if i < 0 || i >= g.n {
		return nil, fmt.Errorf("RowNormalized: node %d (n=%d): %w", i, g.n, ErrInvalidGraph)
	}
	rows, total := g.rowSums()
	if total == 0 {
		return nil, fmt.Errorf("RowNormalized: %w", ErrDegenerateGraph)
	}
	maxRow := 0.0
	for _, r := range rows {
		if r > maxRow {
			maxRow = r
		}
	}
	scale, err := g.rowScale(i, rows, total, maxRow)
	if err != nil {
		return nil, fmt.Errorf("RowNormalized: %w", err)
	}
	out := make([]float64, len(g.neighbors[i]))
	for k := range g.neighbors[i] {
		out[k] = g.effective(i, k) / scale
	}
	return out, nil
}

// TotalWeight returns S0, the sum of all normalized weights. This is the
// graph-dependent constant that, together with the node count, links basis
// eigenvalues to Moran's I (see mem.Basis.MoranFactor).
func (g *Graph) TotalWeight() (float64, error) {
	rows, total := g.rowSums()
	if total == 0 {
		return 0, fmt.Errorf("TotalWeight: %w", ErrDegenerateGraph)
	}
	maxRow := 0.0
	for _, r := range rows {
		if r > maxRow {
			maxRow = r
		}
	}
	s0 := 0.0
	for i := 0; i < g.n; i++ {
		scale, err := g.rowScale(i, rows, total, maxRow)
		if err != nil {
			return 0, fmt.Errorf("TotalWeight: %w", err)
		}
		for k := range g.neighbors[i] {
			s0 += g.effective(i, k) / scale
		}
	}
	return s0, nil
}

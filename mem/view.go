// SPDX-License-Identifier: MIT
// Package mem: attribute-consistent subsetting of a Basis.
//
// Every view operation returns a new Basis; the receiver is never mutated.
// Column views keep eigenvalues, row weights and the source graph aligned
// with the surviving columns. Row views break weighted orthonormality and
// are tagged accordingly so projection-based consumers can refuse them.

package mem

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Subset returns a basis restricted to the given columns, in the given
// order. Eigenvalues, row weights, graph and notes travel with the view.
// Repeated column indices are allowed but clear the orthonormal flag
// (duplicated columns are trivially collinear).
//
// Errors: ErrIndexOutOfRange.
func (b *Basis) Subset(cols ...int) (*Basis, error) {
	for _, k := range cols {
		if k < 0 || k >= b.Len() {
			return nil, fmt.Errorf("Subset: column %d of %d: %w", k, b.Len(), ErrIndexOutOfRange)
		}
	}

	n := b.NodeCount()
	eigen := make([]float64, len(cols))
	var vecs *mat.Dense
	if len(cols) > 0 {
		vecs = mat.NewDense(n, len(cols), nil)
	}
	seen := make(map[int]bool, len(cols))
	dup := false
	for c, k := range cols {
		if seen[k] {
			dup = true
		}
		seen[k] = true
		eigen[c] = b.eigen[k]
		for i := 0; i < n; i++ {
			vecs.Set(i, c, b.vectors.At(i, k))
		}
	}

	return &Basis{
		vectors: vecs,
		eigen:   eigen,
		rowWt:   append([]float64(nil), b.rowWt...),
		graph:   b.graph,
		ortho:   b.ortho && !dup,
		notes:   append([]string(nil), b.notes...),
		policy:  b.policy,
		nullTol: b.nullTol,
	}, nil
}

// SubsetRows returns a basis restricted to the given node rows, in the
// given order. Row restriction invalidates weighted orthonormality, so the
// result is tagged non-orthonormal, and the source graph is dropped (its
// topology no longer matches the surviving rows). Eigenvalues are kept for
// reference but no longer equal the Rayleigh quotients of the truncated
// columns.
//
// Errors: ErrIndexOutOfRange.
func (b *Basis) SubsetRows(rows ...int) (*Basis, error) {
	n := b.NodeCount()
	for _, i := range rows {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("SubsetRows: row %d of %d: %w", i, n, ErrIndexOutOfRange)
		}
	}

	p := b.Len()
	wt := make([]float64, len(rows))
	var vecs *mat.Dense
	if p > 0 && len(rows) > 0 {
		vecs = mat.NewDense(len(rows), p, nil)
	}
	for r, i := range rows {
		wt[r] = b.rowWt[i]
		for c := 0; c < p; c++ {
			vecs.Set(r, c, b.vectors.At(i, c))
		}
	}

	return &Basis{
		vectors: vecs,
		eigen:   append([]float64(nil), b.eigen...),
		rowWt:   wt,
		graph:   nil,
		ortho:   false,
		notes:   append([]string(nil), b.notes...),
		policy:  b.policy,
		nullTol: b.nullTol,
	}, nil
}

// Take selects columns like Subset and optionally collapses the result.
// With drop set and exactly one column selected, the column is returned as
// a plain vector copy and the basis result is nil; in every other case the
// vector result is nil and Take behaves exactly like Subset.
//
// Errors: ErrIndexOutOfRange.
func (b *Basis) Take(drop bool, cols ...int) (*Basis, []float64, error) {
	if drop && len(cols) == 1 {
		v, err := b.Vector(cols[0])
		if err != nil {
			return nil, nil, fmt.Errorf("Take: %w", err)
		}
		return nil, v, nil
	}
	sub, err := b.Subset(cols...)
	if err != nil {
		return nil, nil, fmt.Errorf("Take: %w", err)
	}
	return sub, nil, nil
}

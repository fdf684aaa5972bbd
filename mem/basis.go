// SPDX-License-Identifier: MIT
// Package mem: basis construction (the MEM engine).
//
// Purpose:
//   - Turn a spweights.Graph plus row weights and a selection policy into an
//     orthonormal eigenvector basis with attached eigenvalues.
//
// Determinism:
//   - No randomness anywhere; identical input yields bit-identical output.
//   - Eigenpairs are ordered by descending eigenvalue; ties keep the
//     solver's deterministic order.
//
// Complexity:
//   - Time O(n³) (dense symmetric eigendecomposition), Space O(n²).

package mem

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/spatialkit/memgo/spweights"
)

// Basis is an immutable orthonormal spatial/temporal predictor set.
// Columns are unit-norm under the wt-weighted inner product
// Σᵢ wt[i]·u[i]·v[i] and ordered by descending eigenvalue.
type Basis struct {
	vectors *mat.Dense // n×p column store; nil when p == 0
	eigen   []float64  // descending, one per column
	rowWt   []float64  // length n, positive
	graph   *spweights.Graph
	ortho   bool
	notes   []string

	// retained construction parameters, so Rebuild reproduces the policy
	policy  Policy
	nullTol float64
}

// New builds an eigenbasis from g under the given options.
//
// Algorithm: materialize the style-normalized matrix W, symmetrize to
// (W+Wᵀ)/2, double-center under the row weights, eigendecompose, classify
// near-zero eigenvalues with the relative null test, filter by policy, and
// rescale retained vectors to unit weighted norm. See the package comment
// for the full contract.
//
// Errors: ErrNilGraph, ErrInvalidWeight, and the spweights sentinels
// surfaced by normalization (ErrDegenerateGraph, ErrDegenerateRow,
// ErrInvalidGraph).
func New(g *spweights.Graph, opts ...Option) (*Basis, error) {
	if g == nil {
		return nil, fmt.Errorf("New: %w", ErrNilGraph)
	}
	o := gatherOptions(opts...)
	n := g.NodeCount()

	wt := o.rowWeights
	if wt == nil {
		wt = make([]float64, n)
		for i := range wt {
			wt[i] = 1
		}
	}
	if len(wt) != n {
		return nil, fmt.Errorf("New: %d row weights for %d nodes: %w", len(wt), n, ErrInvalidWeight)
	}
	wtSum := 0.0
	for i, w := range wt {
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return nil, fmt.Errorf("New: row weight %g at node %d: %w", w, i, ErrInvalidWeight)
		}
		wtSum += w
	}

	w, err := g.Dense()
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	// Symmetrize: Ws = (W + Wᵀ)/2. Exact no-op for symmetric input.
	ws := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ws[i*n+j] = (w.At(i, j) + w.At(j, i)) / 2
		}
	}

	// Double-center under the normalized weights w̄ = wt/Σwt:
	// B[i,j] = Ws[i,j] - r[i] - r[j] + g0, with r the w̄-weighted row means
	// and g0 the w̄-weighted grand mean. This puts the constant vector of
	// the wt-inner product in the null space.
	wbar := make([]float64, n)
	for i := range wbar {
		wbar[i] = wt[i] / wtSum
	}
	r := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r[i] += wbar[j] * ws[i*n+j]
		}
	}
	g0 := 0.0
	for i := 0; i < n; i++ {
		g0 += wbar[i] * r[i]
	}

	// Conjugate by √wt so plain-orthonormal eigenvectors of the symmetric
	// operator map to wt-orthonormal basis columns. With uniform unit
	// weights this is the identity and eigenvalues keep the classic scale
	// (within [-1,1] for a symmetric row-standardized graph).
	sq := make([]float64, n)
	for i := range sq {
		sq[i] = math.Sqrt(wt[i])
	}
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			b := ws[i*n+j] - r[i] - r[j] + g0
			m.SetSym(i, j, sq[i]*b*sq[j])
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(m, true); !ok {
		return nil, fmt.Errorf("New: eigendecomposition failed on %d-node operator: %w",
			n, spweights.ErrDegenerateGraph)
	}
	vals := eig.Values(nil) // ascending
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Descending order; the reversal is the only reordering applied.
	order := make([]int, n)
	for i := range order {
		order[i] = n - 1 - i
	}

	maxAbs := 0.0
	for _, v := range vals {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		return nil, fmt.Errorf("New: centered operator has empty spectrum: %w",
			spweights.ErrDegenerateGraph)
	}

	isNull := func(v float64) bool { return math.Abs(v)/maxAbs < o.nullTol }

	nullTotal := 0
	for _, v := range vals {
		if isNull(v) {
			nullTotal++
		}
	}

	var keep []int
	var notes []string
	nullSeen := 0
	for _, idx := range order {
		v := vals[idx]
		switch {
		case isNull(v):
			nullSeen++
			// A lone null is the trivial constant mode removed by the
			// centering step and is always dropped; a representative
			// survives only when several eigenvalues tie at (near-)zero.
			if o.policy == All && nullTotal > 1 && nullSeen == 1 && len(keep) < n-1 {
				keep = append(keep, idx)
			}
		case o.policy == Positive && v <= 0:
		case o.policy == Negative && v >= 0:
		default:
			keep = append(keep, idx)
		}
	}
	if o.policy == All && nullTotal > 1 {
		notes = append(notes,
			fmt.Sprintf("all policy: %d near-zero eigenvalues collapsed to one representative", nullTotal))
	}

	// Retained pairs stay in descending eigenvalue order (keep preserves
	// the order traversal). Rescale each vector to unit wt-norm.
	p := len(keep)
	eigenOut := make([]float64, p)
	var cols *mat.Dense
	if p > 0 {
		cols = mat.NewDense(n, p, nil)
		for c, idx := range keep {
			eigenOut[c] = vals[idx]
			norm := 0.0
			u := make([]float64, n)
			for i := 0; i < n; i++ {
				u[i] = vecs.At(i, idx) / sq[i]
				norm += wt[i] * u[i] * u[i]
			}
			norm = math.Sqrt(norm)
			for i := 0; i < n; i++ {
				cols.Set(i, c, u[i]/norm)
			}
		}
	}

	b := &Basis{
		vectors: cols,
		eigen:   eigenOut,
		rowWt:   append([]float64(nil), wt...),
		ortho:   true,
		notes:   notes,
		policy:  o.policy,
		nullTol: o.nullTol,
	}
	if o.keepGraph {
		b.graph = g
	}
	return b, nil
}

// NodeCount returns the number of rows (nodes) per column.
func (b *Basis) NodeCount() int { return len(b.rowWt) }

// Len returns the number of retained columns.
func (b *Basis) Len() int { return len(b.eigen) }

// Orthonormal reports whether the weighted orthonormality invariant holds.
// Row-subsetted and column-duplicated views are tagged false.
func (b *Basis) Orthonormal() bool { return b.ortho }

// Eigenvalues returns a copy of the per-column eigenvalues, descending.
func (b *Basis) Eigenvalues() []float64 {
	return append([]float64(nil), b.eigen...)
}

// Eigenvalue returns the eigenvalue attached to column k.
func (b *Basis) Eigenvalue(k int) (float64, error) {
	if k < 0 || k >= len(b.eigen) {
		return 0, fmt.Errorf("Eigenvalue: column %d of %d: %w", k, len(b.eigen), ErrIndexOutOfRange)
	}
	return b.eigen[k], nil
}

// RowWeights returns a copy of the per-node weight vector.
func (b *Basis) RowWeights() []float64 {
	return append([]float64(nil), b.rowWt...)
}

// SourceGraph returns the originating graph, or nil when the basis was
// built without WithKeepGraph.
func (b *Basis) SourceGraph() *spweights.Graph { return b.graph }

// Notes returns non-fatal construction notes (e.g. collapsed null ties).
func (b *Basis) Notes() []string {
	return append([]string(nil), b.notes...)
}

// Vector returns a copy of column k. Node (row) order is the graph's node
// order; it is never permuted internally.
func (b *Basis) Vector(k int) ([]float64, error) {
	if k < 0 || k >= len(b.eigen) {
		return nil, fmt.Errorf("Vector: column %d of %d: %w", k, len(b.eigen), ErrIndexOutOfRange)
	}
	n := b.NodeCount()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = b.vectors.At(i, k)
	}
	return out, nil
}

// Matrix returns a fresh n×p dense copy of the basis columns, or nil when
// the basis is empty.
func (b *Basis) Matrix() *mat.Dense {
	if b.Len() == 0 {
		return nil
	}
	out := mat.NewDense(b.NodeCount(), b.Len(), nil)
	out.Copy(b.vectors)
	return out
}

// MoranFactor returns the constant by which a column's eigenvalue is
// multiplied to obtain Moran's I of that column under the source graph:
// n/(S0·c), with S0 the total normalized weight and c the common row
// weight. The single-constant link exists only under uniform row weights;
// non-uniform weights couple the spectrum to the weight vector per column
// and fail with ErrNonUniformWeight. Requires WithKeepGraph.
func (b *Basis) MoranFactor() (float64, error) {
	if b.graph == nil {
		return 0, fmt.Errorf("MoranFactor: %w", ErrNoSourceGraph)
	}
	c := b.rowWt[0]
	for i, w := range b.rowWt {
		if w != c {
			return 0, fmt.Errorf("MoranFactor: weight %g at node %d differs from %g: %w",
				w, i, c, ErrNonUniformWeight)
		}
	}
	s0, err := b.graph.TotalWeight()
	if err != nil {
		return 0, fmt.Errorf("MoranFactor: %w", err)
	}
	return float64(b.NodeCount()) / (s0 * c), nil
}

// Rebuild reconstructs the basis from the retained source graph under new
// row weights, keeping the original policy and null tolerance. This is the
// supported route for resampling: permute the weights/node emphasis and
// rebuild, rather than permuting already-orthonormalized vectors in place.
func (b *Basis) Rebuild(wt []float64) (*Basis, error) {
	if b.graph == nil {
		return nil, fmt.Errorf("Rebuild: %w", ErrNoSourceGraph)
	}
	opts := []Option{WithPolicy(b.policy), WithNullTol(b.nullTol), WithKeepGraph()}
	if wt != nil {
		opts = append(opts, WithRowWeights(wt))
	}
	return New(b.graph, opts...)
}

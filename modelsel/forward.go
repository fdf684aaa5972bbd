// Package modelsel: forward selection over a weighted-orthonormal basis.

package modelsel

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/spatialkit/memgo/mem"
)

// DefaultCenteredTol bounds the weighted mean (relative to the column's
// largest magnitude) below which a response column counts as centered.
// Columns beyond it still work (the intercept absorbs the mean), but a
// warning is recorded since it usually signals unprepared data.
const DefaultCenteredTol = 1e-8

// Forward ranks the columns of b by explanatory contribution against the
// response matrix y (n rows in basis node order, one column per response
// variable) and selects the AICc-minimal nested model.
//
// Contributions are exact single-pass projections: because the basis is
// orthonormal under its row weights, a column's residual reduction does not
// depend on which other columns are present. RSS is joint across response
// columns, measured in the weighted norm; AICc uses the small-sample
// correction n·ln(RSS/n) + 2(k+1)n/(n-k-2) and is NaN where the correction
// denominator is non-positive.
//
// Errors: ErrNilInput, ErrEmptyBasis, ErrResponseShape, and
// mem.ErrNotOrthonormal for bases whose projection invariant is broken
// (row-subsetted or column-duplicated views).
func Forward(b *mem.Basis, y *mat.Dense) (*Result, error) {
	if b == nil || y == nil {
		return nil, fmt.Errorf("Forward: %w", ErrNilInput)
	}
	if b.Len() == 0 {
		return nil, fmt.Errorf("Forward: %w", ErrEmptyBasis)
	}
	if !b.Orthonormal() {
		return nil, fmt.Errorf("Forward: projections require an orthonormal basis: %w",
			mem.ErrNotOrthonormal)
	}

	n := b.NodeCount()
	rows, m := y.Dims()
	if rows != n {
		return nil, fmt.Errorf("Forward: %d response rows for %d nodes: %w",
			rows, n, ErrResponseShape)
	}
	if m == 0 {
		return nil, fmt.Errorf("Forward: response has no columns: %w", ErrResponseShape)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if v := y.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("Forward: non-finite response at (%d,%d): %w",
					i, j, ErrResponseShape)
			}
		}
	}

	wt := b.RowWeights()
	wtSum := 0.0
	for _, w := range wt {
		wtSum += w
	}

	// Weighted column means: the intercept of every nested model. Columns
	// whose mean is materially non-zero get a diagnostic.
	var warnings []string
	ybar := make([]float64, m)
	for j := 0; j < m; j++ {
		mean, scale := 0.0, 0.0
		for i := 0; i < n; i++ {
			mean += wt[i] * y.At(i, j)
			if a := math.Abs(y.At(i, j)); a > scale {
				scale = a
			}
		}
		mean /= wtSum
		ybar[j] = mean
		if scale == 0 {
			scale = 1
		}
		if math.Abs(mean)/scale > DefaultCenteredTol {
			warnings = append(warnings,
				fmt.Sprintf("response column %d is not centered under the row weights (mean %.6g); intercept absorbed", j, mean))
		}
	}

	// Null-model RSS in the weighted norm, joint across response columns.
	rss0 := 0.0
	for j := 0; j < m; j++ {
		for i := 0; i < n; i++ {
			d := y.At(i, j) - ybar[j]
			rss0 += wt[i] * d * d
		}
	}

	// Per-column contribution: squared projection coefficient summed over
	// response columns. Basis columns are weighted-centered, so the raw y
	// can be projected directly.
	p := b.Len()
	contrib := make([]float64, p)
	for k := 0; k < p; k++ {
		u, err := b.Vector(k)
		if err != nil {
			return nil, fmt.Errorf("Forward: %w", err)
		}
		for j := 0; j < m; j++ {
			c := 0.0
			for i := 0; i < n; i++ {
				c += wt[i] * u[i] * y.At(i, j)
			}
			contrib[k] += c * c
		}
	}

	ordering := make([]int, p)
	for k := range ordering {
		ordering[k] = k
	}
	// Stable sort: equal contributions keep original column order, i.e.
	// descending-eigenvalue order.
	sort.SliceStable(ordering, func(i, j int) bool {
		return contrib[ordering[i]] > contrib[ordering[j]]
	})

	rss := make([]float64, p+1)
	rss[0] = rss0
	for k := 1; k <= p; k++ {
		rss[k] = rss[k-1] - contrib[ordering[k-1]]
		if rss[k] < 0 { // float cancellation near a perfect fit
			rss[k] = 0
		}
	}

	nf := float64(n)
	aicc := make([]float64, p+1)
	for k := 0; k <= p; k++ {
		denom := nf - float64(k) - 2
		if denom <= 0 {
			aicc[k] = math.NaN()
			continue
		}
		aicc[k] = nf*math.Log(rss[k]/nf) + 2*float64(k+1)*nf/denom
	}

	best := -1
	for k := 0; k <= p; k++ {
		if math.IsNaN(aicc[k]) {
			continue
		}
		if best < 0 || aicc[k] < aicc[best] {
			best = k
		}
	}
	if best < 0 {
		// Every entry undefined: n too small for even the null correction.
		return nil, fmt.Errorf("Forward: %d observations leave no defined AICc entry: %w",
			n, ErrResponseShape)
	}

	return &Result{
		Ordering: ordering,
		RSS:      rss,
		AICc:     aicc,
		Best:     best,
		BestCols: append([]int(nil), ordering[:best]...),
		Warnings: warnings,
	}, nil
}

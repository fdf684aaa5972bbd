// SPDX-License-Identifier: MIT
// Package spweights: distance-decay weight functions.
// A WeightFn turns a stored edge distance into an edge weight. The usual
// workflow keeps one graph whose raw weights are distances and derives a
// family of candidate graphs by scanning a decay parameter (see
// modelsel.Generate). Constructors panic on nonsensical parameters
// (programmer error); Reweight returns sentinel errors on bad data.

package spweights

import (
	"fmt"
	"math"
)

// WeightFn maps an edge distance to an edge weight. Implementations must be
// pure and deterministic; Reweight rejects negative or non-finite outputs.
type WeightFn func(d float64) float64

const (
	panicLinearDecayDmax = "spweights: LinearDecay: dmax must be finite and > 0"
	panicPowerDecayParam = "spweights: PowerDecay: require dmax > 0 and alpha > 0, both finite"
	panicExpDecayAlpha   = "spweights: ExpDecay: alpha must be finite and > 0"
)

// LinearDecay returns f(d) = 1 - d/dmax, clipped at 0 for d beyond dmax.
// Panics if dmax is not finite and positive.
func LinearDecay(dmax float64) WeightFn {
	if !(dmax > 0) || math.IsInf(dmax, 0) {
		panic(panicLinearDecayDmax)
	}
	return func(d float64) float64 {
		w := 1 - d/dmax
		if w < 0 {
			return 0
		}
		return w
	}
}

// PowerDecay returns f(d) = 1 - (d/dmax)^alpha, clipped at 0 for d beyond
// dmax. alpha is the exponent typically scanned by the model-selection
// search. Panics if dmax or alpha is not finite and positive.
func PowerDecay(dmax, alpha float64) WeightFn {
	if !(dmax > 0) || !(alpha > 0) || math.IsInf(dmax, 0) || math.IsInf(alpha, 0) {
		panic(panicPowerDecayParam)
	}
	return func(d float64) float64 {
		w := 1 - math.Pow(d/dmax, alpha)
		if w < 0 {
			return 0
		}
		return w
	}
}

// ExpDecay returns f(d) = exp(-alpha*d). Panics if alpha is not finite and
// positive.
func ExpDecay(alpha float64) WeightFn {
	if !(alpha > 0) || math.IsInf(alpha, 0) {
		panic(panicExpDecayAlpha)
	}
	return func(d float64) float64 {
		return math.Exp(-alpha * d)
	}
}

// Reweight returns a new graph with fn applied to every stored weight
// (interpreted as a distance). Topology, style and node order are
// preserved; the receiver is not modified.
//
// Errors: ErrInvalidGraph if fn is nil or produces a negative or
// non-finite weight.
func (g *Graph) Reweight(fn WeightFn) (*Graph, error) {
	if fn == nil {
		return nil, fmt.Errorf("Reweight: nil weight function: %w", ErrInvalidGraph)
	}
	wts := make([][]float64, g.n)
	for i := 0; i < g.n; i++ {
		wts[i] = make([]float64, len(g.weights[i]))
		for k, d := range g.weights[i] {
			w := fn(d)
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return nil, fmt.Errorf("Reweight: row %d distance %g mapped to %g: %w",
					i, d, w, ErrInvalidGraph)
			}
			wts[i][k] = w
		}
	}
	return NewGraph(g.neighbors, wts, g.style)
}

// Package modelsel: candidate-family scan over weight graphs.

package modelsel

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/spatialkit/memgo/mem"
	"github.com/spatialkit/memgo/spweights"
)

// Scan evaluates every candidate graph sequentially: build its eigenbasis
// under opts, run Forward against y, and rank candidates by the best AICc
// each attains. Candidates that fail to produce a usable basis (degenerate
// graph, empty basis under the requested policy) are recorded with their
// error and skipped by the ranking; ties resolve to the earliest candidate.
//
// Errors: ErrNoCandidates when cands is empty or every candidate failed,
// ErrNilInput when y is nil. Shape errors of y surface from the first
// evaluated candidate.
func Scan(cands []Candidate, y *mat.Dense, opts ...mem.Option) (*ScanResult, error) {
	if len(cands) == 0 {
		return nil, fmt.Errorf("Scan: %w", ErrNoCandidates)
	}
	if y == nil {
		return nil, fmt.Errorf("Scan: %w", ErrNilInput)
	}

	scores := make([]CandidateScore, len(cands))
	best := -1
	for i, c := range cands {
		scores[i] = CandidateScore{Name: c.Name}

		b, err := mem.New(c.Graph, opts...)
		if err != nil {
			scores[i].Err = fmt.Errorf("candidate %q: %w", c.Name, err)
			continue
		}
		res, err := Forward(b, y)
		if err != nil {
			scores[i].Err = fmt.Errorf("candidate %q: %w", c.Name, err)
			continue
		}

		scores[i].Result = res
		scores[i].AICc = res.AICc[res.Best]
		if best < 0 || scores[i].AICc < scores[best].AICc {
			best = i
		}
	}
	if best < 0 {
		return nil, fmt.Errorf("Scan: all %d candidates failed: %w", len(cands), ErrNoCandidates)
	}

	return &ScanResult{BestIndex: best, Scores: scores}, nil
}

// Generate builds a parameterized candidate family by applying gen to every
// value in params, naming each candidate "name[param]". A typical gen wraps
// spweights.Reweight with a decay function of the scanned parameter.
//
// Errors: ErrNoCandidates for an empty parameter list; gen failures are
// returned as-is with the offending parameter wrapped in.
func Generate(name string, params []float64, gen func(float64) (*spweights.Graph, error)) ([]Candidate, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("Generate: %w", ErrNoCandidates)
	}
	if gen == nil {
		return nil, fmt.Errorf("Generate: %w", ErrNilInput)
	}
	out := make([]Candidate, 0, len(params))
	for _, p := range params {
		g, err := gen(p)
		if err != nil {
			return nil, fmt.Errorf("Generate: %s at %g: %w", name, p, err)
		}
		out = append(out, Candidate{Name: fmt.Sprintf("%s[%g]", name, p), Graph: g})
	}
	return out, nil
}

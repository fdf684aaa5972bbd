// Package modelsel: result and candidate types. Results are plain value
// carriers; all invariants are established by Forward and Scan.

package modelsel

import "github.com/spatialkit/memgo/spweights"

// Result describes one forward-selection run over a single basis.
//
// Ordering lists basis column indices by decreasing explanatory
// contribution. RSS and AICc are indexed by model size k = 0..len(Ordering):
// entry k describes the model built from the first k columns of Ordering,
// with k = 0 the intercept-only null model. AICc entries are NaN where the
// small-sample correction is undefined (n - k - 2 <= 0); NaN entries never
// win the minimum.
type Result struct {
	Ordering []int
	RSS      []float64
	AICc     []float64

	// Best is the model size minimizing AICc over its defined entries;
	// ties resolve to the smallest size. BestCols = Ordering[:Best].
	Best     int
	BestCols []int

	// Warnings carries non-fatal data diagnostics, e.g. response columns
	// that are not centered under the basis row weights.
	Warnings []string
}

// Candidate names one weight graph entered into a Scan.
type Candidate struct {
	Name  string
	Graph *spweights.Graph
}

// CandidateScore is the per-candidate outcome of a Scan. Err is non-nil
// when the candidate could not be evaluated (degenerate graph, empty basis
// under the requested policy); such candidates are skipped by the ranking.
type CandidateScore struct {
	Name   string
	AICc   float64 // best AICc of the candidate's forward run
	Result *Result
	Err    error
}

// ScanResult ranks a candidate family. BestIndex points into Scores at the
// candidate whose best model attains the globally smallest AICc; ties
// resolve to the earliest candidate.
type ScanResult struct {
	BestIndex int
	Scores    []CandidateScore
}

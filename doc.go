// Package memgo builds orthogonal spatial/temporal eigenvector bases
// (Moran's Eigenvector Maps) from weighted neighbor graphs and selects,
// among competing graph definitions, the basis that best explains a
// multivariate response.
//
// The pipeline is organized under three subpackages:
//
//	spweights/ : weighted neighbor graphs, normalization styles (binary,
//	             row-standardized, globally-standardized, variance-stabilizing,
//	             minmax), distance-decay weight functions and lattice helpers
//	mem/       : the eigenbasis engine: symmetrize, double-center under row
//	             weights, eigendecompose, filter by autocorrelation sign,
//	             plus attribute-preserving subsetting views
//	modelsel/  : AICc forward selection over a basis and graph-family scans
//
// A typical run:
//
//	g, _ := spweights.Cycle(20, spweights.RowStandardized)
//	b, _ := mem.New(g, mem.WithPolicy(mem.Positive), mem.WithKeepGraph())
//	res, _ := modelsel.Forward(b, response)
//
// Every transform returns a new value; graphs and bases are immutable after
// construction, so the same graph can back several differently-styled
// matrices and the same basis can back several selections.
package memgo

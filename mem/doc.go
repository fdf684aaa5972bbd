// Package mem turns a weighted neighbor graph into an orthonormal
// eigenvector basis (Moran's Eigenvector Maps).
//
// Construction (New) follows a fixed pipeline:
//
//  1. Materialize the normalized weight matrix W (spweights styles).
//  2. Symmetrize: Ws = (W + Wᵀ)/2, a deterministic no-op for symmetric
//     input; asymmetric input is accepted but the returned spectrum is that
//     of the symmetrized operator.
//  3. Double-center under the row weights wt, projecting out the constant
//     vector of the wt-weighted inner product.
//  4. Eigendecompose the resulting symmetric operator; sort descending.
//  5. Classify near-zero eigenvalues with a relative test,
//     |λi/λmax| < tolerance, so the classification is invariant to the
//     weighting style's overall scale.
//  6. Filter by the autocorrelation policy (All, NonNull, Positive,
//     Negative) and rescale every retained vector to unit wt-weighted norm.
//
// The resulting Basis is immutable; subsetting (Subset, SubsetRows, Take)
// derives new attribute-consistent values and never mutates in place.
// Eigenvalues are proportional to Moran's I of the corresponding vectors;
// MoranFactor exposes the graph-dependent constant.
package mem

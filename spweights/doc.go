// Package spweights holds weighted neighbor graphs and their normalization
// styles.
//
// The spweights package provides:
//
//   - Graph, an immutable per-node neighbor/weight list structure consumed by
//     the mem eigenbasis engine.
//   - Five normalization styles (Binary, RowStandardized, GlobalStandardized,
//     VarianceStabilized, MinMax) applied on demand, never destructively, so
//     one Graph can back several differently-styled matrices.
//   - Distance-decay weight functions (LinearDecay, PowerDecay, ExpDecay) for
//     turning stored distances into weights, typically while scanning a decay
//     parameter across candidate graphs.
//   - Lattice constructors (Cycle, Path, Grid) for tests and candidate
//     families.
//
// Graphs may be directed (asymmetric); most downstream consumers symmetrize.
// Isolated nodes (empty neighbor lists) are permitted and contribute all-zero
// rows.
package spweights

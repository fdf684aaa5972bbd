// Package modelsel ranks eigenbasis columns against response data and
// selects a parsimonious predictor subset by corrected AIC.
//
// Forward orders the columns of an orthonormal basis by their explanatory
// contribution, walks the nested model sequence ∅ ⊂ {u₁} ⊂ {u₁,u₂} ⊂ … and
// reports the AICc profile along it; the minimum picks the model size. The
// orthogonal-projection trick makes this exact in a single pass: under a
// weighted-orthonormal basis each column's residual-sum reduction is
// independent of which other columns are already in the model.
//
// Scan repeats the exercise over a family of candidate weight graphs
// (different topologies or decay parameters) and returns the candidate
// whose best model attains the globally smallest AICc.
//
// All routines are deterministic: no randomness, stable tie-breaking by
// original column order, sequential candidate evaluation.
package modelsel

// Package modelsel: sentinel error set, matched via errors.Is.

package modelsel

import "errors"

var (
	// ErrNilInput reports a nil basis or nil response matrix.
	ErrNilInput = errors.New("modelsel: nil input")

	// ErrEmptyBasis reports a basis with no columns to select from.
	ErrEmptyBasis = errors.New("modelsel: basis has no columns")

	// ErrResponseShape reports a response matrix whose dimensions do not
	// match the basis, that has no columns, or that holds non-finite values.
	ErrResponseShape = errors.New("modelsel: malformed response matrix")

	// ErrNoCandidates reports a scan over an empty candidate list, or one
	// in which every candidate failed to produce a usable basis.
	ErrNoCandidates = errors.New("modelsel: no usable candidates")
)

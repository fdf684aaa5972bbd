// SPDX-License-Identifier: MIT
package mem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialkit/memgo/mem"
)

func TestSubset(t *testing.T) {
	b := cycleBasis(t, 5, mem.WithKeepGraph())

	t.Run("keeps attributes aligned", func(t *testing.T) {
		sub, err := b.Subset(0, 2)
		require.NoError(t, err)

		require.Equal(t, 2, sub.Len())
		assert.Equal(t, b.NodeCount(), sub.NodeCount())
		assert.True(t, sub.Orthonormal())
		assert.Equal(t, b.RowWeights(), sub.RowWeights())
		assert.Same(t, b.SourceGraph(), sub.SourceGraph())

		want0, err := b.Eigenvalue(0)
		require.NoError(t, err)
		want1, err := b.Eigenvalue(2)
		require.NoError(t, err)
		assert.Equal(t, []float64{want0, want1}, sub.Eigenvalues())

		u, err := b.Vector(2)
		require.NoError(t, err)
		v, err := sub.Vector(1)
		require.NoError(t, err)
		assert.Equal(t, u, v)
	})

	t.Run("reordering keeps orthonormality", func(t *testing.T) {
		sub, err := b.Subset(3, 1, 0)
		require.NoError(t, err)
		assert.True(t, sub.Orthonormal())
		vals := b.Eigenvalues()
		assert.Equal(t, []float64{vals[3], vals[1], vals[0]}, sub.Eigenvalues())
	})

	t.Run("repeats clear the orthonormal flag", func(t *testing.T) {
		sub, err := b.Subset(1, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, sub.Len())
		assert.False(t, sub.Orthonormal())
	})

	t.Run("empty selection", func(t *testing.T) {
		sub, err := b.Subset()
		require.NoError(t, err)
		assert.Equal(t, 0, sub.Len())
		assert.Nil(t, sub.Matrix())
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := b.Subset(0, 4)
		require.ErrorIs(t, err, mem.ErrIndexOutOfRange)
		_, err = b.Subset(-1)
		require.ErrorIs(t, err, mem.ErrIndexOutOfRange)
	})
}

func TestSubsetRows(t *testing.T) {
	b := cycleBasis(t, 5, mem.WithKeepGraph(), mem.WithRowWeights([]float64{1, 2, 3, 4, 5}))

	t.Run("drops orthonormality and graph", func(t *testing.T) {
		sub, err := b.SubsetRows(0, 2, 4)
		require.NoError(t, err)

		assert.Equal(t, 3, sub.NodeCount())
		assert.Equal(t, b.Len(), sub.Len())
		assert.False(t, sub.Orthonormal())
		assert.Nil(t, sub.SourceGraph())
		assert.Equal(t, []float64{1, 3, 5}, sub.RowWeights())
		assert.Equal(t, b.Eigenvalues(), sub.Eigenvalues())

		full, err := b.Vector(0)
		require.NoError(t, err)
		trunc, err := sub.Vector(0)
		require.NoError(t, err)
		assert.Equal(t, []float64{full[0], full[2], full[4]}, trunc)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := b.SubsetRows(0, 5)
		require.ErrorIs(t, err, mem.ErrIndexOutOfRange)
	})
}

func TestTake(t *testing.T) {
	b := cycleBasis(t, 5)

	t.Run("drop collapses a single column to a vector", func(t *testing.T) {
		sub, vec, err := b.Take(true, 2)
		require.NoError(t, err)
		assert.Nil(t, sub)
		want, err := b.Vector(2)
		require.NoError(t, err)
		assert.Equal(t, want, vec)
	})

	t.Run("drop with several columns behaves like Subset", func(t *testing.T) {
		sub, vec, err := b.Take(true, 0, 1)
		require.NoError(t, err)
		assert.Nil(t, vec)
		require.NotNil(t, sub)
		assert.Equal(t, 2, sub.Len())
		assert.True(t, sub.Orthonormal())
	})

	t.Run("no drop keeps a one-column basis", func(t *testing.T) {
		sub, vec, err := b.Take(false, 2)
		require.NoError(t, err)
		assert.Nil(t, vec)
		require.NotNil(t, sub)
		assert.Equal(t, 1, sub.Len())
	})

	t.Run("out of range", func(t *testing.T) {
		_, _, err := b.Take(true, 9)
		require.ErrorIs(t, err, mem.ErrIndexOutOfRange)
		_, _, err = b.Take(false, 9)
		require.ErrorIs(t, err, mem.ErrIndexOutOfRange)
	})
}

func TestVector_CopyIsolation(t *testing.T) {
	b := cycleBasis(t, 4)

	u, err := b.Vector(0)
	require.NoError(t, err)
	u[0] = 42

	again, err := b.Vector(0)
	require.NoError(t, err)
	assert.NotEqual(t, 42.0, again[0], "mutating a returned vector must not touch the basis")

	_, err = b.Vector(1)
	require.ErrorIs(t, err, mem.ErrIndexOutOfRange)
}

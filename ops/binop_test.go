// SPDX-License-Identifier: MIT
// Package ops_test verifies the elementwise kernels against their dense
// counterparts: every sparse result is materialized and compared cell by
// cell with the straightforward dense computation.

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsix/dense"
	"github.com/katalvlaran/sparsix/ops"
	"github.com/katalvlaran/sparsix/sparse"
)

// addDense computes a + b on dense matrices, the reference result.
func addDense(a, b *dense.Dense[float64]) *dense.Dense[float64] {
	res := a.Clone()
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			res.Set(i, j, a.At(i, j)+b.At(i, j))
		}
	}

	return res
}

func TestAdd_AgainstDense(t *testing.T) {
	a := mat1()
	b := sparse.New(5, 5,
		[]int{0, 1, 2, 3, 4, 5},
		[]int{2, 3, 2, 1, 0},
		[]float64{1, -2, 10, -8, 4})

	got := ops.Add(a, b)
	want := addDense(ops.ToDense(a), ops.ToDense(b))
	require.True(t, want.Equal(ops.ToDense(got)))
	require.True(t, got.IsCSR(), "result takes a's storage order")
	require.NoError(t, got.Check())
}

// TestAdd_MixedStorage adds a CSR and a CSC operand; b is converted, not
// mangled.
func TestAdd_MixedStorage(t *testing.T) {
	a := mat1()
	b := mat1CSC()

	got := ops.Add(a, b)
	want := addDense(ops.ToDense(a), ops.ToDense(b))
	require.True(t, want.Equal(ops.ToDense(got)))
	require.True(t, got.IsCSR())

	// a CSC-led addition yields CSC.
	gotC := ops.Add(b, a)
	require.True(t, gotC.IsCSC())
	require.True(t, want.Equal(ops.ToDense(gotC)))
}

// TestSub_KeepsZeroResults verifies the union pattern survives exact
// cancellation: a - a stores every original entry as an explicit zero.
func TestSub_KeepsZeroResults(t *testing.T) {
	a := mat1()
	got := ops.Sub(a, a)

	require.Equal(t, a.NNZ(), got.NNZ())
	v, ok := got.Get(3, 1)
	require.True(t, ok, "cancelled entry is still stored")
	require.Equal(t, 0.0, v)
}

func TestAdd_ShapeMismatchPanics(t *testing.T) {
	require.Panics(t, func() {
		ops.Add(mat1(), sparse.Eye[float64](4))
	})
}

func TestScalarMul(t *testing.T) {
	a := mat1()
	got := ops.ScalarMul(a, 3)

	require.Equal(t, a.NNZ(), got.NNZ())
	v, _ := got.Get(4, 3)
	require.Equal(t, 21.0, v)
	// Source untouched.
	v, _ = a.Get(4, 3)
	require.Equal(t, 7.0, v)
}

func TestAddDense(t *testing.T) {
	b := dense.FromRows([][]float64{
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
	})
	got := ops.AddDense(mat1(), b)

	require.Equal(t, 4.0, got.At(0, 2))
	require.Equal(t, 1.0, got.At(0, 0))
	require.Equal(t, 9.0, got.At(3, 1))
	require.Equal(t, 1.0, b.At(3, 1), "operand untouched")

	require.Panics(t, func() {
		ops.AddDense(mat1(), dense.New[float64](4, 5))
	})
}

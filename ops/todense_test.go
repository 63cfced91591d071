// SPDX-License-Identifier: MIT
package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsix/dense"
	"github.com/katalvlaran/sparsix/ops"
	"github.com/katalvlaran/sparsix/sparse"
)

// mat1Dense is the dense form of the shared 5×5 fixture.
func mat1Dense() *dense.Dense[float64] {
	return dense.FromRows([][]float64{
		{0, 0, 3, 4, 0},
		{0, 0, 0, 2, 5},
		{0, 0, 5, 0, 0},
		{0, 8, 0, 0, 0},
		{0, 0, 0, 7, 0},
	})
}

func TestToDense(t *testing.T) {
	require.True(t, mat1Dense().Equal(ops.ToDense(mat1())))
	require.True(t, mat1Dense().Equal(ops.ToDense(mat1CSC())), "CSC materializes identically")
}

func TestToDense_Identity(t *testing.T) {
	got := ops.ToDense(sparse.Eye[int](3))
	want := dense.FromRows([][]int{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	require.True(t, want.Equal(got))
}

// TestAssignToDense verifies cells without a stored entry keep their
// previous contents.
func TestAssignToDense_LeavesOtherCells(t *testing.T) {
	dst := dense.FromRows([][]float64{
		{9, 9, 9},
		{9, 9, 9},
	})
	m := sparse.New(2, 3,
		[]int{0, 1, 2},
		[]int{1, 2},
		[]float64{5, 6})

	ops.AssignToDense(dst, m)
	want := dense.FromRows([][]float64{
		{9, 5, 9},
		{9, 9, 6},
	})
	require.True(t, want.Equal(dst))
}

func TestAssignToDense_ShapeMismatchPanics(t *testing.T) {
	require.Panics(t, func() {
		ops.AssignToDense(dense.New[float64](2, 2), mat1())
	})
}

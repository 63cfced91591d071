// SPDX-License-Identifier: MIT
// Package sparse_test shared fixtures.
//
// mat1 is the 5×5 reference matrix used across the conversion, access and
// kernel tests:
//
//	| 0 0 3 4 0 |
//	| 0 0 0 2 5 |
//	| 0 0 5 0 0 |
//	| 0 8 0 0 0 |
//	| 0 0 0 7 0 |
//
// mat1CSC is the same matrix in compressed-column order, written out by
// hand so conversion tests have an independent ground truth.

package sparse_test

import "github.com/katalvlaran/sparsix/sparse"

func mat1() *sparse.Mat[float64] {
	return sparse.New(5, 5,
		[]int{0, 2, 4, 5, 6, 7},
		[]int{2, 3, 3, 4, 2, 1, 3},
		[]float64{3, 4, 2, 5, 5, 8, 7})
}

func mat1CSC() *sparse.Mat[float64] {
	return sparse.NewCSC(5, 5,
		[]int{0, 0, 1, 3, 6, 7},
		[]int{3, 0, 2, 0, 1, 4, 1},
		[]float64{8, 3, 5, 4, 2, 7, 5})
}

func mat1Times2() *sparse.Mat[float64] {
	return sparse.New(5, 5,
		[]int{0, 2, 4, 5, 6, 7},
		[]int{2, 3, 3, 4, 2, 1, 3},
		[]float64{6, 8, 4, 10, 10, 16, 14})
}

// mat1Entries lists every stored (row, col, value) of mat1.
func mat1Entries() [][3]float64 {
	return [][3]float64{
		{0, 2, 3}, {0, 3, 4},
		{1, 3, 2}, {1, 4, 5},
		{2, 2, 5},
		{3, 1, 8},
		{4, 3, 7},
	}
}

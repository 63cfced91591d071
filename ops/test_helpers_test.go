// SPDX-License-Identifier: MIT
// Package ops_test shared fixtures: the same 5×5 reference matrix the
// sparse package tests use, in both storage orders.
//
//	| 0 0 3 4 0 |
//	| 0 0 0 2 5 |
//	| 0 0 5 0 0 |
//	| 0 8 0 0 0 |
//	| 0 0 0 7 0 |

package ops_test

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

// SPDX-License-Identifier: MIT

// Package ops - dense materialization.

package ops

import (
	"fmt"

	"github.com/katalvlaran/sparsix/dense"
	"github.com/katalvlaran/sparsix/num"
	"github.com/katalvlaran/sparsix/sparse"
)

// AssignToDense writes every stored entry of m into dst, leaving the
// other cells of dst untouched. Panics when the shapes differ.
// Complexity: O(nnz).
func AssignToDense[N num.Real](dst *dense.Dense[N], m *sparse.Mat[N]) {
	rows, cols := m.Shape()
	if dr, dc := dst.Shape(); dr != rows || dc != cols {
		panic(fmt.Sprintf("ops: AssignToDense: dense is %d×%d, sparse is %d×%d", dr, dc, rows, cols))
	}
	csr := m.IsCSR()
	it := m.OuterIterator()
	for {
		outer, v, ok := it.Next()
		if !ok {
			break
		}
		v.Iter(func(inner int, val N) bool {
			if csr {
				dst.Set(outer, inner, val)
			} else {
				dst.Set(inner, outer, val)
			}

			return true
		})
	}
}

// ToDense materializes m as a new row-major dense matrix.
// Complexity: O(rows*cols + nnz).
func ToDense[N num.Real](m *sparse.Mat[N]) *dense.Dense[N] {
	res := dense.New[N](m.Rows(), m.Cols())
	AssignToDense(res, m)

	return res
}

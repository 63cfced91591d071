// SPDX-License-Identifier: MIT

// Package ops - elementwise binary operations.
//
// Add and Sub merge two matrices of equal shape slice by slice, walking
// both operands in storage order. The result stores the structural union
// of the operands' patterns: entries whose combination is exactly zero
// are kept, consistent with the engine-wide non-pruning rule.

package ops

import (
	"fmt"

	"github.com/katalvlaran/sparsix/dense"
	"github.com/katalvlaran/sparsix/num"
	"github.com/katalvlaran/sparsix/sparse"
)

// Add returns a + b as an owned matrix in a's storage order. When the
// operands' storage orders differ, b is first converted. Panics when the
// shapes differ.
// Complexity: O(nnz(a) + nnz(b)) same-storage, plus a conversion otherwise.
func Add[N num.Real](a, b *sparse.Mat[N]) *sparse.Mat[N] {
	return binop(a, b, func(x, y N) N { return x + y })
}

// Sub returns a - b as an owned matrix in a's storage order; see Add.
// Complexity: O(nnz(a) + nnz(b)) same-storage, plus a conversion otherwise.
func Sub[N num.Real](a, b *sparse.Mat[N]) *sparse.Mat[N] {
	return binop(a, b, func(x, y N) N { return x - y })
}

func binop[N num.Real](a, b *sparse.Mat[N], combine func(x, y N) N) *sparse.Mat[N] {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		panic(fmt.Sprintf("ops: elementwise op on %d×%d and %d×%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()))
	}
	if a.Storage() != b.Storage() {
		b = b.ToOtherStorage()
	}

	outer := a.OuterDims()
	offsets := make([]int, 1, outer+1)
	indices := make([]int, 0, a.NNZ()+b.NNZ())
	values := make([]N, 0, a.NNZ()+b.NNZ())

	for o := 0; o < outer; o++ {
		av, _ := a.OuterView(o)
		bv, _ := b.OuterView(o)
		ai, bi := av.Indices(), bv.Indices()
		ad, bd := av.Data(), bv.Data()
		var zero N
		i, j := 0, 0
		// Ordered union merge of the two slices.
		for i < len(ai) || j < len(bi) {
			switch {
			case j >= len(bi) || (i < len(ai) && ai[i] < bi[j]):
				indices = append(indices, ai[i])
				values = append(values, combine(ad[i], zero))
				i++
			case i >= len(ai) || bi[j] < ai[i]:
				indices = append(indices, bi[j])
				values = append(values, combine(zero, bd[j]))
				j++
			default:
				indices = append(indices, ai[i])
				values = append(values, combine(ad[i], bd[j]))
				i++
				j++
			}
		}
		offsets = append(offsets, len(indices))
	}

	if a.Storage() == sparse.CSC {
		return sparse.NewCSC(a.Rows(), a.Cols(), offsets, indices, values)
	}

	return sparse.New(a.Rows(), a.Cols(), offsets, indices, values)
}

// ScalarMul returns m scaled by f as an owned matrix with the same
// sparsity pattern. One generic kernel covers every numeric element type.
// Complexity: O(outer + nnz).
func ScalarMul[N num.Real](m *sparse.Mat[N], f N) *sparse.Mat[N] {
	return m.Map(func(v N) N { return v * f })
}

// AddDense returns a + b as a new row-major dense matrix. Panics when the
// shapes differ.
// Complexity: O(rows*cols + nnz(a)).
func AddDense[N num.Real](a *sparse.Mat[N], b *dense.Dense[N]) *dense.Dense[N] {
	rows, cols := a.Shape()
	if br, bc := b.Shape(); br != rows || bc != cols {
		panic(fmt.Sprintf("ops: AddDense on %d×%d and %d×%d", rows, cols, br, bc))
	}
	res := b.Clone()
	csr := a.IsCSR()
	it := a.OuterIterator()
	for {
		outer, v, ok := it.Next()
		if !ok {
			break
		}
		v.Iter(func(inner int, val N) bool {
			r, c := outer, inner
			if !csr {
				r, c = inner, outer
			}
			res.Set(r, c, res.At(r, c)+val)

			return true
		})
	}

	return res
}

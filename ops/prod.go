// SPDX-License-Identifier: MIT

// Package ops - product kernels.
//
// Sparse×sparse multiplication is the classic accumulator scheme: each
// output slice is gathered into a dense scratch accumulator with a marker
// array recording which inner positions are live, then emitted in sorted
// order. The scratch lives in a Workspace the caller may reuse across
// calls to amortize allocation.

package ops

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sparsix/dense"
	"github.com/katalvlaran/sparsix/num"
	"github.com/katalvlaran/sparsix/sparse"
)

// Workspace holds the reusable scratch buffers of the sparse×sparse
// product kernels. The zero value is ready to use; buffers grow on
// demand and are retained between calls.
type Workspace[N num.Real] struct {
	acc     []N   // dense accumulator, one cell per result inner index
	marker  []int // generation stamp per cell; stamp==current means live
	pattern []int // live inner indices of the current output slice
	gen     int   // current generation
}

// NewWorkspace returns a workspace pre-sized for result slices of the
// given inner dimension.
// Complexity: O(innerDims).
func NewWorkspace[N num.Real](innerDims int) *Workspace[N] {
	ws := &Workspace[N]{}
	ws.reset(innerDims)

	return ws
}

// reset prepares the workspace for one output slice of width n.
func (ws *Workspace[N]) reset(n int) {
	if len(ws.acc) < n {
		ws.acc = make([]N, n)
		ws.marker = make([]int, n)
		ws.gen = 0
	}
	ws.gen++
	ws.pattern = ws.pattern[:0]
}

// accumulate adds val into cell inner, registering the cell in the
// pattern on first touch of this generation.
func (ws *Workspace[N]) accumulate(inner int, val N) {
	if ws.marker[inner] != ws.gen {
		ws.marker[inner] = ws.gen
		ws.acc[inner] = val
		ws.pattern = append(ws.pattern, inner)

		return
	}
	ws.acc[inner] += val
}

// MatMul returns the product a*b as an owned matrix, orchestrated by
// operand storage the way the mixed cases require:
//
//	CSR·CSR → CSR result;     CSR·CSC → b converted to CSR first;
//	CSC·CSC → CSC result;     CSC·CSR → b converted to CSC first.
//
// ws may be nil for a one-shot multiplication; passing the same Workspace
// across calls reuses the accumulator. Panics when a.Cols() != b.Rows().
// Complexity: O(sum over entries a_ik of nnz(slice k of b)).
func MatMul[N num.Real](a, b *sparse.Mat[N], ws *Workspace[N]) *sparse.Mat[N] {
	if a.Cols() != b.Rows() {
		panic(fmt.Sprintf("ops: MatMul on %d×%d and %d×%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()))
	}
	if ws == nil {
		ws = &Workspace[N]{}
	}
	if a.IsCSR() {
		if b.IsCSC() {
			b = b.ToOtherStorage()
		}

		return csrMulCsr(a, b, ws)
	}
	if b.IsCSR() {
		b = b.ToOtherStorage()
	}

	return cscMulCsc(a, b, ws)
}

// csrMulCsr computes a*b with both operands CSR. Row i of the result is
// the combination of b's rows selected by row i of a.
func csrMulCsr[N num.Real](a, b *sparse.Mat[N], ws *Workspace[N]) *sparse.Mat[N] {
	rows, cols := a.Rows(), b.Cols()
	offsets := make([]int, 1, rows+1)
	var indices []int
	var values []N

	for i := 0; i < rows; i++ {
		ws.reset(cols)
		av, _ := a.OuterView(i)
		av.Iter(func(k int, aik N) bool {
			bv, _ := b.OuterView(k)
			bv.Iter(func(j int, bkj N) bool {
				ws.accumulate(j, aik*bkj)

				return true
			})

			return true
		})
		indices, values = ws.emit(indices, values)
		offsets = append(offsets, len(indices))
	}

	return sparse.New(rows, cols, offsets, indices, values)
}

// cscMulCsc computes a*b with both operands CSC. Column j of the result
// is the combination of a's columns selected by column j of b.
func cscMulCsc[N num.Real](a, b *sparse.Mat[N], ws *Workspace[N]) *sparse.Mat[N] {
	rows, cols := a.Rows(), b.Cols()
	offsets := make([]int, 1, cols+1)
	var indices []int
	var values []N

	for j := 0; j < cols; j++ {
		ws.reset(rows)
		bv, _ := b.OuterView(j)
		bv.Iter(func(k int, bkj N) bool {
			av, _ := a.OuterView(k)
			av.Iter(func(i int, aik N) bool {
				ws.accumulate(i, aik*bkj)

				return true
			})

			return true
		})
		indices, values = ws.emit(indices, values)
		offsets = append(offsets, len(indices))
	}

	return sparse.NewCSC(rows, cols, offsets, indices, values)
}

// emit appends the current accumulator slice, in ascending inner order,
// to the output buffers.
func (ws *Workspace[N]) emit(indices []int, values []N) ([]int, []N) {
	sort.Ints(ws.pattern)
	for _, inner := range ws.pattern {
		indices = append(indices, inner)
		values = append(values, ws.acc[inner])
	}

	return indices, values
}

// MulDense returns a*b as a new row-major dense matrix. Panics when
// a.Cols() != b.Rows().
// Complexity: O(nnz(a) * cols(b)).
func MulDense[N num.Real](a *sparse.Mat[N], b *dense.Dense[N]) *dense.Dense[N] {
	if a.Cols() != b.Rows() {
		panic(fmt.Sprintf("ops: MulDense on %d×%d and %d×%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()))
	}
	rows, cols := a.Rows(), b.Cols()
	res := dense.New[N](rows, cols)
	rd, bd := res.Data(), b.Data()
	csr := a.IsCSR()
	it := a.OuterIterator()
	for {
		outer, v, ok := it.Next()
		if !ok {
			break
		}
		v.Iter(func(inner int, val N) bool {
			// CSR: row `outer` of the result accumulates row `inner` of b.
			// CSC: row `inner` of the result accumulates row `outer` of b.
			ri, bk := outer, inner
			if !csr {
				ri, bk = inner, outer
			}
			rrow := rd[ri*cols : (ri+1)*cols]
			brow := bd[bk*cols : (bk+1)*cols]
			for j := range rrow {
				rrow[j] += val * brow[j]
			}

			return true
		})
	}

	return res
}

// MulVecDense returns a*x for a dense vector x. Panics when
// len(x) != a.Cols().
// Complexity: O(nnz(a)).
func MulVecDense[N num.Real](a *sparse.Mat[N], x []N) []N {
	if len(x) != a.Cols() {
		panic(fmt.Sprintf("ops: MulVecDense on %d×%d and vector of length %d", a.Rows(), a.Cols(), len(x)))
	}
	y := make([]N, a.Rows())
	csr := a.IsCSR()
	it := a.OuterIterator()
	for {
		outer, v, ok := it.Next()
		if !ok {
			break
		}
		v.Iter(func(inner int, val N) bool {
			if csr {
				y[outer] += val * x[inner]
			} else {
				y[inner] += val * x[outer]
			}

			return true
		})
	}

	return y
}

// SPDX-License-Identifier: MIT

// Package sparse - the Mat type, shape/buffer accessors and the zero-copy
// view family (shallow view, transposed view, outer-slice views,
// contiguous sub-matrix views).
//
// Purpose:
//   - Unify storage order, dimensions and the three parallel buffers.
//   - Keep every view O(1): views reinterpret shared storage, never copy.

package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsix/num"
	"github.com/katalvlaran/sparsix/vec"
)

// Mat is a compressed sparse matrix. The three parallel buffers satisfy,
// for every outer index i, that the entries of slice i live in
// indices[offsets[i]:offsets[i+1]] and values[offsets[i]:offsets[i+1]],
// with the indices strictly ascending within the slice.
//
// A Mat is either an owner of its buffers or a borrowed view; see the
// package documentation for the view-validity contract.
type Mat[N num.Real] struct {
	storage Storage
	nrows   int
	ncols   int
	offsets []int // cumulative per-outer-slice entry counts, len outer+1
	indices []int // inner index of each stored entry
	values  []N   // value of each stored entry, parallel to indices
	view    bool  // borrowed buffers; structural mutation forbidden
}

// mustOwn panics unless the matrix owns its buffers. Structural mutation
// of a borrowed view is a programmer error.
func (m *Mat[N]) mustOwn(op string) {
	if m.view {
		panic(fmt.Sprintf("sparse: %s on a borrowed view", op))
	}
}

// Storage returns the compression order of the matrix.
// Complexity: O(1).
func (m *Mat[N]) Storage() Storage { return m.storage }

// Rows returns the number of matrix rows.
// Complexity: O(1).
func (m *Mat[N]) Rows() int { return m.nrows }

// Cols returns the number of matrix columns.
// Complexity: O(1).
func (m *Mat[N]) Cols() int { return m.ncols }

// Shape packs Rows() and Cols() into a single call.
// Complexity: O(1).
func (m *Mat[N]) Shape() (rows, cols int) { return m.nrows, m.ncols }

// NNZ returns the number of explicitly stored entries. Most sparse
// algorithms are linear in this count.
// Complexity: O(1).
func (m *Mat[N]) NNZ() int {
	return m.offsets[len(m.offsets)-1] - m.offsets[0]
}

// OuterDims returns the outer dimension: Rows() for CSR, Cols() for CSC.
// Complexity: O(1).
func (m *Mat[N]) OuterDims() int {
	return outerDimension(m.storage, m.nrows, m.ncols)
}

// InnerDims returns the inner dimension: Cols() for CSR, Rows() for CSC.
// Complexity: O(1).
func (m *Mat[N]) InnerDims() int {
	return innerDimension(m.storage, m.nrows, m.ncols)
}

// IsCSR reports whether the matrix is in compressed-row order.
// Complexity: O(1).
func (m *Mat[N]) IsCSR() bool { return m.storage == CSR }

// IsCSC reports whether the matrix is in compressed-column order.
// Complexity: O(1).
func (m *Mat[N]) IsCSC() bool { return m.storage == CSC }

// IsView reports whether the matrix borrows its buffers.
// Complexity: O(1).
func (m *Mat[N]) IsView() bool { return m.view }

// Offsets returns the cumulative entry counts. The entries of outer slice
// i sit between Offsets()[i] and Offsets()[i+1] in the indices and values
// buffers. The slice is shared, not copied; treat it as read-only.
// Complexity: O(1).
func (m *Mat[N]) Offsets() []int { return m.offsets }

// Indices returns the inner index of every stored entry. Shared, not
// copied; treat it as read-only.
// Complexity: O(1).
func (m *Mat[N]) Indices() []int { return m.indices }

// Values returns the stored values. Shared, not copied: writes through it
// mutate the matrix (and, for a view, its source buffers).
// Complexity: O(1).
func (m *Mat[N]) Values() []N { return m.values }

// View returns a shallow borrowed view over the whole matrix.
// Complexity: O(1).
func (m *Mat[N]) View() *Mat[N] {
	return &Mat[N]{
		storage: m.storage,
		nrows:   m.nrows,
		ncols:   m.ncols,
		offsets: m.offsets,
		indices: m.indices,
		values:  m.values,
		view:    true,
	}
}

// ToOwned returns an owning deep copy of the matrix. The copy is fully
// independent of the source buffers.
// Complexity: O(outer + nnz).
func (m *Mat[N]) ToOwned() *Mat[N] {
	offsets := make([]int, len(m.offsets))
	copy(offsets, m.offsets)
	indices := make([]int, len(m.indices))
	copy(indices, m.indices)
	values := make([]N, len(m.values))
	copy(values, m.values)

	return &Mat[N]{
		storage: m.storage,
		nrows:   m.nrows,
		ncols:   m.ncols,
		offsets: offsets,
		indices: indices,
		values:  values,
	}
}

// TransposeView returns a borrowed view of the mathematical transpose.
// Interpreting the same buffers under the opposite storage order is
// exactly transposition, so no data moves.
// Complexity: O(1).
func (m *Mat[N]) TransposeView() *Mat[N] {
	return &Mat[N]{
		storage: m.storage.Other(),
		nrows:   m.ncols,
		ncols:   m.nrows,
		offsets: m.offsets,
		indices: m.indices,
		values:  m.values,
		view:    true,
	}
}

// TransposeMut transposes the matrix in place by flipping the storage
// order and swapping the dimensions. No buffer is touched, so this is
// legal on views as well.
// Complexity: O(1).
func (m *Mat[N]) TransposeMut() {
	m.nrows, m.ncols = m.ncols, m.nrows
	m.storage = m.storage.Other()
}

// TransposeInto transposes the matrix in place and returns the receiver,
// for use in expressions.
// Complexity: O(1).
func (m *Mat[N]) TransposeInto() *Mat[N] {
	m.TransposeMut()

	return m
}

// OuterView returns a borrowed sparse-vector view over outer slice i
// (row i for CSR, column i for CSC), reporting whether i is in range.
// The view aliases the matrix buffers.
// Complexity: O(1).
func (m *Mat[N]) OuterView(i int) (vec.Vec[N], bool) {
	if i < 0 || i >= m.OuterDims() {
		return vec.Vec[N]{}, false
	}
	start, stop := m.offsets[i], m.offsets[i+1]

	// Structural validity of the window derives from the constructor
	// checks, so the unchecked vector constructor is safe here.
	return vec.NewUnchecked(m.InnerDims(), m.indices[start:stop], m.values[start:stop]), true
}

// OuterViewMut returns a borrowed sparse-vector view over outer slice i
// whose value writes hit the matrix buffers. The caller must hold
// exclusive access to the matrix while mutating through it.
// Complexity: O(1).
func (m *Mat[N]) OuterViewMut(i int) (vec.Vec[N], bool) {
	return m.OuterView(i)
}

// MiddleOuterViews returns a borrowed sub-matrix view over count
// contiguous outer slices starting at start (e.g. rows start..start+count
// for CSR). The view shares the full indices/values buffers; only the
// offsets window narrows. Panics on an empty or out-of-bounds window
// (programmer error).
// Complexity: O(1).
func (m *Mat[N]) MiddleOuterViews(start, count int) *Mat[N] {
	if count == 0 {
		panic("sparse: MiddleOuterViews: empty view")
	}
	outer := m.OuterDims()
	if start < 0 || count < 0 || start >= outer || start+count > outer {
		panic(fmt.Sprintf("sparse: MiddleOuterViews(%d,%d): out of bounds for %d outer slices", start, count, outer))
	}

	nrows, ncols := count, m.ncols
	if m.storage == CSC {
		nrows, ncols = m.nrows, count
	}

	return &Mat[N]{
		storage: m.storage,
		nrows:   nrows,
		ncols:   ncols,
		offsets: m.offsets[start : start+count+1],
		indices: m.indices,
		values:  m.values,
		view:    true,
	}
}

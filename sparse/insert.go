// SPDX-License-Identifier: MIT

// Package sparse - incremental mutation: random-access insertion and
// outer-slice appends. All entry points here require an owning matrix;
// calling them on a borrowed view panics.

package sparse

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sparsix/vec"
)

// Insert stores val at (row, col), overwriting any entry already present.
//
// Cost depends on where the entry lands:
//   - outer index beyond the current bounds: the offsets are extended by
//     replicating the last cumulative count for each skipped empty slice
//     and one entry is appended — amortized O(1). Building in natural
//     order (row order for CSR) therefore costs O(1) per call.
//   - existing outer slice, entry present: overwrite in place, O(log s).
//   - existing outer slice, entry absent: splice into the indices/values
//     buffers and shift every later offset by one — O(nnz) worst case.
//     Out-of-order insertion should be batched by callers.
//
// An inner index beyond the current inner dimension grows that dimension.
// Every previously obtained NnzIndex is invalidated.
func (m *Mat[N]) Insert(row, col int, val N) {
	m.mustOwn("Insert")
	if row < 0 || col < 0 {
		panic(fmt.Sprintf("sparse: Insert(%d,%d): negative index", row, col))
	}
	if m.storage == CSR {
		m.insertOuterInner(row, col, val)
	} else {
		m.insertOuterInner(col, row, val)
	}
}

func (m *Mat[N]) insertOuterInner(outer, inner int, val N) {
	outerDims := m.OuterDims()
	if outer >= outerDims {
		// New outer slice: replicate the last cumulative count across the
		// skipped empty slices, then append the single entry.
		lastNnz := m.offsets[len(m.offsets)-1] // offsets never empty
		for k := outerDims; k < outer; k++ {
			m.offsets = append(m.offsets, lastNnz)
		}
		m.setOuterDims(outer + 1)
		m.offsets = append(m.offsets, lastNnz+1)
		m.indices = append(m.indices, inner)
		m.values = append(m.values, val)
	} else {
		// Existing slice: search for the insertion spot.
		start, stop := m.offsets[outer], m.offsets[outer+1]
		pos := start + sort.SearchInts(m.indices[start:stop], inner)
		if pos < stop && m.indices[pos] == inner {
			m.values[pos] = val

			return
		}
		// Splice the new entry in and shift every later offset by one.
		m.indices = append(m.indices, 0)
		copy(m.indices[pos+1:], m.indices[pos:])
		m.indices[pos] = inner
		var zero N
		m.values = append(m.values, zero)
		copy(m.values[pos+1:], m.values[pos:])
		m.values[pos] = val
		for k := outer + 1; k <= outerDims; k++ {
			m.offsets[k]++
		}
	}

	if inner >= m.InnerDims() {
		m.setInnerDims(inner + 1)
	}
}

func (m *Mat[N]) setOuterDims(outerDims int) {
	if m.storage == CSR {
		m.nrows = outerDims
	} else {
		m.ncols = outerDims
	}
}

func (m *Mat[N]) setInnerDims(innerDims int) {
	if m.storage == CSR {
		m.ncols = innerDims
	} else {
		m.nrows = innerDims
	}
}

// AppendOuterDense appends one outer slice given as a dense vector,
// compressing it in the process: only nonzero entries are stored. The
// outer dimension grows by one and one cumulative offset is pushed.
// Panics when the slice length does not match the inner dimension.
// Complexity: O(inner dimension).
func (m *Mat[N]) AppendOuterDense(data []N) {
	m.mustOwn("AppendOuterDense")
	if len(data) != m.InnerDims() {
		panic(fmt.Sprintf("sparse: AppendOuterDense: slice length %d, want %d", len(data), m.InnerDims()))
	}
	var zero N
	nnz := m.offsets[len(m.offsets)-1]
	for inner, val := range data {
		if val != zero {
			m.indices = append(m.indices, inner)
			m.values = append(m.values, val)
			nnz++
		}
	}
	m.setOuterDims(m.OuterDims() + 1)
	m.offsets = append(m.offsets, nnz)
}

// AppendOuterVec appends one outer slice given as a sparse vector. Every
// stored entry of v is copied as-is (including explicit zeros). Panics
// when the vector dimension does not match the inner dimension.
// Complexity: O(nnz(v)).
func (m *Mat[N]) AppendOuterVec(v vec.Vec[N]) {
	m.mustOwn("AppendOuterVec")
	if v.Dim() != m.InnerDims() {
		panic(fmt.Sprintf("sparse: AppendOuterVec: vector dimension %d, want %d", v.Dim(), m.InnerDims()))
	}
	m.indices = append(m.indices, v.Indices()...)
	m.values = append(m.values, v.Data()...)
	m.setOuterDims(m.OuterDims() + 1)
	m.offsets = append(m.offsets, m.offsets[len(m.offsets)-1]+v.NNZ())
}

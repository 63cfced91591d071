// SPDX-License-Identifier: MIT

// Package sparse - storage-order conversion.
//
// The converter is a single-pass counting sort over the nonzeros. Its
// correctness rests on one ordering property: within a fixed destination
// slice, the scatter visits the old-outer indices in increasing order,
// because the outer walk is ascending. That is exactly what leaves every
// new inner-index run sorted — no resort happens afterwards.

package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsix/num"
)

// ToOtherStorage materializes the mathematically equal matrix in the
// opposite storage order. New buffers are allocated; the receiver is not
// modified.
// Complexity: O(nnz + inner dimension).
func (m *Mat[N]) ToOtherStorage() *Mat[N] {
	offsets := make([]int, m.InnerDims()+1)
	indices := make([]int, m.NNZ())
	values := make([]N, m.NNZ())
	convertStorage(m, offsets, indices, values)

	return &Mat[N]{
		storage: m.storage.Other(),
		nrows:   m.nrows,
		ncols:   m.ncols,
		offsets: offsets,
		indices: indices,
		values:  values,
	}
}

// ToCSR returns an owned CSR matrix equal to this one. A new matrix is
// allocated even when the receiver is already CSR.
// Complexity: O(nnz + inner dimension), O(outer + nnz) when already CSR.
func (m *Mat[N]) ToCSR() *Mat[N] {
	if m.storage == CSR {
		return m.ToOwned()
	}

	return m.ToOtherStorage()
}

// ToCSC returns an owned CSC matrix equal to this one. A new matrix is
// allocated even when the receiver is already CSC.
// Complexity: O(nnz + inner dimension), O(outer + nnz) when already CSC.
func (m *Mat[N]) ToCSC() *Mat[N] {
	if m.storage == CSC {
		return m.ToOwned()
	}

	return m.ToOtherStorage()
}

// convertStorage copy-converts m into the opposite storage order, writing
// into the caller-provided buffers. offsets must be zero-initialized of
// length inner dimension + 1; indices and values must have length nnz.
// Usable both for CSR↔CSC conversion and same-storage copy transposition.
//
// Panics when the output buffers do not match (programmer error).
// Complexity: O(nnz + inner dimension).
func convertStorage[N num.Real](m *Mat[N], offsets, indices []int, values []N) {
	if len(offsets) != m.InnerDims()+1 {
		panic(fmt.Sprintf("sparse: convertStorage: offsets length %d, want %d", len(offsets), m.InnerDims()+1))
	}
	nnz := m.NNZ()
	if len(indices) != nnz || len(values) != nnz {
		panic(fmt.Sprintf("sparse: convertStorage: output length %d/%d, want %d", len(indices), len(values), nnz))
	}
	for _, off := range offsets {
		if off != 0 {
			panic("sparse: convertStorage: offsets not zero-initialized")
		}
	}

	// Histogram pass: count the entries of every destination slice.
	it := m.OuterIterator()
	for {
		_, v, ok := it.Next()
		if !ok {
			break
		}
		for _, inner := range v.Indices() {
			offsets[inner]++
		}
	}

	// Exclusive prefix sum in place: counts become slice-start positions.
	cum := 0
	for i := range offsets {
		tmp := offsets[i]
		offsets[i] = cum
		cum += tmp
	}
	if offsets[len(offsets)-1] != nnz {
		panic("sparse: convertStorage: histogram does not sum to nnz")
	}

	// Scatter pass: re-walk the nonzeros in original outer order. The
	// ascending outer walk keeps every destination run sorted.
	it = m.OuterIterator()
	for {
		outer, v, ok := it.Next()
		if !ok {
			break
		}
		v.Iter(func(inner int, val N) bool {
			dst := offsets[inner]
			values[dst] = val
			indices[dst] = outer
			offsets[inner]++

			return true
		})
	}

	// Offset correction: each counter has advanced one slice forward;
	// shift back one slot to recover the slice-start offsets.
	last := 0
	for i := range offsets {
		offsets[i], last = last, offsets[i]
	}
}

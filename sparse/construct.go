// SPDX-License-Identifier: MIT

// Package sparse - constructors.
//
// Two tiers, matching the failure policy of the package:
//   - Owned constructors (New, NewCSC): the caller owns the buffers and is
//     responsible for them, so malformed input is a programmer error and
//     panics. The one relaxed precondition is per-slice index order —
//     ownership lets the constructor sort indices in place, co-permuting
//     the values with a reusable scratch buffer.
//   - View constructors (NewView): borrowed buffers are treated as runtime
//     input and are fully validated, returning the first violation found.
//     NewViewUnchecked elides the check for hot paths reusing known-good
//     buffers; its precondition is the full Check contract.

package sparse

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/sparsix/num"
)

// New builds an owned CSR matrix over the given buffers, sorting each
// outer slice's indices in place (stable, values co-permuted). Panics on
// any malformed input other than unsorted indices.
// Complexity: O(nnz log s) where s is the largest slice.
func New[N num.Real](rows, cols int, offsets, indices []int, values []N) *Mat[N] {
	return newOwned(CSR, rows, cols, offsets, indices, values)
}

// NewCSC builds an owned CSC matrix over the given buffers; see New.
// Complexity: O(nnz log s).
func NewCSC[N num.Real](rows, cols int, offsets, indices []int, values []N) *Mat[N] {
	return newOwned(CSC, rows, cols, offsets, indices, values)
}

func newOwned[N num.Real](storage Storage, rows, cols int, offsets, indices []int, values []N) *Mat[N] {
	m := &Mat[N]{
		storage: storage,
		nrows:   rows,
		ncols:   cols,
		offsets: offsets,
		indices: indices,
		values:  values,
	}
	m.sortIndices()
	if err := m.Check(); err != nil {
		panic(fmt.Sprintf("sparse: owned construction: %v", err))
	}

	return m
}

// sortIndices stably sorts every outer slice's indices in place,
// co-permuting the values through a scratch buffer reused across slices.
// Requires only that offsets describe valid windows; all other invariants
// are established by the subsequent Check.
func (m *Mat[N]) sortIndices() {
	var (
		order  []int // argsort scratch, reused across slices
		idxBuf []int
		valBuf []N
	)
	for i := 0; i+1 < len(m.offsets); i++ {
		start, stop := m.offsets[i], m.offsets[i+1]
		if start < 0 || stop > len(m.indices) || start >= stop {
			continue // malformed windows are caught by Check
		}
		idx, val := m.indices[start:stop], m.values[start:stop]
		n := stop - start
		if sort.IntsAreSorted(idx) {
			continue
		}

		order = order[:0]
		for k := 0; k < n; k++ {
			order = append(order, k)
		}
		sort.SliceStable(order, func(a, b int) bool { return idx[order[a]] < idx[order[b]] })

		idxBuf = append(idxBuf[:0], idx...)
		valBuf = append(valBuf[:0], val...)
		for k, o := range order {
			idx[k] = idxBuf[o]
			val[k] = valBuf[o]
		}
	}
}

// NewView builds a fully validated borrowed view over the given buffers.
// Never panics: the first structural violation is returned as a sentinel
// error and no partially built matrix escapes.
// Complexity: O(outer + nnz).
func NewView[N num.Real](storage Storage, rows, cols int, offsets, indices []int, values []N) (*Mat[N], error) {
	m := NewViewUnchecked(storage, rows, cols, offsets, indices, values)
	if err := m.Check(); err != nil {
		return nil, err
	}

	return m, nil
}

// NewViewUnchecked builds a borrowed view without validation. The caller
// asserts that the Check contract holds; every algorithm in this package
// is free to rely on it (e.g. for unchecked slice windows).
// Complexity: O(1).
func NewViewUnchecked[N num.Real](storage Storage, rows, cols int, offsets, indices []int, values []N) *Mat[N] {
	return &Mat[N]{
		storage: storage,
		nrows:   rows,
		ncols:   cols,
		offsets: offsets,
		indices: indices,
		values:  values,
		view:    true,
	}
}

// Empty returns an owned matrix with zero outer slices and the given
// inner dimension, ready for incremental building via Insert or the
// appends.
// Complexity: O(1).
func Empty[N num.Real](storage Storage, innerDims int) *Mat[N] {
	nrows, ncols := 0, innerDims
	if storage == CSC {
		nrows, ncols = innerDims, 0
	}

	return &Mat[N]{
		storage: storage,
		nrows:   nrows,
		ncols:   ncols,
		offsets: make([]int, 1),
	}
}

// Zero returns the owned rows×cols zero matrix in CSR order: full shape,
// no stored entries.
// Complexity: O(rows).
func Zero[N num.Real](rows, cols int) *Mat[N] {
	return &Mat[N]{
		storage: CSR,
		nrows:   rows,
		ncols:   cols,
		offsets: make([]int, rows+1),
	}
}

// Eye returns the owned n×n identity matrix in CSR order.
// Complexity: O(n).
func Eye[N num.Real](n int) *Mat[N] {
	return eye[N](CSR, n)
}

// EyeCSC returns the owned n×n identity matrix in CSC order.
// Complexity: O(n).
func EyeCSC[N num.Real](n int) *Mat[N] {
	return eye[N](CSC, n)
}

func eye[N num.Real](storage Storage, n int) *Mat[N] {
	offsets := make([]int, n+1)
	indices := make([]int, n)
	values := make([]N, n)
	for i := 0; i < n; i++ {
		offsets[i+1] = i + 1
		indices[i] = i
		values[i] = num.One[N]()
	}

	return &Mat[N]{
		storage: storage,
		nrows:   n,
		ncols:   n,
		offsets: offsets,
		indices: indices,
		values:  values,
	}
}

// ReserveOuter grows the offsets capacity for n additional outer slices.
// Complexity: amortized O(outer).
func (m *Mat[N]) ReserveOuter(n int) {
	m.mustOwn("ReserveOuter")
	m.offsets = slices.Grow(m.offsets, n)
}

// ReserveNNZ grows the indices and values capacity for n additional
// stored entries.
// Complexity: amortized O(nnz).
func (m *Mat[N]) ReserveNNZ(n int) {
	m.mustOwn("ReserveNNZ")
	m.indices = slices.Grow(m.indices, n)
	m.values = slices.Grow(m.values, n)
}

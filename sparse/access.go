// SPDX-License-Identifier: MIT

// Package sparse - element access and elementwise transforms.
//
// Random access is logarithmic in the nonzeros of the addressed outer
// slice; algorithms should prefer the outer iterators, which walk the
// entries in storage order. NnzAt amortizes repeated access to one entry
// down to O(1) through the NnzIndex handle.

package sparse

import (
	"fmt"
)

// splitOuterInner maps (row, col) to (outer, inner) under the storage
// order of the matrix.
func (m *Mat[N]) splitOuterInner(row, col int) (int, int) {
	if m.storage == CSR {
		return row, col
	}

	return col, row
}

// Get returns the value stored at (row, col), reporting whether an entry
// exists there. Implicit zeros and out-of-range locations report false.
// Complexity: O(log s), s = nonzeros of the addressed outer slice.
func (m *Mat[N]) Get(row, col int) (N, bool) {
	outer, inner := m.splitOuterInner(row, col)
	v, ok := m.OuterView(outer)
	if !ok {
		var zero N

		return zero, false
	}

	return v.Get(inner)
}

// GetMut returns a pointer to the value stored at (row, col), or nil when
// no entry exists there. The pointer aliases the values buffer and is
// valid until the next structural mutation.
// Complexity: O(log s).
func (m *Mat[N]) GetMut(row, col int) *N {
	if idx, ok := m.NnzAt(row, col); ok {
		return &m.values[idx]
	}

	return nil
}

// Set overwrites the value of the nonzero entry at (row, col). It never
// inserts: addressing a location with no stored entry is a programmer
// error and panics. Use Insert to create entries.
// Complexity: O(log s).
func (m *Mat[N]) Set(row, col int, val N) {
	idx, ok := m.NnzAt(row, col)
	if !ok {
		panic(fmt.Sprintf("sparse: Set(%d,%d): no nonzero entry at location", row, col))
	}
	m.values[idx] = val
}

// NnzAt locates the stored entry at (row, col) and returns its NnzIndex
// handle, reporting whether the entry exists. Later access through the
// handle is O(1) until a structural mutation occurs; see NnzIndex for the
// validity contract.
// Complexity: O(log s).
func (m *Mat[N]) NnzAt(row, col int) (NnzIndex, bool) {
	outer, inner := m.splitOuterInner(row, col)
	if outer < 0 || outer >= m.OuterDims() {
		return 0, false
	}
	v, _ := m.OuterView(outer)
	pos, ok := v.NnzAt(inner)
	if !ok {
		return 0, false
	}

	return NnzIndex(m.offsets[outer] + pos), true
}

// ValueAt returns the value of the entry addressed by a valid NnzIndex.
// Complexity: O(1).
func (m *Mat[N]) ValueAt(idx NnzIndex) N { return m.values[idx] }

// SetValueAt overwrites the value of the entry addressed by a valid
// NnzIndex.
// Complexity: O(1).
func (m *Mat[N]) SetValueAt(idx NnzIndex, val N) { m.values[idx] = val }

// Scale multiplies every stored value by f in place. The sparsity pattern
// is unchanged.
// Complexity: O(nnz).
func (m *Mat[N]) Scale(f N) {
	lo, hi := m.offsets[0], m.offsets[len(m.offsets)-1]
	for i := lo; i < hi; i++ {
		m.values[i] *= f
	}
}

// MapInplace replaces every stored value with f(value). The sparsity
// pattern is preserved: results are never pruned, even when they become
// exactly zero.
// Complexity: O(nnz).
func (m *Mat[N]) MapInplace(f func(N) N) {
	// Only the receiver's own window is touched: for a sub-matrix view
	// the values buffer is shared with slices outside the view.
	lo, hi := m.offsets[0], m.offsets[len(m.offsets)-1]
	for i := lo; i < hi; i++ {
		m.values[i] = f(m.values[i])
	}
}

// Map returns an owned copy of the matrix with every stored value
// replaced by f(value); see MapInplace for the non-pruning contract.
// Complexity: O(outer + nnz).
func (m *Mat[N]) Map(f func(N) N) *Mat[N] {
	res := m.ToOwned()
	res.MapInplace(f)

	return res
}

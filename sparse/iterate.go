// SPDX-License-Identifier: MIT

// Package sparse - the outer iteration family.
//
// All four iterators traverse the outer dimension (rows for CSR, columns
// for CSC) over the validated layout, yielding zero-copy windows:
//   - OuterIter: ascending, independently reversible, exact remaining
//     length.
//   - OuterIterPerm: permutation order, applied directly for CSR and
//     inverted for CSC.
//   - OuterIterMut: mutable value windows; slices never alias because
//     each partitions a disjoint index range of the shared buffer.
//   - OuterBlockIter: fixed-size contiguous groups of outer slices, the
//     final group truncated to the remainder.

package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsix/num"
	"github.com/katalvlaran/sparsix/perm"
	"github.com/katalvlaran/sparsix/vec"
)

// OuterIter iterates the outer slices of a matrix in ascending order.
// Forward (Next) and reverse (NextBack) traversal are independent and
// meet in the middle; Len reports the exact number of slices remaining.
type OuterIter[N num.Real] struct {
	m     *Mat[N]
	front int // next forward outer index
	back  int // one past the next backward outer index
}

// OuterIterator returns an outer iterator over the matrix. Iterating it
// visits the rows (resp. columns) of a CSR (resp. CSC) matrix in order.
// Complexity: O(1) per step.
func (m *Mat[N]) OuterIterator() *OuterIter[N] {
	return &OuterIter[N]{m: m, front: 0, back: m.OuterDims()}
}

// Next yields the next outer index and its borrowed slice view, reporting
// false when the iterator is exhausted.
func (it *OuterIter[N]) Next() (int, vec.Vec[N], bool) {
	if it.front >= it.back {
		return 0, vec.Vec[N]{}, false
	}
	i := it.front
	it.front++
	v, _ := it.m.OuterView(i)

	return i, v, true
}

// NextBack yields the next outer index from the rear. Only the outer
// traversal is reversed; the inner indices of each slice stay ascending.
func (it *OuterIter[N]) NextBack() (int, vec.Vec[N], bool) {
	if it.front >= it.back {
		return 0, vec.Vec[N]{}, false
	}
	it.back--
	v, _ := it.m.OuterView(it.back)

	return it.back, v, true
}

// Len returns the exact number of outer slices not yet yielded.
// Complexity: O(1).
func (it *OuterIter[N]) Len() int { return it.back - it.front }

// OuterIterPerm iterates the outer slices in permutation order without
// copying data.
type OuterIterPerm[N num.Real] struct {
	m    *Mat[N]
	perm perm.Perm // already oriented for the storage order
	next int
}

// OuterIteratorPerm returns an iterator over P*A: the permutation is
// applied directly for CSR storage and inverted for CSC, so that the same
// Perm drives both orientations of a P*A*Pᵀ traversal. Panics when the
// permutation length does not match the outer dimension.
// Complexity: O(1) per step.
func (m *Mat[N]) OuterIteratorPerm(p perm.Perm) *OuterIterPerm[N] {
	if p.Len() != m.OuterDims() {
		panic(fmt.Sprintf("sparse: OuterIteratorPerm: permutation length %d, want %d", p.Len(), m.OuterDims()))
	}
	if m.storage == CSC {
		p = p.Inv()
	}

	return &OuterIterPerm[N]{m: m, perm: p}
}

// Next yields the permuted outer index and its borrowed slice view,
// reporting false when exhausted.
func (it *OuterIterPerm[N]) Next() (int, vec.Vec[N], bool) {
	if it.next >= it.m.OuterDims() {
		return 0, vec.Vec[N]{}, false
	}
	i := it.perm.At(it.next)
	it.next++
	v, _ := it.m.OuterView(i)

	return i, v, true
}

// Len returns the number of outer slices not yet yielded.
// Complexity: O(1).
func (it *OuterIterPerm[N]) Len() int { return it.m.OuterDims() - it.next }

// OuterIterMut iterates the outer slices yielding views whose value
// writes hit the matrix buffers. The yielded windows partition a disjoint
// index range of one shared buffer, so they never alias each other; the
// caller must hold exclusive access to the matrix for the iterator's
// lifetime and must not mutate the matrix structurally while it runs.
type OuterIterMut[N num.Real] struct {
	m    *Mat[N]
	next int
}

// OuterIteratorMut returns a mutable outer iterator over the matrix.
// Complexity: O(1) per step.
func (m *Mat[N]) OuterIteratorMut() *OuterIterMut[N] {
	return &OuterIterMut[N]{m: m}
}

// Next yields the next outer index and its write-through slice view,
// reporting false when exhausted.
func (it *OuterIterMut[N]) Next() (int, vec.Vec[N], bool) {
	if it.next >= it.m.OuterDims() {
		return 0, vec.Vec[N]{}, false
	}
	i := it.next
	it.next++
	v, _ := it.m.OuterViewMut(i)

	return i, v, true
}

// Len returns the number of outer slices not yet yielded.
// Complexity: O(1).
func (it *OuterIterMut[N]) Len() int { return it.m.OuterDims() - it.next }

// OuterBlockIter iterates non-overlapping groups of outer slices,
// yielding one borrowed sub-matrix view per group.
type OuterBlockIter[N num.Real] struct {
	m         *Mat[N] // shallow view over the source
	blockSize int
	blocks    int // groups yielded so far
}

// OuterBlockIterator returns an iterator over blocks of blockSize
// contiguous outer slices; the final block is truncated to the remainder.
// Every outer index is covered exactly once. Panics when blockSize is not
// positive (programmer error).
// Complexity: O(1) per step.
func (m *Mat[N]) OuterBlockIterator(blockSize int) *OuterBlockIter[N] {
	if blockSize <= 0 {
		panic(fmt.Sprintf("sparse: OuterBlockIterator: block size %d, want > 0", blockSize))
	}

	return &OuterBlockIter[N]{m: m.View(), blockSize: blockSize}
}

// Next yields the next block as a borrowed sub-matrix view, reporting
// false when every outer slice has been covered.
func (it *OuterBlockIter[N]) Next() (*Mat[N], bool) {
	start := it.blockSize * it.blocks
	outer := it.m.OuterDims()
	if start >= outer {
		return nil, false
	}
	count := it.blockSize
	if start+count > outer {
		count = outer - start
	}
	it.blocks++

	return it.m.MiddleOuterViews(start, count), true
}

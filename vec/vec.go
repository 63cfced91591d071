// SPDX-License-Identifier: MIT

// Package vec - sparse vector storage and lookup.
//
// Purpose:
//   - Hold one compressed slice: ascending inner indices paired with values.
//   - Serve as the element type of matrix outer iteration (zero-copy views).
//   - Provide the per-slice half of the matrix structural check.

package vec

import (
	"sort"

	"github.com/katalvlaran/sparsix/num"
)

// Vec is a sparse vector of dimension dim with nnz explicitly stored
// entries. indices holds the positions of the stored entries in strictly
// ascending order; data holds the matching values.
//
// Vec is a view type: it does not own its slices. Copying a Vec copies the
// slice headers only, so all copies alias the same storage.
type Vec[N num.Real] struct {
	dim     int   // logical dimension; every index is < dim
	indices []int // strictly ascending positions of stored entries
	data    []N   // values parallel to indices
}

// New builds a validated sparse vector over the given slices.
// Returns the first structural violation found.
// Complexity: O(nnz).
func New[N num.Real](dim int, indices []int, data []N) (Vec[N], error) {
	v := Vec[N]{dim: dim, indices: indices, data: data}
	if err := v.Check(); err != nil {
		return Vec[N]{}, err
	}

	return v, nil
}

// NewUnchecked builds a sparse vector without validating it. The caller
// asserts that the Check contract holds; lookup and iteration rely on it.
// Complexity: O(1).
func NewUnchecked[N num.Real](dim int, indices []int, data []N) Vec[N] {
	return Vec[N]{dim: dim, indices: indices, data: data}
}

// Empty returns a vector of the given dimension with no stored entries.
// Complexity: O(1).
func Empty[N num.Real](dim int) Vec[N] {
	return Vec[N]{dim: dim}
}

// Dim returns the logical dimension.
// Complexity: O(1).
func (v Vec[N]) Dim() int { return v.dim }

// NNZ returns the number of explicitly stored entries.
// Complexity: O(1).
func (v Vec[N]) NNZ() int { return len(v.indices) }

// Indices returns the stored entry positions. The slice is shared, not
// copied; treat it as read-only.
// Complexity: O(1).
func (v Vec[N]) Indices() []int { return v.indices }

// Data returns the stored values. The slice is shared: writes through it
// mutate the underlying storage (and the source matrix for slice views).
// Complexity: O(1).
func (v Vec[N]) Data() []N { return v.data }

// Check verifies the structural invariants of the vector:
//   - indices and data have the same length,
//   - indices are strictly ascending,
//   - every index lies in [0, dim).
//
// The first violation found is returned as a sentinel error.
// Complexity: O(nnz).
func (v Vec[N]) Check() error {
	if len(v.indices) != len(v.data) {
		return ErrLengthMismatch
	}
	for i, ind := range v.indices {
		if i > 0 && v.indices[i-1] >= ind {
			return ErrUnsortedIndices
		}
		if ind < 0 || ind >= v.dim {
			return ErrIndexOutOfBounds
		}
	}

	return nil
}

// pos binary-searches the stored position of inner, reporting whether it
// is present. Relies on the ascending-indices invariant.
// Complexity: O(log nnz).
func (v Vec[N]) pos(inner int) (int, bool) {
	i := sort.SearchInts(v.indices, inner)
	if i < len(v.indices) && v.indices[i] == inner {
		return i, true
	}

	return 0, false
}

// Get returns the value stored at the given inner index, reporting whether
// an entry exists there. Implicit zeros report false.
// Complexity: O(log nnz).
func (v Vec[N]) Get(inner int) (N, bool) {
	if i, ok := v.pos(inner); ok {
		return v.data[i], true
	}
	var zero N

	return zero, false
}

// GetMut returns a pointer to the value stored at the given inner index,
// or nil when no entry exists there. The pointer aliases the underlying
// storage and is valid until the next structural mutation of its owner.
// Complexity: O(log nnz).
func (v Vec[N]) GetMut(inner int) *N {
	if i, ok := v.pos(inner); ok {
		return &v.data[i]
	}

	return nil
}

// NnzAt returns the flat position of the entry at the given inner index
// within this vector's storage, reporting whether the entry exists. The
// position can be reused for O(1) access until a structural mutation.
// Complexity: O(log nnz).
func (v Vec[N]) NnzAt(inner int) (int, bool) {
	return v.pos(inner)
}

// Iter visits the stored entries in ascending index order, stopping early
// when f returns false.
// Complexity: O(nnz).
func (v Vec[N]) Iter(f func(inner int, val N) bool) {
	for i, ind := range v.indices {
		if !f(ind, v.data[i]) {
			return
		}
	}
}

// Scale multiplies every stored value in place. For a slice view this
// writes through into the source matrix.
// Complexity: O(nnz).
func (v Vec[N]) Scale(f N) {
	for i := range v.data {
		v.data[i] *= f
	}
}

// Dot returns the scalar product of two sparse vectors of equal dimension.
// Panics when the dimensions differ (programmer error).
// Complexity: O(nnz(a) + nnz(b)).
func Dot[N num.Real](a, b Vec[N]) N {
	if a.dim != b.dim {
		panic("vec: Dot dimension mismatch")
	}
	var acc N
	i, j := 0, 0
	for i < len(a.indices) && j < len(b.indices) {
		switch {
		case a.indices[i] < b.indices[j]:
			i++
		case a.indices[i] > b.indices[j]:
			j++
		default:
			acc += a.data[i] * b.data[j]
			i++
			j++
		}
	}

	return acc
}

// SPDX-License-Identifier: MIT

// Package sparse - the structural checker.
//
// Check is the single source of truth for matrix well-formedness: the
// validated constructors call it, and the unchecked constructors document
// it as their elided precondition.

package sparse

import (
	"fmt"
	"math"
)

// maxOffset is the overflow guard bound: offsets beyond half the
// addressable index range would make index arithmetic (e.g. the splice
// shift in Insert, histogram sums in conversion) liable to overflow.
const maxOffset = math.MaxInt / 2

// Check verifies the structural invariants of the matrix, short-circuiting
// on the first violation found, in this order:
//
//  1. len(offsets) == outer dimension + 1 (ErrOffsetsLength);
//  2. len(indices) == len(values) (ErrDataIndicesMismatch);
//  3. final offset == len(indices) (ErrNnzMismatch);
//  4. offsets monotonically nondecreasing (ErrUnsortedOffsets);
//  5. no offset exceeds nnz or half the addressable range
//     (ErrOffsetOutOfBounds);
//  6. each outer slice's index run strictly ascending and within
//     [0, inner dimension), delegated to vec.Vec.Check and returned
//     wrapped with the outer index (vec.ErrUnsortedIndices,
//     vec.ErrIndexOutOfBounds via errors.Is).
//
// Complexity: O(outer + nnz).
func (m *Mat[N]) Check() error {
	outer := m.OuterDims()
	if len(m.offsets) != outer+1 {
		return ErrOffsetsLength
	}
	if len(m.indices) != len(m.values) {
		return ErrDataIndicesMismatch
	}
	nnz := len(m.indices)
	if m.offsets[outer] != nnz {
		return ErrNnzMismatch
	}
	for k := 1; k < len(m.offsets); k++ {
		if m.offsets[k-1] > m.offsets[k] {
			return ErrUnsortedOffsets
		}
	}
	for _, off := range m.offsets {
		if off < 0 || off > nnz || off > maxOffset {
			return ErrOffsetOutOfBounds
		}
	}

	// Per-slice checks: index runs strictly ascending and bounded by the
	// inner dimension. Delegated to the sparse-vector collaborator.
	for i := 0; i < outer; i++ {
		v, _ := m.OuterView(i)
		if err := v.Check(); err != nil {
			return fmt.Errorf("sparse: outer slice %d: %w", i, err)
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

// Package sparse: domain types shared across the package — the storage
// tag, the (row,col)↔(outer,inner) mapping helpers and the NnzIndex
// re-access handle.

package sparse

// Storage describes the compression order of a Mat. Nearly all logic is
// identical between the two orders up to index interpretation, so the
// order is a tag on the matrix rather than a separate type.
type Storage uint8

const (
	// CSR is compressed-row storage: rows are the outer dimension.
	CSR Storage = iota

	// CSC is compressed-column storage: columns are the outer dimension.
	CSC
)

// Other returns the opposite storage order.
// Complexity: O(1).
func (s Storage) Other() Storage {
	if s == CSR {
		return CSC
	}

	return CSR
}

// String implements fmt.Stringer for diagnostics.
func (s Storage) String() string {
	if s == CSR {
		return "CSR"
	}

	return "CSC"
}

// outerDimension maps a (rows, cols) shape to the dimension iterated
// slice-by-slice under the given storage order.
func outerDimension(s Storage, rows, cols int) int {
	if s == CSR {
		return rows
	}

	return cols
}

// innerDimension maps a (rows, cols) shape to the dimension addressed
// within one outer slice under the given storage order.
func innerDimension(s Storage, rows, cols int) int {
	if s == CSR {
		return cols
	}

	return rows
}

// NnzIndex is the flat position of a stored entry in the indices/values
// buffers. Obtained via lookup (Mat.NnzAt, Vec.NnzAt) in O(log nnz), it
// grants O(1) read/write access through ValueAt/SetValueAt.
//
// Contract: an NnzIndex is valid only until the next structural mutation
// (Insert, append, resort, conversion) of the owning matrix. Reuse after
// that point is undefined and must be avoided by the caller; no
// invalidation tracking exists, trading safety for zero overhead.
type NnzIndex int

// Package vec provides the single-outer-slice sparse vector: the value
// type yielded by outer iteration over a compressed matrix, and a sparse
// vector in its own right.
//
// The vec package provides:
//
//   - Vec, a dimension plus two parallel slices (indices, data) with the
//     indices strictly ascending and bounded by the dimension.
//   - Validated (New) and trusted (NewUnchecked) constructors, mirroring
//     the checked/unchecked split of the sparse matrix package.
//   - Logarithmic element lookup (Get, NnzAt) and ordered traversal (Iter).
//
// A Vec is a view over whatever slices it was built from. Vectors handed
// out by matrix iteration alias the matrix buffers: writing through Data
// or GetMut mutates the matrix, and the view is valid only while the
// source buffers live and remain structurally unmodified.
package vec

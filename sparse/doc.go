// Package sparse implements compressed sparse matrix storage: one Mat
// type covering both compressed-row (CSR) and compressed-column (CSC)
// order, with owned and borrowed-view buffer duality.
//
// The sparse package provides:
//
//   - Mat, three parallel buffers (offsets, indices, values) under a
//     storage tag, generic over the numeric element type.
//   - Validated (NewView) and trusted (NewViewUnchecked) view
//     constructors, plus owned constructors that sort indices on build.
//   - A structural checker enforcing the storage invariants, an
//     O(nnz + dim) counting-sort conversion between storage orders, and
//     O(1) transposition by reinterpretation.
//   - Incremental mutation: Insert with overwrite/splice semantics and
//     outer-slice appends.
//   - The outer iteration family: plain (reversible, exact-size),
//     permuted, mutable and blocked traversal, all zero-copy.
//   - NnzIndex, a constant-time re-access handle for a stored entry.
//
// # Storage invariants
//
// For a matrix with outer dimension d (rows for CSR, columns for CSC) and
// inner dimension m, a validated Mat always satisfies:
//
//   - len(offsets) == d+1, offsets monotonically nondecreasing;
//   - offsets[d] == nnz == len(indices) == len(values);
//   - within each outer slice [offsets[i], offsets[i+1]) the indices are
//     strictly ascending and each lies in [0, m);
//   - no offset exceeds half the addressable index range.
//
// Sketch of the layout for a 3×3 CSR matrix:
//
//	| 0 1 0 |      offsets: [0, 1, 2, 4]
//	| 1 0 0 |      indices: [1, 0, 1, 2]
//	| 0 1 1 |      values:  [1, 1, 1, 1]
//
// # Ownership and views
//
// A Mat either owns its buffers or borrows them. Views (from NewView,
// TransposeView, MiddleOuterViews, View) share storage with their source,
// allocate nothing, and must not outlive it. Structural mutation —
// Insert, the appends, reservation — panics on a view; element values may
// still be written through a view, and such writes hit the shared
// buffers. There is no runtime tracking beyond this flag: the caller
// promises not to use a view past mutation or release of its source.
//
// Everything here is synchronous and single-threaded; no operation
// blocks, suspends or performs I/O.
package sparse

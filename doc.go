// Package sparsix is a storage engine for matrices dominated by zero
// entries: compressed-row (CSR) and compressed-column (CSC) storage with
// owned/borrowed buffer duality, structural validation, storage-order
// conversion and incremental mutation.
//
// 🚀 What is sparsix?
//
//	A pure-Go sparse linear algebra foundation that brings together:
//		• Compressed storage: one Mat type, CSR and CSC as a storage tag
//		• Views: zero-copy outer-slice, sub-matrix and transposed views
//		• Validation: a strict structural checker with sentinel errors
//		• Conversion: O(nnz + dim) counting-sort transpose between orders
//		• Iteration: plain, reversed, permuted, mutable and blocked
//		• Kernels: add/sub/scale, sparse×sparse and sparse×dense products
//
// ✨ Why choose sparsix?
//
//   - Predictable costs – every operation documents its complexity
//   - Strict invariants – validated constructors, trusted fast paths
//   - Pure Go – no cgo, generic over the numeric element type
//   - Zero-copy – views alias their source buffers, never allocate
//
// Under the hood, everything is organized under six subpackages:
//
//	num/    — the Real numeric constraint shared by all packages
//	vec/    — the single-outer-slice sparse vector
//	perm/   — permutations with O(1) forward and inverse lookup
//	sparse/ — the compressed matrix core (storage, views, iteration)
//	dense/  — a minimal row-major dense matrix
//	ops/    — numeric kernels operating over borrowed views
//
// Quick sketch of the storage layout for a 3×3 CSR matrix:
//
//	| 0 1 0 |      offsets: [0, 1, 2, 4]
//	| 1 0 0 |      indices: [1, 0, 1, 2]
//	| 0 1 1 |      values:  [1, 1, 1, 1]
//
// Dive into the sparse package documentation for the structural
// invariants and the view-validity contract.
//
//	go get github.com/katalvlaran/sparsix
package sparsix

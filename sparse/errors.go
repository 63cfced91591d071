// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// sparse package. Validation returns these sentinels and tests match them
// via errors.Is. Panics are reserved for programmer errors: malformed
// owned-construction input, structural mutation of views, Set against a
// missing location.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and easy
// grepping. Per-slice violations are detected by the vec package and are
// returned wrapped with the outer index; callers still match the vec
// sentinels via errors.Is.
//
// CHECK ORDER (documented, enforced in tests):
// offsets length -> indices/values length -> nnz -> offsets monotonicity
// -> offset bounds/overflow -> per-slice index runs.

var (
	// ErrOffsetsLength is returned when len(offsets) != outer dimension + 1.
	ErrOffsetsLength = errors.New("sparse: offsets length does not match outer dimension")

	// ErrDataIndicesMismatch is returned when the indices and values
	// buffers have different lengths.
	ErrDataIndicesMismatch = errors.New("sparse: indices and values lengths do not match")

	// ErrNnzMismatch is returned when the final offset disagrees with the
	// indices length.
	ErrNnzMismatch = errors.New("sparse: offsets nnz does not match indices length")

	// ErrUnsortedOffsets is returned when the offsets array is not
	// monotonically nondecreasing.
	ErrUnsortedOffsets = errors.New("sparse: offsets not sorted")

	// ErrOffsetOutOfBounds is returned when an offset exceeds the indices
	// length or half the addressable index range (overflow guard for
	// downstream index arithmetic).
	ErrOffsetOutOfBounds = errors.New("sparse: offset value out of bounds")
)

// SPDX-License-Identifier: MIT
// Package vec: sentinel error set. All validation failures surface as one
// of these sentinels and tests match them via errors.Is. Panics are
// reserved for programmer errors (mutating access against a missing
// location).

package vec

import "errors"

var (
	// ErrLengthMismatch indicates len(indices) != len(data).
	ErrLengthMismatch = errors.New("vec: indices and data lengths do not match")

	// ErrUnsortedIndices indicates the index run is not strictly ascending.
	ErrUnsortedIndices = errors.New("vec: indices not sorted")

	// ErrIndexOutOfBounds indicates an index outside [0, dim).
	ErrIndexOutOfBounds = errors.New("vec: index out of bounds")
)

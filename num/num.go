// SPDX-License-Identifier: MIT

// Package num declares the numeric constraint shared by every sparsix
// package. A single generic constraint replaces per-type instantiation of
// the scalar kernels: any operation written once over Real covers every
// integer and floating-point element type.
package num

// Real is the element constraint for sparse and dense storage. It admits
// the built-in signed, unsigned and floating-point types plus any type
// defined on top of them.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Zero returns the additive identity of N.
// Complexity: O(1).
func Zero[N Real]() N {
	var z N
	return z
}

// One returns the multiplicative identity of N.
// Complexity: O(1).
func One[N Real]() N {
	return N(1)
}

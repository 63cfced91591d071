// SPDX-License-Identifier: MIT

// Package perm provides permutations over an index range with O(1)
// forward and inverse lookup, as consumed by permuted outer iteration in
// the sparse package.
//
// A Perm stores both directions of the bijection so that Inv is a
// constant-time flip rather than an O(n) inversion.
package perm

import "errors"

// ErrNotBijective indicates that the supplied index slice is not a
// permutation of [0, n).
var ErrNotBijective = errors.New("perm: slice is not a permutation")

// Perm is a bijection over [0, n). The zero value is the empty
// permutation.
type Perm struct {
	fwd []int // fwd[i] is the image of i
	inv []int // inv[fwd[i]] == i
}

// Identity returns the identity permutation over [0, n).
// Complexity: O(n).
func Identity(n int) Perm {
	fwd := make([]int, n)
	inv := make([]int, n)
	for i := range fwd {
		fwd[i] = i
		inv[i] = i
	}

	return Perm{fwd: fwd, inv: inv}
}

// New builds a permutation from the given image slice, validating that it
// is a bijection over [0, len(p)). The slice is not copied.
// Complexity: O(n).
func New(p []int) (Perm, error) {
	n := len(p)
	inv := make([]int, n)
	seen := make([]bool, n)
	for i, img := range p {
		if img < 0 || img >= n || seen[img] {
			return Perm{}, ErrNotBijective
		}
		seen[img] = true
		inv[img] = i
	}

	return Perm{fwd: p, inv: inv}, nil
}

// Len returns the size of the permuted range.
// Complexity: O(1).
func (p Perm) Len() int { return len(p.fwd) }

// At returns the image of i.
// Complexity: O(1).
func (p Perm) At(i int) int { return p.fwd[i] }

// InvAt returns the preimage of i.
// Complexity: O(1).
func (p Perm) InvAt(i int) int { return p.inv[i] }

// Inv returns the inverse permutation. No allocation: the two directions
// are swapped.
// Complexity: O(1).
func (p Perm) Inv() Perm { return Perm{fwd: p.inv, inv: p.fwd} }

// SPDX-License-Identifier: MIT
// Package sparse_test verifies the outer iteration family: ascending and
// reverse traversal, permutation order under both storage modes,
// write-through mutable windows, and fixed-size blocked views.

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsix/num"
	"github.com/katalvlaran/sparsix/perm"
	"github.com/katalvlaran/sparsix/sparse"
	"github.com/katalvlaran/sparsix/vec"
)

// collect drains an outer iterator into (outer, inner, value) triples.
func collect[N num.Real](next func() (int, vec.Vec[N], bool)) [][3]N {
	var out [][3]N
	for {
		outer, v, ok := next()
		if !ok {
			return out
		}
		v.Iter(func(inner int, val N) bool {
			out = append(out, [3]N{N(outer), N(inner), val})

			return true
		})
	}
}

// TestOuterIterator_Ascending verifies forward traversal covers every
// stored entry of mat1 in storage order.
func TestOuterIterator_Ascending(t *testing.T) {
	it := mat1().OuterIterator()
	require.Equal(t, 5, it.Len())

	got := collect(it.Next)
	require.Equal(t, mat1Entries(), got)
	require.Equal(t, 0, it.Len())

	// Exhausted iterator stays exhausted.
	_, _, ok := it.Next()
	require.False(t, ok)
}

// TestOuterIterator_Reverse verifies rear traversal reverses the outer
// order while each slice's inner indices stay ascending.
func TestOuterIterator_Reverse(t *testing.T) {
	it := mat1().OuterIterator()
	got := collect(it.NextBack)

	want := [][3]float64{
		{4, 3, 7},
		{3, 1, 8},
		{2, 2, 5},
		{1, 3, 2}, {1, 4, 5},
		{0, 2, 3}, {0, 3, 4},
	}
	require.Equal(t, want, got)
}

// TestOuterIterator_MeetsInMiddle alternates front and rear; each outer
// slice is yielded exactly once.
func TestOuterIterator_MeetsInMiddle(t *testing.T) {
	it := mat1().OuterIterator()
	seen := map[int]int{}
	fromFront := true
	for it.Len() > 0 {
		var i int
		var ok bool
		if fromFront {
			i, _, ok = it.Next()
		} else {
			i, _, ok = it.NextBack()
		}
		require.True(t, ok)
		seen[i]++
		fromFront = !fromFront
	}
	require.Equal(t, map[int]int{0: 1, 1: 1, 2: 1, 3: 1, 4: 1}, seen)
}

// TestOuterIteratorPerm_CSR verifies the permutation is applied directly
// to CSR rows.
func TestOuterIteratorPerm_CSR(t *testing.T) {
	p, err := perm.New([]int{2, 0, 4, 1, 3})
	require.NoError(t, err)

	it := mat1().OuterIteratorPerm(p)
	var order []int
	for {
		i, _, ok := it.Next()
		if !ok {
			break
		}
		order = append(order, i)
	}
	require.Equal(t, []int{2, 0, 4, 1, 3}, order)
}

// TestOuterIteratorPerm_CSCInverts verifies the same permutation drives a
// CSC traversal through its inverse, so row and column traversals of a
// symmetric reordering agree.
func TestOuterIteratorPerm_CSCInverts(t *testing.T) {
	p, err := perm.New([]int{2, 0, 4, 1, 3})
	require.NoError(t, err)

	it := mat1CSC().OuterIteratorPerm(p)
	var order []int
	for {
		i, _, ok := it.Next()
		if !ok {
			break
		}
		order = append(order, i)
	}
	// inverse of [2 0 4 1 3]
	require.Equal(t, []int{1, 3, 0, 4, 2}, order)
}

func TestOuterIteratorPerm_LengthMismatchPanics(t *testing.T) {
	require.Panics(t, func() {
		mat1().OuterIteratorPerm(perm.Identity(4))
	})
}

// TestOuterIteratorMut verifies value writes through the yielded windows
// land in the matrix buffers.
func TestOuterIteratorMut(t *testing.T) {
	m := mat1()
	it := m.OuterIteratorMut()
	for {
		_, v, ok := it.Next()
		if !ok {
			break
		}
		for _, inner := range v.Indices() {
			*v.GetMut(inner) *= 2
		}
	}
	require.Equal(t, mat1Times2().Values(), m.Values())
}

// TestOuterBlockIterator verifies block sizes 3,3,3,2 over an 11-slice
// matrix, with every outer index covered exactly once.
func TestOuterBlockIterator(t *testing.T) {
	m := sparse.Eye[float64](11)
	it := m.OuterBlockIterator(3)

	var sizes []int
	covered := 0
	for {
		blk, ok := it.Next()
		if !ok {
			break
		}
		sizes = append(sizes, blk.OuterDims())
		require.True(t, blk.IsView())
		require.Equal(t, blk.OuterDims(), blk.NNZ())
		covered += blk.OuterDims()
	}
	require.Equal(t, []int{3, 3, 3, 2}, sizes)
	require.Equal(t, 11, covered)
}

// TestOuterBlockIterator_BlockContents verifies the yielded views address
// the right slices of a non-trivial matrix.
func TestOuterBlockIterator_BlockContents(t *testing.T) {
	it := mat1().OuterBlockIterator(2)

	blk, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 2, blk.Rows())
	require.Equal(t, 5, blk.Cols())
	require.Equal(t, 4, blk.NNZ())
	v, found := blk.Get(1, 4)
	require.True(t, found)
	require.Equal(t, 5.0, v)

	blk, ok = it.Next()
	require.True(t, ok)
	require.Equal(t, 2, blk.NNZ())

	blk, ok = it.Next()
	require.True(t, ok)
	require.Equal(t, 1, blk.Rows())
	require.Equal(t, 1, blk.NNZ())

	_, ok = it.Next()
	require.False(t, ok)
}

func TestOuterBlockIterator_NonPositivePanics(t *testing.T) {
	require.Panics(t, func() { mat1().OuterBlockIterator(0) })
}

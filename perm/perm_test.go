// SPDX-License-Identifier: MIT
package perm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsix/perm"
)

func TestIdentity(t *testing.T) {
	p := perm.Identity(4)
	require.Equal(t, 4, p.Len())
	for i := 0; i < 4; i++ {
		require.Equal(t, i, p.At(i))
		require.Equal(t, i, p.InvAt(i))
	}
}

func TestNew_Valid(t *testing.T) {
	p, err := perm.New([]int{2, 0, 3, 1})
	require.NoError(t, err)

	require.Equal(t, 2, p.At(0))
	require.Equal(t, 1, p.At(3))
	// inv undoes fwd.
	for i := 0; i < p.Len(); i++ {
		require.Equal(t, i, p.InvAt(p.At(i)))
	}
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   []int
	}{
		{"duplicate image", []int{0, 1, 1}},
		{"out of range", []int{0, 3, 1}},
		{"negative", []int{0, -1, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := perm.New(tc.in)
			require.ErrorIs(t, err, perm.ErrNotBijective)
		})
	}
}

func TestInv(t *testing.T) {
	p, err := perm.New([]int{2, 0, 3, 1})
	require.NoError(t, err)

	q := p.Inv()
	for i := 0; i < p.Len(); i++ {
		require.Equal(t, i, q.At(p.At(i)))
	}
	// Double inversion is the original.
	r := q.Inv()
	for i := 0; i < p.Len(); i++ {
		require.Equal(t, p.At(i), r.At(i))
	}
}

func TestZeroValue(t *testing.T) {
	var p perm.Perm
	require.Equal(t, 0, p.Len())
}

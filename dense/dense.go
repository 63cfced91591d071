// SPDX-License-Identifier: MIT

// Package dense provides a minimal row-major dense matrix: the
// materialization target for sparse matrices and the dense operand of the
// mixed kernels in ops.
//
// Purpose:
//   - Cache-friendly row-major buffer with the explicit index formula
//     i*cols + j.
//   - Deterministic layout and loop orders; no map iteration anywhere.
//
// Out-of-bounds direct indexing is a programmer error here and panics;
// there is no recoverable-error surface on element access.
package dense

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sparsix/num"
)

// Dense is a concrete row-major matrix: r×c values in a flat buffer with
// offset i*c + j.
type Dense[N num.Real] struct {
	r, c int
	data []N // contiguous row-major storage, len == r*c
}

// New returns an r×c zero matrix. Negative dimensions panic (programmer
// error); zero-sized shapes are legal.
// Complexity: O(r*c).
func New[N num.Real](rows, cols int) *Dense[N] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("dense: New(%d,%d): negative dimensions", rows, cols))
	}

	return &Dense[N]{r: rows, c: cols, data: make([]N, rows*cols)}
}

// FromRows builds a matrix from row slices. All rows must have equal
// length; ragged input panics.
// Complexity: O(r*c).
func FromRows[N num.Real](rows [][]N) *Dense[N] {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m := New[N](r, c)
	for i, row := range rows {
		if len(row) != c {
			panic(fmt.Sprintf("dense: FromRows: row %d has length %d, want %d", i, len(row), c))
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m
}

// Rows returns the row count.
// Complexity: O(1).
func (m *Dense[N]) Rows() int { return m.r }

// Cols returns the column count.
// Complexity: O(1).
func (m *Dense[N]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
// Complexity: O(1).
func (m *Dense[N]) Shape() (rows, cols int) { return m.r, m.c }

// offset computes the row-major offset, panicking on out-of-bounds
// coordinates.
func (m *Dense[N]) offset(row, col int) int {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		panic(fmt.Sprintf("dense: index (%d,%d) out of range for %d×%d", row, col, m.r, m.c))
	}

	return row*m.c + col
}

// At returns the value at (row, col).
// Complexity: O(1).
func (m *Dense[N]) At(row, col int) N { return m.data[m.offset(row, col)] }

// Set stores v at (row, col).
// Complexity: O(1).
func (m *Dense[N]) Set(row, col int, v N) { m.data[m.offset(row, col)] = v }

// Data returns the flat row-major buffer. Shared, not copied; hot loops
// in the kernels index it directly.
// Complexity: O(1).
func (m *Dense[N]) Data() []N { return m.data }

// Clone returns an independent deep copy.
// Complexity: O(r*c).
func (m *Dense[N]) Clone() *Dense[N] {
	cp := make([]N, len(m.data))
	copy(cp, m.data)

	return &Dense[N]{r: m.r, c: m.c, data: cp}
}

// Equal reports whether two matrices have identical shape and values.
// Complexity: O(r*c).
func (m *Dense[N]) Equal(o *Dense[N]) bool {
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// String renders the rows as lines for diagnostics; not for hot paths.
// Complexity: O(r*c).
func (m *Dense[N]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		base := i * m.c
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}

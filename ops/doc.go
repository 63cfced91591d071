// Package ops provides the numeric kernels over compressed sparse
// matrices: dense materialization, elementwise addition and subtraction,
// scalar multiplication, and sparse×sparse / sparse×dense products.
//
// All kernels operate over borrowed views, allocate their own outputs and
// leave their operands untouched. The product kernels accept a
// caller-reusable Workspace so that repeated multiplications amortize the
// accumulator allocations.
//
// Kernels walk entries in storage order via the outer iterators; they
// never use random access on their operands. Dimension mismatches are
// programmer errors and panic.
package ops

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Kernels in impl_linear_algebra.go / impl_elimination.go operate on the flat
//     data slice directly when handed a *Dense.
//   - NewDenseFrom copies the caller's rows; later edits to the input slices
//     never leak into the matrix.
//
// Complexity quicksheet:
//   - NewDense/NewDenseFrom: O(r*c); At/Set: O(1); Clone/Elements: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"           // method tag used in error wrappers
	ctxSet   = "Set"          // method tag used in error wrappers
	ctxApply = "Apply"        // method tag used in error wrappers
	ctxFrom  = "NewDenseFrom" // ctor tag for row-slice construction
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtValue    = "%g"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>". The sentinel stays matchable via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set/Apply.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return NewDenseWithOptions(rows, cols)
}

// NewDenseWithOptions is NewDense with an explicit numeric policy.
// Only the validateNaNInf flag of the resolved Options is consulted.
func NewDenseWithOptions(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom builds a rows×cols matrix from a slice of rows.
// MAIN DESCRIPTION:
//   - The shell-facing constructor: declared shape plus the parsed element rows.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0.
//   - Stage 2: require len(elements)==rows and len(elements[i])==cols for every i.
//   - Stage 3: copy row by row into the flat buffer, enforcing the numeric policy.
//
// Behavior highlights:
//   - The input is copied; the matrix never aliases the caller's slices.
//   - The first offending row is named in the error.
//
// Errors:
//   - ErrInvalidDimensions for non-positive rows/cols.
//   - ErrDimensionMismatch when the element rows do not match the declared shape.
//   - ErrNaNInf for a non-finite element under the default policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - NewDenseFrom(2, 2, [][]float64{{1, 2, 3}, {4, 5, 6}}) fails with
//     ErrDimensionMismatch on row 0; shape is never inferred from the data.
func NewDenseFrom(rows, cols int, elements [][]float64) (*Dense, error) {
	return NewDenseFromWithOptions(rows, cols, elements)
}

// NewDenseFromWithOptions is NewDenseFrom with an explicit numeric policy.
func NewDenseFromWithOptions(rows, cols int, elements [][]float64, opts ...Option) (*Dense, error) {
	m, err := NewDenseWithOptions(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(elements) != rows {
		return nil, fmt.Errorf("Dense.%s: got %d rows, want %d: %w", ctxFrom, len(elements), rows, ErrDimensionMismatch)
	}

	var i, j, base int
	for i = 0; i < rows; i++ {
		if len(elements[i]) != cols {
			return nil, fmt.Errorf("Dense.%s: row %d has %d cols, want %d: %w", ctxFrom, i, len(elements[i]), cols, ErrDimensionMismatch)
		}
		base = i * cols
		for j = 0; j < cols; j++ {
			if m.validateNaNInf && isNonFinite(elements[i][j]) {
				return nil, denseErrorf(ctxFrom, i, j, ErrNaNInf)
			}
			m.data[base+j] = elements[i][j]
		}
	}

	return m, nil
}

// newDenseLike allocates a zero matrix of the given shape carrying src's
// numeric policy. Shape must already be validated by the caller.
func newDenseLike(rows, cols int, validateNaNInf bool) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: validateNaNInf,
	}
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and computes the row-major offset.
// Returns the bare sentinel; At/Set add coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) in place.
// MAIN DESCRIPTION:
//   - The only mutating accessor; every kernel result is a fresh container.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.clone() }

// clone is the typed variant used by kernels that keep working on *Dense.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Elements returns a fresh [][]float64 copy of the matrix rows.
// Intended for renderers and callers that want plain slices back.
// Complexity: O(r*c).
func (m *Dense) Elements() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders rows as "[a, b]\n" lines with %g values.
// Intended for logs and interactive front ends; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, _fmtValue, m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, row-major order.
// Elements written before a policy violation stay updated; for
// all-or-nothing semantics transform a clone and swap on success.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value and the policy is on.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

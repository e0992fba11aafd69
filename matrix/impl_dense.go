// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep loop orders fixed (i→j or flat 0..n-1) so results are reproducible.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Ownership:
//   - A Dense owns its buffer exclusively. Clone is the only way to duplicate it;
//     no two Dense values ever alias the same storage.
//
// Complexity quicksheet:
//   - NewDense/NewFilled: O(r*c); NewFromRows: O(r*c); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"          // method tag used in error wrappers
	ctxSet       = "Set"         // method tag used in error wrappers
	ctxApply     = "Apply"       // method tag used in error wrappers
	ctxApplyFunc = "ApplyFunc"   // method tag used in error wrappers
	ctxRow       = "Row"         // method tag used in error wrappers
	ctxFromRows  = "NewFromRows" // ctor tag
	ctxAddOuter  = "AddOuter"    // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Behavior highlights:
//   - Stable, human-friendly messages "Dense.<method>(row,col): <sentinel>".
//   - Preserves the sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection on writes.
type Dense struct {
	r, c           int       // row and column counts (> 0)
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
	return NewDenseWith(rows, cols)
}

// NewDenseWith creates an r×c zero matrix with an explicit numeric policy.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - opts: policy setters (WithValidateNaNInf / WithNoValidateNaNInf).
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseWith(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape before allocating anything.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	// make() zero-fills the contiguous buffer.
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewFilled creates an r×c matrix with every element set to fill.
// MAIN DESCRIPTION:
//   - Same contract as NewDense, plus a constant initial value.
//
// Errors:
//   - ErrInvalidDimensions for non-positive dimensions.
//   - ErrNaNInf when fill is not finite under the default policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilled(rows, cols int, fill float64, opts ...Option) (*Dense, error) {
	m, err := NewDenseWith(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if m.validateNaNInf && !isFinite(fill) {
		return nil, fmt.Errorf("NewFilled: %w", ErrNaNInf)
	}
	if fill != 0 {
		for idx := range m.data {
			m.data[idx] = fill
		}
	}

	return m, nil
}

// NewFromRows builds a Dense from a nested literal.
// MAIN DESCRIPTION:
//   - Infers cols from the first row; every row must have that same length.
//
// Implementation:
//   - Stage 1: reject empty outer slice or empty first row (ErrInvalidDimensions).
//   - Stage 2: verify every row length; ragged input → ErrBadShape naming the row.
//   - Stage 3: copy rows into one contiguous buffer (the input is never aliased).
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape, ErrNaNInf (non-finite literal under policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	var i int
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrBadShape)
		}
	}

	m, err := NewDenseWith(r, c, opts...)
	if err != nil {
		return nil, err
	}
	for i = 0; i < r; i++ {
		if m.validateNaNInf && !allFinite(rows[i]) {
			return nil, fmt.Errorf("%s: row %d: %w", ctxFromRows, i, ErrNaNInf)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Errors:
//   - ErrOutOfRange when out of bounds, wrapped as "Dense.At(i,j): ...".
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values when the policy is on.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a copy of row i.
// The copy keeps ownership exclusive: mutating it never touches the matrix.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations of the clone never affect the original.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	return m.CloneDense()
}

// CloneDense is Clone with the concrete return type, for callers that keep *Dense.
func (m *Dense) CloneDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String renders matrix rows as lines with comma-separated values.
// Intended for debugging; not for hot paths.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - All-or-nothing: new values are staged and written back only when every
//     one of them passes the numeric policy.
//
// Errors:
//   - ErrNaNInf when the transformer produced a non-finite value (policy ON),
//     wrapped with the coordinates of the first offending cell.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the staging buffer.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	staged := make([]float64, len(m.data))
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && !isFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			staged[base+j] = nv
		}
	}
	copy(m.data, staged)

	return nil
}

// ApplyFunc maps a unary function over every element in-place; the shape is unchanged.
// It shares Apply's all-or-nothing policy semantics.
//
// Errors:
//   - ErrNaNInf (policy ON) when f yields NaN/±Inf for some element.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) ApplyFunc(f func(v float64) float64) error {
	err := m.Apply(func(_, _ int, v float64) float64 { return f(v) })
	if err != nil {
		return fmt.Errorf("%s: %w", ctxApplyFunc, err)
	}

	return nil
}

// Randomize fills every element with a uniform pseudo-random value in [0, 1).
// The source is the process-wide math/rand generator, which the runtime seeds
// at start-up; results are not reproducible across runs.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Randomize() {
	for idx := range m.data {
		m.data[idx] = rand.Float64()
	}
}

// RandomizeWith is Randomize drawing from the caller's stream.
// A nil rng falls back to the process-wide generator.
//
// Notes:
//   - *rand.Rand is NOT goroutine-safe; do not share one stream across goroutines.
func (m *Dense) RandomizeWith(rng *rand.Rand) {
	if rng == nil {
		m.Randomize()
		return
	}
	for idx := range m.data {
		m.data[idx] = rng.Float64()
	}
}

// AddOuter performs the rank-1 update m[i][j] += alpha * x[i] * y[j] in-place.
// MAIN DESCRIPTION:
//   - The gradient-descent weight update of a dense layer: x is the layer's
//     delta vector, y the previous layer's outputs.
//
// Implementation:
//   - Stage 1: validate len(x)==Rows(), len(y)==Cols().
//   - Stage 2 (policy ON): verify every updated value is finite before writing.
//   - Stage 3: per row, data[row] += (alpha*x[i]) * y via floats.AddScaled.
//
// Errors:
//   - ErrDimensionMismatch on length mismatch; ErrNaNInf (policy ON). On error
//     the matrix is left unchanged.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) AddOuter(alpha float64, x, y []float64) error {
	if err := ValidateVecLen(x, m.r); err != nil {
		return fmt.Errorf("Dense.%s: x: %w", ctxAddOuter, err)
	}
	if err := ValidateVecLen(y, m.c); err != nil {
		return fmt.Errorf("Dense.%s: y: %w", ctxAddOuter, err)
	}

	var i, j, base int
	if m.validateNaNInf {
		for i = 0; i < m.r; i++ {
			base = i * m.c
			for j = 0; j < m.c; j++ {
				if !isFinite(m.data[base+j] + alpha*x[i]*y[j]) {
					return denseErrorf(ctxAddOuter, i, j, ErrNaNInf)
				}
			}
		}
	}

	for i = 0; i < m.r; i++ {
		if x[i] == 0 {
			continue // row unchanged
		}
		base = i * m.c
		floats.AddScaled(m.data[base:base+m.c], alpha*x[i], y)
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// allFinite reports whether every value in xs is finite.
func allFinite(xs []float64) bool {
	for _, v := range xs {
		if !isFinite(v) {
			return false
		}
	}

	return true
}

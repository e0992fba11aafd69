// Package matrix is the dense numeric substrate of the fcnn module.
//
// What:
//
//   - Matrix: a minimal interface (Rows, Cols, At, Set, Clone).
//   - Dense: a row-major implementation over ONE contiguous []float64 buffer
//     (offset i*cols + j). No per-row allocation, no shared storage.
//   - Kernels: Mul, MatVec, MatTVec, Hadamard, Scale, Add, Sub, Transpose,
//     AllClose. They allocate their result and never mutate operands.
//   - In-place methods on *Dense: ApplyFunc, Apply, Randomize, AddOuter.
//
// Why:
//
//	Every higher-level structure of a fully-connected network (weights,
//	activations, deltas) is a Dense or a flat []float64. Shape mistakes are
//	programmer errors and surface immediately as sentinel errors: there is no
//	implicit broadcasting and no silent truncation.
//
// Errors:
//
//	ErrInvalidDimensions - rows or cols <= 0 at construction.
//	ErrBadShape          - ragged nested literal.
//	ErrDimensionMismatch - incompatible operand shapes or vector lengths.
//	ErrOutOfRange        - At/Set/Row outside [0,rows)×[0,cols).
//	ErrNaNInf            - non-finite write under the default numeric policy.
//	ErrNilMatrix         - nil operand.
//
// Concurrency:
//
//	A Dense is not safe for concurrent mutation. Read-only kernels may run in
//	parallel on matrices nobody writes to.
//
// Example:
//
//	w, _ := matrix.NewFromRows([][]float64{{1, 1}})
//	y, _ := matrix.MatVec(w, []float64{2, 3}) // [5]
package matrix

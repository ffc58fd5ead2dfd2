// Package matrix provides a small row-major Dense matrix of float64 values
// together with the handful of operations the exercises need: transposition,
// element-wise products, logical OR of 0/1 matrices, row sums, L1 row
// normalization and a comma-separated text codec.
//
// What & Why:
//
//	Relation tables (nodes × five relation counts), conditional probability
//	tables (sums × products) and order-relation matrices (labels × labels) all
//	share one representation. Every indexer is bounds-checked and returns a
//	sentinel error instead of panicking.
//
// Text format:
//
//	one row per line, values separated by ",", non-negative integers only:
//
//	    0,1,3,0,0
//	    0,0,1,0,1
//
// Errors:
//
//	ErrInvalidDimensions - requested shape is not positive.
//	ErrIndexOutOfBounds  - At/Set outside the shape.
//	ErrDimensionMismatch - operands (or parsed rows) disagree in shape.
//	ErrNilMatrix         - nil operand.
//	ErrEmpty             - text contained no rows.
//	ErrParse             - malformed token, see *ParseError for the position.
package matrix

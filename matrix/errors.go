// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." so wrapped chains stay greppable.
// Callers match with errors.Is / errors.As.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible shapes between operands
	// or a ragged row in parsed text.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmpty indicates that the input text contained no rows.
	ErrEmpty = errors.New("matrix: no rows")

	// ErrParse indicates a malformed table token.
	ErrParse = errors.New("matrix: parse error")
)

// ParseError reports the position of a malformed token in table text.
// Line and Column are 1-based; Column counts comma-separated fields.
type ParseError struct {
	Line   int
	Column int
	Token  string
	Err    error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("matrix: line %d, column %d: %q: %v", e.Line, e.Column, e.Token, e.Err)
}

// Unwrap exposes both ErrParse and the underlying cause to errors.Is.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}

	return []error{ErrParse, e.Err}
}

// matrixErrorf wraps err with the operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

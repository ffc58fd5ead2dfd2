// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// errNegative rejects counts below zero.
var errNegative = errors.New("negative value")

// ParseCSV parses newline-separated rows of comma-separated non-negative
// integers into a Dense matrix. Blank lines are ignored; surrounding spaces
// around a token are trimmed.
//
// Errors:
//   - ErrEmpty when no row is present.
//   - *ParseError (errors.Is ErrParse) for a non-integer or negative token.
//   - *ParseError wrapping ErrDimensionMismatch for a ragged row.
func ParseCSV(text string) (*Dense, error) {
	var rows [][]float64
	var width int

	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(rows) == 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, &ParseError{
				Line:   lineNo + 1,
				Column: len(fields),
				Token:  line,
				Err:    fmt.Errorf("%d values, want %d: %w", len(fields), width, ErrDimensionMismatch),
			}
		}

		row := make([]float64, len(fields))
		for col, field := range fields {
			tok := strings.TrimSpace(field)
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &ParseError{Line: lineNo + 1, Column: col + 1, Token: tok, Err: err}
			}
			if v < 0 {
				return nil, &ParseError{
					Line: lineNo + 1, Column: col + 1, Token: tok,
					Err: errNegative,
				}
			}
			row[col] = float64(v)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	return NewFromRows(rows)
}

// FormatCSV renders m in the table text format. Values are written as
// integers when they are whole numbers and with %g otherwise. No trailing
// newline is emitted.
func FormatCSV(m Matrix) (string, error) {
	if m == nil {
		return "", ErrNilMatrix
	}
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j = 0; j < m.Cols(); j++ {
			if j > 0 {
				sb.WriteByte(',')
			}
			v, err := m.At(i, j)
			if err != nil {
				return "", err
			}
			if v == math.Trunc(v) && !math.IsInf(v, 0) {
				sb.WriteString(strconv.FormatInt(int64(v), 10))
			} else {
				sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			}
		}
	}

	return sb.String(), nil
}

// Fingerprint returns the xxhash64 of FormatCSV(m) as 16 hex digits.
// Two tables with the same text form share a fingerprint.
func Fingerprint(m Matrix) (string, error) {
	text, err := FormatCSV(m)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", xxhash.Sum64String(text)), nil
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every message is prefixed with "matrix: ". Parse wraps these with a
// position (row/column) using %w, so errors.Is keeps working.

package matrix

import "errors"

var (
	// ErrEmptyMatrix is returned when the input contains no non-blank rows.
	ErrEmptyMatrix = errors.New("matrix: matrix is empty")

	// ErrMalformedNumber indicates a token that does not parse as a base-10 integer.
	ErrMalformedNumber = errors.New("matrix: malformed number")

	// ErrNotSquare signals that the number of rows differs from some row's column count.
	ErrNotSquare = errors.New("matrix: matrix must be square")

	// ErrNotSymmetric signals that m[i][j] != m[j][i] for some i, j.
	ErrNotSymmetric = errors.New("matrix: matrix must be symmetric")

	// ErrSizeOutOfRange indicates a requested generator size outside [MinSize, MaxSize].
	ErrSizeOutOfRange = errors.New("matrix: size out of range")
)

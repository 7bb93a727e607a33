// SPDX-License-Identifier: MIT
// Package matrix: shape and symmetry validators shared by Parse and the generators.
//
// Validators are pure, allocate nothing and return wrapped sentinels.

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with a validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m has at least one row and that every row has
// exactly len(m) entries.
// Complexity: O(n).
func ValidateSquare(m [][]int64) error {
	n := len(m)
	if n == 0 {
		return validatorErrorf("ValidateSquare", ErrEmptyMatrix)
	}
	for i, row := range m {
		if len(row) != n {
			return validatorErrorf(
				fmt.Sprintf("ValidateSquare: row %d has %d columns, want %d", i+1, len(row), n),
				ErrNotSquare)
		}
	}

	return nil
}

// ValidateSymmetric checks m[i][j] == m[j][i] over the upper triangle.
// It assumes m is square (call ValidateSquare first).
// Complexity: O(n²).
func ValidateSymmetric(m [][]int64) error {
	n := len(m)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m[i][j] != m[j][i] {
				return validatorErrorf(
					fmt.Sprintf("ValidateSymmetric: m[%d][%d]=%d, m[%d][%d]=%d", i, j, m[i][j], j, i, m[j][i]),
					ErrNotSymmetric)
			}
		}
	}

	return nil
}

// ValidateSize checks that n lies in [MinSize, MaxSize].
func ValidateSize(n int) error {
	if n < MinSize || n > MaxSize {
		return validatorErrorf(
			fmt.Sprintf("ValidateSize: n=%d not in [%d,%d]", n, MinSize, MaxSize),
			ErrSizeOutOfRange)
	}

	return nil
}

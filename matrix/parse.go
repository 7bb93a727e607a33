// SPDX-License-Identifier: MIT
// Package matrix: text ⇄ matrix conversion.

package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/mststep/core"
)

// Parse converts adjacency-matrix text into a Graph.
//
// Steps:
//  1. Split into lines, trim each, drop blank ones.
//  2. Split each line on whitespace; every token must be a base-10 integer.
//  3. ValidateSquare, then ValidateSymmetric.
//  4. Build the Graph (nodes on the layout circle, i<j edges with weight > 0).
//
// Complexity: O(n²).
func Parse(text string) (*core.Graph, error) {
	m, err := ParseMatrix(text)
	if err != nil {
		return nil, err
	}

	return core.NewGraph(m), nil
}

// ParseMatrix performs steps 1–3 of Parse and returns the validated raw matrix.
func ParseMatrix(text string) ([][]int64, error) {
	var m [][]int64
	row := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row++
		fields := strings.Fields(line)
		vals := make([]int64, len(fields))
		for col, tok := range fields {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("Parse: row %d, col %d: %q: %w", row, col+1, tok, ErrMalformedNumber)
			}
			vals[col] = v
		}
		m = append(m, vals)
	}

	if err := ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	if err := ValidateSymmetric(m); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return m, nil
}

// Format renders m as rows of space-joined integers separated by '\n'.
func Format(m [][]int64) string {
	var sb strings.Builder
	for i, row := range m {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatInt(v, 10))
		}
	}

	return sb.String()
}

// ClampVertex bounds a start vertex to [0, n-1]; for n == 0 it returns 0.
// After a new parse the node set may shrink, so a previously chosen start
// vertex is clamped rather than rejected.
func ClampVertex(v, n int) int {
	if v > n-1 {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}

	return v
}

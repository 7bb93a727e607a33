// SPDX-License-Identifier: MIT
// Package matrix: starting-matrix generators.
//
// Determinism:
//   - Pairs are visited i asc, j asc (j > i); for each pair one Bernoulli
//     trial is drawn, followed by one weight draw only on success.
//   - Fixed seed + fixed options ⇒ identical matrix.

package matrix

import "fmt"

const (
	methodEmpty  = "Empty"
	methodRandom = "Random"
)

// Empty returns an n×n zero matrix.
func Empty(n int) ([][]int64, error) {
	if err := ValidateSize(n); err != nil {
		return nil, fmt.Errorf("%s: %w", methodEmpty, err)
	}

	return zeros(n), nil
}

// Random returns a symmetric n×n matrix with a zero diagonal where each pair
// i<j receives an edge with probability p and a weight drawn uniformly from
// [minWeight, maxWeight].
// Complexity: O(n²).
func Random(n int, opts ...GenOption) ([][]int64, error) {
	if err := ValidateSize(n); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}
	cfg := newGenConfig(opts...)
	span := cfg.maxWeight - cfg.minWeight + 1

	m := zeros(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() >= cfg.p {
				continue
			}
			w := cfg.minWeight + cfg.rng.Int63n(span)
			m[i][j] = w
			m[j][i] = w
		}
	}

	return m, nil
}

func zeros(n int) [][]int64 {
	m := make([][]int64, n)
	for i := range m {
		m[i] = make([]int64, n)
	}

	return m
}

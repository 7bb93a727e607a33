package matrix_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Triangle parses the canonical triangle and checks nodes, edges and matrix.
func TestParse_Triangle(t *testing.T) {
	g, err := matrix.Parse("0 1 4\n1 0 2\n4 2 0")
	require.NoError(t, err)

	assert.Equal(t, 3, g.Order())
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 4},
		{From: 1, To: 2, Weight: 2},
	}, g.Edges)
	assert.Equal(t, [][]int64{{0, 1, 4}, {1, 0, 2}, {4, 2, 0}}, g.Matrix)
}

// TestParse_Whitespace verifies blank lines, tabs and surrounding spaces are tolerated.
func TestParse_Whitespace(t *testing.T) {
	g, err := matrix.Parse("\n  0\t3 \n\n 3   0\n\n")
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 3}}, g.Edges)
}

// TestParse_Errors covers every sentinel in the parse taxonomy.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"Empty", "", matrix.ErrEmptyMatrix},
		{"Blank", "  \n\t\n", matrix.ErrEmptyMatrix},
		{"Malformed", "0 x\nx 0", matrix.ErrMalformedNumber},
		{"Float", "0 1.5\n1.5 0", matrix.ErrMalformedNumber},
		{"Hex", "0 0x1\n0x1 0", matrix.ErrMalformedNumber},
		{"NotSquareRows", "0 1\n0 1 2", matrix.ErrNotSquare},
		{"NotSquareTall", "0 1\n1 0\n0 0", matrix.ErrNotSquare},
		{"NotSymmetric", "0 3\n4 0", matrix.ErrNotSymmetric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := matrix.Parse(tc.text)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParse_MalformedBeforeShape checks validation order: tokens first, then shape.
func TestParse_MalformedBeforeShape(t *testing.T) {
	_, err := matrix.Parse("0 1\n0 1 z")
	assert.ErrorIs(t, err, matrix.ErrMalformedNumber)
	assert.Contains(t, err.Error(), "row 2, col 3")
}

// TestParse_RoundTrip parses randomly generated symmetric matrices of every
// supported size and checks node count and exact edge set.
func TestParse_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for n := matrix.MinSize; n <= matrix.MaxSize; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m, err := matrix.Random(n, matrix.WithRand(r), matrix.WithEdgeProbability(0.5))
			require.NoError(t, err)

			g, err := matrix.Parse(matrix.Format(m))
			require.NoError(t, err)
			require.Equal(t, n, g.Order())
			assert.Equal(t, m, g.Matrix)

			var want []core.Edge
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					if m[i][j] > 0 {
						want = append(want, core.Edge{From: i, To: j, Weight: m[i][j]})
					}
				}
			}
			if want == nil {
				assert.Empty(t, g.Edges)
			} else {
				assert.Equal(t, want, g.Edges)
			}
		})
	}
}

// TestFormat checks the text layout.
func TestFormat(t *testing.T) {
	got := matrix.Format([][]int64{{0, 12}, {12, 0}})
	assert.Equal(t, "0 12\n12 0", got)
	assert.Equal(t, 2, len(strings.Split(got, "\n")))
}

// TestClampVertex checks start-vertex clamping after the node set changes.
func TestClampVertex(t *testing.T) {
	assert.Equal(t, 2, matrix.ClampVertex(5, 3))
	assert.Equal(t, 1, matrix.ClampVertex(1, 3))
	assert.Equal(t, 0, matrix.ClampVertex(-4, 3))
	assert.Equal(t, 0, matrix.ClampVertex(3, 0))
}

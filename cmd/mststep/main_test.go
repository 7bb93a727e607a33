package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/mststep/config"
	"github.com/katalvlaran/mststep/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleText = "0 1 4\n1 0 2\n4 2 0\n"

// execute runs the CLI with stdin and returns stdout, stderr and the error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

// TestStep_KruskalStdin prints every step and the summary.
func TestStep_KruskalStdin(t *testing.T) {
	out, _, err := execute(t, triangleText, "step")
	require.NoError(t, err)
	assert.Contains(t, out, "1st step: 0 -- 1 (weight: 1) accepted")
	assert.Contains(t, out, "2nd step: 1 -- 2 (weight: 2) accepted")
	assert.Contains(t, out, "3rd step: 0 -- 2 (weight: 4) rejected")
	assert.Contains(t, out, "MST edges: 2 / 2 (complete)")
	assert.Contains(t, out, "Total weight: 3")
}

// TestStep_PrimFromFileWithLimit honors --algorithm, --start and --steps.
func TestStep_PrimFromFileWithLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte(triangleText), 0o600))

	out, _, err := execute(t, "", "step", "-f", path, "-a", "prim", "-s", "2", "--steps", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1st step: 2 -- 1 (weight: 2) accepted")
	assert.NotContains(t, out, "2nd step")
	assert.Contains(t, out, "MST edges: 1 / 2 (incomplete)")
}

// TestStep_Disconnected reports an incomplete tree.
func TestStep_Disconnected(t *testing.T) {
	out, _, err := execute(t, "0 5 0\n5 0 0\n0 0 0", "step", "-a", "prim")
	require.NoError(t, err)
	assert.Contains(t, out, "MST edges: 1 / 2 (complete, graph is disconnected)")
}

// TestStep_ParseError surfaces the matrix error.
func TestStep_ParseError(t *testing.T) {
	_, stderr, err := execute(t, "0 3\n4 0", "step", "--log-level", "warn")
	assert.ErrorIs(t, err, matrix.ErrNotSymmetric)
	assert.Contains(t, stderr, "matrix rejected")
}

// TestRun_Unpaced completes through the auto-run path.
func TestRun_Unpaced(t *testing.T) {
	out, _, err := execute(t, triangleText, "run", "--speed", "100", "-a", "prim")
	require.NoError(t, err)
	assert.Contains(t, out, "2nd step: 1 -- 2 (weight: 2) accepted")
	assert.Contains(t, out, "Total weight: 3")
}

// TestGenerate prints empty and seeded random matrices that parse back.
func TestGenerate(t *testing.T) {
	out, _, err := execute(t, "", "generate", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, "0 0 0\n0 0 0\n0 0 0\n", out)

	a, _, err := execute(t, "", "generate", "-n", "6", "--random", "--seed", "5")
	require.NoError(t, err)
	b, _, err := execute(t, "", "generate", "-n", "6", "--random", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	_, err = matrix.Parse(a)
	assert.NoError(t, err)

	_, _, err = execute(t, "", "generate", "-n", "12")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	_, _, err = execute(t, "", "generate", "--random", "--probability", "2")
	assert.ErrorIs(t, err, errProbability)
}

// TestExport_Formats renders DOT and JSON.
func TestExport_Formats(t *testing.T) {
	out, _, err := execute(t, triangleText, "export")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "graph mst"))

	out, _, err = execute(t, triangleText, "export", "--format", "json", "--steps", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `"totalWeight": 1`)

	_, _, err = execute(t, triangleText, "export", "--format", "svg")
	assert.Error(t, err)
}

// TestConfigFile overlays YAML and lets flags win.
func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: prim\nstartVertex: 1\n"), 0o600))

	out, _, err := execute(t, triangleText, "step", "--config", path, "--steps", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1st step: 1 -- 0 (weight: 1) accepted")

	out, _, err = execute(t, triangleText, "step", "--config", path, "-a", "kruskal", "--steps", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1st step: 0 -- 1 (weight: 1) accepted")
}

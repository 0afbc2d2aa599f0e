package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltree/tree"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(append([]string{"lvltree"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestParseLevels(t *testing.T) {
	counts, err := parseLevels("3, 7,12")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7, 12}, counts)

	counts, err = parseLevels("  ")
	require.NoError(t, err)
	assert.NotNil(t, counts)
	assert.Empty(t, counts)

	_, err = parseLevels("3,x")
	assert.Error(t, err)
}

func TestRunLength(t *testing.T) {
	assert.Equal(t, "3 2×2", runLength([]int{3, 2, 2}))
	assert.Equal(t, "2×4", runLength([]int{2, 2, 2, 2}))
	assert.Equal(t, "1 0 1 0 1 0×2", runLength([]int{1, 0, 1, 0, 1, 0, 0}))
	assert.Equal(t, "", runLength(nil))
}

func TestBuild(t *testing.T) {
	out, _, err := runCLI(t, "--log-level", "error", "build", "--levels", "3,7")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "0.0\n"), out)
	assert.Equal(t, 11, strings.Count(out, "\n"), out)
	for _, label := range []string{"1.0", "1.2", "2.0", "2.6"} {
		assert.Contains(t, out, label)
	}

	out, _, err = runCLI(t, "--log-level", "error", "build", "--height", "2", "-b", "2", "--labels", "symbol")
	require.NoError(t, err)
	assert.Equal(t, 7, strings.Count(out, "\n"), out)
	assert.Contains(t, out, "2.D")
}

func TestBuild_RootOnly(t *testing.T) {
	out, _, err := runCLI(t, "--log-level", "error", "build", "--levels", "")
	require.NoError(t, err)
	assert.Equal(t, "0.0\n", out)
}

func TestBuild_Logging(t *testing.T) {
	_, logs, err := runCLI(t, "--log-level", "debug", "build", "--levels", "2")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"level built"`)
	assert.Contains(t, logs, `"msg":"tree built"`)
}

func TestBuild_Env(t *testing.T) {
	t.Setenv("LVLTREE_LEVELS", "2")
	out, _, err := runCLI(t, "--log-level", "error", "build")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "\n"), out)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no shape", []string{"build"}, tree.ErrNoShape},
		{"height without branching", []string{"build", "--height", "2"}, tree.ErrInvalidShape},
		{"both shapes", []string{"build", "--height", "2", "-b", "2", "--levels", "3"}, tree.ErrConflictingShape},
		{"zero count", []string{"build", "--levels", "3,0"}, tree.ErrInvalidShape},
		{"too many nodes", []string{"build", "--height", "3", "-b", "10", "--max-nodes", "100"}, tree.ErrTooManyNodes},
		{"unknown labels", []string{"build", "--levels", "3", "--labels", "roman"}, tree.ErrUnknownLabelScheme},
		{"huge height", []string{"build", "--height", "1000000000", "-b", "1"}, tree.ErrTooManyNodes},
		{"huge height plan", []string{"plan", "--height", "1000000000", "-b", "1"}, tree.ErrTooManyNodes},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := runCLI(t, append([]string{"--log-level", "error"}, tc.args...)...)
			require.ErrorIs(t, err, tc.want)
			assert.True(t, tree.IsConfigError(err))
			assert.Empty(t, out)
		})
	}

	_, _, err := runCLI(t, "build", "--levels", "3,x")
	assert.Error(t, err)
}

func TestPlan(t *testing.T) {
	out, _, err := runCLI(t, "--log-level", "error", "plan", "--levels", "3,7")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5, out)
	assert.True(t, strings.HasPrefix(lines[0], "LEVEL"))
	assert.Contains(t, lines[3], "3 2×2")
	assert.True(t, strings.HasPrefix(lines[4], "total"))
	assert.Contains(t, lines[4], "11")

	_, _, err = runCLI(t, "plan", "--height", "1", "-b", "1", "--levels", "1")
	assert.ErrorIs(t, err, tree.ErrConflictingShape)
}

package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/spingridgo/internal/casefile"
	"github.com/vk/spingridgo/internal/cli"
	"github.com/vk/spingridgo/internal/grid"
	"github.com/vk/spingridgo/internal/schema"
	"github.com/vk/spingridgo/internal/testutil"
)

// writeGrid writes a two-seed grid rooted at root and returns its path.
func writeGrid(t *testing.T, root string) string {
	t.Helper()
	native := testutil.NativeGridValues(root)
	native[schema.SeedField] = []any{1, 2}
	return testutil.WriteJSONGrid(t, t.TempDir(), native)
}

func TestRun_CreatesCases(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	args := []string{"--config-filename", writeGrid(t, root), "--folder-suffix", "index"}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "Created 2 case(s).\n", out.String())
	assert.Equal(t, 2, testutil.CountFiles(t, root))
	assert.FileExists(t, filepath.Join(root, "run_0", "input.csv"))
	assert.Contains(t, errOut.String(), "Cases written.")
}

func TestRun_DryRun(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, []string{"--config-filename", writeGrid(t, root), "--dry-run"})

	require.NoError(t, err)
	assert.Equal(t, "Would create 2 case(s).\n", out.String())
	assert.Equal(t, 0, testutil.CountFiles(t, root))
}

func TestRun_TooManyCases(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, []string{"--config-filename", writeGrid(t, root), "--max-files", "1"})

	require.ErrorIs(t, err, grid.ErrTooManyCases)
	assert.Empty(t, out.String())
	assert.Equal(t, 0, testutil.CountFiles(t, root))
}

func TestRun_Collision(t *testing.T) {
	t.Parallel()

	// Both seeds share the folder "run" when no suffix is requested.
	root := t.TempDir()
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--config-filename", writeGrid(t, root)})

	require.ErrorIs(t, err, casefile.ErrCaseExists)
	assert.Equal(t, 1, testutil.CountFiles(t, root))
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, errOut, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	assert.Empty(t, out.String())
	require.Contains(t, errOut.String(), "Usage:", "Expected help text to be printed to the error stream")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_BadGridFile(t *testing.T) {
	t.Parallel()
	path := testutil.WriteFile(t, t.TempDir(), "grid.hcl", "seed = [1,\n")

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--config-filename", path})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load grid")
	assert.Contains(t, err.Error(), fmt.Sprintf("failed to parse grid file %s", path))
	assert.NotErrorIs(t, err, casefile.ErrCaseExists)
}

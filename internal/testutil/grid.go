package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/spingridgo/internal/grid"
	"github.com/vk/spingridgo/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// GridValues returns the values of the default grid with run_parent_path
// pointed at parent, so generated cases land inside a test directory.
func GridValues(parent string) map[string][]cty.Value {
	def := grid.Default()
	out := make(map[string][]cty.Value, schema.Len())
	for _, name := range schema.Names() {
		out[name] = append([]cty.Value(nil), def.Values(name)...)
	}
	out[schema.RunParentPath] = []cty.Value{cty.StringVal(parent)}
	return out
}

// SingletonGrid returns a grid with exactly one case rooted at parent,
// with overrides replacing the matching lists.
func SingletonGrid(parent string, overrides map[string][]cty.Value) *grid.Grid {
	values := GridValues(parent)
	for k, v := range overrides {
		values[k] = v
	}
	return grid.New(values)
}

// NativeGridValues is GridValues as plain Go values, suitable for encoding
// into JSON or YAML fixtures.
func NativeGridValues(parent string) map[string][]any {
	out := make(map[string][]any, schema.Len())
	for _, f := range schema.Fields() {
		switch f.Kind {
		case schema.String:
			out[f.Name] = []any{"value_" + f.Name}
		case schema.Integer:
			out[f.Name] = []any{1}
		default:
			out[f.Name] = []any{0.5}
		}
	}
	out[schema.RunParentPath] = []any{parent}
	out[schema.RunBaseFolder] = []any{"run"}
	return out
}

// WriteJSONGrid encodes values as a JSON grid document in dir and returns its path.
func WriteJSONGrid(t *testing.T, dir string, values map[string][]any) string {
	t.Helper()
	data, err := json.MarshalIndent(values, "", "  ")
	require.NoError(t, err)
	return WriteFile(t, dir, "grid.json", string(data))
}

// WriteFile writes content to dir/name, creating parents, and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// CountFiles returns the number of regular files below root.
func CountFiles(t *testing.T, root string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(root, func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	if os.IsNotExist(err) {
		return 0
	}
	require.NoError(t, err)
	return n
}

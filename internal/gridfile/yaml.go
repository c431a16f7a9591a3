package gridfile

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/spingridgo/internal/ctxlog"
	"github.com/vk/spingridgo/internal/grid"
	"gopkg.in/yaml.v3"
)

// loadYAML parses a YAML mapping of parameter name to candidate sequence.
func loadYAML(ctx context.Context, path string) (*grid.Grid, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid file %s: %w", path, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse grid file %s: %w", path, err)
	}
	logger.Debug("Parsed grid mapping.", "path", path, "count", len(doc))

	native := make(map[string][]any, len(doc))
	for name, raw := range doc {
		list, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("%s: %q: value must be a list of candidates, got %T", path, name, raw)
		}
		native[name] = list
	}

	g, err := grid.FromNative(native)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

package gridfile

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/spingridgo/internal/config"
	"github.com/vk/spingridgo/internal/ctxlog"
	"github.com/vk/spingridgo/internal/grid"
)

var _ config.Loader = (*Loader)(nil)

// Loader loads grid documents, dispatching on file extension.
type Loader struct{}

// NewLoader creates a new grid file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions lists the file extensions Load understands.
func Extensions() []string {
	return []string{".json", ".hcl", ".yaml", ".yml"}
}

// Load reads the grid document at path.
func (l *Loader) Load(ctx context.Context, path string) (*grid.Grid, error) {
	logger := ctxlog.FromContext(ctx)
	ext := strings.ToLower(filepath.Ext(path))
	logger.Debug("Grid loader started.", "path", path, "format", ext)

	var (
		g   *grid.Grid
		err error
	)
	switch ext {
	case ".json":
		g, err = loadHCLSyntax(ctx, path, true)
	case ".hcl":
		g, err = loadHCLSyntax(ctx, path, false)
	case ".yaml", ".yml":
		g, err = loadYAML(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported grid file %s: extension must be one of %s", path, strings.Join(Extensions(), ", "))
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Grid loading complete.", "path", path, "keys", g.Len())
	return g, nil
}

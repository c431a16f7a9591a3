package config

import (
	"context"

	"github.com/vk/spingridgo/internal/grid"
)

// Loader is the interface for a format-specific grid loader.
type Loader interface {
	// Load reads the document at path and returns the grid it describes.
	// The grid is returned as written: key validation and type coercion are
	// left to the caller.
	Load(ctx context.Context, path string) (*grid.Grid, error)
}

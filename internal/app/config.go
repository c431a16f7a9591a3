package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vk/spingridgo/internal/casefile"
	"github.com/vk/spingridgo/internal/grid"
	"github.com/vk/spingridgo/internal/suffix"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigFilename string // grid document; empty means the built-in grid
	InputFilename  string // name of the file written in every run folder
	MaxFiles       int
	VectorMode     string
	FolderSuffix   string
	DryRun         bool

	LogFormat string
	LogLevel  string
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		InputFilename: casefile.DefaultFilename,
		MaxFiles:      grid.DefaultCeiling,
		VectorMode:    grid.ModeFlat.String(),
		FolderSuffix:  suffix.NameNone,
		LogFormat:     "text",
		LogLevel:      "info",
	}
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputFilename == "" {
		return nil, errors.New("input filename cannot be empty")
	}
	if filepath.Base(cfg.InputFilename) != cfg.InputFilename || cfg.InputFilename == "." || cfg.InputFilename == ".." {
		return nil, fmt.Errorf("input filename %q must be a plain file name", cfg.InputFilename)
	}
	if cfg.MaxFiles < 0 {
		return nil, fmt.Errorf("max files must not be negative, got %d", cfg.MaxFiles)
	}
	if _, err := grid.ParseMode(cfg.VectorMode); err != nil {
		return nil, err
	}
	if !suffix.Valid(cfg.FolderSuffix) {
		return nil, fmt.Errorf("unsupported folder suffix %q", cfg.FolderSuffix)
	}
	return &cfg, nil
}

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/spingridgo/internal/casefile"
	"github.com/vk/spingridgo/internal/ctxlog"
	"github.com/vk/spingridgo/internal/grid"
	"github.com/vk/spingridgo/internal/schema"
	"github.com/vk/spingridgo/internal/suffix"
)

// Report summarizes a run.
type Report struct {
	// Total is the number of cases the grid expands to.
	Total int
	// Created is the number of case files written. On failure it counts the
	// files written before the failing case.
	Created int
	DryRun  bool
}

// Run loads and validates the grid, checks the case count against the
// ceiling, and writes one file per case. It stops at the first error;
// files already written are left in place.
func (a *App) Run(ctx context.Context) (Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var report Report

	g, err := a.loadGrid(ctx)
	if err != nil {
		return report, err
	}

	if err := schema.Validate(g.Keys()); err != nil {
		return report, fmt.Errorf("invalid grid: %w", err)
	}
	if err := g.Coerce(); err != nil {
		return report, fmt.Errorf("invalid grid: %w", err)
	}
	a.logger.Debug("Grid validated.", "keys", g.Len())

	mode, err := grid.ParseMode(a.config.VectorMode)
	if err != nil {
		return report, err
	}
	enum, err := grid.NewEnumerator(g, mode)
	if err != nil {
		return report, fmt.Errorf("invalid grid: %w", err)
	}

	report.Total = enum.Count()
	a.logger.Info("Grid expanded.", "cases", report.Total, "mode", mode.String(), "max_files", a.config.MaxFiles)

	if err := grid.CheckCeiling(report.Total, a.config.MaxFiles); err != nil {
		return report, err
	}

	if a.config.DryRun {
		report.DryRun = true
		a.logger.Info("Dry run, no files written.")
		return report, nil
	}

	gen := a.suffix
	if gen == nil {
		gen, err = suffix.Parse(a.config.FolderSuffix, report.Total)
		if err != nil {
			return report, err
		}
	}
	writer := casefile.NewWriter(a.config.InputFilename)

	for c := range enum.All() {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		named, err := suffix.Apply(c, gen)
		if err != nil {
			return report, err
		}
		path, err := writer.Write(named)
		if err != nil {
			return report, fmt.Errorf("case #%d: %w", c.Index, err)
		}
		report.Created++
		a.logger.Debug("Case written.", "index", c.Index, "path", path)
	}

	a.logger.Info("Cases written.", "created", report.Created)
	return report, nil
}

func (a *App) loadGrid(ctx context.Context) (*grid.Grid, error) {
	path := a.config.ConfigFilename
	if path == "" {
		a.logger.Debug("No grid file given, using the built-in grid.")
		return grid.Default(), nil
	}
	if a.loader == nil {
		return nil, errors.New("no loader configured for grid files")
	}
	g, err := a.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load grid: %w", err)
	}
	a.logger.Info("Grid loaded.", "path", path, "keys", g.Len())
	return g, nil
}

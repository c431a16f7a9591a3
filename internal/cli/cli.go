package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/spingridgo/internal/app"
	"github.com/vk/spingridgo/internal/grid"
	"github.com/vk/spingridgo/internal/suffix"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	defaults := app.DefaultConfig()
	flagSet := flag.NewFlagSet("spingridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
spingridgo - expands a parameter grid into one simulator input file per case.

Usage:
  spingridgo [options]

Every combination of the grid's candidate values is written to
<run_parent_path>/<run_base_folder>/<input-filename>. Existing files are
never overwritten. Without --config-filename the built-in grid is used.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config-filename", "", "Path to a grid document (.json, .hcl, .yaml or .yml).")
	inputFlag := flagSet.String("input-filename", defaults.InputFilename, "Name of the file written in every run folder.")
	maxFilesFlag := flagSet.Int("max-files", defaults.MaxFiles, "Refuse to run if the grid expands to more cases than this.")
	vectorModeFlag := flagSet.String("vector-mode", defaults.VectorMode, "How vector components vary. Options: 'flat' or 'grouped'.")
	suffixFlag := flagSet.String("folder-suffix", defaults.FolderSuffix, "Suffix appended to every run folder. Options: 'none', 'index', 'timestamp', 'uuid'.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Count the cases without writing any file.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	if flagSet.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	vectorMode := strings.ToLower(*vectorModeFlag)
	if _, err := grid.ParseMode(vectorMode); err != nil {
		return nil, false, usageError("invalid vector-mode: %v", err)
	}
	folderSuffix := strings.ToLower(*suffixFlag)
	if !suffix.Valid(folderSuffix) {
		return nil, false, usageError("invalid folder-suffix: must be 'none', 'index', 'timestamp', or 'uuid'")
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigFilename: *configFlag,
		InputFilename:  *inputFlag,
		MaxFiles:       *maxFilesFlag,
		VectorMode:     vectorMode,
		FolderSuffix:   folderSuffix,
		DryRun:         *dryRunFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

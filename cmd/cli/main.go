package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/vk/spingridgo/internal/app"
	"github.com/vk/spingridgo/internal/cli"
	"github.com/vk/spingridgo/internal/gridfile"
)

// main is the entrypoint for the spingridgo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run parses args, generates the cases and prints the summary line to outW.
// Logs and usage text go to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	spingrid := app.NewApp(errW, cfg, gridfile.NewLoader())
	report, err := spingrid.Run(ctx)
	if err != nil {
		return err
	}

	if report.DryRun {
		fmt.Fprintf(outW, "Would create %d case(s).\n", report.Total)
		return nil
	}
	fmt.Fprintf(outW, "Created %d case(s).\n", report.Created)
	return nil
}

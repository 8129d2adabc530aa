package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-scene/internal/telemetry"
	"github.com/grindlemire/go-scene/render/canvasrender"
)

// runRender implements the render subcommand. Files are laid out and written
// concurrently; each file gets its own tree and host.
func runRender(args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	files, err := collectSceneFiles(opts.paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found", sceneExt)
	}

	if opts.outDir != "" {
		if err := os.MkdirAll(opts.outDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	ctx := context.Background()
	exporter, err := telemetry.NewExporter(ctx)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer exporter.Shutdown(ctx)

	if opts.verbose {
		fmt.Printf("Rendering %d %s file(s)\n", len(files), sceneExt)
	}

	var failed atomic.Int32
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, inputPath := range files {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			outputPath := outputFileName(inputPath, opts.outDir, opts.format)
			if err := renderFile(inputPath, outputPath, opts, exporter.Tracer()); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", inputPath, err)
				failed.Add(1)
				return nil
			}
			if opts.verbose {
				fmt.Printf("%s -> %s\n", inputPath, outputPath)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d file(s) had errors", n)
	}
	return nil
}

// renderFile lays out one file and writes it in the requested format.
func renderFile(inputPath, outputPath string, opts options, tracer trace.Tracer) error {
	_, host, err := loadFile(inputPath, opts, tracer)
	if err != nil {
		return err
	}

	data, err := canvasrender.New().Bytes(opts.format, host.Root())
	if err != nil {
		return err
	}
	host.CheckAndClearDirty()

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

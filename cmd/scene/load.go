package main

import (
	"fmt"
	"os"

	"go.opentelemetry.io/otel/trace"

	scene "github.com/grindlemire/go-scene"
	"github.com/grindlemire/go-scene/internal/markup"
	"github.com/grindlemire/go-scene/render/canvasrender"
)

// paintBox draws markup paint with the canvas renderer.
func paintBox(p markup.Paint) scene.DrawFunc {
	return canvasrender.Box(canvasrender.BoxStyle(p))
}

// loadFile parses and builds a .scene file, then attaches its root to a
// Host sized by the -w and -h flags when given.
func loadFile(path string, opts options, tracer trace.Tracer) (*markup.Scene, *scene.Host, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading file: %w", err)
	}
	defer f.Close()

	doc, err := markup.Parse(path, f)
	if err != nil {
		return nil, nil, err
	}
	s, err := markup.Build(doc, paintBox)
	if err != nil {
		return nil, nil, err
	}

	hostOpts := []scene.HostOption{}
	if tracer != nil {
		hostOpts = append(hostOpts, scene.WithTracer(tracer))
	}
	if opts.hasSize() {
		size := s.Root.Size()
		w, h := size.Width, size.Height
		if opts.width > 0 {
			w = opts.width
		}
		if opts.height > 0 {
			h = opts.height
		}
		hostOpts = append(hostOpts, scene.WithHostSize(w, h))
	}

	host, err := scene.NewHost(hostOpts...)
	if err != nil {
		return nil, nil, err
	}
	if err := host.Attach(s.Root); err != nil {
		return nil, nil, err
	}
	return s, host, nil
}

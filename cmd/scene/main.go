// Package main provides the CLI tool for .scene layout files.
//
// Usage:
//
//	scene render [options] [path...]   Lay out .scene files and write PDF or SVG
//	scene check [path...]              Parse and build .scene files without rendering
//	scene dump [options] file.scene    Print the arranged element tree
//	scene help                         Show help
//
// Examples:
//
//	scene render ./...                 Recursively render all .scene files
//	scene render -f svg -o out ui.scene
//	scene dump -w 1024 -h 768 ui.scene
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-scene/internal/debug"
)

const version = "0.1.0"

const usage = `scene - layout engine for retained element trees

Usage:
  scene <command> [options] [path...]

Commands:
  render      Lay out .scene files and write PDF or SVG output
  check       Parse and build .scene files without rendering
  dump        Print the arranged element tree of a .scene file
  version     Print version information
  help        Show this help message

Options:
  -v          Verbose output
  -w <n>      Override the root width
  -h <n>      Override the root height
  -f <fmt>    Output format for render: pdf (default) or svg
  -o <dir>    Output directory for render (default: next to the input)

Environment:
  SCENE_DEBUG                   Path of a debug log file
  OTEL_EXPORTER_OTLP_ENDPOINT   Export arrangement traces to this OTLP/HTTP endpoint
  OTEL_SERVICE_NAME             Service name reported with traces (default: scene)

Examples:
  scene render ./...              Recursively render all .scene files
  scene render -f svg -o out a.scene
  scene check layouts/            Check every .scene file in a directory
  scene dump -w 800 -h 600 a.scene
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]
	defer debug.Close()

	var err error
	switch command {
	case "render":
		err = runRender(args)
	case "check":
		err = runCheck(args)
	case "dump":
		err = runDump(args)
	case "version":
		fmt.Printf("scene version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		debug.Close()
		os.Exit(1)
	}
}

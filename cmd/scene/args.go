package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const sceneExt = ".scene"

// options holds the flags shared by every subcommand.
type options struct {
	verbose bool
	width   float64
	height  float64
	format  string
	outDir  string
	paths   []string
}

func (o options) hasSize() bool {
	return o.width > 0 || o.height > 0
}

// parseArgs splits args into flags and paths.
func parseArgs(args []string) (options, error) {
	opts := options{format: "pdf"}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-v", "--verbose":
			opts.verbose = true
			continue
		case "-w", "-h", "-f", "-o":
		default:
			opts.paths = append(opts.paths, arg)
			continue
		}

		if i+1 >= len(args) {
			return opts, fmt.Errorf("flag %s requires a value", arg)
		}
		i++
		value := args[i]

		switch arg {
		case "-w", "-h":
			n, err := strconv.ParseFloat(value, 64)
			if err != nil || n <= 0 {
				return opts, fmt.Errorf("flag %s: invalid size %q", arg, value)
			}
			if arg == "-w" {
				opts.width = n
			} else {
				opts.height = n
			}
		case "-f":
			value = strings.ToLower(value)
			if value != "pdf" && value != "svg" {
				return opts, fmt.Errorf("flag -f: unsupported format %q", value)
			}
			opts.format = value
		case "-o":
			opts.outDir = value
		}
	}

	if len(opts.paths) == 0 {
		opts.paths = []string{"."}
	}
	return opts, nil
}

// collectSceneFiles finds all .scene files from the given paths.
// Supports:
//   - Direct file paths: "ui.scene"
//   - Directory paths: "./layouts"
//   - Recursive pattern: "./..."
func collectSceneFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && strings.HasSuffix(p, sceneExt) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), sceneExt) {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else if strings.HasSuffix(path, sceneExt) {
			files = append(files, path)
		}
	}

	return files, nil
}

// outputFileName maps an input file to its rendered output.
// Examples:
//
//	ui.scene          -> ui.pdf
//	layouts/a.scene   -> out/a.svg   (with -o out -f svg)
func outputFileName(inputPath, outDir, format string) string {
	dir := filepath.Dir(inputPath)
	if outDir != "" {
		dir = outDir
	}
	name := strings.TrimSuffix(filepath.Base(inputPath), sceneExt)
	return filepath.Join(dir, name+"."+format)
}

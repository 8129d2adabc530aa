package main

import (
	"fmt"
	"os"
)

// runCheck implements the check subcommand.
// It parses and builds .scene files without rendering them.
func runCheck(args []string) error {
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

	if opts.verbose {
		fmt.Printf("Checking %d %s file(s)\n", len(files), sceneExt)
	}

	var errorCount int
	for _, inputPath := range files {
		if opts.verbose {
			fmt.Printf("Checking %s\n", inputPath)
		}
		if _, _, err := loadFile(inputPath, opts, nil); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	if opts.verbose {
		fmt.Printf("All %d file(s) passed checks\n", len(files))
	}
	return nil
}

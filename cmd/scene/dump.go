package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	scene "github.com/grindlemire/go-scene"
)

var (
	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	boundsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// runDump implements the dump subcommand: it prints the arranged tree of a
// single file.
func runDump(args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}
	if len(opts.paths) != 1 || opts.paths[0] == "." {
		return fmt.Errorf("dump takes exactly one %s file", sceneExt)
	}

	_, host, err := loadFile(opts.paths[0], opts, nil)
	if err != nil {
		return err
	}
	writeTree(os.Stdout, host.Root())
	return nil
}

// writeTree prints one line per element, indented by depth, with its kind
// and bounds in parent coordinates.
func writeTree(w io.Writer, root *scene.Element) {
	var walk func(e *scene.Element, depth int)
	walk = func(e *scene.Element, depth int) {
		line := strings.Repeat("  ", depth) +
			nameStyle.Render(e.String()) + " " +
			kindStyle.Render(e.Kind()) + " " +
			boundsStyle.Render(formatRect(e.Bounds()))
		if !e.IsVisible() {
			line += " " + hiddenStyle.Render("hidden")
		}
		fmt.Fprintln(w, line)
		for _, child := range e.Children() {
			walk(child, depth+1)
		}
	}
	walk(root, 0)
}

func formatRect(r scene.Rect) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return "(" + f(r.X) + ", " + f(r.Y) + ") " + f(r.Width) + "x" + f(r.Height)
}

package scene

import (
	"slices"

	"github.com/grindlemire/go-scene/internal/layout"
)

// TrackDefinition declares one grid row or column. Definitions are replaced
// whole; there is no in-place mutation.
type TrackDefinition struct {
	Length TrackLength
}

// DefineTrack wraps a TrackLength in a TrackDefinition.
func DefineTrack(length TrackLength) TrackDefinition {
	return TrackDefinition{Length: length}
}

// Grid arranges children into rows and columns. Each child is placed by the
// cell recorded for it with SetCell; children without a cell are not placed.
type Grid struct {
	*Element
	columns []TrackDefinition
	rows    []TrackDefinition
	cells   map[ElementID]GridCell

	// Tracks resolved by the most recent pass.
	resolved layout.GridResult
}

var (
	_ arranger     = (*Grid)(nil)
	_ childRemover = (*Grid)(nil)
)

// NewGrid creates a Grid with no tracks.
func NewGrid(opts ...Option) *Grid {
	g := &Grid{
		Element: New(opts...),
		cells:   make(map[ElementID]GridCell),
	}
	g.arranger = g
	return g
}

func (g *Grid) kind() string { return "grid" }

// --- Tracks ---

// AddColumn appends a column definition.
func (g *Grid) AddColumn(def TrackDefinition) {
	g.columns = append(g.columns, def)
	g.notify(ChangeArrangement)
}

// AddRow appends a row definition.
func (g *Grid) AddRow(def TrackDefinition) {
	g.rows = append(g.rows, def)
	g.notify(ChangeArrangement)
}

// AddColumns appends one column per entry of a comma-separated grid-length
// list such as "50px, *, 2*". Nothing is added if any entry is invalid.
func (g *Grid) AddColumns(text string) error {
	lengths, err := layout.ParseTracks(text)
	if err != nil {
		return err
	}
	for _, l := range lengths {
		g.columns = append(g.columns, DefineTrack(l))
	}
	g.notify(ChangeArrangement)
	return nil
}

// AddRows appends one row per entry of a comma-separated grid-length list.
// Nothing is added if any entry is invalid.
func (g *Grid) AddRows(text string) error {
	lengths, err := layout.ParseTracks(text)
	if err != nil {
		return err
	}
	for _, l := range lengths {
		g.rows = append(g.rows, DefineTrack(l))
	}
	g.notify(ChangeArrangement)
	return nil
}

// SetColumn replaces the column definition at index.
func (g *Grid) SetColumn(index int, def TrackDefinition) error {
	return g.setTrack("SetColumn", g.columns, index, def)
}

// SetRow replaces the row definition at index.
func (g *Grid) SetRow(index int, def TrackDefinition) error {
	return g.setTrack("SetRow", g.rows, index, def)
}

func (g *Grid) setTrack(op string, tracks []TrackDefinition, index int, def TrackDefinition) error {
	if index < 0 || index >= len(tracks) {
		return &ArgumentError{Op: op, Arg: "index", Reason: "track index out of range"}
	}
	if tracks[index].Length.Equal(def.Length) {
		return nil
	}
	tracks[index] = def
	g.notify(ChangeArrangement)
	return nil
}

// RemoveColumn removes the column at index. Children whose cell now lies
// outside the grid are skipped by arrangement until the grid grows again.
func (g *Grid) RemoveColumn(index int) error {
	if index < 0 || index >= len(g.columns) {
		return &ArgumentError{Op: "RemoveColumn", Arg: "index", Reason: "track index out of range"}
	}
	g.columns = slices.Delete(g.columns, index, index+1)
	g.notify(ChangeArrangement)
	return nil
}

// RemoveRow removes the row at index.
func (g *Grid) RemoveRow(index int) error {
	if index < 0 || index >= len(g.rows) {
		return &ArgumentError{Op: "RemoveRow", Arg: "index", Reason: "track index out of range"}
	}
	g.rows = slices.Delete(g.rows, index, index+1)
	g.notify(ChangeArrangement)
	return nil
}

// ClearTracks removes every row and column definition.
func (g *Grid) ClearTracks() {
	if len(g.rows) == 0 && len(g.columns) == 0 {
		return
	}
	g.rows, g.columns = nil, nil
	g.notify(ChangeArrangement)
}

// Columns returns a copy of the column definitions.
func (g *Grid) Columns() []TrackDefinition {
	return slices.Clone(g.columns)
}

// Rows returns a copy of the row definitions.
func (g *Grid) Rows() []TrackDefinition {
	return slices.Clone(g.rows)
}

// ColumnTracks returns the columns resolved by the most recent arrangement.
// It is empty when the last pass had nothing to arrange.
func (g *Grid) ColumnTracks() []Track {
	return slices.Clone(g.resolved.Columns)
}

// RowTracks returns the rows resolved by the most recent arrangement.
func (g *Grid) RowTracks() []Track {
	return slices.Clone(g.resolved.Rows)
}

// --- Cells ---

// SetCell places child in a single cell. See SetCellSpan.
func (g *Grid) SetCell(child *Element, row, column int) error {
	return g.SetCellSpan(child, row, column, 1, 1)
}

// SetCellSpan records the cell a child occupies and re-arranges. Row and
// column are clamped to >= 0 and spans to >= 1. The child must already be a
// child of the grid.
func (g *Grid) SetCellSpan(child *Element, row, column, rowSpan, columnSpan int) error {
	if child == nil {
		return &ArgumentError{Op: "SetCell", Arg: "child", Err: ErrNilElement}
	}
	if child.parent != g.Element {
		return &ArgumentError{Op: "SetCell", Arg: "child", Reason: "element is not a child of the grid"}
	}
	cell := layout.NewCell(row, column, rowSpan, columnSpan)
	if prev, ok := g.cells[child.id]; ok && prev == cell {
		return nil
	}
	g.cells[child.id] = cell
	g.notify(ChangeArrangement)
	return nil
}

// Cell returns the cell recorded for child.
func (g *Grid) Cell(child *Element) (GridCell, bool) {
	if child == nil {
		return GridCell{}, false
	}
	cell, ok := g.cells[child.id]
	return cell, ok
}

// ClearCell forgets the cell recorded for child, leaving it unplaced.
// Returns false if child had no cell.
func (g *Grid) ClearCell(child *Element) bool {
	if child == nil {
		return false
	}
	if _, ok := g.cells[child.id]; !ok {
		return false
	}
	delete(g.cells, child.id)
	g.notify(ChangeArrangement)
	return true
}

func (g *Grid) childRemoved(child *Element) {
	delete(g.cells, child.id)
}

// --- Arrangement ---

func (g *Grid) arrange() {
	children, items := g.items()
	for i, child := range children {
		items[i].Cell, items[i].HasCell = g.cells[child.id]
	}

	g.resolved = layout.Grid(g.size, g.padding, lengths(g.columns), lengths(g.rows), items)
	for _, p := range g.resolved.Placements {
		child := children[p.Index]
		child.SetPosition(p.Position.X, p.Position.Y)
		child.SetSize(p.Size.Width, p.Size.Height)
	}
}

func lengths(defs []TrackDefinition) []TrackLength {
	out := make([]TrackLength, len(defs))
	for i, d := range defs {
		out[i] = d.Length
	}
	return out
}

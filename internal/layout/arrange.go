package layout

// Item is a child as seen by the arrangement algorithms.
type Item struct {
	Size    Size
	Margin  Edges
	Visible bool

	// Grid placement. Items without a cell are never placed by Grid.
	Cell    Cell
	HasCell bool
}

// Placement is the geometry an algorithm assigns to the item at Index.
type Placement struct {
	Index    int
	Position Point
	Size     Size
	// Sized is false when the algorithm only positions the item.
	Sized bool
}

// Stack positions visible items one after another along the orientation's
// axis, starting at the padding's top-left corner. Each item is placed at the
// cursor, which then advances by the item's extent, both of its margins on
// that axis and spacing. Invisible items consume no space. Sizes are not
// touched.
func Stack(padding Edges, items []Item, o Orientation, spacing float64) []Placement {
	spacing = clampNonNegative(spacing)
	cursor := Point{X: padding.Left, Y: padding.Top}
	placements := make([]Placement, 0, len(items))

	for i, item := range items {
		if !item.Visible {
			continue
		}
		placements = append(placements, Placement{Index: i, Position: cursor})

		advance := item.Size.Along(o) + item.Margin.Leading(o) + item.Margin.Trailing(o) + spacing
		if o == Horizontal {
			cursor.X += advance
		} else {
			cursor.Y += advance
		}
	}
	return placements
}

// GridResult holds the resolved tracks and item placements of a grid pass.
type GridResult struct {
	Columns    []Track
	Rows       []Track
	Placements []Placement
}

// Grid resolves column and row tracks against the content box of size minus
// padding and places every visible item that has an in-range cell. It returns
// an empty result when there are no items, rows or columns.
func Grid(size Size, padding Edges, columns, rows []TrackLength, items []Item) GridResult {
	if len(items) == 0 || len(columns) == 0 || len(rows) == 0 {
		return GridResult{}
	}

	availW := clampNonNegative(size.Width - padding.Horizontal())
	availH := clampNonNegative(size.Height - padding.Vertical())

	colTracks := ResolveTracks(columns, availW, padding.Left, autoExtents(items, len(columns), Horizontal))
	rowTracks := ResolveTracks(rows, availH, padding.Top, autoExtents(items, len(rows), Vertical))

	result := GridResult{Columns: colTracks, Rows: rowTracks}
	for i, item := range items {
		if !item.Visible || !item.HasCell {
			continue
		}
		cell := item.Cell
		// Cells recorded before tracks were removed are skipped, not clamped.
		if cell.Row >= len(rowTracks) || cell.Column >= len(colTracks) {
			continue
		}
		endRow := min(len(rowTracks)-1, cell.Row+cell.RowSpan-1)
		endCol := min(len(colTracks)-1, cell.Column+cell.ColumnSpan-1)

		start := Point{X: colTracks[cell.Column].Offset, Y: rowTracks[cell.Row].Offset}
		m := item.Margin
		result.Placements = append(result.Placements, Placement{
			Index:    i,
			Position: Point{X: start.X + m.Left, Y: start.Y + m.Top},
			Size: Size{
				Width:  clampNonNegative(colTracks[endCol].End() - start.X - m.Horizontal()),
				Height: clampNonNegative(rowTracks[endRow].End() - start.Y - m.Vertical()),
			},
			Sized: true,
		})
	}
	return result
}

// autoExtents returns a function measuring Auto tracks along one axis: the
// largest extent plus margins of the visible items whose cell lies in exactly
// that single track. Spanning items never contribute.
func autoExtents(items []Item, count int, o Orientation) func(int) float64 {
	extents := make([]float64, count)
	for _, item := range items {
		if !item.Visible || !item.HasCell {
			continue
		}
		index, span := item.Cell.Column, item.Cell.ColumnSpan
		if o == Vertical {
			index, span = item.Cell.Row, item.Cell.RowSpan
		}
		if span != 1 || index >= count {
			continue
		}
		extent := item.Size.Along(o) + item.Margin.Leading(o) + item.Margin.Trailing(o)
		extents[index] = max(extents[index], extent)
	}
	return func(track int) float64 {
		return extents[track]
	}
}

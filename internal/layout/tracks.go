package layout

import "math"

// Track is a resolved grid row or column.
type Track struct {
	Offset float64 // distance from the container's origin
	Size   float64
}

// End returns Offset + Size.
func (t Track) End() float64 {
	return t.Offset + t.Size
}

// Cell is the grid area an element occupies.
type Cell struct {
	Row, Column         int
	RowSpan, ColumnSpan int
}

// NewCell creates a Cell with row and column clamped to >= 0 and spans clamped to >= 1.
func NewCell(row, column, rowSpan, columnSpan int) Cell {
	return Cell{
		Row:        max(row, 0),
		Column:     max(column, 0),
		RowSpan:    max(rowSpan, 1),
		ColumnSpan: max(columnSpan, 1),
	}
}

// ResolveTracks sizes one axis of a grid and lays the tracks out from start.
//
// Fixed tracks take their value and Auto tracks take autoExtent(i); both
// count towards the allocated space. If any star weight exists and space is
// left over, each Star track receives floor(remaining * weight / totalStars).
// Otherwise Star tracks collapse to 0. Overflow is never redistributed and
// floor remainders are dropped.
func ResolveTracks(lengths []TrackLength, available, start float64, autoExtent func(track int) float64) []Track {
	tracks := make([]Track, len(lengths))

	var allocated, totalStars float64
	for i, l := range lengths {
		switch l.Kind() {
		case TrackFixed:
			tracks[i].Size = l.Value()
			allocated += tracks[i].Size
		case TrackAuto:
			if autoExtent != nil {
				tracks[i].Size = autoExtent(i)
			}
			allocated += tracks[i].Size
		case TrackStar:
			totalStars += l.Value()
		}
	}

	if totalStars > 0 && allocated < available {
		remaining := available - allocated
		for i, l := range lengths {
			if l.IsStar() {
				tracks[i].Size = math.Floor(remaining * l.Value() / totalStars)
			}
		}
	}

	offset := start
	for i := range tracks {
		tracks[i].Offset = offset
		offset += tracks[i].Size
	}
	return tracks
}

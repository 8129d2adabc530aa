// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package scene

import "github.com/grindlemire/go-scene/internal/layout"

// Orientation specifies the axis a Stack arranges its children along.
type Orientation = layout.Orientation

const (
	Vertical   = layout.Vertical
	Horizontal = layout.Horizontal
)

// Point represents an x/y coordinate.
type Point = layout.Point

// Size represents a width/height pair.
type Size = layout.Size

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides; used for margin and padding.
type Edges = layout.Edges

// CornerRadius holds the radius of each corner of a box.
type CornerRadius = layout.CornerRadius

// TrackLength is the sizing mode of a grid row or column.
type TrackLength = layout.TrackLength

// TrackKind specifies how a TrackLength is interpreted.
type TrackKind = layout.TrackKind

const (
	TrackFixed = layout.TrackFixed
	TrackAuto  = layout.TrackAuto
	TrackStar  = layout.TrackStar
)

// Track is a resolved grid row or column.
type Track = layout.Track

// GridCell is the grid area a child occupies.
type GridCell = layout.Cell

// ArgumentError reports an invalid argument to a tree mutation or parse call.
type ArgumentError = layout.ArgumentError

// FormatError reports text that does not match the grid-length grammar.
type FormatError = layout.FormatError

// ErrNilElement is wrapped by the ArgumentError returned for nil elements.
var ErrNilElement = layout.ErrNilElement

// Fixed creates a TrackLength of an absolute number of pixels.
func Fixed(px float64) TrackLength {
	return layout.Fixed(px)
}

// Auto creates a TrackLength sized to its content.
func Auto() TrackLength {
	return layout.Auto()
}

// Star creates a TrackLength taking a weighted share of leftover space.
func Star(weight float64) TrackLength {
	return layout.Star(weight)
}

// ParseLength parses the grid-length grammar: "Auto", "2*", "*", "10px" or "10".
func ParseLength(text string) (TrackLength, error) {
	return layout.Parse(text)
}

// TryParseLength is like ParseLength but reports failure with false and Fixed(0).
func TryParseLength(text string) (TrackLength, bool) {
	return layout.TryParse(text)
}

// ParseTracks parses a comma-separated list of grid lengths.
func ParseTracks(text string) ([]TrackLength, error) {
	return layout.ParseTracks(text)
}

// NewCell creates a GridCell with indices clamped to >= 0 and spans to >= 1.
func NewCell(row, column, rowSpan, columnSpan int) GridCell {
	return layout.NewCell(row, column, rowSpan, columnSpan)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// EdgeLTRB creates Edges in Left, Top, Right, Bottom order.
func EdgeLTRB(l, t, r, b float64) Edges {
	return layout.EdgeLTRB(l, t, r, b)
}

// RadiusAll creates a CornerRadius with the same radius on every corner.
func RadiusAll(r float64) CornerRadius {
	return layout.RadiusAll(r)
}

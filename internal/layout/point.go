package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// Along returns the extent of the size along the given orientation's axis.
func (s Size) Along(o Orientation) float64 {
	if o == Horizontal {
		return s.Width
	}
	return s.Height
}

// CornerRadius holds the radius of each corner of a box.
type CornerRadius struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// RadiusAll creates a CornerRadius with the same radius on every corner.
func RadiusAll(r float64) CornerRadius {
	return CornerRadius{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// IsUniform reports whether all four corners share one radius.
func (c CornerRadius) IsUniform() bool {
	return c.TopLeft == c.TopRight && c.TopRight == c.BottomRight && c.BottomRight == c.BottomLeft
}

// IsZero returns true if no corner is rounded.
func (c CornerRadius) IsZero() bool {
	return c == CornerRadius{}
}

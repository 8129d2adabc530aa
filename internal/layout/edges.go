package layout

// Edges represents values for four sides of a box. It is used for both
// margin and padding.
type Edges struct {
	Left, Top, Right, Bottom float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Left: n, Top: n, Right: n, Bottom: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Left: h, Top: v, Right: h, Bottom: v}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return Edges{Left: l, Top: t, Right: r, Bottom: b}
}

// EdgeLTRB creates Edges in Left, Top, Right, Bottom order.
func EdgeLTRB(l, t, r, b float64) Edges {
	return Edges{Left: l, Top: t, Right: r, Bottom: b}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

// Leading returns the edge that comes first along the orientation's axis.
func (e Edges) Leading(o Orientation) float64 {
	if o == Horizontal {
		return e.Left
	}
	return e.Top
}

// Trailing returns the edge that comes last along the orientation's axis.
func (e Edges) Trailing(o Orientation) float64 {
	if o == Horizontal {
		return e.Right
	}
	return e.Bottom
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

package scene

// DrawContext is the backend-specific target handed to draw hooks, such as a
// *canvas.Context from the canvasrender package.
type DrawContext any

// DrawFunc draws one element. bounds is the element's rectangle in root
// coordinates.
type DrawFunc func(dc DrawContext, e *Element, bounds Rect)

// RenderTree draws root and its descendants into dc, parents before their
// children and siblings in child order. Invisible elements are skipped along
// with their subtrees.
func RenderTree(dc DrawContext, root *Element) {
	if root == nil {
		return
	}
	renderElement(dc, root, Point{})
}

func renderElement(dc DrawContext, e *Element, origin Point) {
	if !e.visible {
		return
	}
	at := origin.Add(e.position)
	bounds := Rect{X: at.X, Y: at.Y, Width: e.size.Width, Height: e.size.Height}
	if e.onDraw != nil {
		e.onDraw(dc, e, bounds)
	}
	for _, child := range e.children {
		renderElement(dc, child, bounds.Origin())
	}
}

// HitTest returns the deepest visible element under (x, y), in root
// coordinates, or nil if the point is outside root.
func HitTest(root *Element, x, y float64) *Element {
	if root == nil {
		return nil
	}
	return root.ElementAt(x, y)
}

// ElementAt finds the deepest visible element containing (x, y), given in the
// coordinates of e's parent. Later children are drawn on top, so they are
// checked first.
func (e *Element) ElementAt(x, y float64) *Element {
	if !e.visible {
		return nil
	}
	p := Point{X: x, Y: y}
	if !p.In(e.Bounds()) {
		return nil
	}

	local := p.Sub(e.position)
	for i := len(e.children) - 1; i >= 0; i-- {
		if hit := e.children[i].ElementAt(local.X, local.Y); hit != nil {
			return hit
		}
	}
	return e
}

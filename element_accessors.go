package scene

// Setters are no-ops when the new value equals the current one, so redundant
// writes never raise notifications.

// Name returns the element's name.
func (e *Element) Name() string {
	return e.name
}

// SetName sets the element's name.
func (e *Element) SetName(name string) {
	if e.name == name {
		return
	}
	e.name = name
	e.notify(ChangeName)
}

// Position returns the top-left corner relative to the parent.
func (e *Element) Position() Point {
	return e.position
}

// SetPosition moves the element relative to its parent.
func (e *Element) SetPosition(x, y float64) {
	p := Point{X: x, Y: y}
	if e.position == p {
		return
	}
	e.position = p
	e.notify(ChangePosition)
}

// Size returns the element's width and height.
func (e *Element) Size() Size {
	return e.size
}

// SetSize resizes the element. A container re-arranges its children.
func (e *Element) SetSize(width, height float64) {
	s := Size{Width: width, Height: height}
	if e.size == s {
		return
	}
	e.size = s
	e.notify(ChangeSize)
}

// Bounds returns position and size as a Rect in parent coordinates.
func (e *Element) Bounds() Rect {
	return Rect{X: e.position.X, Y: e.position.Y, Width: e.size.Width, Height: e.size.Height}
}

// AbsoluteBounds returns the element's rectangle in root coordinates.
func (e *Element) AbsoluteBounds() Rect {
	r := e.Bounds()
	for p := e.parent; p != nil; p = p.parent {
		r = r.Translate(p.position.X, p.position.Y)
	}
	return r
}

// Margin returns the space reserved around the element by its container.
func (e *Element) Margin() Edges {
	return e.margin
}

// SetMargin sets the element's margin.
func (e *Element) SetMargin(margin Edges) {
	if e.margin == margin {
		return
	}
	e.margin = margin
	e.notify(ChangeMargin)
}

// Padding returns the inset applied to the element's children.
func (e *Element) Padding() Edges {
	return e.padding
}

// SetPadding sets the element's padding.
func (e *Element) SetPadding(padding Edges) {
	if e.padding == padding {
		return
	}
	e.padding = padding
	e.notify(ChangePadding)
}

// ContentBounds returns the area inside the padding, in the element's own coordinates.
func (e *Element) ContentBounds() Rect {
	return Rect{Width: e.size.Width, Height: e.size.Height}.Inset(e.padding)
}

// CornerRadius returns the radius of each corner.
func (e *Element) CornerRadius() CornerRadius {
	return e.radius
}

// SetCornerRadius sets the corner radii. Only drawing is affected.
func (e *Element) SetCornerRadius(radius CornerRadius) {
	if e.radius == radius {
		return
	}
	e.radius = radius
	e.notify(ChangeCornerRadius)
}

// IsVisible reports whether the element takes part in arrangement and rendering.
func (e *Element) IsVisible() bool {
	return e.visible
}

// SetVisible shows or hides the element. Containers do not re-arrange on
// visibility changes; call Arrange on the parent to reflow.
func (e *Element) SetVisible(visible bool) {
	if e.visible == visible {
		return
	}
	e.visible = visible
	e.notify(ChangeVisibility)
}

// IsEnabled reports whether the element is enabled.
func (e *Element) IsEnabled() bool {
	return e.enabled
}

// SetEnabled enables or disables the element.
func (e *Element) SetEnabled(enabled bool) {
	if e.enabled == enabled {
		return
	}
	e.enabled = enabled
	e.notify(ChangeEnabled)
}

// SetOnDraw sets the hook called for this element during a render pass.
func (e *Element) SetOnDraw(fn DrawFunc) {
	e.onDraw = fn
	e.Invalidate()
}

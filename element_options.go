package scene

// Option configures an Element at construction. Options write fields
// directly and raise no notifications.
type Option func(*Element)

// --- Identity Options ---

// WithName sets the element's name.
func WithName(name string) Option {
	return func(e *Element) {
		e.name = name
	}
}

// --- Geometry Options ---

// WithPosition sets the position relative to the parent.
func WithPosition(x, y float64) Option {
	return func(e *Element) {
		e.position = Point{X: x, Y: y}
	}
}

// WithSize sets width and height.
func WithSize(width, height float64) Option {
	return func(e *Element) {
		e.size = Size{Width: width, Height: height}
	}
}

// WithMargin sets the space reserved around the element by its container.
func WithMargin(margin Edges) Option {
	return func(e *Element) {
		e.margin = margin
	}
}

// WithPadding sets the inset applied to the element's children.
func WithPadding(padding Edges) Option {
	return func(e *Element) {
		e.padding = padding
	}
}

// WithCornerRadius sets the corner radii.
func WithCornerRadius(radius CornerRadius) Option {
	return func(e *Element) {
		e.radius = radius
	}
}

// --- State Options ---

// WithVisible sets initial visibility. Elements are visible by default.
func WithVisible(visible bool) Option {
	return func(e *Element) {
		e.visible = visible
	}
}

// WithEnabled sets the initial enabled state. Elements are enabled by default.
func WithEnabled(enabled bool) Option {
	return func(e *Element) {
		e.enabled = enabled
	}
}

// WithOnDraw sets the hook called for this element during a render pass.
func WithOnDraw(fn DrawFunc) Option {
	return func(e *Element) {
		e.onDraw = fn
	}
}

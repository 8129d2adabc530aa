package scene

// Canvas positions children absolutely. It never moves or resizes them;
// each child keeps the position it was given, relative to the canvas.
type Canvas struct {
	*Element
}

var _ arranger = (*Canvas)(nil)

// NewCanvas creates an empty Canvas.
func NewCanvas(opts ...Option) *Canvas {
	c := &Canvas{Element: New(opts...)}
	c.arranger = c
	return c
}

func (c *Canvas) kind() string { return "canvas" }

// arrange leaves every child where it is.
func (c *Canvas) arrange() {}

// Place adds child to the canvas, if it is not already a child, and moves it
// to (x, y) in canvas coordinates.
func (c *Canvas) Place(child *Element, x, y float64) error {
	if child == nil {
		return &ArgumentError{Op: "Place", Arg: "child", Err: ErrNilElement}
	}
	if child.parent != c.Element {
		if err := c.insertChild("Place", len(c.children), child); err != nil {
			return err
		}
	}
	child.SetPosition(x, y)
	return nil
}

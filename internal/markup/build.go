package markup

import (
	"fmt"
	"image/color"

	"github.com/alecthomas/participle/v2/lexer"

	scene "github.com/grindlemire/go-scene"
	"github.com/grindlemire/go-scene/internal/debug"
)

// Paint holds the drawing attributes of a node. Colors are nil when unset.
type Paint struct {
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float64
}

// IsZero reports whether the node asked for no drawing at all.
func (p Paint) IsZero() bool {
	return p.Fill == nil && p.Stroke == nil
}

// PaintFunc turns a node's paint into a draw hook. It is called only for
// nodes that set fill or stroke.
type PaintFunc func(Paint) scene.DrawFunc

// Scene is the result of building a Document.
type Scene struct {
	Root *scene.Element
	// Named maps node names to their elements.
	Named map[string]*scene.Element
}

// Error reports a semantic problem at a position in the source.
type Error struct {
	Pos lexer.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func errorf(pos lexer.Position, format string, args ...any) error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Build creates the element tree described by doc. paint may be nil, in
// which case no draw hooks are installed.
func Build(doc *Document, paint PaintFunc) (*Scene, error) {
	if doc == nil || doc.Root == nil {
		return nil, fmt.Errorf("empty document")
	}
	b := &builder{
		paint: paint,
		named: make(map[string]*scene.Element),
	}
	root, _, err := b.node(doc.Root, nil)
	if err != nil {
		return nil, err
	}
	debug.Log("markup: built %s with %d named nodes", root, len(b.named))
	return &Scene{Root: root, Named: b.named}, nil
}

type builder struct {
	paint PaintFunc
	named map[string]*scene.Element
}

// placement collects properties that describe a node's slot in its parent.
type placement struct {
	pos                              lexer.Position
	row, column, rowSpan, columnSpan int
	hasCell                          bool
}

// container is the parent-side view of a built node.
type container struct {
	elem   *scene.Element
	grid   *scene.Grid
	canvas *scene.Canvas
}

func (b *builder) node(n *Node, parent *container) (*scene.Element, placement, error) {
	props := newPropertySet(n)
	if err := props.checkDuplicates(); err != nil {
		return nil, placement{}, err
	}

	opts, paint, err := b.elementOptions(n, props)
	if err != nil {
		return nil, placement{}, err
	}

	self := &container{}
	switch n.Kind {
	case "box":
		self.elem = scene.New(opts...)
	case "canvas":
		self.canvas = scene.NewCanvas(opts...)
		self.elem = self.canvas.Element
	case "stack":
		s, err := buildStack(props, opts)
		if err != nil {
			return nil, placement{}, err
		}
		self.elem = s.Element
	case "grid":
		g, err := buildGrid(props, opts)
		if err != nil {
			return nil, placement{}, err
		}
		self.grid = g
		self.elem = g.Element
	default:
		return nil, placement{}, errorf(n.Pos, "unknown node kind %q", n.Kind)
	}

	if !paint.IsZero() && b.paint != nil {
		self.elem.SetOnDraw(b.paint(paint))
	}

	if name := self.elem.Name(); name != "" {
		if _, dup := b.named[name]; dup {
			return nil, placement{}, errorf(n.Pos, "duplicate node name %q", name)
		}
		b.named[name] = self.elem
	}

	place, err := cellPlacement(n, props)
	if err != nil {
		return nil, placement{}, err
	}
	if place.hasCell && (parent == nil || parent.grid == nil) {
		return nil, placement{}, errorf(place.pos, "row and column are only valid inside a grid")
	}
	if err := props.unused(); err != nil {
		return nil, placement{}, err
	}

	for _, st := range n.Body {
		if st.Node == nil {
			continue
		}
		child, childPlace, err := b.node(st.Node, self)
		if err != nil {
			return nil, placement{}, err
		}
		if err := self.adopt(child, childPlace); err != nil {
			return nil, placement{}, err
		}
	}
	return self.elem, place, nil
}

// adopt attaches child and records its grid cell. Grid children default to
// cell (0, 0) when they name none.
func (c *container) adopt(child *scene.Element, place placement) error {
	if c.canvas != nil {
		p := child.Position()
		return c.canvas.Place(child, p.X, p.Y)
	}
	if err := c.elem.AddChild(child); err != nil {
		return err
	}
	if c.grid == nil {
		return nil
	}
	return c.grid.SetCellSpan(child, place.row, place.column, place.rowSpan, place.columnSpan)
}

func (b *builder) elementOptions(n *Node, props *propertySet) ([]scene.Option, Paint, error) {
	var paint Paint
	opts := []scene.Option{}

	name := n.Name
	if p, ok := props.take("name"); ok {
		s, err := p.text()
		if err != nil {
			return nil, paint, err
		}
		if name != "" && s != name {
			return nil, paint, errorf(p.Pos, "name %q conflicts with header name %q", s, name)
		}
		name = s
	}
	if name != "" {
		opts = append(opts, scene.WithName(name))
	}

	var x, y float64
	var hasPos bool
	for _, key := range []string{"x", "y"} {
		p, ok := props.take(key)
		if !ok {
			continue
		}
		v, err := p.number()
		if err != nil {
			return nil, paint, err
		}
		hasPos = true
		if key == "x" {
			x = v
		} else {
			y = v
		}
	}
	if hasPos {
		opts = append(opts, scene.WithPosition(x, y))
	}

	var w, h float64
	var hasSize bool
	for _, key := range []string{"width", "height"} {
		p, ok := props.take(key)
		if !ok {
			continue
		}
		v, err := p.nonNegative()
		if err != nil {
			return nil, paint, err
		}
		hasSize = true
		if key == "width" {
			w = v
		} else {
			h = v
		}
	}
	if hasSize {
		opts = append(opts, scene.WithSize(w, h))
	}

	if p, ok := props.take("margin"); ok {
		e, err := p.edges()
		if err != nil {
			return nil, paint, err
		}
		opts = append(opts, scene.WithMargin(e))
	}
	if p, ok := props.take("padding"); ok {
		e, err := p.edges()
		if err != nil {
			return nil, paint, err
		}
		opts = append(opts, scene.WithPadding(e))
	}
	if p, ok := props.take("radius"); ok {
		r, err := p.radius()
		if err != nil {
			return nil, paint, err
		}
		opts = append(opts, scene.WithCornerRadius(r))
	}
	if p, ok := props.take("visible"); ok {
		v, err := p.boolean()
		if err != nil {
			return nil, paint, err
		}
		opts = append(opts, scene.WithVisible(v))
	}
	if p, ok := props.take("enabled"); ok {
		v, err := p.boolean()
		if err != nil {
			return nil, paint, err
		}
		opts = append(opts, scene.WithEnabled(v))
	}

	if p, ok := props.take("fill"); ok {
		c, err := p.color()
		if err != nil {
			return nil, paint, err
		}
		paint.Fill = c
	}
	if p, ok := props.take("stroke"); ok {
		c, err := p.color()
		if err != nil {
			return nil, paint, err
		}
		paint.Stroke = c
		paint.StrokeWidth = 1
	}
	if p, ok := props.take("stroke-width"); ok {
		v, err := p.nonNegative()
		if err != nil {
			return nil, paint, err
		}
		paint.StrokeWidth = v
	}
	return opts, paint, nil
}

func buildStack(props *propertySet, opts []scene.Option) (*scene.Stack, error) {
	orientation := scene.Vertical
	if p, ok := props.take("orientation"); ok {
		word, err := p.ident()
		if err != nil {
			return nil, err
		}
		switch word {
		case "vertical":
			orientation = scene.Vertical
		case "horizontal":
			orientation = scene.Horizontal
		default:
			return nil, errorf(p.Pos, "orientation must be vertical or horizontal, got %q", word)
		}
	}
	var spacing float64
	if p, ok := props.take("spacing"); ok {
		v, err := p.nonNegative()
		if err != nil {
			return nil, err
		}
		spacing = v
	}
	return scene.NewStack(orientation, spacing, opts...), nil
}

func buildGrid(props *propertySet, opts []scene.Option) (*scene.Grid, error) {
	g := scene.NewGrid(opts...)
	if p, ok := props.take("columns"); ok {
		text, err := p.text()
		if err != nil {
			return nil, err
		}
		if err := g.AddColumns(text); err != nil {
			return nil, errorf(p.Pos, "columns: %v", err)
		}
	}
	if p, ok := props.take("rows"); ok {
		text, err := p.text()
		if err != nil {
			return nil, err
		}
		if err := g.AddRows(text); err != nil {
			return nil, errorf(p.Pos, "rows: %v", err)
		}
	}
	return g, nil
}

func cellPlacement(n *Node, props *propertySet) (placement, error) {
	place := placement{pos: n.Pos, rowSpan: 1, columnSpan: 1}
	targets := []struct {
		key string
		dst *int
	}{
		{"row", &place.row},
		{"column", &place.column},
		{"rowspan", &place.rowSpan},
		{"columnspan", &place.columnSpan},
	}
	for _, t := range targets {
		p, ok := props.take(t.key)
		if !ok {
			continue
		}
		v, err := p.integer()
		if err != nil {
			return place, err
		}
		*t.dst = v
		place.pos = p.Pos
		place.hasCell = true
	}
	return place, nil
}

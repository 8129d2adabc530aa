// Package canvasrender draws a scene tree with github.com/tdewolff/canvas and
// writes it out as PDF or SVG.
package canvasrender

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"

	scene "github.com/grindlemire/go-scene"
)

// Target is the scene.DrawContext handed to draw hooks during a render.
type Target struct {
	Ctx *canvas.Context
	// Scale converts scene units to millimetres.
	Scale float64
	// Origin is subtracted from element bounds so the root starts at (0, 0).
	Origin scene.Point
}

// Rect maps scene bounds to canvas coordinates.
func (t *Target) Rect(b scene.Rect) (x, y, w, h float64) {
	return (b.X - t.Origin.X) * t.Scale, (b.Y - t.Origin.Y) * t.Scale, b.Width * t.Scale, b.Height * t.Scale
}

// BoxStyle describes how Box paints an element. Nil colors are not drawn.
type BoxStyle struct {
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float64
}

// Box returns a draw hook that paints the element's bounds as a rectangle,
// rounded by its corner radius. Non-uniform radii use the smallest corner.
// Draw contexts other than *Target are ignored.
func Box(style BoxStyle) scene.DrawFunc {
	return func(dc scene.DrawContext, e *scene.Element, bounds scene.Rect) {
		t, ok := dc.(*Target)
		if !ok || t.Ctx == nil {
			return
		}
		x, y, w, h := t.Rect(bounds)
		if w <= 0 || h <= 0 {
			return
		}

		ctx := t.Ctx
		if style.Fill != nil {
			ctx.SetFillColor(style.Fill)
		} else {
			ctx.SetFillColor(canvas.Transparent)
		}
		if style.Stroke != nil && style.StrokeWidth > 0 {
			ctx.SetStrokeColor(style.Stroke)
			ctx.SetStrokeWidth(style.StrokeWidth * t.Scale)
		} else {
			ctx.SetStrokeColor(canvas.Transparent)
			ctx.SetStrokeWidth(0)
		}

		path := canvas.Rectangle(w, h)
		if r := e.CornerRadius(); !r.IsZero() {
			radius := r.TopLeft
			if !r.IsUniform() {
				radius = min(r.TopLeft, r.TopRight, r.BottomRight, r.BottomLeft)
			}
			if radius = min(radius*t.Scale, w/2, h/2); radius > 0 {
				path = canvas.RoundedRectangle(w, h, radius)
			}
		}
		ctx.DrawPath(x, y, path)
	}
}

// Renderer renders scene trees onto canvases.
type Renderer struct {
	scale      float64
	background color.Color
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithScale sets the millimetres drawn per scene unit. Default is 1.
func WithScale(mmPerUnit float64) Option {
	return func(r *Renderer) {
		if mmPerUnit > 0 {
			r.scale = mmPerUnit
		}
	}
}

// WithBackground fills the page with c before drawing the tree.
func WithBackground(c color.Color) Option {
	return func(r *Renderer) {
		r.background = c
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{scale: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Canvas draws root onto a new canvas sized to the root element.
func (r *Renderer) Canvas(root *scene.Element) (*canvas.Canvas, error) {
	if root == nil {
		return nil, fmt.Errorf("render: nil root")
	}
	size := root.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("render: root %s has empty size %vx%v", root, size.Width, size.Height)
	}

	w, h := size.Width*r.scale, size.Height*r.scale
	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	if r.background != nil {
		ctx.SetFillColor(r.background)
		ctx.SetStrokeColor(canvas.Transparent)
		ctx.DrawPath(0, 0, canvas.Rectangle(w, h))
	}

	scene.RenderTree(&Target{Ctx: ctx, Scale: r.scale, Origin: root.Position()}, root)
	return c, nil
}

// WritePDF renders root as a single-page PDF.
func (r *Renderer) WritePDF(w io.Writer, root *scene.Element) error {
	c, err := r.Canvas(root)
	if err != nil {
		return err
	}
	writer := pdf.New(w, c.W, c.H, nil)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WriteSVG renders root as an SVG document.
func (r *Renderer) WriteSVG(w io.Writer, root *scene.Element) error {
	c, err := r.Canvas(root)
	if err != nil {
		return err
	}
	writer := svg.New(w, c.W, c.H, nil)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// Bytes renders root in the given format ("pdf" or "svg").
func (r *Renderer) Bytes(format string, root *scene.Element) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case "pdf":
		err = r.WritePDF(&buf, root)
	case "svg":
		err = r.WriteSVG(&buf, root)
	default:
		return nil, fmt.Errorf("render: unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package scene

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/grindlemire/go-scene/internal/debug"
	"github.com/grindlemire/go-scene/internal/layout"
)

const tracerName = "github.com/grindlemire/go-scene"

// arranger is implemented by every container kind. An Element with a nil
// arranger is a leaf.
type arranger interface {
	// kind names the container for tracing and debug output.
	kind() string
	// arrange computes and writes the geometry of the owner's children.
	arrange()
}

// childRemover is implemented by containers keeping per-child state that
// must be pruned when a child leaves.
type childRemover interface {
	childRemoved(child *Element)
}

// IsContainer reports whether e arranges its children.
func (e *Element) IsContainer() bool {
	return e.arranger != nil
}

// Kind names the element's container type ("stack", "grid" or "canvas"),
// or "element" for a leaf.
func (e *Element) Kind() string {
	if e.arranger == nil {
		return "element"
	}
	return e.arranger.kind()
}

// Arrange runs the element's arrangement pass now. It is a no-op for leaves.
// Passes run automatically on layout-relevant changes; call Arrange after
// toggling a child's visibility to reflow around it.
func (e *Element) Arrange() {
	e.arrangeNow()
}

// arrangeNow runs one arrangement pass to completion. Notifications raised by
// the pass's own writes to children do not start a nested pass on e.
func (e *Element) arrangeNow() {
	if e.arranger == nil || e.arranging {
		return
	}
	e.arranging = true
	defer func() { e.arranging = false }()

	kind := e.arranger.kind()
	host := e.Host()

	ctx := context.Background()
	tracer := otel.Tracer(tracerName)
	if host != nil && host.spanCtx != nil {
		ctx = host.spanCtx
	}
	if host != nil && host.tracer != nil {
		tracer = host.tracer
	}
	ctx, span := tracer.Start(ctx, "scene.arrange", trace.WithAttributes(
		attribute.String("scene.element", e.String()),
		attribute.String("scene.container", kind),
		attribute.Int("scene.children", len(e.children)),
	))
	defer span.End()

	if host != nil {
		prev := host.spanCtx
		host.spanCtx = ctx
		defer func() { host.spanCtx = prev }()
	}

	debug.Log("arrange %s (%s): %d children, size %vx%v", e, kind, len(e.children), e.size.Width, e.size.Height)
	e.arranger.arrange()
}

// items snapshots the children and their arrangement inputs. The snapshot
// keeps indices stable if a child's change handler mutates the tree.
func (e *Element) items() ([]*Element, []layout.Item) {
	children := slices.Clone(e.children)
	items := make([]layout.Item, len(children))
	for i, child := range children {
		items[i] = layout.Item{
			Size:    child.size,
			Margin:  child.margin,
			Visible: child.visible,
		}
	}
	return children, items
}

package scene

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/grindlemire/go-scene/internal/debug"
)

// Host owns the root of an element tree and collects redraw requests from it.
// The tree itself is single-threaded; only the dirty flag may be read from
// another goroutine.
type Host struct {
	root  *Element
	size  Size
	dirty atomic.Bool

	onRedraw func(source *Element)

	tracer  trace.Tracer
	spanCtx context.Context
}

// HostOption is a functional option for configuring a Host.
type HostOption func(*Host) error

// WithOnRedraw sets a callback run synchronously for every redraw request.
// source is the element whose change caused the request.
func WithOnRedraw(fn func(source *Element)) HostOption {
	return func(h *Host) error {
		h.onRedraw = fn
		return nil
	}
}

// WithHostSize sets the size given to the root on Attach.
func WithHostSize(width, height float64) HostOption {
	return func(h *Host) error {
		if width < 0 || height < 0 {
			return fmt.Errorf("host size must not be negative, got %vx%v", width, height)
		}
		h.size = Size{Width: width, Height: height}
		return nil
	}
}

// WithTracer sets the tracer used for arrangement spans.
// Default is the global OpenTelemetry tracer provider.
func WithTracer(tracer trace.Tracer) HostOption {
	return func(h *Host) error {
		if tracer == nil {
			return fmt.Errorf("tracer must not be nil")
		}
		h.tracer = tracer
		return nil
	}
}

// NewHost creates a Host with no root. The zero Host is also usable and
// traces through the global OpenTelemetry provider.
func NewHost(opts ...HostOption) (*Host, error) {
	h := &Host{
		tracer:  otel.Tracer(tracerName),
		spanCtx: context.Background(),
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Attach makes root the host's tree, replacing any previous root. The root
// is resized to the host size when one was configured.
// Returns an *ArgumentError if root is nil or has a parent.
func (h *Host) Attach(root *Element) error {
	if root == nil {
		return &ArgumentError{Op: "Attach", Arg: "root", Err: ErrNilElement}
	}
	if root.parent != nil {
		return &ArgumentError{Op: "Attach", Arg: "root", Reason: "element has a parent"}
	}
	if h.root == root {
		return nil
	}
	if prev := root.host; prev != nil {
		prev.Detach()
	}
	h.Detach()

	h.root = root
	root.host = h
	debug.Log("host: attach %s", root)
	if h.size != (Size{}) {
		root.SetSize(h.size.Width, h.size.Height)
	}
	h.MarkDirty()
	return nil
}

// Detach releases the current root and returns it, or nil if there was none.
func (h *Host) Detach() *Element {
	root := h.root
	if root == nil {
		return nil
	}
	root.host = nil
	h.root = nil
	debug.Log("host: detach %s", root)
	h.MarkDirty()
	return root
}

// Root returns the attached root, or nil.
func (h *Host) Root() *Element {
	return h.root
}

// Size returns the host size.
func (h *Host) Size() Size {
	return h.size
}

// Resize changes the host size and resizes the root to match.
// Negative dimensions are treated as zero.
func (h *Host) Resize(width, height float64) {
	h.size = Size{Width: max(width, 0), Height: max(height, 0)}
	if h.root != nil {
		h.root.SetSize(h.size.Width, h.size.Height)
	}
}

// --- Dirty tracking ---

// MarkDirty marks the host as needing a render.
func (h *Host) MarkDirty() {
	h.dirty.Store(true)
}

// IsDirty reports whether a render is pending.
func (h *Host) IsDirty() bool {
	return h.dirty.Load()
}

// CheckAndClearDirty returns true if dirty and clears the flag.
func (h *Host) CheckAndClearDirty() bool {
	return h.dirty.Swap(false)
}

func (h *Host) requestRedraw(source *Element) {
	h.dirty.Store(true)
	if h.onRedraw != nil {
		h.onRedraw(source)
	}
}

// --- Rendering ---

// Render draws the attached tree into dc and clears the dirty flag.
func (h *Host) Render(dc DrawContext) {
	h.dirty.Store(false)
	if h.root != nil {
		RenderTree(dc, h.root)
	}
}

// RenderIfDirty renders only when a redraw was requested since the last
// render. Returns whether a render happened.
func (h *Host) RenderIfDirty(dc DrawContext) bool {
	if !h.CheckAndClearDirty() {
		return false
	}
	if h.root != nil {
		RenderTree(dc, h.root)
	}
	return true
}

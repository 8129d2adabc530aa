package scene

import (
	"strconv"
	"sync/atomic"
)

// ElementID is a stable handle issued to every Element at construction.
// Side tables such as a Grid's cell assignments are keyed by it.
type ElementID uint64

var lastElementID atomic.Uint64

func newElementID() ElementID {
	return ElementID(lastElementID.Add(1))
}

// Element is a node in the scene graph. It owns its children and geometry.
// Containers (Stack, Grid, Canvas) wrap an Element and arrange its children.
type Element struct {
	id   ElementID
	name string

	// Tree structure. parent is a back-reference used only for upward
	// traversal; ownership flows down through children.
	children []*Element
	parent   *Element

	// Geometry. position is relative to the parent's top-left corner.
	position Point
	size     Size
	margin   Edges
	padding  Edges
	radius   CornerRadius

	visible bool
	enabled bool

	// Container behaviour; nil for leaves.
	arranger  arranger
	arranging bool

	subscribers []subscriber
	lastSub     Subscription

	// Set only on the root attached to a Host.
	host *Host

	onDraw DrawFunc
}

// New creates a detached, visible, enabled leaf Element with the given options.
func New(opts ...Option) *Element {
	e := &Element{
		id:      newElementID(),
		visible: true,
		enabled: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID returns the element's stable handle.
func (e *Element) ID() ElementID {
	return e.id
}

// String returns the element's name, or a generated label when unnamed.
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	if e.name != "" {
		return e.name
	}
	return "element#" + strconv.FormatUint(uint64(e.id), 10)
}

package scene

import (
	"slices"

	"github.com/grindlemire/go-scene/internal/debug"
)

// --- Element's own API ---

// AddChild appends children to this Element in order.
// A child that already has a parent is detached from it first, so an element
// is never owned twice. Each attachment raises ChangeChildren on e.
// Returns an *ArgumentError for a nil child or for a child that is e or one
// of e's ancestors; children before the offending one stay attached.
func (e *Element) AddChild(children ...*Element) error {
	for _, child := range children {
		if err := e.insertChild("AddChild", len(e.children), child); err != nil {
			return err
		}
	}
	return nil
}

// InsertChild inserts child at index, clamped to [0, len(children)].
// When child is already a child of e, the index applies after its removal.
func (e *Element) InsertChild(index int, child *Element) error {
	return e.insertChild("InsertChild", index, child)
}

func (e *Element) insertChild(op string, index int, child *Element) error {
	if child == nil {
		return &ArgumentError{Op: op, Arg: "child", Err: ErrNilElement}
	}
	if child == e || child.IsAncestorOf(e) {
		return &ArgumentError{Op: op, Arg: "child", Reason: "element cannot become its own descendant"}
	}

	// A host root handed to a new owner stops being the host's root.
	if child.host != nil {
		child.host.Detach()
	}
	if prev := child.parent; prev != nil {
		debug.Log("reparent %s: %s -> %s", child, prev, e)
		prev.removeChild(child)
	}

	index = max(0, min(index, len(e.children)))
	e.children = slices.Insert(e.children, index, child)
	child.parent = e
	e.notify(ChangeChildren)
	return nil
}

// RemoveChild removes child from this Element, keeping the order of the
// remaining children. Returns false if child is not a child of e.
// Returns an *ArgumentError if child is nil.
func (e *Element) RemoveChild(child *Element) (bool, error) {
	if child == nil {
		return false, &ArgumentError{Op: "RemoveChild", Arg: "child", Err: ErrNilElement}
	}
	return e.removeChild(child), nil
}

func (e *Element) removeChild(child *Element) bool {
	i := slices.Index(e.children, child)
	if i < 0 {
		return false
	}
	e.children = slices.Delete(e.children, i, i+1)
	child.parent = nil
	if r, ok := e.arranger.(childRemover); ok {
		r.childRemoved(child)
	}
	e.notify(ChangeChildren)
	return true
}

// Clear removes every child, one RemoveChild at a time, so per-removal
// side effects run for each child.
func (e *Element) Clear() {
	for len(e.children) > 0 {
		e.removeChild(e.children[0])
	}
}

// Detach removes this Element from its parent, if any.
// Returns true if the element had a parent.
func (e *Element) Detach() bool {
	if e.parent == nil {
		return false
	}
	return e.parent.removeChild(e)
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// ChildCount returns the number of children.
func (e *Element) ChildCount() int {
	return len(e.children)
}

// ChildAt returns the child at index, or nil if index is out of range.
func (e *Element) ChildAt(index int) *Element {
	if index < 0 || index >= len(e.children) {
		return nil
	}
	return e.children[index]
}

// IndexOf returns the position of child in the child list, or -1.
func (e *Element) IndexOf(child *Element) int {
	return slices.Index(e.children, child)
}

// Parent returns the parent element, or nil if this is a root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Root returns the topmost ancestor of e (e itself when detached).
func (e *Element) Root() *Element {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// IsAncestorOf reports whether e is a strict ancestor of other.
func (e *Element) IsAncestorOf(other *Element) bool {
	if other == nil {
		return false
	}
	for n := other.parent; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// Walk visits e and its descendants depth-first, parent before children.
// Returning false from fn skips that element's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, child := range e.children {
		child.Walk(fn)
	}
}

package scene

import "slices"

// Change identifies which property of an Element changed.
type Change uint8

const (
	ChangePosition Change = iota + 1
	ChangeSize
	ChangeMargin
	ChangePadding
	ChangeCornerRadius
	ChangeChildren
	ChangeVisibility
	ChangeEnabled
	ChangeName
	// ChangeArrangement covers container settings: orientation, spacing,
	// track definitions and cell assignments.
	ChangeArrangement
)

// String returns the change name.
func (c Change) String() string {
	switch c {
	case ChangePosition:
		return "position"
	case ChangeSize:
		return "size"
	case ChangeMargin:
		return "margin"
	case ChangePadding:
		return "padding"
	case ChangeCornerRadius:
		return "corner-radius"
	case ChangeChildren:
		return "children"
	case ChangeVisibility:
		return "visibility"
	case ChangeEnabled:
		return "enabled"
	case ChangeName:
		return "name"
	case ChangeArrangement:
		return "arrangement"
	default:
		return "unknown"
	}
}

// rearrangesSelf reports whether a change on a container invalidates its arrangement.
func (c Change) rearrangesSelf() bool {
	switch c {
	case ChangeSize, ChangePadding, ChangeChildren, ChangeArrangement:
		return true
	}
	return false
}

// rearrangesParent reports whether a change on a child invalidates its parent's arrangement.
func (c Change) rearrangesParent() bool {
	return c == ChangeSize || c == ChangeMargin
}

// Subscription identifies a registered change handler.
type Subscription uint64

type subscriber struct {
	id Subscription
	fn func(*Element, Change)
}

// Subscribe registers fn to be called synchronously after every change to e.
// Handlers run in registration order and observe the new state, after e's
// own re-arrangement and before its parent reacts.
func (e *Element) Subscribe(fn func(e *Element, c Change)) Subscription {
	e.lastSub++
	e.subscribers = append(e.subscribers, subscriber{id: e.lastSub, fn: fn})
	return e.lastSub
}

// Unsubscribe removes a handler registered with Subscribe.
// Returns false if the subscription is unknown.
func (e *Element) Unsubscribe(s Subscription) bool {
	i := slices.IndexFunc(e.subscribers, func(sub subscriber) bool { return sub.id == s })
	if i < 0 {
		return false
	}
	e.subscribers = slices.Delete(e.subscribers, i, i+1)
	return true
}

// notify dispatches a change in a fixed order:
//  1. e re-arranges if it is a container and the change affects it,
//  2. subscribers run in registration order,
//  3. the parent re-arranges if the change affects the parent's arrangement,
//  4. a redraw is requested from the nearest Host.
func (e *Element) notify(c Change) {
	if e.arranger != nil && c.rearrangesSelf() {
		e.arrangeNow()
	}

	if len(e.subscribers) > 0 {
		for _, sub := range slices.Clone(e.subscribers) {
			sub.fn(e, c)
		}
	}

	if p := e.parent; p != nil && p.arranger != nil && c.rearrangesParent() {
		p.arrangeNow()
	}

	if c != ChangeName {
		e.Invalidate()
	}
}

// Invalidate requests a redraw from the Host that owns e's tree, if any.
func (e *Element) Invalidate() {
	for n := e; n != nil; n = n.parent {
		if n.host != nil {
			n.host.requestRedraw(e)
			return
		}
	}
}

// Host returns the Host the element's tree is attached to, or nil.
func (e *Element) Host() *Host {
	return e.Root().host
}

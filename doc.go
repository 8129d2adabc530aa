// Package scene provides a retained-mode scene graph with a synchronous
// layout and invalidation engine.
//
// Users import this single package for the complete public API: element
// construction, the Stack, Grid and Canvas containers, grid track types, the
// Host that owns a root element, and the render pass.
//
// Every mutation runs to completion before returning: a setter that changes
// layout-relevant state re-arranges the affected container, which writes new
// geometry onto its children, which may in turn re-arrange nested containers.
// Writing a value equal to the current one does nothing, so a pass that
// produces identical geometry does not trigger further passes.
//
// The tree is not safe for concurrent use; callers serialize access.
package scene

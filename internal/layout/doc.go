// Package layout implements the pure arrangement algorithms of the scene graph.
//
// It provides the geometry value types, the [TrackLength] grid sizing mode with
// its text grammar, track resolution for Fixed/Auto/Star rows and columns, and
// the [Stack] and [Grid] placement functions. Types are re-exported through the
// root scene package for public consumption.
//
// The algorithms work on plain [Item] values and return [Placement] results, so
// they hold no state and running them twice on the same input yields identical
// output.
package layout

package scene

import "github.com/grindlemire/go-scene/internal/layout"

// Stack arranges its visible children one after another along a single axis
// with a uniform gap. It positions children but never resizes them.
type Stack struct {
	*Element
	orientation Orientation
	spacing     float64
}

var _ arranger = (*Stack)(nil)

// NewStack creates a Stack with the given orientation and spacing.
// Negative spacing is treated as zero.
func NewStack(orientation Orientation, spacing float64, opts ...Option) *Stack {
	s := &Stack{
		Element:     New(opts...),
		orientation: orientation,
		spacing:     max(spacing, 0),
	}
	s.arranger = s
	return s
}

func (s *Stack) kind() string { return "stack" }

// Orientation returns the stacking axis.
func (s *Stack) Orientation() Orientation {
	return s.orientation
}

// SetOrientation changes the stacking axis and re-arranges from scratch.
func (s *Stack) SetOrientation(o Orientation) {
	if s.orientation == o {
		return
	}
	s.orientation = o
	s.notify(ChangeArrangement)
}

// Spacing returns the gap between consecutive visible children.
func (s *Stack) Spacing() float64 {
	return s.spacing
}

// SetSpacing changes the gap between children. Negative values are treated as zero.
func (s *Stack) SetSpacing(spacing float64) {
	spacing = max(spacing, 0)
	if s.spacing == spacing {
		return
	}
	s.spacing = spacing
	s.notify(ChangeArrangement)
}

func (s *Stack) arrange() {
	children, items := s.items()
	for _, p := range layout.Stack(s.padding, items, s.orientation, s.spacing) {
		children[p.Index].SetPosition(p.Position.X, p.Position.Y)
	}
}

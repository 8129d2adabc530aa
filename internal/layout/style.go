package layout

// Orientation specifies the axis a stack lays its children out along.
type Orientation uint8

const (
	Vertical   Orientation = iota // Children stacked top-to-bottom
	Horizontal                    // Children stacked left-to-right
)

// String returns the lowercase orientation name.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Cross returns the perpendicular orientation.
func (o Orientation) Cross() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

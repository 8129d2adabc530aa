package layout

import (
	"math"
	"strconv"
)

// TrackKind specifies how a TrackLength is interpreted.
type TrackKind uint8

const (
	TrackFixed TrackKind = iota // Absolute size in pixels
	TrackAuto                   // Sized to the largest single-track child
	TrackStar                   // Weighted share of the leftover space
)

// String returns the kind name.
func (k TrackKind) String() string {
	switch k {
	case TrackFixed:
		return "fixed"
	case TrackAuto:
		return "auto"
	case TrackStar:
		return "star"
	default:
		return "unknown"
	}
}

// trackEpsilon is the tolerance used when comparing Fixed and Star values.
const trackEpsilon = 1e-5

// TrackLength is the sizing mode of one grid row or column.
// The zero value is Fixed(0).
type TrackLength struct {
	kind  TrackKind
	value float64
}

// Fixed returns a TrackLength of an absolute number of pixels.
// Negative values are clamped to 0.
func Fixed(px float64) TrackLength {
	return TrackLength{kind: TrackFixed, value: clampNonNegative(px)}
}

// Auto returns a TrackLength sized from the track's content.
func Auto() TrackLength {
	return TrackLength{kind: TrackAuto}
}

// Star returns a TrackLength taking a weighted share of leftover space.
// Negative weights are clamped to 0.
func Star(weight float64) TrackLength {
	return TrackLength{kind: TrackStar, value: clampNonNegative(weight)}
}

// OneStar is the implicit weight of the bare "*" track.
var OneStar = Star(1)

// Kind returns the sizing mode.
func (t TrackLength) Kind() TrackKind {
	return t.kind
}

// Value returns the pixel size for Fixed, the weight for Star, and 0 for Auto.
func (t TrackLength) Value() float64 {
	return t.value
}

// IsAuto returns true if the track is sized from content.
func (t TrackLength) IsAuto() bool { return t.kind == TrackAuto }

// IsStar returns true if the track takes a proportional share.
func (t TrackLength) IsStar() bool { return t.kind == TrackStar }

// IsFixed returns true if the track has an absolute size.
func (t TrackLength) IsFixed() bool { return t.kind == TrackFixed }

// Equal reports whether two lengths have the same kind and, for Fixed and
// Star, values within 1e-5 of each other. Auto lengths are always equal.
func (t TrackLength) Equal(other TrackLength) bool {
	if t.kind != other.kind {
		return false
	}
	if t.kind == TrackAuto {
		return true
	}
	return math.Abs(t.value-other.value) < trackEpsilon
}

// String formats the length in the grid-length grammar accepted by Parse.
func (t TrackLength) String() string {
	switch t.kind {
	case TrackAuto:
		return "Auto"
	case TrackStar:
		if math.Abs(t.value-1) < trackEpsilon {
			return "*"
		}
		return formatNumber(t.value) + "*"
	default:
		return formatNumber(t.value) + "px"
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func clampNonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// Package layout provides the size-rules algebra used by the two-phase
// layout pass.
//
// Every widget reports a SizeRules per axis: a hard minimum, a preferred
// ideal, and a stretch priority. Containers combine child rules
// sequentially (rows and columns) or in parallel (stacked widgets) and,
// when given an allocation, split it back among children with Solve.
package layout

import (
	"fmt"

	"github.com/go-loom/loom/pkg/geom"
)

// Stretch is a widget's eagerness to absorb space beyond its ideal size,
// relative to its siblings. Higher values win all surplus space.
type Stretch int

const (
	// StretchNone never grows beyond its ideal unless every sibling is
	// also StretchNone.
	StretchNone Stretch = iota
	// StretchLow grows when no higher-priority sibling is present.
	StretchLow
	// StretchHigh grows in preference to StretchLow siblings.
	StretchHigh
	// StretchRequired always absorbs surplus space.
	StretchRequired
)

// String returns a human-readable representation of the stretch priority.
func (s Stretch) String() string {
	switch s {
	case StretchNone:
		return "none"
	case StretchLow:
		return "low"
	case StretchHigh:
		return "high"
	case StretchRequired:
		return "required"
	default:
		return fmt.Sprintf("Stretch(%d)", int(s))
	}
}

// SizeRules is a widget's layout demand along one axis.
//
// Invariant: 0 <= min <= ideal. Constructors and combinators preserve
// this; the zero value (empty demand) satisfies it trivially.
type SizeRules struct {
	min     int
	ideal   int
	stretch Stretch
}

// Fixed returns rules demanding exactly the given length.
func Fixed(length int) SizeRules {
	if length < 0 {
		length = 0
	}
	return SizeRules{min: length, ideal: length}
}

// Flexible returns rules with the given minimum, ideal and stretch
// priority. Ideal is raised to the minimum if below it.
func Flexible(min, ideal int, stretch Stretch) SizeRules {
	if min < 0 {
		min = 0
	}
	if ideal < min {
		ideal = min
	}
	return SizeRules{min: min, ideal: ideal, stretch: stretch}
}

// Min returns the hard lower bound.
func (s SizeRules) Min() int { return s.min }

// Ideal returns the preferred length.
func (s SizeRules) Ideal() int { return s.ideal }

// Stretch returns the stretch priority.
func (s SizeRules) StretchPriority() Stretch { return s.stretch }

// AppendedWith combines two rules sequentially, as for adjacent cells of
// a row or column: minima and ideals sum, the stronger stretch wins.
func (s SizeRules) AppendedWith(other SizeRules) SizeRules {
	return SizeRules{
		min:     geom.AddSat(s.min, other.min),
		ideal:   geom.AddSat(s.ideal, other.ideal),
		stretch: max(s.stretch, other.stretch),
	}
}

// Max combines two rules in parallel, as for stacked or overlaid
// widgets: the elementwise maximum of each component.
func Max(a, b SizeRules) SizeRules {
	return SizeRules{
		min:     max(a.min, b.min),
		ideal:   max(a.ideal, b.ideal),
		stretch: max(a.stretch, b.stretch),
	}
}

// WithStretch returns a copy with the stretch priority replaced.
func (s SizeRules) WithStretch(stretch Stretch) SizeRules {
	s.stretch = stretch
	return s
}

// String returns a human-readable representation of the rules.
func (s SizeRules) String() string {
	return fmt.Sprintf("SizeRules{min: %d, ideal: %d, stretch: %s}", s.min, s.ideal, s.stretch)
}

// AxisInfo identifies which axis a size-rules query concerns.
//
// The layout pass measures the horizontal axis first. When the vertical
// axis is measured afterwards, FixedOther is set and OtherLen carries
// the already-decided width, letting wrapping content report an exact
// height.
type AxisInfo struct {
	Axis       geom.Axis
	FixedOther bool
	OtherLen   int
}

// Horizontal reports whether the queried axis is horizontal.
func (a AxisInfo) Horizontal() bool { return a.Axis == geom.Horizontal }

// Vertical reports whether the queried axis is vertical.
func (a AxisInfo) Vertical() bool { return a.Axis == geom.Vertical }

// Package geom provides integer 2D geometry primitives for widget layout.
//
// Coordinates and sizes are plain ints measured in pixels (or terminal
// cells, depending on the backend). All arithmetic saturates: adding two
// lengths never wraps around and subtracting never produces a negative
// size.
package geom

import "math"

// Axis selects one of the two layout directions.
// Horizontal is the zero value.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Flip returns the other axis.
func (a Axis) Flip() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// AddSat returns a+b, saturating at the int limits instead of wrapping.
func AddSat(a, b int) int {
	sum := a + b
	if b > 0 && sum < a {
		return math.MaxInt
	}
	if b < 0 && sum > a {
		return math.MinInt
	}
	return sum
}

// SubClamp returns a-b clamped to zero. Lengths never go negative.
func SubClamp(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

// Coord represents a 2D point in pixel coordinates.
type Coord struct {
	X int
	Y int
}

// Extract returns the component of the coordinate along the given axis.
func (c Coord) Extract(axis Axis) int {
	if axis == Horizontal {
		return c.X
	}
	return c.Y
}

// Add returns the coordinate translated by other, saturating.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: AddSat(c.X, other.X), Y: AddSat(c.Y, other.Y)}
}

// Sub returns the coordinate translated by -other, saturating.
func (c Coord) Sub(other Coord) Coord {
	return Coord{X: AddSat(c.X, -other.X), Y: AddSat(c.Y, -other.Y)}
}

// Size represents width and height dimensions. Both components are >= 0.
type Size struct {
	Width  int
	Height int
}

// Extract returns the length of the size along the given axis.
func (s Size) Extract(axis Axis) int {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// WithExtract returns a copy of the size with the given axis length replaced.
func (s Size) WithExtract(axis Axis, length int) Size {
	if axis == Horizontal {
		s.Width = length
	} else {
		s.Height = length
	}
	return s
}

// IsEmpty returns true if either dimension is zero.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle by its top-left corner and size.
type Rect struct {
	Pos  Coord
	Size Size
}

// RectFromXYWH constructs a Rect from position and dimensions.
func RectFromXYWH(x, y, width, height int) Rect {
	return Rect{Pos: Coord{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// Contains reports whether the coordinate lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.Pos.X && c.X < AddSat(r.Pos.X, r.Size.Width) &&
		c.Y >= r.Pos.Y && c.Y < AddSat(r.Pos.Y, r.Size.Height)
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return AddSat(r.Pos.X, r.Size.Width)
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return AddSat(r.Pos.Y, r.Size.Height)
}

// Intersect returns the overlap of two rectangles, or a zero Rect if they
// do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.Pos.X, other.Pos.X)
	y := max(r.Pos.Y, other.Pos.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return RectFromXYWH(x, y, right-x, bottom-y)
}

// Union returns the smallest rectangle containing both r and other.
// A zero-size rect is treated as empty and contributes nothing.
func (r Rect) Union(other Rect) Rect {
	if r.Size.IsEmpty() {
		return other
	}
	if other.Size.IsEmpty() {
		return r
	}
	x := min(r.Pos.X, other.Pos.X)
	y := min(r.Pos.Y, other.Pos.Y)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())
	return RectFromXYWH(x, y, right-x, bottom-y)
}

// Shrink returns the rectangle inset by n on every side. The size clamps
// at zero; the position never moves past the centre.
func (r Rect) Shrink(n int) Rect {
	if n <= 0 {
		return r
	}
	w := SubClamp(r.Size.Width, 2*n)
	h := SubClamp(r.Size.Height, 2*n)
	return Rect{
		Pos:  Coord{X: AddSat(r.Pos.X, min(n, r.Size.Width/2)), Y: AddSat(r.Pos.Y, min(n, r.Size.Height/2))},
		Size: Size{Width: w, Height: h},
	}
}

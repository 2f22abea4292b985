package geometry

import "fmt"

// Rect is an inclusive rectangle over grid cells. It is used both for the
// full addressable extent of the screen buffer and for selection regions.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// FromCorners returns the normalized bounding rectangle of two
// coordinates. The arguments may be any two opposite corners.
func FromCorners(a, b Coord) Rect {
	r := Rect{Left: a.X, Top: a.Y, Right: b.X, Bottom: b.Y}
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// String returns a string representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d..%d,%d]", r.Left, r.Top, r.Right, r.Bottom)
}

// Width returns the number of columns covered, inclusive.
func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

// Height returns the number of rows covered, inclusive.
func (r Rect) Height() int {
	return r.Bottom - r.Top + 1
}

// SingleRow returns true if the rectangle covers exactly one row.
func (r Rect) SingleRow() bool {
	return r.Top == r.Bottom
}

// TopLeft returns the first cell of the rectangle in row-major order.
func (r Rect) TopLeft() Coord {
	return Coord{X: r.Left, Y: r.Top}
}

// BottomRight returns the last cell of the rectangle in row-major order.
func (r Rect) BottomRight() Coord {
	return Coord{X: r.Right, Y: r.Bottom}
}

// Contains reports whether pos lies inside the rectangle bounds. Unlike
// WithinInclusive this is a 2D test: the column is checked on every row.
func (r Rect) Contains(pos Coord) bool {
	return pos.X >= r.Left && pos.X <= r.Right &&
		pos.Y >= r.Top && pos.Y <= r.Bottom
}

// Clamp returns pos constrained to lie inside the rectangle.
func (r Rect) Clamp(pos Coord) Coord {
	if pos.X < r.Left {
		pos.X = r.Left
	}
	if pos.X > r.Right {
		pos.X = r.Right
	}
	if pos.Y < r.Top {
		pos.Y = r.Top
	}
	if pos.Y > r.Bottom {
		pos.Y = r.Bottom
	}
	return pos
}

// Intersect returns the overlap of two rectangles. The result is
// degenerate (Width or Height <= 0) when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	out := r
	if other.Left > out.Left {
		out.Left = other.Left
	}
	if other.Top > out.Top {
		out.Top = other.Top
	}
	if other.Right < out.Right {
		out.Right = other.Right
	}
	if other.Bottom < out.Bottom {
		out.Bottom = other.Bottom
	}
	return out
}

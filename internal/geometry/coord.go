package geometry

import "fmt"

// Coord identifies a single cell in the screen buffer.
// X is the column and Y the row, both zero-based.
type Coord struct {
	X int
	Y int
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Compare orders two coordinates row-major.
// Returns -1 if a precedes b, 0 if they are equal, 1 if a follows b.
func Compare(a, b Coord) int {
	if a.Y < b.Y {
		return -1
	}
	if a.Y > b.Y {
		return 1
	}
	if a.X < b.X {
		return -1
	}
	if a.X > b.X {
		return 1
	}
	return 0
}

// Before returns true if a precedes b in row-major order.
func (c Coord) Before(other Coord) bool {
	return Compare(c, other) < 0
}

// After returns true if a follows b in row-major order.
func (c Coord) After(other Coord) bool {
	return Compare(c, other) > 0
}

// WithinInclusive reports whether pos lies between start and end,
// inclusive of both boundary positions.
func WithinInclusive(pos, start, end Coord) bool {
	return Compare(start, pos) <= 0 && Compare(pos, end) <= 0
}

// Increment returns the position one cell to the right of pos, wrapping to
// the start of the next row at the right edge. The boolean is false when
// pos is the bottom-right corner of edges; the position is then returned
// unchanged.
func Increment(edges Rect, pos Coord) (Coord, bool) {
	if pos.X == edges.Right {
		if pos.Y == edges.Bottom {
			return pos, false
		}
		return Coord{X: edges.Left, Y: pos.Y + 1}, true
	}
	return Coord{X: pos.X + 1, Y: pos.Y}, true
}

// Decrement returns the position one cell to the left of pos, wrapping to
// the end of the previous row at the left edge. The boolean is false when
// pos is the top-left corner of edges; the position is then returned
// unchanged.
func Decrement(edges Rect, pos Coord) (Coord, bool) {
	if pos.X == edges.Left {
		if pos.Y == edges.Top {
			return pos, false
		}
		return Coord{X: edges.Right, Y: pos.Y - 1}, true
	}
	return Coord{X: pos.X - 1, Y: pos.Y}, true
}

// AddOffset advances pos by n cells (signed) along the row-major sequence
// of cells inside edges, clamping to the corners of edges instead of
// failing when the walk would leave the buffer.
func AddOffset(edges Rect, n int, pos Coord) Coord {
	width := edges.Right - edges.Left + 1
	if width <= 0 {
		return pos
	}

	idx := (pos.Y-edges.Top)*width + (pos.X - edges.Left) + n

	max := (edges.Bottom - edges.Top + 1) * width
	if idx < 0 {
		idx = 0
	} else if idx >= max {
		idx = max - 1
	}

	return Coord{
		X: edges.Left + idx%width,
		Y: edges.Top + idx/width,
	}
}

package grid

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/markmode/internal/geometry"
)

// cell is one grid position: the rune it shows and its width class.
type cell struct {
	r rune
	w CellWidth
}

// Buffer is an in-memory character grid implementing Accessor. Rows are
// fixed-width; text written past the right edge is truncated. Buffer is
// not safe for concurrent use.
type Buffer struct {
	cols    int
	rows    int
	cells   [][]cell
	wrapped []bool
}

var _ Accessor = (*Buffer)(nil)

// NewBuffer creates a blank cols x rows grid.
func NewBuffer(cols, rows int) *Buffer {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	b := &Buffer{
		cols:    cols,
		rows:    rows,
		cells:   make([][]cell, rows),
		wrapped: make([]bool, rows),
	}
	for y := range b.cells {
		b.cells[y] = blankRow(cols)
	}
	return b
}

func blankRow(cols int) []cell {
	row := make([]cell, cols)
	for x := range row {
		row[x] = cell{r: ' ', w: WidthSingle}
	}
	return row
}

// SetRow lays out text into row y starting at column 0. Double-width
// runes occupy a lead cell and a trail cell; a wide rune that would
// straddle the right edge is dropped. The remainder of the row is
// cleared to blanks.
func (b *Buffer) SetRow(y int, text string) {
	if y < 0 || y >= b.rows {
		return
	}
	row := blankRow(b.cols)
	x := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		switch {
		case w >= 2:
			if x+1 >= b.cols {
				x = b.cols
				break
			}
			row[x] = cell{r: r, w: WidthLead}
			row[x+1] = cell{r: r, w: WidthTrail}
			x += 2
		case w == 1:
			if x >= b.cols {
				break
			}
			row[x] = cell{r: r, w: WidthSingle}
			x++
		default:
			// zero-width runes have no cell of their own
		}
		if x >= b.cols {
			break
		}
	}
	b.cells[y] = row
}

// SetWrapped marks row y as soft-wrapped into the following row.
func (b *Buffer) SetWrapped(y int, wrapped bool) {
	if y < 0 || y >= b.rows {
		return
	}
	b.wrapped[y] = wrapped
}

// Char implements Accessor.
func (b *Buffer) Char(pos geometry.Coord) rune {
	if !b.inRange(pos) {
		return ' '
	}
	return b.cells[pos.Y][pos.X].r
}

// WidthClass implements Accessor.
func (b *Buffer) WidthClass(pos geometry.Coord) CellWidth {
	if !b.inRange(pos) {
		return WidthSingle
	}
	return b.cells[pos.Y][pos.X].w
}

// Edges implements Accessor.
func (b *Buffer) Edges() geometry.Rect {
	return geometry.Rect{Left: 0, Top: 0, Right: b.cols - 1, Bottom: b.rows - 1}
}

// Wrapped implements Accessor.
func (b *Buffer) Wrapped(row int) bool {
	if row < 0 || row >= b.rows {
		return false
	}
	return b.wrapped[row]
}

// RowText returns the visible text of row y with trail cells skipped and
// trailing blanks trimmed.
func (b *Buffer) RowText(y int) string {
	if y < 0 || y >= b.rows {
		return ""
	}
	runes := make([]rune, 0, b.cols)
	for x := 0; x < b.cols; x++ {
		c := b.cells[y][x]
		if c.w == WidthTrail {
			continue
		}
		runes = append(runes, c.r)
	}
	end := len(runes)
	for end > 0 && runes[end-1] == ' ' {
		end--
	}
	return string(runes[:end])
}

func (b *Buffer) inRange(pos geometry.Coord) bool {
	return pos.X >= 0 && pos.X < b.cols && pos.Y >= 0 && pos.Y < b.rows
}

package selection

import (
	"strings"

	"github.com/dshills/markmode/internal/geometry"
	"github.com/dshills/markmode/internal/grid"
)

// SelectedText extracts the text covered by the active selection for a
// clipboard commit. Block selections take the rectangle's columns on
// every row; line selections take full rows between the endpoints, with
// the first and last rows clipped to the endpoints. Trailing blanks are
// trimmed per row; rows are joined with newlines, except across
// soft-wrapped rows in line mode, which flow together.
func (e *Engine) SelectedText() string {
	if !e.state.areaSelected {
		return ""
	}

	edges := e.grid.Edges()
	rect := e.state.rect.Intersect(edges)

	var rows []string
	var joins []bool

	if e.state.lineSelection && !rect.SingleRow() {
		first, last := e.orderedEndpoints()
		for y := first.Y; y <= last.Y; y++ {
			left, right := edges.Left, edges.Right
			if y == first.Y {
				left = first.X
			}
			if y == last.Y {
				right = last.X
			}
			rows = append(rows, e.extractRow(y, left, right))
			joins = append(joins, e.grid.Wrapped(y))
		}
	} else {
		for y := rect.Top; y <= rect.Bottom; y++ {
			rows = append(rows, e.extractRow(y, rect.Left, rect.Right))
			joins = append(joins, false)
		}
	}

	var sb strings.Builder
	for i, row := range rows {
		if i > 0 && !joins[i-1] {
			sb.WriteByte('\n')
		}
		sb.WriteString(row)
	}
	return sb.String()
}

// orderedEndpoints returns the anchor and selection point in row-major
// order.
func (e *Engine) orderedEndpoints() (first, last geometry.Coord) {
	a, p := e.state.anchor, e.state.Point()
	if a.After(p) {
		return p, a
	}
	return a, p
}

// extractRow reads row y between columns left and right inclusive,
// skipping trail cells and trimming trailing blanks.
func (e *Engine) extractRow(y, left, right int) string {
	runes := make([]rune, 0, right-left+1)
	for x := left; x <= right; x++ {
		pos := geometry.Coord{X: x, Y: y}
		if e.grid.WidthClass(pos) == grid.WidthTrail {
			continue
		}
		runes = append(runes, e.grid.Char(pos))
	}
	end := len(runes)
	for end > 0 && runes[end-1] == ' ' {
		end--
	}
	return string(runes[:end])
}

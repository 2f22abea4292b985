package selection

import "github.com/dshills/markmode/internal/geometry"

// InputLineBoundaries returns the first and last cell of the in-progress
// command-line edit, or ok=false when no line edit is active. The end
// coordinate sits on the last occupied cell, not one past it.
func (e *Engine) InputLineBoundaries() (start, end geometry.Coord, ok bool) {
	if e.spans == nil {
		return geometry.Coord{}, geometry.Coord{}, false
	}
	rec, have := e.spans.LineEdit()
	if !have || rec.VisibleChars <= 0 {
		return geometry.Coord{}, geometry.Coord{}, false
	}

	edges := e.grid.Edges()
	start = rec.Origin
	end = rec.Origin

	if end.X < 0 && end.Y < 0 {
		// the edit record carries no origin; the live cursor marks the
		// position one past the final character
		end = e.cursor.Position()
	} else {
		end = geometry.AddOffset(edges, rec.VisibleChars, end)
	}

	// back onto the last occupied cell
	end = geometry.AddOffset(edges, -1, end)

	return start, end, true
}

// ValidArea returns the maximal extent of meaningful text in the buffer:
// from the origin to the end of the input line if one is active, else to
// the cursor saved when the current mark-mode session began, else to the
// live cursor position.
func (e *Engine) ValidArea() (start, end geometry.Coord) {
	_, end, ok := e.InputLineBoundaries()
	if !ok {
		if e.state.selecting && e.state.keyboardMark {
			end = e.state.savedCursor
		} else {
			end = e.cursor.Position()
		}
	}
	return geometry.Coord{}, end
}

package selection

import (
	"github.com/dshills/markmode/internal/geometry"
	"github.com/dshills/markmode/internal/grid"
	"github.com/dshills/markmode/internal/input/key"
	"github.com/dshills/markmode/internal/wordscan"
)

// IsValidLineSelectionKey reports whether the event is a combination the
// keyboard line-selection handler accepts: Shift-only or Shift+Ctrl-only
// over the navigation keys (Shift+Ctrl omits the page keys). It must stay
// in sync with HandleLineSelectionEvent and is exported so hosts can
// pre-filter events.
func IsValidLineSelectionKey(ev key.Event) bool {
	if ev.IsShiftOnly() {
		switch ev.Key {
		case key.KeyLeft, key.KeyRight, key.KeyUp, key.KeyDown,
			key.KeyPageUp, key.KeyPageDown, key.KeyHome, key.KeyEnd:
			return true
		}
		return false
	}
	if ev.IsShiftAndCtrlOnly() {
		switch ev.Key {
		case key.KeyLeft, key.KeyRight, key.KeyUp, key.KeyDown,
			key.KeyHome, key.KeyEnd:
			return true
		}
		return false
	}
	return false
}

// HandleLineSelectionEvent extends the selection with the keyboard. When
// no selection exists one is started at the cursor, forced into line
// mode. Returns false, with no side effects, for key combinations the
// handler does not accept.
func (e *Engine) HandleLineSelectionEvent(ev key.Event) bool {
	if !IsValidLineSelectionKey(ev) {
		return false
	}

	if !e.state.selecting {
		e.state.start(e.cursor.Position())
		// flagged like a mouse selection: follow-up keys keep routing
		// here through the dispatch, and any ordinary key cancels it
		e.state.mouseInitiated = true
		e.state.mouseButtonDown = false
		e.state.keyboardMark = false
		e.forceLineSelection()
		e.painter.ShowSelection(e.state.rect)

		// a plain Shift+Left/Right press only arms the selection at the
		// cursor; extension begins with the next press
		if ev.IsShiftOnly() && (ev.Key == key.KeyLeft || ev.Key == key.KeyRight) {
			return true
		}
	}

	anchor := e.state.anchor
	point := e.state.Point()
	edges := e.grid.Edges()

	inputStart, inputEnd, haveInput := e.InputLineBoundaries()

	if ev.IsShiftOnly() {
		switch ev.Key {
		case key.KeyLeft:
			point, _ = geometry.Decrement(edges, point)

		case key.KeyRight:
			point, _ = geometry.Increment(edges, point)
			// never leave the point on the right half of a pair
			if e.grid.WidthClass(point) == grid.WidthTrail {
				point, _ = geometry.Increment(edges, point)
			}

		case key.KeyUp:
			if point.Y > edges.Top {
				point.Y--
			}

		case key.KeyDown:
			if point.Y < edges.Bottom {
				point.Y++
			}

		case key.KeyPageDown:
			point.Y += e.viewportHeight()
			if point.Y > edges.Bottom || point.Y < edges.Top {
				point.Y = edges.Bottom // overflow clamps too
			}

		case key.KeyPageUp:
			point.Y -= e.viewportHeight()
			if point.Y < edges.Top {
				point.Y = edges.Top
			}

		case key.KeyHome:
			point.X = e.homeColumn(point, inputStart, haveInput)

		case key.KeyEnd:
			point.X = e.endColumn(point, inputStart, inputEnd, haveInput, edges)
		}
	} else {
		switch ev.Key {
		case key.KeyLeft, key.KeyRight:
			bounds := wordscan.EdgeBounds(edges)
			if haveInput {
				bounds = wordscan.Bounds{Min: inputStart, Max: inputEnd}
			}
			reverse := ev.Key == key.KeyLeft
			point = wordscan.Expand(e.grid, reverse, edges, bounds, anchor, point, e.isDelim)

		case key.KeyUp:
			if point.Y > edges.Top {
				point.Y--
			}

		case key.KeyDown:
			if point.Y < edges.Bottom {
				point.Y++
			}

		case key.KeyHome:
			start, _ := e.ValidArea()
			point = start

		case key.KeyEnd:
			_, end := e.ValidArea()
			point = end
		}
	}

	e.ExtendTo(point)

	return true
}

// homeColumn implements the two-stage Shift+Home policy. The first press
// from inside the input line stops on its first character so the prompt
// is not captured; a second press (or any press outside the input area)
// selects to the head of the line.
func (e *Engine) homeColumn(point, inputStart geometry.Coord, haveInput bool) int {
	if haveInput && point.After(inputStart) && inputStart.Y == point.Y {
		return inputStart.X
	}
	return 0
}

// endColumn implements the two-stage Shift+End policy against the input
// line. From inside the input area the point stops on its final
// character (the cells past it only exist to receive typed text). From
// the prompt prefix on the input's first row the point stops just before
// the input; pressed again there it jumps to the input's end when that
// end shares the row. Anywhere else the point goes to the right edge.
func (e *Engine) endColumn(point, inputStart, inputEnd geometry.Coord, haveInput bool, edges geometry.Rect) int {
	if haveInput {
		if !point.Before(inputStart) {
			if inputEnd.Y == point.Y && point.X < inputEnd.X {
				return inputEnd.X
			}
		} else if inputStart.Y == point.Y {
			promptEnd := inputStart.X - 1
			if point.X < promptEnd {
				return promptEnd
			}
			if point.X == promptEnd && point.Y == inputEnd.Y {
				return inputEnd.X
			}
		}
	}
	return edges.Right
}

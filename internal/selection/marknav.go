package selection

import (
	"github.com/dshills/markmode/internal/geometry"
	"github.com/dshills/markmode/internal/grid"
	"github.com/dshills/markmode/internal/input/key"
)

// handleMarkModeNav processes cursor navigation for keyboard-driven
// (mark-mode) selections. The cursor itself moves; holding Shift extends
// the selection to the cursor, releasing Shift re-arms the anchor there.
func (e *Engine) handleMarkModeNav(ev key.Event) bool {
	switch ev.Key {
	case key.KeyLeft, key.KeyRight, key.KeyUp, key.KeyDown,
		key.KeyPageUp, key.KeyPageDown, key.KeyHome, key.KeyEnd:
	default:
		return false
	}

	edges := e.grid.Edges()
	pos := e.cursor.Position()

	stepRight, stepLeft := e.glyphSteps(pos, edges)

	switch ev.Key {
	case key.KeyRight:
		if pos.X+stepRight <= edges.Right {
			pos.X += stepRight
		}

	case key.KeyLeft:
		if pos.X > edges.Left {
			pos.X -= stepLeft
		}

	case key.KeyUp:
		if pos.Y > edges.Top {
			pos.Y--
		}

	case key.KeyDown:
		if pos.Y < edges.Bottom {
			pos.Y++
		}

	case key.KeyPageDown:
		pos.Y += e.viewportHeight() - 1
		if pos.Y > edges.Bottom || pos.Y < edges.Top {
			pos.Y = edges.Bottom
		}

	case key.KeyPageUp:
		pos.Y -= e.viewportHeight() - 1
		if pos.Y < edges.Top {
			pos.Y = edges.Top
		}

	case key.KeyEnd:
		// End alone goes to the end of the row; Ctrl+End to the final
		// row holding valid text
		pos.X = edges.Right
		if ev.Modifiers.HasCtrl() {
			_, validEnd := e.ValidArea()
			pos.Y = validEnd.Y
		}

	case key.KeyHome:
		pos.X = edges.Left
		if ev.Modifiers.HasCtrl() {
			pos.Y = edges.Top
		}
	}

	e.cursor.SetPosition(pos)

	if ev.Modifiers.HasShift() {
		// the selection mode is locked in at the first extension
		if !e.state.areaSelected {
			e.sampleAlternate()
		}
		e.ExtendTo(pos)
	} else {
		if e.state.areaSelected {
			e.painter.HideSelection()
			e.state.disarmArea()
		}
		// re-arm: the next shifted movement selects from here
		e.state.start(pos)
		e.state.keyboardMark = true
	}

	return true
}

// glyphSteps computes how far the cursor must move left or right from pos
// to land on the next glyph boundary. Moving right off a lead cell steps
// over its trail half. Moving left inspects the preceding cells: a trail
// half means the whole pair is crossed, and a lead half orphaned by the
// cursor sitting on its trail is crossed together with any pair before
// it.
func (e *Engine) glyphSteps(pos geometry.Coord, edges geometry.Rect) (right, left int) {
	right = 1
	if e.grid.WidthClass(pos) == grid.WidthLead {
		right = 2
	}

	if pos.X <= edges.Left {
		return right, 0
	}

	prev := geometry.Coord{X: pos.X - 1, Y: pos.Y}
	switch e.grid.WidthClass(prev) {
	case grid.WidthTrail:
		left = 2
	case grid.WidthLead:
		if prev.X > edges.Left {
			before := geometry.Coord{X: prev.X - 1, Y: prev.Y}
			if e.grid.WidthClass(before) == grid.WidthTrail {
				left = 3
			} else {
				left = 2
			}
		} else {
			left = 1
		}
	default:
		left = 1
	}
	return right, left
}

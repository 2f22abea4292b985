package selection

import (
	"strings"

	"github.com/dshills/markmode/internal/geometry"
	"github.com/dshills/markmode/internal/grid"
	"github.com/dshills/markmode/internal/input/key"
)

// Attr is a legacy 4+4 bit color attribute: foreground index in the low
// nibble, background index in the high nibble.
type Attr uint8

// MakeAttr packs foreground and background color indexes.
func MakeAttr(fg, bg uint8) Attr {
	return Attr(fg&0x0F) | Attr(bg&0x0F)<<4
}

// Foreground returns the foreground color index.
func (a Attr) Foreground() uint8 { return uint8(a) & 0x0F }

// Background returns the background color index.
func (a Attr) Background() uint8 { return uint8(a) >> 4 }

// maxSearchLength clamps the text extracted for find-and-highlight.
const maxSearchLength = 80

// handleColorSelection processes a digit key as a color command.
// Alt+digit sets the foreground, Ctrl+digit the background (foreground
// black); adding Shift turns the command into find-and-highlight over
// the selected single-row text. Returns true when Alt or Ctrl was
// involved, regardless of what Shift resolved to.
func (e *Engine) handleColorSelection(ev key.Event) bool {
	digit, ok := ev.Digit()
	if !ok {
		return false
	}

	altPressed := ev.Modifiers.HasAlt()
	shiftPressed := ev.Modifiers.HasShift()
	ctrlPressed := false

	// Shift means find-and-highlight, which searches for a string, not a
	// block: without an active single-row selection it degrades to the
	// plain color command.
	if shiftPressed && (!e.state.areaSelected || !e.state.rect.SingleRow()) {
		shiftPressed = false
	}

	// Ctrl+Alt together reads as Alt: on some layouts AltGr reports both
	// and must keep behaving as Alt.
	if !altPressed {
		ctrlPressed = ev.Modifiers.HasCtrl()
	}

	if !altPressed && !ctrlPressed {
		return false
	}

	rect := e.state.rect.Intersect(e.grid.Edges())

	var attr Attr
	if ctrlPressed {
		// background color; foreground drops to black
		attr = Attr(digit) << 4
	} else {
		// foreground color; the host's background is preserved
		attr = Attr(digit) | e.colorer.CurrentAttr()&0xF0
	}

	if shiftPressed {
		text := e.rowText(rect)
		e.Clear()
		if e.searcher != nil {
			e.searcher.SearchAndHighlight(text, attr)
		}
	} else {
		e.colorer.ApplyColor(rect, attr)
		e.Clear()
	}

	return true
}

// rowText extracts the text of a single-row selection, clamped to
// maxSearchLength cells. Trail cells are skipped so double-width glyphs
// appear once.
func (e *Engine) rowText(rect geometry.Rect) string {
	length := rect.Width()
	if length > maxSearchLength {
		length = maxSearchLength
	}

	var sb strings.Builder
	for i := 0; i < length; i++ {
		pos := geometry.Coord{X: rect.Left + i, Y: rect.Top}
		if e.grid.WidthClass(pos) == grid.WidthTrail {
			continue
		}
		sb.WriteRune(e.grid.Char(pos))
	}
	return sb.String()
}

package grid

import "github.com/dshills/markmode/internal/geometry"

// CellWidth classifies a grid cell's role in glyph layout.
type CellWidth uint8

const (
	// WidthSingle is a cell holding a complete single-width glyph.
	WidthSingle CellWidth = iota
	// WidthLead is the left half of a double-width glyph.
	WidthLead
	// WidthTrail is the right half of a double-width glyph. It always
	// immediately follows a WidthLead cell on the same row.
	WidthTrail
)

// String returns the width class name.
func (w CellWidth) String() string {
	switch w {
	case WidthLead:
		return "lead"
	case WidthTrail:
		return "trail"
	default:
		return "single"
	}
}

// Accessor is the read-only cell query surface the selection engine
// depends on. Implementations must tolerate out-of-range coordinates by
// returning a blank single-width cell.
type Accessor interface {
	// Char returns the rune stored at pos. Trail cells report the same
	// rune as their lead partner.
	Char(pos geometry.Coord) rune

	// WidthClass returns the width class of the cell at pos.
	WidthClass(pos geometry.Coord) CellWidth

	// Edges returns the full addressable extent of the buffer.
	Edges() geometry.Rect

	// Wrapped reports whether the row continues onto the next row
	// (soft wrap) rather than ending in a hard line break.
	Wrapped(row int) bool
}

// LineEditRecord describes an in-progress command-line edit: where it
// begins in the buffer and how many cells of it are visible. An Origin of
// (-1,-1) means the edit's extent ends at the live cursor position.
type LineEditRecord struct {
	Origin       geometry.Coord
	VisibleChars int
}

// SpanProvider supplies the current line-edit record, if any.
type SpanProvider interface {
	// LineEdit returns the active record and true, or false when no
	// line edit is in progress.
	LineEdit() (LineEditRecord, bool)
}

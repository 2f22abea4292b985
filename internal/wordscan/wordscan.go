// Package wordscan implements word-by-word movement of a selection point
// across the screen buffer grid.
//
// The scan walks cell by cell in row-major order looking for a
// word/delimiter transition, bounded by a sticky range: when the bound is
// an active input line the scan stops at its edge, and a repeated
// invocation continues past it.
package wordscan

import (
	"strings"
	"unicode"

	"github.com/dshills/markmode/internal/geometry"
	"github.com/dshills/markmode/internal/grid"
)

// Classifier reports whether a rune is a word delimiter.
type Classifier func(r rune) bool

// defaultDelimiters are the punctuation characters that break words in
// addition to whitespace.
const defaultDelimiters = "&()*+,-./:;<=>?@[\\]^`{|}~!\"'#$%"

// IsDelimiter is the default word-delimiter predicate: whitespace plus a
// fixed punctuation set.
func IsDelimiter(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(defaultDelimiters, r)
}

// NewClassifier returns the default predicate extended with every rune in
// extra.
func NewClassifier(extra string) Classifier {
	if extra == "" {
		return IsDelimiter
	}
	return func(r rune) bool {
		return IsDelimiter(r) || strings.ContainsRune(extra, r)
	}
}

// Bounds restricts a scan to an inclusive row-major range.
type Bounds struct {
	Min geometry.Coord
	Max geometry.Coord
}

// EdgeBounds returns bounds covering the whole buffer.
func EdgeBounds(edges geometry.Rect) Bounds {
	return Bounds{Min: edges.TopLeft(), Max: edges.BottomRight()}
}

// Expand moves the selection point to the next (or, with reverse, the
// previous) word boundary and returns the new point.
//
// The point first steps once in the scan direction, then keeps stepping
// until a word/delimiter transition is seen or a bound is reached. The
// left bound stops the scan exactly at Min; the right bound stops at or
// past Max, so the scan never runs beyond the end of the input line into
// empty cells.
//
// Scanning forward, a word-to-delimiter transition stops the point on the
// last character of the word, and a delimiter-to-word transition stops it
// on the first character of the next word; repeated presses alternate
// between the two. Reverse scans mirror this. Landing on the near side of
// a transition requires backing off the one-cell overshoot that detected
// it; when the scan is shrinking the selection back toward the anchor the
// back-off is skipped, because the point sits on a cell rather than
// between cells and must stay on the near side to remain highlighted.
func Expand(g grid.Accessor, reverse bool, edges geometry.Rect, b Bounds, anchor, point geometry.Coord, isDelim Classifier) geometry.Coord {
	if isDelim == nil {
		isDelim = IsDelimiter
	}

	var moved bool
	if !reverse {
		point, moved = geometry.Increment(edges, point)
	} else {
		point, moved = geometry.Decrement(edges, point)
	}
	if !moved {
		// nowhere to go; the selection cannot extend further
		return point
	}

	curr := isDelim(g.Char(point))

	// shrinking rather than growing the selection?
	var unhighlighting bool
	if !reverse {
		unhighlighting = geometry.Compare(point, anchor) < 0
	} else {
		unhighlighting = geometry.Compare(point, anchor) > 0
	}

	// backOff is set when the loop overshot one cell past the run it was
	// consuming and the point should land on the near side.
	backOff := false

	for {
		prev := curr

		if geometry.Compare(point, b.Min) == 0 {
			moved = false
			break
		}
		// >= rather than == so a point already past the bound stops too
		if geometry.Compare(point, b.Max) >= 0 {
			moved = false
			break
		}

		if !reverse {
			point, moved = geometry.Increment(edges, point)
		} else {
			point, moved = geometry.Decrement(edges, point)
		}
		if !moved {
			break
		}

		curr = isDelim(g.Char(point))

		if prev != curr {
			// Entering a delimiter run means the cell just left was the
			// far edge of a word (back off onto it); leaving a run means
			// the point now sits on the first character of the next
			// word (stay).
			backOff = !prev && curr
			break
		}
	}

	if moved && backOff && !unhighlighting {
		if !reverse {
			point, _ = geometry.Decrement(edges, point)
		} else {
			point, _ = geometry.Increment(edges, point)
		}
	}

	return point
}

package selection

import "github.com/dshills/markmode/internal/geometry"

// State holds the live selection: the fixed anchor, the rectangle
// spanning anchor and selection point, and the mode flags. Flags are
// mutated only through State methods so their invariants hold (an active
// area always has a rectangle containing its anchor; a cleared selection
// has every flag down).
type State struct {
	selecting       bool
	areaSelected    bool
	lineSelection   bool
	mouseInitiated  bool
	mouseButtonDown bool
	keyboardMark    bool

	anchor geometry.Coord
	rect   geometry.Rect

	// cursor position captured when a mark-mode session begins; bounds
	// the valid text area while the session is live
	savedCursor geometry.Coord
}

// IsSelecting reports whether any selection interaction is in progress,
// including an armed mark-mode session with no extent yet.
func (s *State) IsSelecting() bool { return s.selecting }

// IsAreaSelected reports whether the selection rectangle is active.
func (s *State) IsAreaSelected() bool { return s.areaSelected }

// IsLineSelection reports whether the selection spans whole rows between
// its endpoints rather than a column-bounded block.
func (s *State) IsLineSelection() bool { return s.lineSelection }

// IsMouseInitiated reports whether the selection was started by a click.
func (s *State) IsMouseInitiated() bool { return s.mouseInitiated }

// IsMouseButtonDown reports whether the mouse button is physically held.
func (s *State) IsMouseButtonDown() bool { return s.mouseButtonDown }

// IsKeyboardMark reports whether this is a mark-mode session.
func (s *State) IsKeyboardMark() bool { return s.keyboardMark }

// Anchor returns the coordinate where the selection began.
func (s *State) Anchor() geometry.Coord { return s.anchor }

// Rect returns the current selection rectangle.
func (s *State) Rect() geometry.Rect { return s.rect }

// SavedCursor returns the cursor position captured at the start of the
// current mark-mode session.
func (s *State) SavedCursor() geometry.Coord { return s.savedCursor }

// start arms a selection anchored at pos with a collapsed rectangle.
func (s *State) start(anchor geometry.Coord) {
	s.selecting = true
	s.anchor = anchor
	s.rect = geometry.FromCorners(anchor, anchor)
	s.areaSelected = false
}

// extendTo recomputes the rectangle from the anchor and the new selection
// point and marks the area active.
func (s *State) extendTo(point geometry.Coord) {
	s.rect = geometry.FromCorners(s.anchor, point)
	s.areaSelected = true
}

// disarmArea drops the active area and its mode flag but keeps the
// session alive; mark mode uses this when the anchor is re-armed.
func (s *State) disarmArea() {
	s.areaSelected = false
	s.lineSelection = false
}

// clear resets every flag and collapses the rectangle.
func (s *State) clear() {
	s.selecting = false
	s.areaSelected = false
	s.lineSelection = false
	s.mouseInitiated = false
	s.mouseButtonDown = false
	s.keyboardMark = false
	s.rect = geometry.FromCorners(s.anchor, s.anchor)
}

// Point returns the movable endpoint of the selection: the rectangle
// corner diagonally opposite whichever corner coincides with the anchor.
func (s *State) Point() geometry.Coord {
	var p geometry.Coord
	if s.anchor.X == s.rect.Left {
		p.X = s.rect.Right
	} else {
		p.X = s.rect.Left
	}
	if s.anchor.Y == s.rect.Top {
		p.Y = s.rect.Bottom
	} else {
		p.Y = s.rect.Top
	}
	return p
}

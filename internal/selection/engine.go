package selection

import (
	"github.com/dshills/markmode/internal/geometry"
	"github.com/dshills/markmode/internal/grid"
	"github.com/dshills/markmode/internal/input/key"
	"github.com/dshills/markmode/internal/wordscan"
)

// Result is the outcome of dispatching a key event to the engine.
type Result uint8

const (
	// NotHandled means the event is not a selection command; the caller
	// should process it normally.
	NotHandled Result = iota
	// Handled means the event mutated or cleared the selection.
	Handled
	// CopyToClipboard means the caller should commit the selected text
	// to the clipboard and then clear the selection.
	CopyToClipboard
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case Handled:
		return "handled"
	case CopyToClipboard:
		return "copy-to-clipboard"
	default:
		return "not-handled"
	}
}

// CursorPort exposes the host's text cursor to mark-mode navigation.
type CursorPort interface {
	Position() geometry.Coord
	SetPosition(pos geometry.Coord)
}

// Painter is notified when the selection highlight should be shown or
// removed. Painting itself is the host's concern.
type Painter interface {
	ShowSelection(r geometry.Rect)
	HideSelection()
}

// Colorer applies a color attribute to a region of the grid and reports
// the host's current default attribute (used to preserve the background
// when only the foreground changes).
type Colorer interface {
	ApplyColor(r geometry.Rect, attr Attr)
	CurrentAttr() Attr
}

// Searcher finds every occurrence of text in the buffer and highlights it
// with the given attribute.
type Searcher interface {
	SearchAndHighlight(text string, attr Attr)
}

// DefaultViewportHeight is used when no viewport height is configured.
const DefaultViewportHeight = 24

// Engine is the selection state machine. All collaborators are injected;
// the grid and span provider are never mutated. Engine is not internally
// synchronized.
type Engine struct {
	grid   grid.Accessor
	spans  grid.SpanProvider
	keys   key.StateReader
	cursor CursorPort

	painter  Painter
	colorer  Colorer
	searcher Searcher

	viewportHeight func() int
	isDelim        wordscan.Classifier
	colorEnabled   bool

	// lineModeDefault is the host's selection mode when the alternate
	// modifier is not held; holding Alt at selection start flips it.
	lineModeDefault bool

	state State
}

// Option configures an Engine during creation.
type Option func(*Engine)

// WithPainter sets the highlight show/hide collaborator.
func WithPainter(p Painter) Option {
	return func(e *Engine) { e.painter = p }
}

// WithColorSelection enables the digit-key color commands.
func WithColorSelection(c Colorer, s Searcher) Option {
	return func(e *Engine) {
		e.colorer = c
		e.searcher = s
		e.colorEnabled = c != nil
	}
}

// WithViewportHeight sets a fixed viewport height for page movement.
func WithViewportHeight(rows int) Option {
	return func(e *Engine) {
		if rows > 0 {
			e.viewportHeight = func() int { return rows }
		}
	}
}

// WithViewportHeightFunc sets a live viewport height query.
func WithViewportHeightFunc(fn func() int) Option {
	return func(e *Engine) {
		if fn != nil {
			e.viewportHeight = fn
		}
	}
}

// WithWordDelimiters extends the word-scan delimiter set.
func WithWordDelimiters(extra string) Option {
	return func(e *Engine) { e.isDelim = wordscan.NewClassifier(extra) }
}

// WithLineModeDefault sets the selection mode used when the alternate
// modifier is not held at selection start. True (the default) matches
// console hosts where plain mouse selection is line-oriented.
func WithLineModeDefault(line bool) Option {
	return func(e *Engine) { e.lineModeDefault = line }
}

// nopPainter is installed when no painter is supplied.
type nopPainter struct{}

func (nopPainter) ShowSelection(geometry.Rect) {}
func (nopPainter) HideSelection()              {}

// nopKeys reports every key released; installed when no state reader is
// supplied.
type nopKeys struct{}

func (nopKeys) Pressed(key.Key) bool { return false }

// NewEngine creates a selection engine over the given grid. spans may be
// nil when the host has no line editor; keys may be nil when modifier
// polling is unavailable.
func NewEngine(g grid.Accessor, spans grid.SpanProvider, keys key.StateReader, cursor CursorPort, opts ...Option) *Engine {
	e := &Engine{
		grid:            g,
		spans:           spans,
		keys:            keys,
		cursor:          cursor,
		painter:         nopPainter{},
		viewportHeight:  func() int { return DefaultViewportHeight },
		isDelim:         wordscan.IsDelimiter,
		lineModeDefault: true,
	}
	if keys == nil {
		e.keys = nopKeys{}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State queries, re-exported for the rendering collaborator.

// IsSelecting reports whether a selection interaction is in progress.
func (e *Engine) IsSelecting() bool { return e.state.IsSelecting() }

// IsAreaSelected reports whether an active selection rectangle exists.
func (e *Engine) IsAreaSelected() bool { return e.state.IsAreaSelected() }

// IsLineSelection reports whether the selection is line-oriented.
func (e *Engine) IsLineSelection() bool { return e.state.IsLineSelection() }

// IsKeyboardMark reports whether a mark-mode session is live.
func (e *Engine) IsKeyboardMark() bool { return e.state.IsKeyboardMark() }

// IsMouseInitiated reports whether the selection was started by a click.
func (e *Engine) IsMouseInitiated() bool { return e.state.IsMouseInitiated() }

// IsMouseButtonDown reports whether the mouse button is held.
func (e *Engine) IsMouseButtonDown() bool { return e.state.IsMouseButtonDown() }

// Anchor returns the selection anchor.
func (e *Engine) Anchor() geometry.Coord { return e.state.Anchor() }

// Rect returns the selection rectangle.
func (e *Engine) Rect() geometry.Rect { return e.state.Rect() }

// HandleKeyEvent dispatches one key event against the current selection.
// The caller must be in a selecting state: the mouse button is down or a
// selection session exists.
func (e *Engine) HandleKeyEvent(ev key.Event) Result {
	if !e.state.mouseButtonDown {
		switch {
		case ev.Key == key.KeyEscape:
			e.Clear()
			return Handled
		case ev.Key == key.KeyEnter,
			ev.Modifiers.HasCtrl() && ev.Key == key.KeyInsert,
			ev.Modifiers.HasCtrl() && (ev.Rune == 'c' || ev.Rune == 'C'):
			// commit is external; state is cleared by the caller after
			// the copy succeeds
			return CopyToClipboard
		}

		if e.colorEnabled {
			if _, ok := ev.Digit(); ok && e.handleColorSelection(ev) {
				return Handled
			}
		}
	}

	if !e.state.mouseInitiated {
		if e.handleMarkModeNav(ev) {
			return Handled
		}
	} else if !e.state.mouseButtonDown {
		if e.state.lineSelection && e.HandleLineSelectionEvent(ev) {
			return Handled
		}
		// mouse selections are fragile: any ordinary key abandons them
		if !ev.Key.IsSystem() {
			e.Clear()
		}
	}

	return NotHandled
}

// BeginMouseSelection starts a mouse-driven selection anchored at pos.
// The selection mode is locked in now from the alternate modifier.
func (e *Engine) BeginMouseSelection(pos geometry.Coord) {
	e.state.start(pos)
	e.state.mouseInitiated = true
	e.state.mouseButtonDown = true
	e.state.keyboardMark = false
	e.sampleAlternate()
}

// BeginKeyboardMark starts a mark-mode session at the current cursor
// position. The cursor is saved to bound the valid text area while the
// session lasts.
func (e *Engine) BeginKeyboardMark() {
	pos := e.cursor.Position()
	e.state.start(pos)
	e.state.mouseInitiated = false
	e.state.mouseButtonDown = false
	e.state.keyboardMark = true
	e.state.savedCursor = pos
}

// MouseButtonUp records release of the selection button.
func (e *Engine) MouseButtonUp() {
	e.state.mouseButtonDown = false
}

// MouseButtonDown records the selection button being held again, e.g.
// when the user re-grabs an endpoint.
func (e *Engine) MouseButtonDown() {
	if e.state.selecting && e.state.mouseInitiated {
		e.state.mouseButtonDown = true
	}
}

// ExtendTo moves the selection point to pos, recomputing the rectangle
// from the anchor. The point is clamped to the buffer and snapped off
// the trailing half of a double-width pair, so no extension path can
// leave an endpoint on a trail cell. Used by keyboard extension and
// mouse drag alike.
func (e *Engine) ExtendTo(pos geometry.Coord) {
	edges := e.grid.Edges()
	pos = e.snapOffTrailing(edges.Clamp(pos), edges)
	e.state.extendTo(pos)
	e.painter.ShowSelection(e.state.rect)
}

// snapOffTrailing moves a point resting on the right half of a
// double-width pair onto the lead half, or failing that (at the buffer
// origin) forward off the pair entirely.
func (e *Engine) snapOffTrailing(point geometry.Coord, edges geometry.Rect) geometry.Coord {
	if e.grid.WidthClass(point) != grid.WidthTrail {
		return point
	}
	if p, ok := geometry.Decrement(edges, point); ok {
		return p
	}
	p, _ := geometry.Increment(edges, point)
	return p
}

// Clear cancels the selection: the highlight is removed and every flag
// reset.
func (e *Engine) Clear() {
	if e.state.areaSelected {
		e.painter.HideSelection()
	}
	e.state.clear()
}

// sampleAlternate locks in the selection mode from the alternate (Alt)
// modifier's current state.
func (e *Engine) sampleAlternate() {
	e.state.lineSelection = e.lineModeDefault != e.keys.Pressed(key.KeyAlt)
}

// forceLineSelection pins the selection to line mode regardless of the
// alternate modifier; keyboard-created line selections always use it.
func (e *Engine) forceLineSelection() {
	e.state.lineSelection = true
}

package app

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/markmode/internal/geometry"
	"github.com/dshills/markmode/internal/grid"
	"github.com/dshills/markmode/internal/input/key"
	"github.com/dshills/markmode/internal/selection"
)

// EventType identifies the kind of terminal event.
type EventType uint8

const (
	// EventNone is an event the host does not care about.
	EventNone EventType = iota
	// EventKey is a key press.
	EventKey
	// EventMouse is a mouse button or motion report.
	EventMouse
	// EventResize is a terminal size change.
	EventResize
)

// MouseEvent reports the pointer position and whether the primary button
// is held.
type MouseEvent struct {
	Pos     geometry.Coord
	Primary bool
}

// Event is a terminal event translated away from the tcell types.
type Event struct {
	Type  EventType
	Key   key.Event
	Mouse MouseEvent
}

// Screen owns the terminal via tcell and serves as every display-side
// collaborator of the selection engine: it paints the highlight, applies
// color attributes, runs find-and-highlight, and tracks the cursor.
type Screen struct {
	mu sync.Mutex

	tscreen tcell.Screen
	buffer  *grid.Buffer

	defaultAttr selection.Attr
	overlay     map[geometry.Coord]selection.Attr

	selRect    geometry.Rect
	selVisible bool

	cursor geometry.Coord

	// mods latches the modifier mask of the most recent event so the
	// engine can poll modifier state outside of an event.
	mods tcell.ModMask
}

var (
	_ selection.Painter    = (*Screen)(nil)
	_ selection.Colorer    = (*Screen)(nil)
	_ selection.Searcher   = (*Screen)(nil)
	_ selection.CursorPort = (*Screen)(nil)
	_ key.StateReader      = (*Screen)(nil)
)

// NewScreen creates and initializes the terminal over the given buffer.
func NewScreen(buffer *grid.Buffer, defaultAttr selection.Attr) (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := ts.Init(); err != nil {
		return nil, err
	}
	ts.EnableMouse()

	return &Screen{
		tscreen:     ts,
		buffer:      buffer,
		defaultAttr: defaultAttr,
		overlay:     make(map[geometry.Coord]selection.Attr),
	}, nil
}

// newScreenWith wires an existing tcell screen; used by tests with a
// simulation screen.
func newScreenWith(ts tcell.Screen, buffer *grid.Buffer, defaultAttr selection.Attr) *Screen {
	return &Screen{
		tscreen:     ts,
		buffer:      buffer,
		defaultAttr: defaultAttr,
		overlay:     make(map[geometry.Coord]selection.Attr),
	}
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.tscreen.Fini()
}

// ViewportHeight returns the terminal height in rows.
func (s *Screen) ViewportHeight() int {
	_, h := s.tscreen.Size()
	return h
}

// PollEvent blocks for the next terminal event.
func (s *Screen) PollEvent() Event {
	for {
		switch ev := s.tscreen.PollEvent().(type) {
		case *tcell.EventKey:
			s.latchMods(ev.Modifiers())
			return Event{Type: EventKey, Key: convertKeyEvent(ev)}
		case *tcell.EventMouse:
			s.latchMods(ev.Modifiers())
			x, y := ev.Position()
			return Event{
				Type: EventMouse,
				Mouse: MouseEvent{
					Pos:     geometry.Coord{X: x, Y: y},
					Primary: ev.Buttons()&tcell.Button1 != 0,
				},
			}
		case *tcell.EventResize:
			s.tscreen.Sync()
			return Event{Type: EventResize}
		case nil:
			// screen finalized
			return Event{Type: EventNone}
		}
	}
}

func (s *Screen) latchMods(m tcell.ModMask) {
	s.mu.Lock()
	s.mods = m
	s.mu.Unlock()
}

// Pressed implements key.StateReader from the latched modifier mask.
func (s *Screen) Pressed(k key.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch k {
	case key.KeyShift:
		return s.mods&tcell.ModShift != 0
	case key.KeyCtrl:
		return s.mods&tcell.ModCtrl != 0
	case key.KeyAlt:
		return s.mods&tcell.ModAlt != 0
	case key.KeyMeta:
		return s.mods&tcell.ModMeta != 0
	default:
		return false
	}
}

// Position implements selection.CursorPort.
func (s *Screen) Position() geometry.Coord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// SetPosition implements selection.CursorPort.
func (s *Screen) SetPosition(pos geometry.Coord) {
	s.mu.Lock()
	s.cursor = pos
	s.mu.Unlock()
}

// ShowSelection implements selection.Painter.
func (s *Screen) ShowSelection(r geometry.Rect) {
	s.mu.Lock()
	s.selRect = r
	s.selVisible = true
	s.mu.Unlock()
}

// HideSelection implements selection.Painter.
func (s *Screen) HideSelection() {
	s.mu.Lock()
	s.selVisible = false
	s.mu.Unlock()
}

// ApplyColor implements selection.Colorer by recording a per-cell
// attribute overlay.
func (s *Screen) ApplyColor(r geometry.Rect, attr selection.Attr) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for y := r.Top; y <= r.Bottom; y++ {
		for x := r.Left; x <= r.Right; x++ {
			s.overlay[geometry.Coord{X: x, Y: y}] = attr
		}
	}
}

// CurrentAttr implements selection.Colorer.
func (s *Screen) CurrentAttr() selection.Attr {
	return s.defaultAttr
}

// SearchAndHighlight implements selection.Searcher: every
// case-insensitive occurrence of text in the buffer gets the attribute.
func (s *Screen) SearchAndHighlight(text string, attr selection.Attr) {
	needle := []rune(strings.ToLower(text))
	if len(needle) == 0 {
		return
	}

	edges := s.buffer.Edges()
	for y := edges.Top; y <= edges.Bottom; y++ {
		runes, cols := s.rowRunes(y, edges)
		for i := 0; i+len(needle) <= len(runes); i++ {
			if !runesMatch(runes[i:i+len(needle)], needle) {
				continue
			}
			last := cols[i+len(needle)-1]
			if s.buffer.WidthClass(geometry.Coord{X: last, Y: y}) == grid.WidthLead {
				last++
			}
			s.ApplyColor(geometry.Rect{Left: cols[i], Top: y, Right: last, Bottom: y}, attr)
		}
	}
}

// rowRunes returns the lowercased runes of row y along with each rune's
// starting column; trail cells are skipped so wide glyphs count once.
func (s *Screen) rowRunes(y int, edges geometry.Rect) ([]rune, []int) {
	runes := make([]rune, 0, edges.Width())
	cols := make([]int, 0, edges.Width())
	for x := edges.Left; x <= edges.Right; x++ {
		pos := geometry.Coord{X: x, Y: y}
		if s.buffer.WidthClass(pos) == grid.WidthTrail {
			continue
		}
		for _, r := range strings.ToLower(string(s.buffer.Char(pos))) {
			runes = append(runes, r)
			cols = append(cols, x)
		}
	}
	return runes, cols
}

func runesMatch(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Render draws the buffer, the color overlay, and the selection
// highlight, then flushes to the terminal.
func (s *Screen) Render() {
	s.mu.Lock()
	defer s.mu.Unlock()

	edges := s.buffer.Edges()
	for y := edges.Top; y <= edges.Bottom; y++ {
		for x := edges.Left; x <= edges.Right; x++ {
			pos := geometry.Coord{X: x, Y: y}
			if s.buffer.WidthClass(pos) == grid.WidthTrail {
				continue
			}

			attr := s.defaultAttr
			if ov, ok := s.overlay[pos]; ok {
				attr = ov
			}
			style := attrStyle(attr)
			if s.selVisible && s.selRect.Contains(pos) {
				style = style.Reverse(true)
			}
			s.tscreen.SetContent(x, y, s.buffer.Char(pos), nil, style)
		}
	}

	s.tscreen.ShowCursor(s.cursor.X, s.cursor.Y)
	s.tscreen.Show()
}

// attrStyle maps a packed color attribute onto a tcell style using the
// 16-color palette.
func attrStyle(attr selection.Attr) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(attr.Foreground()))).
		Background(tcell.PaletteColor(int(attr.Background())))
}

// convertKeyEvent translates a tcell key event. Control-letter chords
// arrive as dedicated tcell keys and are unfolded back into a rune plus
// the Ctrl modifier so dispatch can match on the letter.
func convertKeyEvent(ev *tcell.EventKey) key.Event {
	mods := convertMods(ev.Modifiers())

	switch k := ev.Key(); k {
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyInsert:
		return key.NewSpecialEvent(key.KeyInsert, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	case tcell.KeyCtrlSpace:
		return key.NewRuneEvent(' ', mods|key.ModCtrl)
	case tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods)
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods|key.ModCtrl)
		}
		return key.NewSpecialEvent(key.KeyNone, mods)
	}
}

func convertMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModMeta
	}
	return mods
}

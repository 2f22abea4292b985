package selection

import (
	"github.com/dshills/markmode/internal/geometry"
	"github.com/dshills/markmode/internal/grid"
	"github.com/dshills/markmode/internal/input/key"
)

// Test collaborators. Each records what the engine asked of it.

type fakeCursor struct {
	pos geometry.Coord
}

func (c *fakeCursor) Position() geometry.Coord       { return c.pos }
func (c *fakeCursor) SetPosition(pos geometry.Coord) { c.pos = pos }

type fakeSpans struct {
	rec grid.LineEditRecord
	ok  bool
}

func (s *fakeSpans) LineEdit() (grid.LineEditRecord, bool) { return s.rec, s.ok }

// inputLine builds a provider for an edit starting at start covering
// visible cells.
func inputLine(start geometry.Coord, visible int) *fakeSpans {
	return &fakeSpans{rec: grid.LineEditRecord{Origin: start, VisibleChars: visible}, ok: true}
}

type fakeKeys struct {
	pressed map[key.Key]bool
}

func (k *fakeKeys) Pressed(kk key.Key) bool { return k.pressed[kk] }

type recordPainter struct {
	shows int
	hides int
	last  geometry.Rect
}

func (p *recordPainter) ShowSelection(r geometry.Rect) {
	p.shows++
	p.last = r
}

func (p *recordPainter) HideSelection() { p.hides++ }

type recordColorer struct {
	current Attr
	applied []appliedColor
}

type appliedColor struct {
	rect geometry.Rect
	attr Attr
}

func (c *recordColorer) ApplyColor(r geometry.Rect, attr Attr) {
	c.applied = append(c.applied, appliedColor{rect: r, attr: attr})
}

func (c *recordColorer) CurrentAttr() Attr { return c.current }

type recordSearcher struct {
	text  string
	attr  Attr
	calls int
}

func (s *recordSearcher) SearchAndHighlight(text string, attr Attr) {
	s.calls++
	s.text = text
	s.attr = attr
}

// testBuffer builds an 80-column grid from the given rows.
func testBuffer(rows ...string) *grid.Buffer {
	b := grid.NewBuffer(80, max(len(rows), 1))
	for y, text := range rows {
		b.SetRow(y, text)
	}
	return b
}

func shiftKey(k key.Key) key.Event {
	return key.NewSpecialEvent(k, key.ModShift)
}

func shiftCtrlKey(k key.Key) key.Event {
	return key.NewSpecialEvent(k, key.ModShift|key.ModCtrl)
}

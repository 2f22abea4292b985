package selection

import (
	"testing"

	"github.com/dshills/markmode/internal/geometry"
	"github.com/dshills/markmode/internal/grid"
	"github.com/dshills/markmode/internal/input/key"
)

func markEngine(cur *fakeCursor, keys *fakeKeys, rows ...string) *Engine {
	if keys == nil {
		keys = &fakeKeys{pressed: map[key.Key]bool{}}
	}
	e := NewEngine(testBuffer(rows...), nil, keys, cur, WithViewportHeight(10))
	e.BeginKeyboardMark()
	return e
}

func TestMarkNavStepsOverWideGlyphs(t *testing.T) {
	// row layout: あ=lead(0)+trail(1), い=lead(2)+trail(3), x=4
	cur := &fakeCursor{pos: geometry.Coord{X: 0, Y: 0}}
	e := markEngine(cur, nil, "あいx")

	e.HandleKeyEvent(key.NewSpecialEvent(key.KeyRight, key.ModNone))
	if cur.pos != (geometry.Coord{X: 2, Y: 0}) {
		t.Fatalf("Right from lead cell = %v, want (2,0)", cur.pos)
	}

	e.HandleKeyEvent(key.NewSpecialEvent(key.KeyLeft, key.ModNone))
	if cur.pos != (geometry.Coord{X: 0, Y: 0}) {
		t.Errorf("Left back over the pair = %v, want (0,0)", cur.pos)
	}
}

func TestMarkNavLeftStepWidths(t *testing.T) {
	tests := []struct {
		name string
		row  string
		from geometry.Coord
		want geometry.Coord
	}{
		{"single cell", "abc", geometry.Coord{X: 2, Y: 0}, geometry.Coord{X: 1, Y: 0}},
		{"over a pair", "aあb", geometry.Coord{X: 3, Y: 0}, geometry.Coord{X: 1, Y: 0}},
		{"from trail with pair before", "ああx", geometry.Coord{X: 3, Y: 0}, geometry.Coord{X: 0, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := &fakeCursor{pos: tt.from}
			e := markEngine(cur, nil, tt.row)
			e.HandleKeyEvent(key.NewSpecialEvent(key.KeyLeft, key.ModNone))
			if cur.pos != tt.want {
				t.Errorf("Left from %v = %v, want %v", tt.from, cur.pos, tt.want)
			}
		})
	}
}

func TestMarkNavClampsAtEdges(t *testing.T) {
	cur := &fakeCursor{pos: geometry.Coord{X: 0, Y: 0}}
	e := markEngine(cur, nil, "ab", "cd")

	e.HandleKeyEvent(key.NewSpecialEvent(key.KeyLeft, key.ModNone))
	if cur.pos.X != 0 {
		t.Errorf("Left at column 0 moved: %v", cur.pos)
	}
	e.HandleKeyEvent(key.NewSpecialEvent(key.KeyUp, key.ModNone))
	if cur.pos.Y != 0 {
		t.Errorf("Up at row 0 moved: %v", cur.pos)
	}
}

func TestMarkNavPageStride(t *testing.T) {
	rows := make([]string, 40)
	for i := range rows {
		rows[i] = "line"
	}
	cur := &fakeCursor{pos: geometry.Coord{X: 0, Y: 5}}
	e := markEngine(cur, nil, rows...)

	// stride is viewport height minus one
	e.HandleKeyEvent(key.NewSpecialEvent(key.KeyPageDown, key.ModNone))
	if cur.pos.Y != 14 {
		t.Fatalf("PageDown row = %d, want 14", cur.pos.Y)
	}
	e.HandleKeyEvent(key.NewSpecialEvent(key.KeyPageUp, key.ModNone))
	if cur.pos.Y != 5 {
		t.Errorf("PageUp row = %d, want 5", cur.pos.Y)
	}
}

func TestMarkNavHomeEnd(t *testing.T) {
	cur := &fakeCursor{pos: geometry.Coord{X: 3, Y: 2}}
	e := markEngine(cur, nil, "a", "b", "c", "d")

	e.HandleKeyEvent(key.NewSpecialEvent(key.KeyHome, key.ModNone))
	if cur.pos != (geometry.Coord{X: 0, Y: 2}) {
		t.Fatalf("Home = %v, want column 0 of same row", cur.pos)
	}

	e.HandleKeyEvent(key.NewSpecialEvent(key.KeyEnd, key.ModNone))
	if cur.pos != (geometry.Coord{X: 79, Y: 2}) {
		t.Fatalf("End = %v, want right edge of same row", cur.pos)
	}

	e.HandleKeyEvent(key.NewSpecialEvent(key.KeyHome, key.ModCtrl))
	if cur.pos != (geometry.Coord{X: 0, Y: 0}) {
		t.Errorf("Ctrl+Home = %v, want (0,0)", cur.pos)
	}
}

func TestMarkNavCtrlEndUsesSavedCursor(t *testing.T) {
	cur := &fakeCursor{pos: geometry.Coord{X: 2, Y: 3}}
	e := markEngine(cur, nil, "a", "b", "c", "d", "e")

	// the mark session saved the cursor at (2,3); after navigating away,
	// Ctrl+End returns to that row
	e.HandleKeyEvent(key.NewSpecialEvent(key.KeyUp, key.ModNone))
	e.HandleKeyEvent(key.NewSpecialEvent(key.KeyUp, key.ModNone))
	e.HandleKeyEvent(key.NewSpecialEvent(key.KeyEnd, key.ModCtrl))
	if cur.pos != (geometry.Coord{X: 79, Y: 3}) {
		t.Errorf("Ctrl+End = %v, want row 3 (saved cursor)", cur.pos)
	}
}

func TestMarkNavShiftExtends(t *testing.T) {
	cur := &fakeCursor{pos: geometry.Coord{X: 2, Y: 0}}
	e := markEngine(cur, nil, "hello world")

	got := e.HandleKeyEvent(shiftKey(key.KeyRight))
	if got != Handled {
		t.Fatalf("Shift+Right in mark mode = %v, want Handled", got)
	}
	if !e.IsAreaSelected() {
		t.Fatal("shifted movement should activate the selection")
	}
	if want := (geometry.Rect{Left: 2, Top: 0, Right: 3, Bottom: 0}); e.Rect() != want {
		t.Errorf("Rect = %v, want %v", e.Rect(), want)
	}
	if !e.IsKeyboardMark() {
		t.Error("mark-mode flag should be set")
	}
}

func TestMarkNavUnshiftedReArmsAnchor(t *testing.T) {
	cur := &fakeCursor{pos: geometry.Coord{X: 2, Y: 0}}
	e := markEngine(cur, nil, "hello world")

	e.HandleKeyEvent(shiftKey(key.KeyRight))
	e.HandleKeyEvent(shiftKey(key.KeyRight))
	if !e.IsAreaSelected() {
		t.Fatal("selection should be active")
	}

	// unshifted movement clears the area and re-arms at the new cursor
	e.HandleKeyEvent(key.NewSpecialEvent(key.KeyRight, key.ModNone))
	if e.IsAreaSelected() {
		t.Fatal("unshifted movement should clear the active area")
	}
	if e.Anchor() != cur.pos {
		t.Errorf("anchor = %v, want re-armed at cursor %v", e.Anchor(), cur.pos)
	}
	if !e.IsSelecting() {
		t.Error("mark session should stay alive after re-arming")
	}
}

func TestMarkNavSamplesAlternateAtFirstExtension(t *testing.T) {
	keys := &fakeKeys{pressed: map[key.Key]bool{key.KeyAlt: true}}
	cur := &fakeCursor{pos: geometry.Coord{X: 1, Y: 0}}
	e := markEngine(cur, keys, "hello")

	e.HandleKeyEvent(shiftKey(key.KeyRight))
	if e.IsLineSelection() {
		t.Fatal("Alt held with default line mode should select in block mode")
	}

	// the mode is locked in: releasing Alt must not flip it back
	keys.pressed[key.KeyAlt] = false
	e.HandleKeyEvent(shiftKey(key.KeyRight))
	if e.IsLineSelection() {
		t.Error("selection mode must stay locked after the first extension")
	}
}

func TestMarkNavShiftUpSnapsOffTrailingCell(t *testing.T) {
	b := testBuffer("あx", "yy")
	cur := &fakeCursor{pos: geometry.Coord{X: 1, Y: 1}}
	e := NewEngine(b, nil, nil, cur, WithViewportHeight(10))
	e.BeginKeyboardMark()

	// the cursor rises onto the trail half at (1,0); the selection
	// point must land on the lead half instead
	if got := e.HandleKeyEvent(shiftKey(key.KeyUp)); got != Handled {
		t.Fatalf("Shift+Up = %v, want Handled", got)
	}
	if want := (geometry.Rect{Left: 0, Top: 0, Right: 1, Bottom: 1}); e.Rect() != want {
		t.Fatalf("Rect = %v, want %v", e.Rect(), want)
	}
	point := e.Rect().TopLeft()
	if b.WidthClass(point) == grid.WidthTrail {
		t.Errorf("selection point %v rests on a trailing cell", point)
	}
}

func TestMarkNavIgnoresUnrelatedKeys(t *testing.T) {
	cur := &fakeCursor{pos: geometry.Coord{X: 1, Y: 0}}
	e := markEngine(cur, nil, "hello")

	got := e.HandleKeyEvent(key.NewRuneEvent('q', key.ModNone))
	if got != NotHandled {
		t.Errorf("unrelated key = %v, want NotHandled", got)
	}
}

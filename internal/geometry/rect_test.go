package geometry

import "testing"

func TestFromCornersNormalizes(t *testing.T) {
	tests := []struct {
		name string
		a, b Coord
		want Rect
	}{
		{"already ordered", Coord{2, 1}, Coord{8, 5}, Rect{2, 1, 8, 5}},
		{"reversed", Coord{8, 5}, Coord{2, 1}, Rect{2, 1, 8, 5}},
		{"mixed", Coord{8, 1}, Coord{2, 5}, Rect{2, 1, 8, 5}},
		{"degenerate", Coord{4, 4}, Coord{4, 4}, Rect{4, 4, 4, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromCorners(tt.a, tt.b); got != tt.want {
				t.Errorf("FromCorners(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRectClamp(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 79, Bottom: 24}

	if got := r.Clamp(Coord{100, 30}); got != (Coord{79, 24}) {
		t.Errorf("Clamp overflow = %v", got)
	}
	if got := r.Clamp(Coord{-5, -5}); got != (Coord{0, 0}) {
		t.Errorf("Clamp underflow = %v", got)
	}
	if got := r.Clamp(Coord{40, 12}); got != (Coord{40, 12}) {
		t.Errorf("Clamp interior moved the position: %v", got)
	}
}

func TestRectIntersect(t *testing.T) {
	edges := Rect{Left: 0, Top: 0, Right: 79, Bottom: 24}

	got := Rect{Left: -3, Top: 2, Right: 100, Bottom: 2}.Intersect(edges)
	want := Rect{Left: 0, Top: 2, Right: 79, Bottom: 2}
	if got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 2, Top: 1, Right: 8, Bottom: 5}

	if !r.Contains(Coord{2, 1}) || !r.Contains(Coord{8, 5}) {
		t.Error("corners should be contained")
	}
	// 2D test: row in range but column outside
	if r.Contains(Coord{1, 3}) {
		t.Error("column left of rect should not be contained")
	}
}

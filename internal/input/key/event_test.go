package key

import "testing"

func TestIsShiftOnly(t *testing.T) {
	tests := []struct {
		name string
		mods Modifier
		want bool
	}{
		{"shift alone", ModShift, true},
		{"no modifiers", ModNone, false},
		{"shift+ctrl", ModShift | ModCtrl, false},
		{"shift+alt", ModShift | ModAlt, false},
		{"ctrl alone", ModCtrl, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := NewSpecialEvent(KeyLeft, tt.mods)
			if got := ev.IsShiftOnly(); got != tt.want {
				t.Errorf("IsShiftOnly() with %v = %v, want %v", tt.mods, got, tt.want)
			}
		})
	}
}

func TestIsShiftAndCtrlOnly(t *testing.T) {
	tests := []struct {
		name string
		mods Modifier
		want bool
	}{
		{"shift+ctrl", ModShift | ModCtrl, true},
		{"shift alone", ModShift, false},
		{"ctrl alone", ModCtrl, false},
		{"shift+ctrl+alt", ModShift | ModCtrl | ModAlt, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := NewSpecialEvent(KeyRight, tt.mods)
			if got := ev.IsShiftAndCtrlOnly(); got != tt.want {
				t.Errorf("IsShiftAndCtrlOnly() with %v = %v, want %v", tt.mods, got, tt.want)
			}
		})
	}
}

func TestDigit(t *testing.T) {
	if d, ok := NewRuneEvent('3', ModAlt).Digit(); !ok || d != 3 {
		t.Errorf("Digit('3') = %d, %v", d, ok)
	}
	if d, ok := NewRuneEvent('0', ModNone).Digit(); !ok || d != 0 {
		t.Errorf("Digit('0') = %d, %v", d, ok)
	}
	if _, ok := NewRuneEvent('a', ModNone).Digit(); ok {
		t.Error("Digit('a') should not be a digit")
	}
	if _, ok := NewSpecialEvent(KeyHome, ModNone).Digit(); ok {
		t.Error("Digit(Home) should not be a digit")
	}
}

func TestKeyIsSystem(t *testing.T) {
	system := []Key{KeyShift, KeyCtrl, KeyAlt, KeyMeta, KeyCapsLock, KeyNumLock, KeyScrollLock}
	for _, k := range system {
		if !k.IsSystem() {
			t.Errorf("%v should be a system key", k)
		}
	}
	ordinary := []Key{KeyEscape, KeyEnter, KeyLeft, KeyHome, KeyRune}
	for _, k := range ordinary {
		if k.IsSystem() {
			t.Errorf("%v should not be a system key", k)
		}
	}
}

func TestEventString(t *testing.T) {
	if got := NewSpecialEvent(KeyLeft, ModShift).String(); got != "Shift+Left" {
		t.Errorf("String() = %q, want %q", got, "Shift+Left")
	}
	if got := NewRuneEvent('c', ModCtrl).String(); got != "Ctrl+c" {
		t.Errorf("String() = %q, want %q", got, "Ctrl+c")
	}
	if got := NewSpecialEvent(KeyEscape, ModNone).String(); got != "Escape" {
		t.Errorf("String() = %q, want %q", got, "Escape")
	}
}

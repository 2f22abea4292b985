package key

import "fmt"

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsShiftOnly returns true if Shift is the only modifier held.
func (e Event) IsShiftOnly() bool {
	return e.Modifiers == ModShift
}

// IsShiftAndCtrlOnly returns true if Shift and Ctrl are held and nothing
// else is.
func (e Event) IsShiftAndCtrlOnly() bool {
	return e.Modifiers == ModShift|ModCtrl
}

// Digit returns the decimal value of a '0'-'9' character event. The
// boolean is false for every other event.
func (e Event) Digit() (int, bool) {
	if e.Key != KeyRune || e.Rune < '0' || e.Rune > '9' {
		return 0, false
	}
	return int(e.Rune - '0'), true
}

// String returns a canonical representation like "Shift+Left" or "Ctrl+c".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if mods := e.Modifiers.String(); mods != "" {
		return fmt.Sprintf("%s+%s", mods, name)
	}
	return name
}

package key

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Modifier keys, reported when the host surfaces raw presses.
	KeyShift
	KeyCtrl
	KeyAlt
	KeyMeta

	// Lock keys
	KeyCapsLock
	KeyNumLock
	KeyScrollLock

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Event.Rune.
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyShift:
		return "Shift"
	case KeyCtrl:
		return "Ctrl"
	case KeyAlt:
		return "Alt"
	case KeyMeta:
		return "Meta"
	case KeyCapsLock:
		return "CapsLock"
	case KeyNumLock:
		return "NumLock"
	case KeyScrollLock:
		return "ScrollLock"
	case KeyRune:
		return "Rune"
	default:
		return "Unknown"
	}
}

// IsSystem returns true for keys that do not disturb an in-progress mouse
// selection: modifier and lock keys.
func (k Key) IsSystem() bool {
	switch k {
	case KeyShift, KeyCtrl, KeyAlt, KeyMeta,
		KeyCapsLock, KeyNumLock, KeyScrollLock:
		return true
	default:
		return false
	}
}

// StateReader polls the live pressed state of a key. The selection engine
// uses it to sample modifiers outside of an event, such as reading Alt
// when a selection's mode is locked in.
type StateReader interface {
	// Pressed reports whether the key is currently held down.
	Pressed(k Key) bool
}

// Package key provides the key event descriptor consumed by the
// selection engine.
//
// This package defines:
//
//   - Key: identifies a keyboard key (special keys or character keys)
//   - Modifier: the modifier keys held with a press
//   - Event: a single key press with its modifiers
//   - StateReader: a capability for polling live modifier key state
//
// The exact-modifier predicates (Event.IsShiftOnly and
// Event.IsShiftAndCtrlOnly) exist because selection extension accepts a
// key only under a precise modifier combination; testing individual bits
// is not enough.
package key

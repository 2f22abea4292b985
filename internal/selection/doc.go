// Package selection implements the keyboard selection engine for a
// console host: a small state machine that tracks an anchor and a live
// selection point over the screen buffer grid and mutates them in
// response to key events.
//
// The engine handles four interaction styles:
//
//   - mouse selections (fragile: any ordinary keystroke cancels them)
//   - keyboard extension of a mouse line selection (Shift/Shift+Ctrl
//     with the navigation keys)
//   - mark mode, a selection created and driven purely by cursor keys
//   - color selection, digit keys that recolor or search for the
//     selected text
//
// All collaborators (grid, input-line span, cursor, modifier state,
// painting, coloring, search) are injected at construction; the engine
// itself owns nothing but the selection state. It is single-threaded:
// hosts must serialize calls into it.
package selection

// Package grid defines the read-only view of the screen buffer that the
// selection engine operates over, together with an in-memory Buffer
// implementation used by tests and the demo host.
//
// Every cell carries a width class: a double-width glyph occupies two
// adjacent cells on the same row, a lead cell followed by a trail cell.
// A trail cell is never a valid selection endpoint on its own; the
// selection engine relies on the width classes reported here to keep
// endpoints on glyph boundaries.
package grid

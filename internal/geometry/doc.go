// Package geometry provides coordinate and rectangle arithmetic for the
// screen buffer grid.
//
// Coordinates are zero-based (column X, row Y) and ordered row-major: a
// coordinate on an earlier row precedes every coordinate on a later row,
// and within a row ordering follows the column. All rectangles are
// inclusive on every edge.
//
// The stepping functions (Increment, Decrement, AddOffset) treat the
// buffer as one continuous row-major sequence of cells, wrapping across
// row boundaries. They never move outside the supplied edges: Increment
// and Decrement report failure at the corners, AddOffset clamps.
package geometry

// Package pixelsearch finds the first pixel of a target color in a 32-bit
// ARGB pixel buffer.
//
// A search walks every pixel of the buffer (or of a rectangular region of
// it) exactly once, in one of eight traversal orders, and stops at the first
// pixel whose RGB value matches the target within a per-channel tolerance.
// Alpha never participates in matching.
//
// # Traversal Orders
//
// The eight orders combine an outer axis with a starting corner:
//
//	1 TopLeftRows         rows top→bottom, each row left→right
//	2 BottomLeftRows      rows bottom→top, each row left→right
//	3 BottomRightRows     rows bottom→top, each row right→left
//	4 TopRightRows        rows top→bottom, each row right→left
//	5 TopLeftColumns      columns left→right, each column top→bottom
//	6 BottomLeftColumns   columns left→right, each column bottom→top
//	7 BottomRightColumns  columns right→left, each column bottom→top
//	8 TopRightColumns     columns right→left, each column top→bottom
//
// # Buffers
//
// The scanner reads pixels through the View interface. Buffers that need
// scoped access implement Source: SearchSource locks the buffer for the
// whole scan and unlocks it on every exit path. ARGB is the in-memory
// implementation of both, laid out as y*stride + x*4 little-endian words.
//
// # Results
//
// Not finding a pixel is not an error. Search returns Result{Found: false}
// with a nil error. Errors are reserved for invalid input and for internal
// failures, and map onto the integer status codes returned by SearchCode.
package pixelsearch

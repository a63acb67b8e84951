// Package pipegrid models a rectangular map of pipe tiles as a grid of cells,
// each pairing an immutable Tile with a mutable traversal State.
//
// What:
//
//   - Tile: the eight connector shapes ('|', '-', 'L', 'J', '7', 'F', 'S', '.').
//   - Direction: the four unit offsets Up, Down, Left, Right, usable as 2D
//     integer vectors (Cross, Dot) for turn computations.
//   - State: per-cell traversal byte (Unvisited, Discovered, Loop, SideA, SideB)
//     that only ever advances forward.
//   - Grid: flat row-major buffer of Cells; ragged rows are bounds-checked per row.
//   - Connects: the connectivity predicate between two adjacent tiles.
//
// Why:
//
//   - One exclusively-owned buffer shared by every traversal phase, with the
//     forward-only State rule enforced at the single write path (SetState).
//
// Complexity:
//
//   - Parse / NewGrid: O(W×H) time and memory.
//   - InBounds, Index, Coordinate, Neighbor, SetState: O(1).
//   - Count, FindStart, Reset: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or only empty rows.
//   - ErrMalformedInput: an unrecognized character (wrapped in *ParseError).
//   - ErrStateRegression: a State write that would move a cell backwards.
package pipegrid

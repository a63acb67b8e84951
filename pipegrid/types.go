// Package pipegrid defines tiles, directions, traversal states, and sentinel
// errors for the pipegrid subpackage of github.com/katalvlaran/pipeloop.
package pipegrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for pipegrid operations.
var (
	// ErrEmptyGrid indicates the input has no rows, or every row is empty.
	ErrEmptyGrid = errors.New("pipegrid: input grid must have at least one non-empty row")
	// ErrMalformedInput indicates a character outside the tile alphabet.
	ErrMalformedInput = errors.New("pipegrid: malformed input")
	// ErrStateRegression indicates a State write that would move a cell backwards.
	ErrStateRegression = errors.New("pipegrid: cell state cannot regress")
	// ErrOutOfBounds indicates a coordinate outside the grid (or past its row end).
	ErrOutOfBounds = errors.New("pipegrid: coordinate out of bounds")
)

// ParseError reports the position of an unrecognized character.
// Line and Col are 1-based. errors.Is(err, ErrMalformedInput) holds.
type ParseError struct {
	Line, Col int
	Char      rune
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: unexpected %q at line %d, column %d", ErrMalformedInput, e.Char, e.Line, e.Col)
}

// Unwrap returns ErrMalformedInput.
func (e *ParseError) Unwrap() error { return ErrMalformedInput }

// Tile is the fixed connector shape of a cell.
type Tile uint8

const (
	// Empty is ground ('.'); it has no ports.
	Empty Tile = iota
	// Vertical connects Up and Down ('|').
	Vertical
	// Horizontal connects Left and Right ('-').
	Horizontal
	// NorthEast connects Up and Right ('L').
	NorthEast
	// NorthWest connects Up and Left ('J').
	NorthWest
	// SouthWest connects Down and Left ('7').
	SouthWest
	// SouthEast connects Down and Right ('F').
	SouthEast
	// Start is the distinguished tile ('S'); it carries a port in every direction.
	Start
)

// State is the mutable traversal byte of a cell.
//
// Allowed transitions: Unvisited→any, Discovered→Loop. Loop, SideA and SideB are final.
type State uint8

const (
	// Unvisited: not yet reached by any phase.
	Unvisited State = iota
	// Discovered: reached by the loop locator, not yet confirmed by the walker.
	Discovered
	// Loop: confirmed loop member.
	Loop
	// SideA: lies to the left of the walking direction.
	SideA
	// SideB: lies to the right of the walking direction.
	SideB
)

// String returns the state's name.
func (s State) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Discovered:
		return "discovered"
	case Loop:
		return "loop"
	case SideA:
		return "side-a"
	case SideB:
		return "side-b"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// IsSide reports whether s is one of the two side tags.
func (s State) IsSide() bool { return s == SideA || s == SideB }

// Opposite swaps SideA and SideB; other states are returned unchanged.
func (s State) Opposite() State {
	switch s {
	case SideA:
		return SideB
	case SideB:
		return SideA
	}
	return s
}

// CanAdvance reports whether a cell in state s may be moved to next.
// Rewriting the same state is not an advance.
func (s State) CanAdvance(next State) bool {
	switch s {
	case Unvisited:
		return next != Unvisited && next <= SideB
	case Discovered:
		return next == Loop
	}
	return false
}

// Cell pairs an immutable Tile with its traversal State.
type Cell struct {
	Tile  Tile
	State State
}

// Point is a (column, row) coordinate, origin top-left.
type Point struct {
	X, Y int
}

// Add returns p moved one step toward d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Offset()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String formats p as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

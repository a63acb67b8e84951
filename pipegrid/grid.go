package pipegrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLine bounds a single input row for the scanner.
const maxLine = 1 << 20

// Grid is a row-major buffer of Cells. Width is the longest row; shorter rows
// are not padded for traversal purposes: InBounds checks each row's own length.
// A Grid is single-owner; it is not safe for concurrent writes.
type Grid struct {
	Width, Height int
	cells         []Cell
	rowLen        []int
}

// NewGrid builds a Grid from rows of tiles. Rows may differ in length.
// The input is copied. All states start Unvisited.
// Returns ErrEmptyGrid if there are no rows or every row is empty.
// Complexity: O(W×H) time and memory.
func NewGrid(rows [][]Tile) (*Grid, error) {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	if len(rows) == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		Width:  w,
		Height: len(rows),
		cells:  make([]Cell, w*len(rows)),
		rowLen: make([]int, len(rows)),
	}
	for y, row := range rows {
		g.rowLen[y] = len(row)
		for x, t := range row {
			g.cells[g.Index(x, y)].Tile = t
		}
	}
	return g, nil
}

// Parse builds a Grid from text: one row per line, one character per cell.
// CRLF line endings are accepted and trailing blank lines are ignored.
// Returns a *ParseError (errors.Is ErrMalformedInput) for unknown characters,
// or ErrEmptyGrid.
func Parse(s string) (*Grid, error) {
	return ParseReader(strings.NewReader(s))
}

// ParseReader is Parse over an io.Reader.
func ParseReader(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	var rows [][]Tile
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		row := make([]Tile, 0, len(text))
		col := 0
		for _, ch := range text {
			col++
			t, err := ParseTile(ch)
			if err != nil {
				return nil, &ParseError{Line: line, Col: col, Char: ch}
			}
			row = append(row, t)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pipegrid: read input: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return NewGrid(rows)
}

// InBounds reports whether (x,y) is a real cell of its row.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return y >= 0 && y < g.Height && x >= 0 && x < g.rowLen[y]
}

// RowLen returns the length of row y as read from the input.
func (g *Grid) RowLen(y int) int { return g.rowLen[y] }

// Index maps (x,y) to its row-major offset: y*Width + x.
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major offset back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// Cell returns the cell at p. p must be in bounds.
func (g *Grid) Cell(p Point) Cell { return g.cells[g.Index(p.X, p.Y)] }

// Tile returns the tile at p. p must be in bounds.
func (g *Grid) Tile(p Point) Tile { return g.cells[g.Index(p.X, p.Y)].Tile }

// State returns the traversal state at p. p must be in bounds.
func (g *Grid) State(p Point) State { return g.cells[g.Index(p.X, p.Y)].State }

// SetState moves the cell at p to s. Writing the current state again is a
// no-op; any other write that CanAdvance refuses returns ErrStateRegression.
// Complexity: O(1).
func (g *Grid) SetState(p Point, s State) error {
	if !g.InBounds(p.X, p.Y) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	c := &g.cells[g.Index(p.X, p.Y)]
	if c.State == s {
		return nil
	}
	if !c.State.CanAdvance(s) {
		return fmt.Errorf("%w: %v %v→%v", ErrStateRegression, p, c.State, s)
	}
	c.State = s
	return nil
}

// Neighbor returns the cell one step from p toward d, and whether it is in bounds.
func (g *Grid) Neighbor(p Point, d Direction) (Point, bool) {
	n := p.Add(d)
	return n, g.InBounds(n.X, n.Y)
}

// FindStart returns the first Start tile in row-major order.
// Complexity: O(W×H).
func (g *Grid) FindStart() (Point, bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.rowLen[y]; x++ {
			if g.cells[g.Index(x, y)].Tile == Start {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}

// Points returns every in-bounds cell whose state satisfies keep,
// in row-major order.
func (g *Grid) Points(keep func(State) bool) []Point {
	var out []Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.rowLen[y]; x++ {
			if keep(g.cells[g.Index(x, y)].State) {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Count returns how many in-bounds cells are in state s.
// Complexity: O(W×H).
func (g *Grid) Count(s State) int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.rowLen[y]; x++ {
			if g.cells[g.Index(x, y)].State == s {
				n++
			}
		}
	}
	return n
}

// Reset returns every cell to Unvisited, keeping tiles.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].State = Unvisited
	}
}

// Clone returns a deep copy of g, states included.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		Width:  g.Width,
		Height: g.Height,
		cells:  make([]Cell, len(g.cells)),
		rowLen: make([]int, len(g.rowLen)),
	}
	copy(c.cells, g.cells)
	copy(c.rowLen, g.rowLen)
	return c
}

// String renders the tile map in the input alphabet.
func (g *Grid) String() string {
	return g.render(func(c Cell) rune { return c.Tile.Rune() })
}

// StateString renders the state map, one digit per cell.
func (g *Grid) StateString() string {
	return g.render(func(c Cell) rune { return rune('0' + c.State) })
}

func (g *Grid) render(glyph func(Cell) rune) string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.rowLen[y]; x++ {
			b.WriteRune(glyph(g.cells[g.Index(x, y)]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// File: loop/helpers_test.go
package loop_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// fixture is a grid with its known answers.
type fixture struct {
	name       string
	input      string
	steps      int
	loopLength int
	interior   int
	exterior   int
}

// fixtures covers the plain square, the zig-zag loop, the two "squeeze"
// layouts where exterior cells sit between parallel pipes, a large loop, and
// a grid full of junk pipes that do not belong to the loop.
var fixtures = []fixture{
	{"Square", squareGrid, 4, 8, 1, 16},
	{"ZigZag", zigZagGrid, 8, 16, 1, 8},
	{"Squeeze", squeezeGrid, 23, 46, 4, 49},
	{"SqueezeTight", squeezeTightGrid, 22, 44, 4, 42},
	{"Large", largeGrid, 70, 140, 8, 52},
	{"Junk", junkGrid, 80, 160, 10, 30},
	{"Tight2x2", tightGrid, 2, 4, 0, 0},
	{"Thin", thinGrid, 4, 8, 0, 16},
}

const squareGrid = `
.....
.S-7.
.|.|.
.L-J.
.....
`

const zigZagGrid = `
..F7.
.FJ|.
SJ.L7
|F--J
LJ...
`

const squeezeGrid = `
...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`

const squeezeTightGrid = `
..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
`

const largeGrid = `
.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`

const junkGrid = `
FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
`

const tightGrid = `
S7
LJ
`

const thinGrid = `
......
.S--7.
.L--J.
......
`

// mustParse parses a fixture, dropping the leading newline of the raw literal.
func mustParse(t testing.TB, s string) *pipegrid.Grid {
	t.Helper()
	g, err := pipegrid.Parse(strings.TrimPrefix(s, "\n"))
	require.NoError(t, err)
	return g
}

// ring builds an n×n grid whose border is a single loop with Start in the
// top-left corner; every inner cell is ground.
func ring(n int) string {
	var b strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			switch {
			case x == 0 && y == 0:
				b.WriteByte('S')
			case x == n-1 && y == 0:
				b.WriteByte('7')
			case x == 0 && y == n-1:
				b.WriteByte('L')
			case x == n-1 && y == n-1:
				b.WriteByte('J')
			case y == 0 || y == n-1:
				b.WriteByte('-')
			case x == 0 || x == n-1:
				b.WriteByte('|')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

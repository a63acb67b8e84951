// File: pipegrid/tile_test.go
package pipegrid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// TestParseTile_Alphabet checks the full eight-symbol alphabet round-trips.
func TestParseTile_Alphabet(t *testing.T) {
	for _, r := range "|-LJ7FS." {
		tile, err := pipegrid.ParseTile(r)
		require.NoError(t, err, "ParseTile(%q)", r)
		assert.Equal(t, r, tile.Rune())
	}
	_, err := pipegrid.ParseTile('X')
	assert.True(t, errors.Is(err, pipegrid.ErrMalformedInput))
}

// TestConnects_Table covers the whole from×to×direction space. Expected values
// are derived from the port layout:
//
//	'|' Up,Down   '-' Left,Right   'L' Up,Right   'J' Up,Left
//	'7' Down,Left 'F' Down,Right   'S' all        '.' none
func TestConnects_Table(t *testing.T) {
	all := []pipegrid.Tile{
		pipegrid.Empty, pipegrid.Vertical, pipegrid.Horizontal, pipegrid.NorthEast,
		pipegrid.NorthWest, pipegrid.SouthWest, pipegrid.SouthEast, pipegrid.Start,
	}
	hasPort := map[pipegrid.Tile][]pipegrid.Direction{
		pipegrid.Vertical:   {pipegrid.Up, pipegrid.Down},
		pipegrid.Horizontal: {pipegrid.Left, pipegrid.Right},
		pipegrid.NorthEast:  {pipegrid.Up, pipegrid.Right},
		pipegrid.NorthWest:  {pipegrid.Up, pipegrid.Left},
		pipegrid.SouthWest:  {pipegrid.Down, pipegrid.Left},
		pipegrid.SouthEast:  {pipegrid.Down, pipegrid.Right},
		pipegrid.Start:      {pipegrid.Up, pipegrid.Down, pipegrid.Left, pipegrid.Right},
	}
	has := func(tile pipegrid.Tile, d pipegrid.Direction) bool {
		for _, p := range hasPort[tile] {
			if p == d {
				return true
			}
		}
		return false
	}

	for _, from := range all {
		for _, to := range all {
			for _, d := range pipegrid.Directions {
				want := has(from, d) && has(to, d.Opposite())
				got := pipegrid.Connects(from, to, d)
				assert.Equal(t, want, got, "Connects(%v,%v,%v)", from, to, d)
			}
		}
	}
}

// TestConnects_Examples spot-checks the common alignments.
func TestConnects_Examples(t *testing.T) {
	cases := []struct {
		name     string
		from, to pipegrid.Tile
		dir      pipegrid.Direction
		want     bool
	}{
		{"VerticalStack", pipegrid.Vertical, pipegrid.Vertical, pipegrid.Down, true},
		{"VerticalSideways", pipegrid.Vertical, pipegrid.Vertical, pipegrid.Right, false},
		{"ElbowIntoRun", pipegrid.SouthEast, pipegrid.Horizontal, pipegrid.Right, true},
		{"ElbowBackwards", pipegrid.SouthEast, pipegrid.Horizontal, pipegrid.Left, false},
		{"StartIntoJ", pipegrid.Start, pipegrid.NorthWest, pipegrid.Right, true},
		{"StartIntoL", pipegrid.Start, pipegrid.NorthEast, pipegrid.Right, false},
		{"StartIntoSeven", pipegrid.Start, pipegrid.SouthWest, pipegrid.Right, true},
		{"IntoStart", pipegrid.Horizontal, pipegrid.Start, pipegrid.Left, true},
		{"EmptyNever", pipegrid.Empty, pipegrid.Start, pipegrid.Up, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pipegrid.Connects(tc.from, tc.to, tc.dir))
		})
	}
}

// TestTileFromPorts resolves the shape hidden under Start.
func TestTileFromPorts(t *testing.T) {
	assert.Equal(t, pipegrid.SouthEast, pipegrid.TileFromPorts(pipegrid.Down, pipegrid.Right))
	assert.Equal(t, pipegrid.SouthEast, pipegrid.TileFromPorts(pipegrid.Right, pipegrid.Down))
	assert.Equal(t, pipegrid.Vertical, pipegrid.TileFromPorts(pipegrid.Up, pipegrid.Down))
	assert.Equal(t, pipegrid.NorthWest, pipegrid.TileFromPorts(pipegrid.Left, pipegrid.Up))
	assert.Equal(t, pipegrid.Empty, pipegrid.TileFromPorts(pipegrid.Up, pipegrid.Up))
}

// TestDirection_Vectors checks Cross/Dot/Perpendicular agree with screen
// coordinates (rows grow downward): the right-hand side has positive cross.
func TestDirection_Vectors(t *testing.T) {
	for _, d := range pipegrid.Directions {
		left, right := d.Perpendicular()
		assert.Equal(t, -1, d.Cross(left), "%v left", d)
		assert.Equal(t, 1, d.Cross(right), "%v right", d)
		assert.Equal(t, 0, d.Dot(left))
		assert.Equal(t, 1, d.Dot(d))
		assert.Equal(t, -1, d.Dot(d.Opposite()))
		assert.Equal(t, 0, d.Cross(d.Opposite()))
	}
}

// TestState_CanAdvance encodes the forward-only transition rule.
func TestState_CanAdvance(t *testing.T) {
	u, d, l, a, b := pipegrid.Unvisited, pipegrid.Discovered, pipegrid.Loop, pipegrid.SideA, pipegrid.SideB
	assert.True(t, u.CanAdvance(d))
	assert.True(t, u.CanAdvance(l))
	assert.True(t, u.CanAdvance(a))
	assert.True(t, u.CanAdvance(b))
	assert.True(t, d.CanAdvance(l))

	assert.False(t, d.CanAdvance(u))
	assert.False(t, d.CanAdvance(a))
	assert.False(t, l.CanAdvance(a))
	assert.False(t, a.CanAdvance(b))
	assert.False(t, b.CanAdvance(u))
	assert.False(t, u.CanAdvance(u))
}

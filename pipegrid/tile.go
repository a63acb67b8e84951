package pipegrid

// PortSet is a bitmask of the directions a tile exposes a connector toward.
type PortSet uint8

// Has reports whether the set contains a port toward d.
func (p PortSet) Has(d Direction) bool { return p&(1<<d) != 0 }

func ports(ds ...Direction) PortSet {
	var p PortSet
	for _, d := range ds {
		p |= 1 << d
	}
	return p
}

// tileTable is indexed by Tile.
var tileTable = [...]struct {
	r     rune
	ports PortSet
}{
	Empty:      {'.', 0},
	Vertical:   {'|', ports(Up, Down)},
	Horizontal: {'-', ports(Left, Right)},
	NorthEast:  {'L', ports(Up, Right)},
	NorthWest:  {'J', ports(Up, Left)},
	SouthWest:  {'7', ports(Down, Left)},
	SouthEast:  {'F', ports(Down, Right)},
	Start:      {'S', ports(Up, Down, Left, Right)},
}

// ParseTile maps one input character to its Tile.
// Returns ErrMalformedInput for characters outside the alphabet.
func ParseTile(r rune) (Tile, error) {
	for t, e := range tileTable {
		if e.r == r {
			return Tile(t), nil
		}
	}
	return Empty, ErrMalformedInput
}

// Rune returns the input character of t.
func (t Tile) Rune() rune {
	if int(t) < len(tileTable) {
		return tileTable[t].r
	}
	return '?'
}

// String returns the input character of t as a string.
func (t Tile) String() string { return string(t.Rune()) }

// Ports returns the directions t connects toward.
func (t Tile) Ports() PortSet {
	if int(t) < len(tileTable) {
		return tileTable[t].ports
	}
	return 0
}

// IsPipe reports whether t is one of the six two-port shapes.
func (t Tile) IsPipe() bool {
	return t != Empty && t != Start && int(t) < len(tileTable)
}

// Connects reports whether a tile `from` links to the tile `to` that lies one
// step toward dir: `from` needs a port toward dir and `to` a port facing back.
// Start counts as having all four ports on either side. Defined for every
// Tile×Direction pair; unmatched combinations return false.
// Complexity: O(1).
func Connects(from, to Tile, dir Direction) bool {
	return from.Ports().Has(dir) && to.Ports().Has(dir.Opposite())
}

// TileFromPorts returns the two-port pipe shape linking a and b,
// e.g. the real shape under Start once its two loop neighbors are known.
// Returns Empty if a == b or the pair is not a valid shape.
func TileFromPorts(a, b Direction) Tile {
	want := ports(a, b)
	for t := Vertical; t <= SouthEast; t++ {
		if a != b && tileTable[t].ports == want {
			return t
		}
	}
	return Empty
}

package pipegrid

import "fmt"

// Direction is one of the four cardinal unit offsets.
type Direction uint8

const (
	// Up is (0,-1).
	Up Direction = iota
	// Down is (0,1).
	Down
	// Left is (-1,0).
	Left
	// Right is (1,0).
	Right
)

// Directions lists every Direction in scan order. All traversals iterate in
// this order, so the first neighbor found from Start is stable.
var Directions = [4]Direction{Up, Down, Left, Right}

// offsets is indexed by Direction.
var offsets = [4][2]int{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

// Offset returns the (dx, dy) unit vector of d. Rows grow downward.
func (d Direction) Offset() (dx, dy int) {
	o := offsets[d&3]
	return o[0], o[1]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}

// Cross returns the z component of d×o treating both as 2D integer vectors.
// With rows growing downward, a positive value means o is a clockwise
// (right-hand) quarter turn from d, negative a counter-clockwise one.
func (d Direction) Cross(o Direction) int {
	dx, dy := d.Offset()
	ox, oy := o.Offset()
	return dx*oy - dy*ox
}

// Dot returns the dot product of d and o.
func (d Direction) Dot(o Direction) int {
	dx, dy := d.Offset()
	ox, oy := o.Offset()
	return dx*ox + dy*oy
}

// Perpendicular returns the two directions at right angles to d,
// left-hand first then right-hand, relative to travel along d.
func (d Direction) Perpendicular() (left, right Direction) {
	switch d {
	case Up:
		return Left, Right
	case Down:
		return Right, Left
	case Left:
		return Down, Up
	}
	return Up, Down
}

// DirectionBetween returns the Direction leading from a to the 4-adjacent b.
func DirectionBetween(a, b Point) (Direction, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	for _, d := range Directions {
		ox, oy := d.Offset()
		if ox == dx && oy == dy {
			return d, true
		}
	}
	return 0, false
}

// String returns the direction's name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

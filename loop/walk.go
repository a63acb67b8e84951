package loop

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// walker encapsulates mutable walk state.
type walker struct {
	grid *pipegrid.Grid
	opts Options
	res  *WalkResult
}

// Walk re-traverses the loop found by Locate, confirming each cell as Loop and
// tagging the off-loop cells beside it.
//
// Behavior:
//  1. Confirm Start, then step onto loc.Neighbors[0] (Neighbors[1] under
//     WithReverse).
//  2. From each cell, move to the first Discovered neighbor it connects to.
//     The walk stops when none is left; it never counts steps.
//  3. Classify every cell, the closing cell and Start included:
//     - straight: the left neighbor becomes SideA, the right one SideB;
//     - turn: the sign of cross(in, out) gives the sense (positive = right
//     turn on screen); the two outer-corner cells, straight ahead of the
//     incoming vector and behind the outgoing one, take the outer side's tag.
//     Only Unvisited cells are ever tagged.
//
// Returns ErrDisconnectedLoop if the last cell does not connect back to
// Start, ErrBranchingLoop if Discovered cells are left unconfirmed.
//
// Complexity: O(L) time, O(L) memory for the path.
func Walk(g *pipegrid.Grid, loc *Location, opts ...Option) (*WalkResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if loc == nil {
		return nil, fmt.Errorf("%w: nil location", ErrOptionViolation)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	w := &walker{
		grid: g,
		opts: o,
		res:  &WalkResult{Path: make([]pipegrid.Point, 0, loc.Discovered)},
	}
	if err := g.SetState(loc.Start, pipegrid.Loop); err != nil {
		return nil, err
	}
	w.res.Path = append(w.res.Path, loc.Start)

	first := loc.Neighbors[0]
	if o.Reverse {
		first = loc.Neighbors[1]
	}

	prev, cur := loc.Start, first
	for {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		found, err := expand(g, cur, pipegrid.Discovered, pipegrid.Loop)
		if err != nil {
			return nil, err
		}
		w.res.Path = append(w.res.Path, cur)
		if len(found) == 0 {
			break
		}
		next := found[0]
		if err := w.classify(prev, cur, next); err != nil {
			return nil, err
		}
		prev, cur = cur, next
	}

	back, adjacent := pipegrid.DirectionBetween(cur, loc.Start)
	if !adjacent || !pipegrid.Connects(g.Tile(cur), pipegrid.Start, back) {
		return nil, fmt.Errorf("%w: walk ended at %v", ErrDisconnectedLoop, cur)
	}
	if err := w.classify(prev, cur, loc.Start); err != nil {
		return nil, err
	}
	if err := w.classify(cur, loc.Start, first); err != nil {
		return nil, err
	}
	if left := g.Count(pipegrid.Discovered); left > 0 {
		return nil, fmt.Errorf("%w: %d discovered cells off the walked loop", ErrBranchingLoop, left)
	}

	o.Logger.Debug("loop walked",
		zap.Int("length", len(w.res.Path)),
		zap.Int("seeds", w.res.Seeds),
		zap.Int("right_turns", w.res.RightTurns),
		zap.Int("left_turns", w.res.LeftTurns),
		zap.Bool("reverse", o.Reverse),
	)
	return w.res, nil
}

// classify tags the off-loop cells beside cur, reached from prev, leaving for next.
func (w *walker) classify(prev, cur, next pipegrid.Point) error {
	in, ok1 := pipegrid.DirectionBetween(prev, cur)
	out, ok2 := pipegrid.DirectionBetween(cur, next)
	if !ok1 || !ok2 {
		return fmt.Errorf("%w: %v→%v→%v is not a grid step", ErrDisconnectedLoop, prev, cur, next)
	}
	step := Step{Prev: prev, At: cur, Next: next, In: in, Out: out}

	var err error
	switch cross := in.Cross(out); {
	case in == out:
		left, right := in.Perpendicular()
		step.Tagged, err = w.tag(cur, pipegrid.SideA, left)
		if err == nil {
			var n int
			n, err = w.tag(cur, pipegrid.SideB, right)
			step.Tagged += n
		}
	case cross > 0:
		step.Turn = TurnRight
		w.res.RightTurns++
		step.Tagged, err = w.tag(cur, pipegrid.SideA, in, out.Opposite())
	case cross < 0:
		step.Turn = TurnLeft
		w.res.LeftTurns++
		step.Tagged, err = w.tag(cur, pipegrid.SideB, in, out.Opposite())
	}
	if err != nil {
		return err
	}
	w.res.Seeds += step.Tagged
	w.opts.OnStep(step)
	return nil
}

// tag marks the Unvisited neighbors of p toward dirs as side.
func (w *walker) tag(p pipegrid.Point, side pipegrid.State, dirs ...pipegrid.Direction) (int, error) {
	n := 0
	for _, d := range dirs {
		q, ok := w.grid.Neighbor(p, d)
		if !ok || w.grid.State(q) != pipegrid.Unvisited {
			continue
		}
		if err := w.grid.SetState(q, side); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

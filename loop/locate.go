package loop

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Locate finds the Start tile and floods the loop from it, two frontiers at
// once, marking every reached cell Discovered.
//
// Behavior:
//  1. Scan row-major for the first Start tile.
//  2. Seed the frontier with the neighbors Start connects to.
//     Exactly two are required.
//  3. Expand round by round until the frontier is empty; the number of rounds
//     is the distance to the farthest loop cell.
//
// Returns ErrGridNil, ErrOptionViolation, ErrNoStartTile, ErrDisconnectedLoop
// (fewer than two start neighbors) or ErrBranchingLoop (more than two).
// Context cancellation is checked once per round.
//
// Complexity: O(W×H) for the scan, O(L) for the flood (L = loop length).
func Locate(g *pipegrid.Grid, opts ...Option) (*Location, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	start, ok := g.FindStart()
	if !ok {
		return nil, ErrNoStartTile
	}
	frontier, err := expand(g, start, pipegrid.Unvisited, pipegrid.Discovered)
	if err != nil {
		return nil, err
	}
	switch {
	case len(frontier) < 2:
		return nil, fmt.Errorf("%w: start %v has %d connected neighbors", ErrDisconnectedLoop, start, len(frontier))
	case len(frontier) > 2:
		return nil, fmt.Errorf("%w: start %v has %d connected neighbors", ErrBranchingLoop, start, len(frontier))
	}

	loc := &Location{
		Start:     start,
		Neighbors: [2]pipegrid.Point{frontier[0], frontier[1]},
	}
	d0, _ := pipegrid.DirectionBetween(start, frontier[0])
	d1, _ := pipegrid.DirectionBetween(start, frontier[1])
	loc.StartTile = pipegrid.TileFromPorts(d0, d1)

	for len(frontier) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		var next []pipegrid.Point
		for _, p := range frontier {
			found, err := expand(g, p, pipegrid.Unvisited, pipegrid.Discovered)
			if err != nil {
				return nil, err
			}
			next = append(next, found...)
		}
		frontier = next
		loc.Steps++
	}
	loc.Discovered = g.Count(pipegrid.Discovered)

	o.Logger.Debug("loop located",
		zap.Stringer("start", start),
		zap.Stringer("start_tile", loc.StartTile),
		zap.Int("steps", loc.Steps),
		zap.Int("discovered", loc.Discovered),
	)
	return loc, nil
}

// expand marks p as mark and returns, in Directions order, the in-bounds
// neighbors still in state from that p's tile connects to.
// Two frontier cells may both return the same neighbor; re-marking it later
// is a no-op.
func expand(g *pipegrid.Grid, p pipegrid.Point, from, mark pipegrid.State) ([]pipegrid.Point, error) {
	if err := g.SetState(p, mark); err != nil {
		return nil, err
	}
	tile := g.Tile(p)
	var out []pipegrid.Point
	for _, d := range pipegrid.Directions {
		n, ok := g.Neighbor(p, d)
		if !ok {
			continue
		}
		c := g.Cell(n)
		if c.State == from && pipegrid.Connects(tile, c.Tile, d) {
			out = append(out, n)
		}
	}
	return out, nil
}

package loop

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Count reduces the grid's final states to per-state totals.
// Complexity: O(W×H).
func Count(g *pipegrid.Grid) Tally {
	return Tally{
		Unvisited: g.Count(pipegrid.Unvisited),
		Loop:      g.Count(pipegrid.Loop),
		SideA:     g.Count(pipegrid.SideA),
		SideB:     g.Count(pipegrid.SideB),
	}
}

// Solve runs Locate, Walk and Flood on a fresh grid, then Count.
// The grid is left holding the final states.
//
// Returns the first phase error, wrapped with the phase name.
func Solve(g *pipegrid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	loc, err := Locate(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("locate: %w", err)
	}
	walk, err := Walk(g, loc, opts...)
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}
	if _, err := Flood(g, opts...); err != nil {
		return nil, fmt.Errorf("flood: %w", err)
	}

	t := Count(g)
	inside := walk.Interior()
	res := &Result{
		Steps:        loc.Steps,
		LoopLength:   t.Loop,
		Interior:     t.Side(inside),
		Exterior:     t.Side(inside.Opposite()),
		InteriorSide: inside,
		StartTile:    loc.StartTile,
		Tally:        t,
		Path:         walk.Path,
	}
	o.Logger.Debug("grid solved",
		zap.Int("steps", res.Steps),
		zap.Int("loop_length", res.LoopLength),
		zap.Int("interior", res.Interior),
		zap.Int("exterior", res.Exterior),
		zap.Int("unreached", t.Unvisited),
		zap.Stringer("interior_side", inside),
	)
	return res, nil
}

// SolveString parses s and solves it.
func SolveString(s string, opts ...Option) (*Result, error) {
	g, err := pipegrid.Parse(s)
	if err != nil {
		return nil, err
	}
	return Solve(g, opts...)
}

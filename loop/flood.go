package loop

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// candidate is a proposed tag for an Unvisited cell.
type candidate struct {
	at   pipegrid.Point
	side pipegrid.State
}

// Flood spreads SideA/SideB tags from every tagged cell into Unvisited
// neighbors, round by round, until a round tags nothing. Loop cells are
// barriers. Returns the number of cells newly tagged.
//
// Seeds are taken in row-major order and each round is applied in frontier
// order, so the outcome is deterministic. Running Flood again on the same
// grid tags nothing.
//
// With WithWorkers(n>1) each frontier is split into n chunks whose candidates
// are gathered concurrently (reads only) and then applied sequentially in
// chunk order with a fresh state check, so every cell is written at most once
// and the result equals the sequential fill.
//
// Complexity: O(W×H) time and memory.
func Flood(g *pipegrid.Grid, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}

	frontier := g.Points(pipegrid.State.IsSide)
	seeds := len(frontier)
	tagged, rounds := 0, 0
	for len(frontier) > 0 {
		select {
		case <-o.Ctx.Done():
			return tagged, o.Ctx.Err()
		default:
		}

		var cands []candidate
		if o.Workers > 1 && len(frontier) > 1 {
			cands, err = gatherParallel(o.Ctx, g, frontier, o.Workers)
			if err != nil {
				return tagged, err
			}
		} else {
			cands = gather(g, frontier)
		}

		next := frontier[:0:0]
		for _, c := range cands {
			if g.State(c.at) != pipegrid.Unvisited {
				continue
			}
			if err := g.SetState(c.at, c.side); err != nil {
				return tagged, err
			}
			next = append(next, c.at)
		}
		tagged += len(next)
		frontier = next
		rounds++
	}

	o.Logger.Debug("regions flooded",
		zap.Int("seeds", seeds),
		zap.Int("tagged", tagged),
		zap.Int("rounds", rounds),
		zap.Int("workers", o.Workers),
	)
	return tagged, nil
}

// gather lists, in frontier then Directions order, every Unvisited in-bounds
// neighbor of the frontier paired with its source's tag.
func gather(g *pipegrid.Grid, frontier []pipegrid.Point) []candidate {
	var out []candidate
	for _, p := range frontier {
		side := g.State(p)
		for _, d := range pipegrid.Directions {
			n, ok := g.Neighbor(p, d)
			if ok && g.State(n) == pipegrid.Unvisited {
				out = append(out, candidate{at: n, side: side})
			}
		}
	}
	return out
}

// gatherParallel is gather over contiguous chunks run on an errgroup.
// The grid is only read while the group runs.
func gatherParallel(ctx context.Context, g *pipegrid.Grid, frontier []pipegrid.Point, workers int) ([]candidate, error) {
	if workers > len(frontier) {
		workers = len(frontier)
	}
	size := (len(frontier) + workers - 1) / workers
	parts := make([][]candidate, workers)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < workers; i++ {
		lo := i * size
		if lo >= len(frontier) {
			break
		}
		hi := min(lo+size, len(frontier))
		i := i // per-iteration copy (Go <1.22 loop-variable semantics)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parts[i] = gather(g, frontier[lo:hi])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var out []candidate
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}

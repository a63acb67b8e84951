// Package loop provides tunable options, result types and error definitions
// for locating, walking and flooding the pipe loop of a pipegrid.Grid.
package loop

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Sentinel errors for loop execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("loop: grid is nil")

	// ErrNoStartTile is returned when the grid holds no Start tile.
	ErrNoStartTile = errors.New("loop: no start tile")

	// ErrDisconnectedLoop is returned when the pipes reachable from Start do not close.
	ErrDisconnectedLoop = errors.New("loop: loop does not close")

	// ErrBranchingLoop is returned when the pipes reachable from Start fork.
	ErrBranchingLoop = errors.New("loop: loop branches")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("loop: invalid option supplied")
)

// Option configures loop phases via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when a phase is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by every phase.
type Options struct {
	// Ctx allows cancellation between breadth-first rounds.
	Ctx context.Context

	// Logger receives debug summaries of each phase.
	Logger *zap.Logger

	// Workers > 1 fans each flood frontier out over that many goroutines.
	Workers int

	// Reverse walks the loop starting from the second neighbor of Start.
	Reverse bool

	// OnStep is called for every classified step of the walk.
	OnStep func(Step)

	err error
}

// DefaultOptions returns Options with a background context, a no-op logger,
// a single worker, forward walking and no step hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Logger:  zap.NewNop(),
		Workers: 1,
		OnStep:  func(Step) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger used for phase summaries.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers sets the flood fan-out.
//
//	n > 1: parallel frontier expansion
//	n == 0 or 1: sequential
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = 1
		default:
			o.Workers = n
		}
	}
}

// WithReverse walks the loop in the opposite direction.
// SideA and SideB swap roles; interior and exterior counts do not change.
func WithReverse() Option {
	return func(o *Options) { o.Reverse = true }
}

// WithOnStep registers a hook called for every classified step.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Location is the outcome of Locate.
type Location struct {
	// Start is the Start tile's coordinate.
	Start pipegrid.Point
	// Neighbors are the two loop cells adjacent to Start, in Directions order.
	Neighbors [2]pipegrid.Point
	// StartTile is the real pipe shape under Start.
	StartTile pipegrid.Tile
	// Steps is the distance from Start to the farthest loop cell.
	Steps int
	// Discovered counts the cells marked during the search, Start included.
	Discovered int
}

// Turn classifies one walk step.
type Turn uint8

const (
	// Straight: incoming and outgoing directions are equal.
	Straight Turn = iota
	// TurnLeft: counter-clockwise quarter turn on screen.
	TurnLeft
	// TurnRight: clockwise quarter turn on screen.
	TurnRight
)

// String returns the turn's name.
func (t Turn) String() string {
	switch t {
	case Straight:
		return "straight"
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	}
	return fmt.Sprintf("turn(%d)", uint8(t))
}

// Step describes one classified position of the walk.
type Step struct {
	Prev, At, Next pipegrid.Point
	In, Out        pipegrid.Direction
	Turn           Turn
	// Tagged counts the off-loop cells this step seeded.
	Tagged int
}

// WalkResult is the outcome of Walk.
type WalkResult struct {
	// Path lists the loop in walk order, Start first.
	Path []pipegrid.Point
	// Seeds counts cells tagged directly by the walk.
	Seeds int
	// RightTurns and LeftTurns count the loop's corners, Start included.
	RightTurns, LeftTurns int
}

// Interior returns the side tag lying inside the loop: the walk's right-hand
// side when it turned clockwise overall, its left-hand side otherwise.
func (w *WalkResult) Interior() pipegrid.State {
	if w.RightTurns > w.LeftTurns {
		return pipegrid.SideB
	}
	return pipegrid.SideA
}

// Tally holds per-state cell counts of a grid.
type Tally struct {
	Unvisited, Loop, SideA, SideB int
}

// Side returns the count for SideA or SideB; any other state yields 0.
func (t Tally) Side(s pipegrid.State) int {
	switch s {
	case pipegrid.SideA:
		return t.SideA
	case pipegrid.SideB:
		return t.SideB
	}
	return 0
}

// Result is the outcome of Solve.
type Result struct {
	// Steps is the distance to the farthest loop cell (half the loop length).
	Steps int
	// LoopLength counts the loop's cells.
	LoopLength int
	// Interior and Exterior count the cells on either side of the loop.
	Interior, Exterior int
	// InteriorSide is the tag carried by interior cells.
	InteriorSide pipegrid.State
	// StartTile is the real pipe shape under Start.
	StartTile pipegrid.Tile
	// Tally is the full per-state count.
	Tally Tally
	// Path lists the loop in walk order, Start first.
	Path []pipegrid.Point
}

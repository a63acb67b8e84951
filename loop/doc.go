// Package loop finds the single closed pipe loop of a pipegrid.Grid, decides
// which side of it every other cell lies on, and counts the enclosed cells.
//
// What
//
//   - Locate: breadth-first flood from Start along connecting pipes, two
//     frontiers at once; the number of rounds is the farthest distance.
//   - Walk: sequential re-walk of the loop in one direction. At each cell the
//     incoming and outgoing directions decide straight / left / right using
//     the integer cross product, and the adjacent off-loop cells are seeded
//     with SideA (left of travel) or SideB (right of travel).
//   - Flood: multi-source breadth-first spread of both tags; loop cells are
//     barriers.
//   - Count / Solve: reduce final states; the side that the walk turned
//     toward overall is the interior.
//
// Why
//
//   - No prior knowledge of the loop's winding is needed: the local turn sense
//     is enough to seed the sides, and the net turn count names the inside.
//
// State rule
//
//	Every phase writes cell states through pipegrid.Grid.SetState, which
//	only moves a cell forward: Unvisited→Discovered→Loop, Unvisited→SideA|SideB.
//
// Concurrency
//
//	Phases run one after another on a single-owner grid. Only Flood may fan
//	out (WithWorkers); candidate gathering is read-only and writes are applied
//	in one goroutine, so each cell is written at most once.
//
// Complexity (W×H grid, L loop cells)
//
//   - Locate: O(W×H + L)
//   - Walk:   O(L)
//   - Flood:  O(W×H)
//   - Count:  O(W×H)
//
// Usage
//
//	g, err := pipegrid.Parse(input)
//	if err != nil {
//		// ErrEmptyGrid or *pipegrid.ParseError
//	}
//	res, err := loop.Solve(g,
//		loop.WithLogger(logger),
//		loop.WithWorkers(4),
//	)
//	if err != nil {
//		// ErrNoStartTile, ErrDisconnectedLoop, ErrBranchingLoop, ...
//	}
//	fmt.Println(res.Steps, res.Interior)
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrNoStartTile       if no Start tile exists.
//   - ErrDisconnectedLoop  if the pipes from Start do not close.
//   - ErrBranchingLoop     if Start has more than two connected neighbors
//     or the discovered pipes fork.
//   - ErrOptionViolation   if an Option is invalid (e.g. negative Workers).
//   - ctx.Err()            on cancellation.
package loop

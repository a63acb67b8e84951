// File: loop/example_test.go
package loop_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve runs all phases on a loop with a squeezed exterior pocket.
// Scenario:
//
//   - The loop starts at 'S' and winds around two inner bays.
//   - The cells between the parallel pipes of the bottom bays are outside,
//     reachable through the one-cell gap in the middle.
//   - Expect the farthest point 23 steps away and 4 enclosed cells.
//
// Complexity: O(W·H), Memory: O(W·H)
func ExampleSolve() {
	input := "" +
		"...........\n" +
		".S-------7.\n" +
		".|F-----7|.\n" +
		".||.....||.\n" +
		".||.....||.\n" +
		".|L-7.F-J|.\n" +
		".|..|.|..|.\n" +
		".L--J.L--J.\n" +
		"...........\n"
	g, err := pipegrid.Parse(input)
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	res, err := loop.Solve(g)
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	fmt.Println("steps:", res.Steps)
	fmt.Println("interior:", res.Interior)
	fmt.Print(g.StateString())

	// Output:
	// steps: 23
	// interior: 4
	// 44444444444
	// 42222222224
	// 42222222224
	// 42244444224
	// 42244444224
	// 42222422224
	// 42332423324
	// 42222422224
	// 44444444444
}

////////////////////////////////////////////////////////////////////////////////
// Example: Walk with a step hook
////////////////////////////////////////////////////////////////////////////////

// ExampleWalk prints the turn sense of each loop cell of a 2×2 loop.
// Walking down first traverses it counter-clockwise, so every corner is a
// left turn and the (empty) inside is SideA.
func ExampleWalk() {
	g, _ := pipegrid.Parse("S7\nLJ\n")
	loc, _ := loop.Locate(g)
	w, _ := loop.Walk(g, loc, loop.WithOnStep(func(s loop.Step) {
		fmt.Printf("%v %v→%v %v\n", s.At, s.In, s.Out, s.Turn)
	}))
	fmt.Println("inside:", w.Interior())

	// Output:
	// 0,1 down→right left
	// 1,1 right→up left
	// 1,0 up→left left
	// 0,0 left→down left
	// inside: side-a
}

// Package pipeloop finds the single closed loop in a grid of pipe tiles and
// counts the cells it encloses, without knowing in advance which way the
// loop winds.
//
// What is pipeloop?
//
//	A small, single-purpose library and CLI built from three phases over one
//	shared grid:
//		• Locate: breadth-first flood from the start tile along connecting pipes
//		• Walk: one pass around the loop, seeding left/right side tags from
//		  the sign of each turn's cross product
//		• Flood: multi-source spread of both tags, loop cells acting as walls
//
// Under the hood, everything is organized under these subpackages:
//
//	pipegrid/  Tile, Direction, State, Grid, parsing & the connectivity predicate
//	loop/      Locate, Walk, Flood, Count, Solve & functional options
//	render/    terminal drawing of a solved grid (lipgloss)
//	config/    YAML settings for the CLI
//	cmd/       the pipeloop command (cobra, zap)
//
// Quick ASCII example:
//
//	.....
//	.S-7.
//	.|.|.      farthest loop cell: 4 steps from S
//	.L-J.      enclosed cells:     1
//	.....
//
//	go install github.com/katalvlaran/pipeloop/cmd/pipeloop@latest
package pipeloop

// Package render draws a solved pipegrid.Grid for a terminal: loop cells as
// box-drawing glyphs, enclosed and outside cells as distinct marks, styled
// with lipgloss when color is enabled.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Glyphs used for non-loop cells.
const (
	InsideMark    = 'I'
	OutsideMark   = 'O'
	UnreachedMark = ' '
)

// boxGlyph is indexed by pipegrid.Tile.
var boxGlyph = [...]rune{
	pipegrid.Empty:      '.',
	pipegrid.Vertical:   '│',
	pipegrid.Horizontal: '─',
	pipegrid.NorthEast:  '└',
	pipegrid.NorthWest:  '┘',
	pipegrid.SouthWest:  '┐',
	pipegrid.SouthEast:  '┌',
	pipegrid.Start:      'S',
}

// Options controls how a grid is drawn.
type Options struct {
	// Color enables lipgloss styling.
	Color bool
	// Inside is the side tag drawn as InsideMark; the other one is drawn as OutsideMark.
	Inside pipegrid.State
	// StartTile, when a pipe, replaces the 'S' glyph with the real shape.
	StartTile pipegrid.Tile
}

// class groups cells that share a style.
type class uint8

const (
	classPlain class = iota
	classLoop
	classStart
	classInside
	classOutside
)

var styles = map[class]lipgloss.Style{
	classPlain:   lipgloss.NewStyle().Faint(true),
	classLoop:    lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA")),
	classStart:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
	classInside:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	classOutside: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
}

// Grid renders g row by row. Runs of equally-styled cells are styled once.
// Complexity: O(W×H).
func Grid(g *pipegrid.Grid, opts Options) string {
	var b strings.Builder
	var run strings.Builder
	for y := 0; y < g.Height; y++ {
		cur := classPlain
		for x := 0; x < g.RowLen(y); x++ {
			r, c := glyph(g.Cell(pipegrid.Point{X: x, Y: y}), opts)
			if c != cur && run.Len() > 0 {
				b.WriteString(paint(run.String(), cur, opts.Color))
				run.Reset()
			}
			cur = c
			run.WriteRune(r)
		}
		if run.Len() > 0 {
			b.WriteString(paint(run.String(), cur, opts.Color))
			run.Reset()
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Legend returns a one-line key for the marks used by Grid.
func Legend(opts Options) string {
	parts := []string{
		paint(string(InsideMark), classInside, opts.Color) + " inside",
		paint(string(OutsideMark), classOutside, opts.Color) + " outside",
		paint("S", classStart, opts.Color) + " start",
	}
	return strings.Join(parts, "  ")
}

func glyph(c pipegrid.Cell, opts Options) (rune, class) {
	switch c.State {
	case pipegrid.Loop:
		if c.Tile == pipegrid.Start {
			if opts.StartTile.IsPipe() {
				return boxGlyph[opts.StartTile], classStart
			}
			return 'S', classStart
		}
		return boxGlyph[c.Tile], classLoop
	case pipegrid.SideA, pipegrid.SideB:
		if c.State == opts.Inside {
			return InsideMark, classInside
		}
		return OutsideMark, classOutside
	case pipegrid.Unvisited:
		return UnreachedMark, classPlain
	}
	return c.Tile.Rune(), classPlain
}

func paint(s string, c class, color bool) string {
	if !color {
		return s
	}
	return styles[c].Render(s)
}

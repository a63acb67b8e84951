package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/render"
)

func newRenderCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	var color string
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the solved grid: the loop, inside (I) and outside (O) cells",
		Long: `Solves the grid and draws it with box characters for the loop,
I for enclosed cells and O for outside cells.

Color follows output.color from the config (auto, always, never);
auto colors only when stdout is a terminal.

Examples:
  pipeloop render input.txt
  pipeloop render --color never input.txt > map.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			res, err := solve(cmd, a, f, g)
			if err != nil {
				return err
			}

			mode := a.cfg.Output.Color
			if cmd.Flags().Changed("color") {
				mode = color
			}
			opts := render.Options{
				Color:     useColor(mode, cmd),
				Inside:    res.InteriorSide,
				StartTile: res.StartTile,
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, render.Grid(g, opts))
			if a.cfg.Output.Legend {
				fmt.Fprintln(out, render.Legend(opts))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&color, "color", "auto", "auto, always or never")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "flood fan-out (overrides solver.workers)")
	cmd.Flags().BoolVar(&f.reverse, "reverse", false, "walk the loop the other way round")
	return cmd
}

// useColor resolves a color mode; auto colors only a terminal stdout.
func useColor(mode string, cmd *cobra.Command) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if cmd.OutOrStdout() != os.Stdout {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

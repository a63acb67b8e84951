// Command pipeloop solves pipe-loop grids: it reports the distance from Start
// to the farthest loop cell and how many cells the loop encloses.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pipeloop/config"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// app carries state shared by every subcommand.
type app struct {
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pipeloop",
		Short: "Find the pipe loop in a grid and count the cells it encloses",
		Long: `pipeloop reads a grid of pipe tiles (| - L J 7 F), ground (.) and one
start tile (S). It follows the single closed loop through S, tags every other
cell as lying left or right of the walk, and reports:

  steps     distance from S to the farthest loop cell
  interior  number of cells enclosed by the loop`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger, err = newLogger(cfg.Logging, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "pipeloop.yaml", "path to the YAML config file")

	root.AddCommand(newSolveCmd(a), newRenderCmd(a))
	return root
}

// newLogger builds a production zap logger at the configured level.
func newLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = lc.Encoding
	if lc.Encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// readGrid parses the file named by args, or stdin when there is none.
func readGrid(cmd *cobra.Command, args []string) (*pipegrid.Grid, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return pipegrid.ParseReader(r)
}

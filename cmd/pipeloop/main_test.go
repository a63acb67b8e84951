package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pipeloop/config"
)

const square = ".....\n.S-7.\n.|.|.\n.L-J.\n.....\n"

// run executes the CLI with stdin and a config path inside a temp dir.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "pipeloop.yaml")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSolveCmd_Stdin(t *testing.T) {
	out, err := run(t, square, "solve")
	require.NoError(t, err)
	assert.Equal(t, "steps: 4\ninterior: 1\n", out)
}

func TestSolveCmd_FileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte(square), 0o644))

	out, err := run(t, "", "solve", "--workers", "2", "--reverse", "--json", path)
	require.NoError(t, err)

	var got solveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, solveOutput{
		Steps:      4,
		Interior:   1,
		Exterior:   16,
		LoopLength: 8,
		StartTile:  "F",
	}, got)
}

func TestSolveCmd_Errors(t *testing.T) {
	_, err := run(t, ".....\n.F-7.\n.L-J.\n", "solve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no start tile")

	_, err = run(t, "S?\n", "solve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed input")

	_, err = run(t, square, "solve", "--workers", "-1")
	require.Error(t, err)

	_, err = run(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestRenderCmd(t *testing.T) {
	out, err := run(t, square, "render", "--color", "never")
	require.NoError(t, err)
	want := "" +
		"OOOOO\n" +
		"O┌─┐O\n" +
		"O│I│O\n" +
		"O└─┘O\n" +
		"OOOOO\n" +
		"I inside  O outside  S start\n"
	assert.Equal(t, want, out)
}

func TestNewLogger_Levels(t *testing.T) {
	l, err := newLogger(config.LoggingConfig{Level: "error", Encoding: "json"}, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel), "verbose forces debug")

	l, err = newLogger(config.LoggingConfig{Level: "warn", Encoding: "console"}, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	_, err = newLogger(config.LoggingConfig{Level: "loud", Encoding: "json"}, false)
	require.Error(t, err)
}

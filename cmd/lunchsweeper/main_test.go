package main

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/lunchsweeper/internal/mines"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	mines.Log.SetOutput(io.Discard)
	m.Run()
}

// wallSession deals the Easy layout with a column of mines at x = 3 and two
// more at (0, 0) and (1, 0).
func wallSession(t *testing.T) *mines.Session {
	t.Helper()
	pts := []mines.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	for y := range 8 {
		pts = append(pts, mines.Point{X: 3, Y: y})
	}
	b, err := mines.NewBoard(8, pts)
	require.NoError(t, err)
	s, err := mines.NewSession(
		mines.WithRand(mines.NewRand(1)),
		mines.WithBoard(mines.Easy, b),
		mines.WithFoodOptions([]string{"sushi"}, []string{"noodles"}),
	)
	require.NoError(t, err)
	return s
}

func TestExecuteCommand(t *testing.T) {
	s := wallSession(t)

	res, err := executeCommand(s, "o 7 7")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res, "opened 32 (cascade)\neasy 8x8, active, 10 mines left\n"), res)
	assert.Contains(t, res, ". . . . 2 0 0 0")

	res, err = executeCommand(s, "o 2 7")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res, "opened 1 (click)"), res)

	res, err = executeCommand(s, "f 0 0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res, "flagged 0 0 (flag)\n"), res)
	assert.Contains(t, res, "9 mines left")
	assert.Contains(t, res, "F . . . 2 0 0 0")

	res, err = executeCommand(s, "f 7 7")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res, "unchanged 7 7 (none)\n"), res)

	res, err = executeCommand(s, "f 1 0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res, "flagged 1 0 (flag)\n"), res)
	res, err = executeCommand(s, "f 1 0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res, "unflagged 1 0 (flag)\n"), res)

	res, err = executeCommand(s, "m")
	require.NoError(t, err)
	assert.Equal(t, "noodles", res)

	res, err = executeCommand(s, "o 3 3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res, "opened 0 (mine)"), res)
	assert.Contains(t, res, "lost")
	assert.Contains(t, res, "lunch: noodles")

	res, err = executeCommand(s, "o 0 7")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res, "opened 0 (none)"), res)
	res, err = executeCommand(s, "f 5 5")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res, "unchanged 5 5 (none)"), res)

	res, err = executeCommand(s, "r")
	require.NoError(t, err)
	assert.Contains(t, res, "easy 8x8, active, 10 mines left")

	res, err = executeCommand(s, "o 0 7")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res, "opened 21 (cascade)"), res)
	_, err = executeCommand(s, "o 7 0")
	require.NoError(t, err)
	res, err = executeCommand(s, "o 2 0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res, "opened 1 (victory)"), res)
	assert.Contains(t, res, "lunch: sushi")
}

func TestExecuteCommandNewGame(t *testing.T) {
	s := wallSession(t)

	res, err := executeCommand(s, "n hard")
	require.NoError(t, err)
	assert.Contains(t, res, "hard 16x16, active, 60 mines left")

	res, err = executeCommand(s, "n")
	require.NoError(t, err)
	assert.Contains(t, res, "hard 16x16")

	_, err = executeCommand(s, "n extreme")
	assert.ErrorIs(t, err, mines.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `schema: error converting value for "difficulty"`)
}

func TestExecuteCommandFoods(t *testing.T) {
	s := wallSession(t)

	res, err := executeCommand(s, "l 壽司郎, Hiro's らぁ麵Kitchen | 9樓自助餐")
	require.NoError(t, err)
	assert.Equal(t, "favorites: 壽司郎, Hiro's らぁ麵Kitchen\nnormals: 9樓自助餐", res)

	res, err = executeCommand(s, "m")
	require.NoError(t, err)
	assert.Equal(t, "9樓自助餐", res)

	_, err = executeCommand(s, "l sushi")
	assert.ErrorIs(t, err, ErrNargs)

	_, err = executeCommand(s, "l sushi |")
	require.NoError(t, err)
	_, err = executeCommand(s, "m")
	assert.ErrorIs(t, err, mines.ErrEmptyList)
}

func TestExecuteCommandErrors(t *testing.T) {
	s := wallSession(t)

	tests := []struct {
		line string
		err  error
	}{
		{"x", ErrUnknownCommand},
		{"o 1", ErrNargs},
		{"o 1 2 3", ErrNargs},
		{"r now", ErrNargs},
		{"n easy hard", ErrNargs},
		{"o 8 0", mines.ErrOutOfRange},
		{"f 0 -1", mines.ErrOutOfRange},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			_, err := executeCommand(s, test.line)
			assert.ErrorIs(t, err, test.err)
		})
	}

	_, err := executeCommand(s, "o a 1")
	assert.Error(t, err)

	res, err := executeCommand(s, "   ")
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestRun(t *testing.T) {
	s := wallSession(t)
	in := strings.NewReader("o 7 7\nbogus\nf 0 0\no 3 3\n")
	var out strings.Builder

	require.NoError(t, run(context.Background(), s, in, &out))

	assert.Contains(t, out.String(), "opened 32 (cascade)")
	assert.Contains(t, out.String(), "error: unknown command")
	assert.Contains(t, out.String(), "opened 0 (mine)")
	assert.Equal(t, mines.Lost, s.Snapshot().Status)
}

func TestRunScanError(t *testing.T) {
	s := wallSession(t)
	in := strings.NewReader("o 7 7\n" + strings.Repeat("x", bufio.MaxScanTokenSize+1))
	var out strings.Builder

	err := run(context.Background(), s, in, &out)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestRunCanceled(t *testing.T) {
	s := wallSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, w := io.Pipe()
	defer w.Close()

	err := run(ctx, s, r, io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}

package mines

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := wallBoard(t)

	assert.Equal(t, 8, b.Size())
	assert.Equal(t, 10, b.MineCount())
	assert.Equal(t, 64, b.Len())
	assert.Equal(t, 54, b.SafeCells())
	requireCounts(t, b)

	assert.Equal(t, 3, b.Value(2, 0))
	assert.Equal(t, 4, b.Value(2, 1))
	assert.Equal(t, 2, b.Value(4, 0))
	assert.Equal(t, 3, b.Value(4, 4))
	assert.Equal(t, 0, b.Value(7, 7))
	assert.Equal(t, Mine, b.Value(3, 5))
}

func TestNewBoardCorners(t *testing.T) {
	b := mustBoard(t, 3, Point{1, 1})
	for y := range 3 {
		for x := range 3 {
			if x == 1 && y == 1 {
				continue
			}
			assert.Equal(t, 1, b.Value(x, y), "cell (%d, %d)", x, y)
		}
	}
	assert.Equal(t, "1 1 1\n1 * 1\n1 1 1\n", b.String())
}

func TestNewBoardInvalid(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		mines []Point
	}{
		{"zero size", 0, nil},
		{"negative size", -3, nil},
		{"out of range", 4, []Point{{4, 0}}},
		{"negative coordinate", 4, []Point{{0, -1}}},
		{"duplicate", 4, []Point{{1, 1}, {2, 2}, {1, 1}}},
		{"too many", 1, []Point{{0, 0}, {0, 0}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewBoard(test.size, test.mines)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument), err)
		})
	}
}

func TestMask(t *testing.T) {
	m := Mask{true, false, true}
	c := m.clone()
	c[1] = true
	assert.Equal(t, 2, m.Count())
	assert.Equal(t, 3, c.Count())
	assert.Nil(t, Mask(nil).clone())
}

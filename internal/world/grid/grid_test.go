package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridIsEmpty(t *testing.T) {
	g := New(4, 6)
	require.Equal(t, 4, g.Rows())
	require.Equal(t, 6, g.Cols())

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			assert.Equal(t, Empty, g.Get(r, c), "cell (%d,%d)", r, c)
		}
	}
	assert.Zero(t, g.WallCount())
}

func TestNewGridNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -2}} {
		g := New(dims[0], dims[1])
		assert.Zero(t, g.Rows())
		assert.Zero(t, g.Cols())
		assert.False(t, g.InBounds(0, 0))
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	g := New(3, 3)
	g.Set(1, 2, Wall)

	assert.Equal(t, Wall, g.Get(1, 2))
	assert.True(t, g.IsWall(1, 2))
	assert.Equal(t, Empty, g.Get(2, 1), "row and column must not be swapped")
	assert.Equal(t, 1, g.WallCount())

	g.Set(1, 2, Empty)
	assert.Equal(t, Empty, g.Get(1, 2))
}

func TestSetOutOfBoundsIsIgnored(t *testing.T) {
	g := New(2, 2)
	assert.NotPanics(t, func() {
		g.Set(-1, 0, Wall)
		g.Set(0, -1, Wall)
		g.Set(2, 0, Wall)
		g.Set(0, 2, Wall)
	})
	assert.Zero(t, g.WallCount())
	assert.Equal(t, Empty, g.Get(5, 5))
	assert.False(t, g.IsWall(-3, 0))
}

func TestClear(t *testing.T) {
	g := New(5, 5)
	for i := 0; i < 5; i++ {
		g.Set(i, i, Wall)
		g.Set(0, i, Wall)
	}
	require.NotZero(t, g.WallCount())

	g.Clear()
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			assert.Equal(t, Empty, g.Get(r, c))
		}
	}
}

func TestCellAt(t *testing.T) {
	g := New(20, 20)

	row, col, ok := g.CellAt(45, 85, 40)
	assert.True(t, ok)
	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)

	_, _, ok = g.CellAt(-5, 10, 40)
	assert.False(t, ok, "negative coordinates must not fold into column 0")

	_, _, ok = g.CellAt(800, 10, 40)
	assert.False(t, ok)

	_, _, ok = g.CellAt(10, 10, 0)
	assert.False(t, ok)
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "wall", Wall.String())
	assert.Equal(t, "empty", Empty.String())
}

package projection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/gridcaster/internal/core/raycast"
	"chosenoffset.com/gridcaster/internal/world/grid"
)

func wallColumn(col int) *grid.Grid {
	g := grid.New(20, 20)
	for r := 0; r < g.Rows(); r++ {
		g.Set(r, col, grid.Wall)
	}
	return g
}

func testParams() Params {
	return Params{
		ScreenWidth:  200,
		ScreenHeight: 400,
		FOV:          math.Pi / 3,
		TileSize:     40,
		MaxDistance:  5000,
	}
}

func TestColumnsWallAhead(t *testing.T) {
	g := wallColumn(15)
	p := testParams()
	cam := Camera{Position: raycast.Point{X: 410, Y: 400}}

	slices := Columns(cam, g, p)
	require.Len(t, slices, p.ScreenWidth, "the wall spans the whole view")

	center := p.ScreenWidth / 2
	for i, s := range slices {
		assert.Equal(t, i, s.Column)
		assert.Equal(t, raycast.SideX, s.Side)
		// Perpendicular distance to the face at x = 600.
		assert.InDelta(t, 190.0, s.Distance, 1e-6)
		assert.GreaterOrEqual(t, s.RawDistance, s.Distance-1e-9)
		assert.GreaterOrEqual(t, s.Top, 0)
		assert.LessOrEqual(t, s.Bottom, p.ScreenHeight)
	}

	assert.InDelta(t, slices[center].RawDistance, slices[center].Distance, 1e-9)
	assert.Greater(t, slices[0].RawDistance, slices[0].Distance+1)
	assert.Greater(t, slices[len(slices)-1].RawDistance, slices[len(slices)-1].Distance+1)

	for i := center; i > 0; i-- {
		assert.LessOrEqual(t, slices[i-1].Height(), slices[i].Height(), "column %d", i-1)
	}
	for i := center; i < len(slices)-1; i++ {
		assert.LessOrEqual(t, slices[i+1].Height(), slices[i].Height(), "column %d", i+1)
	}

	// 40*400/190 ~ 84.2 px, centred on row 200.
	assert.Equal(t, 157, slices[center].Top)
	assert.Equal(t, 242, slices[center].Bottom)
}

func TestColumnsObliqueWallShrinksTowardFarEdge(t *testing.T) {
	g := grid.New(20, 20)
	// A staircase receding to the right of the view.
	for i := 0; i < 10; i++ {
		g.Set(i, 10+i, grid.Wall)
	}
	p := testParams()
	cam := Camera{Position: raycast.Point{X: 300, Y: 300}, Rotation: -math.Pi / 4}

	slices := Columns(cam, g, p)
	require.NotEmpty(t, slices)
	for _, s := range slices {
		assert.LessOrEqual(t, s.Distance, s.RawDistance+1e-9)
		assert.GreaterOrEqual(t, s.Height(), 0)
	}
}

func TestColumnsEmptyGrid(t *testing.T) {
	slices := Columns(Camera{Position: raycast.Point{X: 400, Y: 400}}, grid.New(20, 20), testParams())
	assert.Empty(t, slices)
}

func TestColumnsSkipMisses(t *testing.T) {
	g := grid.New(20, 20)
	for r := 0; r < 10; r++ {
		g.Set(r, 15, grid.Wall)
	}
	p := testParams()

	slices := Columns(Camera{Position: raycast.Point{X: 410, Y: 400}}, g, p)
	require.NotEmpty(t, slices)
	assert.Less(t, len(slices), p.ScreenWidth)
	for _, s := range slices {
		assert.LessOrEqual(t, s.Column, p.ScreenWidth/2, "only rays angled toward the upper rows can hit")
	}
	assert.GreaterOrEqual(t, len(slices), p.ScreenWidth/2)
}

func TestColumnsCloseWallIsClamped(t *testing.T) {
	g := wallColumn(15)
	p := testParams()

	slices := Columns(Camera{Position: raycast.Point{X: 595, Y: 400}}, g, p)
	require.NotEmpty(t, slices)
	center := slices[len(slices)/2]
	assert.Equal(t, 0, center.Top)
	assert.Equal(t, p.ScreenHeight, center.Bottom)
}

func TestColumnsOnWallFaceIsFullHeight(t *testing.T) {
	g := wallColumn(14)
	p := testParams()

	slices := Columns(Camera{Position: raycast.Point{X: 600, Y: 400}, Rotation: math.Pi}, g, p)
	require.Len(t, slices, p.ScreenWidth)
	for _, s := range slices {
		assert.Equal(t, 0.0, s.RawDistance)
		assert.Equal(t, 0, s.Top)
		assert.Equal(t, p.ScreenHeight, s.Bottom)
	}
}

func TestAppendColumnsReusesBuffer(t *testing.T) {
	g := wallColumn(15)
	p := testParams()
	cam := Camera{Position: raycast.Point{X: 410, Y: 400}}

	buf := make([]Slice, 0, p.ScreenWidth)
	buf = AppendColumns(buf, cam, g, p)
	require.Len(t, buf, p.ScreenWidth)
	first := &buf[0]

	buf = AppendColumns(buf[:0], cam, g, p)
	require.Len(t, buf, p.ScreenWidth)
	assert.Same(t, first, &buf[0])
}

func TestColumnsZeroSizedScreen(t *testing.T) {
	p := testParams()
	p.ScreenWidth = 0
	assert.Empty(t, Columns(Camera{}, wallColumn(3), p))
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, testParams().Validate())

	bad := []func(*Params){
		func(p *Params) { p.ScreenWidth = 0 },
		func(p *Params) { p.ScreenHeight = -1 },
		func(p *Params) { p.FOV = 0 },
		func(p *Params) { p.FOV = math.Pi },
		func(p *Params) { p.TileSize = 0 },
		func(p *Params) { p.MaxDistance = math.NaN() },
	}
	for i, mutate := range bad {
		p := testParams()
		mutate(&p)
		assert.Error(t, p.Validate(), "case %d", i)
	}
}

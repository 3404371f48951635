// Package projection turns a camera and a grid into one vertical wall slice
// per screen column.
package projection

import (
	"fmt"
	"math"

	"chosenoffset.com/gridcaster/internal/core/raycast"
	"chosenoffset.com/gridcaster/internal/world/grid"
)

// Camera is the point of view the columns are projected from.
type Camera struct {
	Position raycast.Point
	Rotation float64 // radians
}

// Params describes the screen and the ray budget for a projection pass.
type Params struct {
	ScreenWidth  int
	ScreenHeight int
	FOV          float64 // radians
	TileSize     float64
	MaxDistance  float64
}

// Validate checks that p can produce a sensible projection.
func (p Params) Validate() error {
	if p.ScreenWidth <= 0 || p.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", p.ScreenWidth, p.ScreenHeight)
	}
	if !(p.FOV > 0 && p.FOV < math.Pi) {
		return fmt.Errorf("field of view must be in (0, pi) radians, got %v", p.FOV)
	}
	if !(p.TileSize > 0) {
		return fmt.Errorf("tile size must be positive, got %v", p.TileSize)
	}
	if !(p.MaxDistance > 0) {
		return fmt.Errorf("max distance must be positive, got %v", p.MaxDistance)
	}
	return nil
}

// Slice is a one pixel wide wall strip at a screen column.
type Slice struct {
	Column int
	Top    int
	Bottom int
	// RawDistance is the length of the ray to the wall; Distance has the
	// fisheye correction applied and drives the slice height.
	RawDistance float64
	Distance    float64
	Side        raycast.Side
}

// Height returns the on-screen height of the slice in pixels.
func (s Slice) Height() int {
	return s.Bottom - s.Top
}

// Columns returns the wall slices for every screen column that hits a wall.
func Columns(cam Camera, g *grid.Grid, p Params) []Slice {
	return AppendColumns(nil, cam, g, p)
}

// AppendColumns appends the slices for the current view to dst and returns
// the extended slice. Columns whose ray reaches MaxDistance produce nothing.
func AppendColumns(dst []Slice, cam Camera, g *grid.Grid, p Params) []Slice {
	if p.ScreenWidth <= 0 || p.ScreenHeight <= 0 {
		return dst
	}

	start := cam.Rotation - p.FOV/2
	radPerPx := p.FOV / float64(p.ScreenWidth)
	screenH := float64(p.ScreenHeight)

	for i := 0; i < p.ScreenWidth; i++ {
		rot := start + float64(i)*radPerPx

		hit := raycast.Trace(cam.Position, raycast.Direction(rot), g, p.TileSize, p.MaxDistance)
		if hit.Distance == p.MaxDistance {
			continue
		}

		dist := hit.Distance * math.Cos(rot-cam.Rotation)

		top, bottom := 0, p.ScreenHeight
		if dist > 0 {
			wallHeight := (p.TileSize * screenH) / dist
			top = toPixel(screenH/2-wallHeight/2, p.ScreenHeight)
			bottom = toPixel(screenH/2+wallHeight/2, p.ScreenHeight)
		}

		dst = append(dst, Slice{
			Column:      i,
			Top:         top,
			Bottom:      bottom,
			RawDistance: hit.Distance,
			Distance:    dist,
			Side:        hit.Side,
		})
	}
	return dst
}

// toPixel truncates v to a row index in [0, max]. Clamping happens before the
// conversion since very close walls give heights far outside the int range.
func toPixel(v float64, max int) int {
	if !(v > 0) {
		return 0
	}
	if v >= float64(max) {
		return max
	}
	return int(v)
}

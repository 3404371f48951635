// Package raycast finds the first wall a ray meets on a tile grid using a
// digital differential analyzer: the ray is advanced one grid line at a time
// instead of being sampled at fixed increments.
package raycast

import (
	"math"

	"chosenoffset.com/gridcaster/internal/world/grid"
)

// Cast returns the distance from origin along direction to the first wall
// cell of g. tileSize is the side length of one cell in world units. When no
// wall is met within maxDistance the result is exactly maxDistance, so
// callers treat result == maxDistance as a miss.
func Cast(origin, direction Point, g *grid.Grid, tileSize, maxDistance float64) float64 {
	return Trace(origin, direction, g, tileSize, maxDistance).Distance
}

// maxCellIndex bounds the cell coordinates the walk starts from. Beyond it
// float64 can no longer represent a single tile step next to the origin.
const maxCellIndex = 1 << 40

// Trace is Cast that also reports which cell was hit and through which face.
func Trace(origin, direction Point, g *grid.Grid, tileSize, maxDistance float64) Hit {
	hit, _ := trace(origin, direction, g, tileSize, maxDistance)
	return hit
}

// trace walks the grid and also returns the number of grid lines crossed.
func trace(origin, direction Point, g *grid.Grid, tileSize, maxDistance float64) (Hit, int) {
	if !(maxDistance > 0) {
		return Hit{}, 0
	}
	miss := Hit{Distance: maxDistance}
	if g == nil || !(tileSize > 0) || (direction.X == 0 && direction.Y == 0) {
		return miss, 0
	}
	if !finiteCell(origin.X/tileSize) || !finiteCell(origin.Y/tileSize) ||
		math.IsNaN(direction.X) || math.IsNaN(direction.Y) {
		return miss, 0
	}

	// Distance travelled along the ray to cross one full cell on each axis,
	// per unit of tile size.
	unitX := unitStep(direction.X, direction.Y)
	unitY := unitStep(direction.Y, direction.X)

	col := int(math.Floor(origin.X / tileSize))
	row := int(math.Floor(origin.Y / tileSize))

	stepX, stepY := 1, 1
	var lenX, lenY float64
	if direction.X < 0 {
		stepX = -1
		lenX = lineDistance(origin.X-float64(col)*tileSize, unitX)
	} else {
		lenX = lineDistance(float64(col+1)*tileSize-origin.X, unitX)
	}
	if direction.Y < 0 {
		stepY = -1
		lenY = lineDistance(origin.Y-float64(row)*tileSize, unitY)
	} else {
		lenY = lineDistance(float64(row+1)*tileSize-origin.Y, unitY)
	}

	maxSteps := math.MaxInt
	if n := maxDistance / tileSize; n < maxCellIndex {
		maxSteps = stepBound(n)
	}

	distance := 0.0
	steps := 0
	for distance < maxDistance && steps < maxSteps {
		steps++
		var side Side
		if lenX < lenY {
			col += stepX
			distance = lenX
			lenX += unitX * tileSize
			side = SideX
		} else {
			row += stepY
			distance = lenY
			lenY += unitY * tileSize
			side = SideY
		}

		if g.IsWall(row, col) {
			if distance >= maxDistance {
				break
			}
			return Hit{Distance: distance, Wall: true, Row: row, Col: col, Side: side}, steps
		}

		// Out of bounds cells are passable, but a ray that is outside the grid
		// and heading further out can never come back.
		if leaving(col, stepX, direction.X, g.Cols()) || leaving(row, stepY, direction.Y, g.Rows()) {
			break
		}
	}
	return miss, steps
}

// stepBound caps the walk for a range of n tiles. Every crossing on one axis
// moves at least one tile further along the ray, so each axis crosses at most
// ceil(n)+1 lines before the range runs out; one more per axis absorbs
// rounding in the first offset.
func stepBound(n float64) int {
	return 2 * (int(math.Ceil(n)) + 2)
}

// finiteCell reports whether v is a usable cell coordinate.
func finiteCell(v float64) bool {
	return !math.IsNaN(v) && math.Abs(v) < maxCellIndex
}

// unitStep returns sqrt(1 + (other/along)^2). An axis the ray never moves
// along has an infinite step, so it never wins the next-line comparison.
func unitStep(along, other float64) float64 {
	if along == 0 {
		return math.Inf(1)
	}
	r := other / along
	return math.Sqrt(1 + r*r)
}

// lineDistance scales the offset to the first grid line by the unit step.
// An infinite step stays infinite even when the offset is zero.
func lineDistance(offset, unit float64) float64 {
	if math.IsInf(unit, 1) {
		return unit
	}
	return offset * unit
}

func leaving(pos, step int, component float64, size int) bool {
	if pos < 0 {
		return step < 0 || component == 0
	}
	if pos >= size {
		return step > 0 || component == 0
	}
	return false
}

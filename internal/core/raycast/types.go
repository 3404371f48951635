package raycast

import "math"

// Point represents a 2D point or vector in world space.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Direction returns the unit vector pointing at angle radians.
func Direction(angle float64) Point {
	return Point{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Ray is an origin and a direction. The direction is expected to be a unit
// vector; zero components are allowed.
type Ray struct {
	Origin    Point
	Direction Point
}

// At returns the point reached after travelling dist along the ray.
func (r Ray) At(dist float64) Point {
	return r.Origin.Add(r.Direction.Scale(dist))
}

// Side identifies which kind of grid line the ray crossed to enter the hit cell.
type Side uint8

const (
	SideNone Side = iota
	// SideX means the ray stepped along X and crossed a vertical grid line.
	SideX
	// SideY means the ray stepped along Y and crossed a horizontal grid line.
	SideY
)

// Hit is the outcome of tracing a ray through the grid.
type Hit struct {
	// Distance is the travelled distance to the near face of the hit cell,
	// or the max distance on a miss.
	Distance float64
	// Wall is false when nothing was hit within range.
	Wall     bool
	Row, Col int
	Side     Side
}

package raycast

import "chosenoffset.com/gridcaster/internal/world/grid"

// FanRay is one ray of a fan together with the angle it was cast at.
type FanRay struct {
	Ray   Ray
	Angle float64
	Hit   Hit
}

// End returns where the ray stopped: the hit face, or the range limit.
func (f FanRay) End() Point {
	return f.Ray.At(f.Hit.Distance)
}

// Fan traces samples rays spread evenly across fov radians centred on
// rotation. The first and last rays lie exactly on the edges of the view.
func Fan(origin Point, rotation, fov float64, samples int, g *grid.Grid, tileSize, maxDistance float64) []FanRay {
	if samples <= 0 {
		return nil
	}

	rays := make([]FanRay, 0, samples)
	start := rotation - fov/2
	step := 0.0
	if samples > 1 {
		step = fov / float64(samples-1)
	} else {
		start = rotation
	}

	for i := 0; i < samples; i++ {
		angle := start + float64(i)*step
		dir := Direction(angle)
		rays = append(rays, FanRay{
			Ray:   Ray{Origin: origin, Direction: dir},
			Angle: angle,
			Hit:   Trace(origin, dir, g, tileSize, maxDistance),
		})
	}
	return rays
}

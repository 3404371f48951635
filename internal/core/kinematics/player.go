// Package kinematics integrates the first-person player once per frame:
// pointer motion turns the view, held direction keys accelerate the body and
// drag bleeds the velocity back toward zero.
package kinematics

import (
	"math"

	"chosenoffset.com/gridcaster/internal/core/raycast"
)

// Input is the per-frame control state fed to Update.
type Input struct {
	PointerDeltaX float64
	Forward       bool
	Back          bool
	Left          bool
	Right         bool
}

// Player is the camera body moving through the world.
type Player struct {
	Position raycast.Point
	Velocity raycast.Point
	MoveDir  raycast.Point
	Rotation float64 // radians, unbounded
	Speed    float64 // acceleration added per frame while a key is held
	Drag     float64 // fraction of velocity removed per frame, in [0, 1)
}

// NewPlayer places a player at pos facing rotation.
func NewPlayer(pos raycast.Point, rotation, speed, drag float64) *Player {
	return &Player{
		Position: pos,
		Rotation: rotation,
		Speed:    speed,
		Drag:     drag,
	}
}

// Update advances the player by one frame.
func (p *Player) Update(in Input, sensitivity float64) {
	p.Rotation += in.PointerDeltaX * sensitivity

	sin, cos := math.Sincos(p.Rotation)
	var dir raycast.Point

	if in.Forward {
		dir.X += cos
		dir.Y += sin
	} else if in.Back {
		dir.X -= cos
		dir.Y -= sin
	}

	// Strafing uses the perpendicular of the view direction.
	if in.Left {
		dir.X += sin
		dir.Y -= cos
	} else if in.Right {
		dir.X -= sin
		dir.Y += cos
	}

	p.MoveDir = dir
	p.Velocity = p.Velocity.Add(p.MoveDir.Scale(p.Speed))
	p.Velocity = p.Velocity.Sub(p.Velocity.Scale(p.Drag))
	p.Position = p.Position.Add(p.Velocity)
}

// ViewDir returns the unit vector the player is looking along.
func (p *Player) ViewDir() raycast.Point {
	return raycast.Direction(p.Rotation)
}

// TerminalSpeed is the steady-state speed reached by holding one direction:
// the fixed point of v = (v + speed) * (1 - drag).
func TerminalSpeed(speed, drag float64) float64 {
	if drag <= 0 {
		return math.Inf(1)
	}
	return speed * (1 - drag) / drag
}

package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/gridcaster/internal/core/raycast"
)

func TestForwardConvergesToTerminalSpeed(t *testing.T) {
	p := NewPlayer(raycast.Point{X: 400, Y: 400}, 0, 0.5, 0.14)
	want := TerminalSpeed(0.5, 0.14)
	require.InDelta(t, 0.5*0.86/0.14, want, 1e-12)

	for i := 0; i < 300; i++ {
		p.Update(Input{Forward: true}, DefaultSensitivity)
	}
	assert.InDelta(t, want, p.Velocity.X, 1e-6)
	assert.InDelta(t, 0, p.Velocity.Y, 1e-9)
	assert.Greater(t, p.Position.X, 400.0)
}

func TestFirstFrameIntegration(t *testing.T) {
	p := NewPlayer(raycast.Point{}, 0, 0.5, 0.14)
	p.Update(Input{Forward: true}, DefaultSensitivity)

	assert.Equal(t, raycast.Point{X: 1, Y: 0}, p.MoveDir)
	assert.InDelta(t, 0.43, p.Velocity.X, 1e-12)
	assert.InDelta(t, 0.43, p.Position.X, 1e-12)
}

func TestDragDecaysWithoutInput(t *testing.T) {
	p := NewPlayer(raycast.Point{}, 0, 0.5, 0.5)
	p.Velocity = raycast.Point{X: 10, Y: -4}

	p.Update(Input{}, DefaultSensitivity)
	assert.InDelta(t, 5, p.Velocity.X, 1e-12)
	assert.InDelta(t, -2, p.Velocity.Y, 1e-12)
	assert.InDelta(t, 5, p.Position.X, 1e-12)
	assert.Equal(t, raycast.Point{}, p.MoveDir)

	for i := 0; i < 100; i++ {
		p.Update(Input{}, DefaultSensitivity)
	}
	assert.InDelta(t, 0, math.Hypot(p.Velocity.X, p.Velocity.Y), 1e-12)
}

func TestRotationFromPointer(t *testing.T) {
	p := NewPlayer(raycast.Point{}, 0, 0.5, 0.14)
	p.Update(Input{PointerDeltaX: 100}, 0.005)
	assert.InDelta(t, 0.5, p.Rotation, 1e-12)

	p.Update(Input{PointerDeltaX: -300}, 0.005)
	assert.InDelta(t, -1.0, p.Rotation, 1e-12)

	view := p.ViewDir()
	assert.InDelta(t, math.Cos(-1), view.X, 1e-12)
	assert.InDelta(t, math.Sin(-1), view.Y, 1e-12)
}

func TestMoveDirection(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want raycast.Point
	}{
		{"forward", Input{Forward: true}, raycast.Point{X: 1}},
		{"back", Input{Back: true}, raycast.Point{X: -1}},
		{"forward wins over back", Input{Forward: true, Back: true}, raycast.Point{X: 1}},
		{"left", Input{Left: true}, raycast.Point{Y: -1}},
		{"right", Input{Right: true}, raycast.Point{Y: 1}},
		{"left wins over right", Input{Left: true, Right: true}, raycast.Point{Y: -1}},
		{"forward and left", Input{Forward: true, Left: true}, raycast.Point{X: 1, Y: -1}},
		{"back and right", Input{Back: true, Right: true}, raycast.Point{X: -1, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(raycast.Point{}, 0, 0.5, 0.14)
			p.Update(tt.in, DefaultSensitivity)
			assert.InDelta(t, tt.want.X, p.MoveDir.X, 1e-12)
			assert.InDelta(t, tt.want.Y, p.MoveDir.Y, 1e-12)
		})
	}
}

func TestMoveDirectionFollowsRotation(t *testing.T) {
	p := NewPlayer(raycast.Point{}, math.Pi/2, 1, 0.5)
	p.Update(Input{Forward: true}, DefaultSensitivity)
	assert.InDelta(t, 0, p.MoveDir.X, 1e-12)
	assert.InDelta(t, 1, p.MoveDir.Y, 1e-12)

	p = NewPlayer(raycast.Point{}, math.Pi/2, 1, 0.5)
	p.Update(Input{Left: true}, DefaultSensitivity)
	assert.InDelta(t, 1, p.MoveDir.X, 1e-12)
	assert.InDelta(t, 0, p.MoveDir.Y, 1e-12)
}

func TestTerminalSpeedWithoutDrag(t *testing.T) {
	assert.True(t, math.IsInf(TerminalSpeed(0.5, 0), 1))
}

package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSensitivityClamp(t *testing.T) {
	assert.Equal(t, MinSensitivity, NewSensitivity(0).Value())
	assert.Equal(t, MinSensitivity, NewSensitivity(-1).Value())
	assert.Equal(t, MinSensitivity, NewSensitivity(math.NaN()).Value())
	assert.Equal(t, MaxSensitivity, NewSensitivity(1).Value())
	assert.Equal(t, 0.005, NewSensitivity(0.005).Value())
}

func TestSensitivitySteps(t *testing.T) {
	s := NewSensitivity(DefaultSensitivity)

	s.Increase()
	assert.InDelta(t, 0.006, s.Value(), 1e-12)

	s.Decrease()
	s.Decrease()
	assert.InDelta(t, 0.004, s.Value(), 1e-12)

	for i := 0; i < 100; i++ {
		s.Decrease()
	}
	assert.Equal(t, MinSensitivity, s.Value())

	for i := 0; i < 100; i++ {
		s.Increase()
	}
	assert.Equal(t, MaxSensitivity, s.Value())
}

func TestSensitivityAdjustPrecedence(t *testing.T) {
	s := NewSensitivity(DefaultSensitivity)
	s.Adjust(true, true)
	assert.InDelta(t, 0.006, s.Value(), 1e-12)

	s.Adjust(false, true)
	assert.InDelta(t, 0.005, s.Value(), 1e-12)

	s.Adjust(false, false)
	assert.InDelta(t, 0.005, s.Value(), 1e-12)
}

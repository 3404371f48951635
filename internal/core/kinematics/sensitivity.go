package kinematics

// Pointer sensitivity limits, in radians per pixel of pointer travel.
const (
	MinSensitivity     = 0.0001
	MaxSensitivity     = 0.05
	SensitivityStep    = 0.001
	DefaultSensitivity = 0.005
)

// Sensitivity scales pointer motion into rotation.
type Sensitivity struct {
	value float64
}

// NewSensitivity returns a sensitivity clamped into the allowed range.
func NewSensitivity(v float64) Sensitivity {
	s := Sensitivity{value: v}
	s.clamp()
	return s
}

// Value returns the current sensitivity.
func (s Sensitivity) Value() float64 { return s.value }

// Increase raises the sensitivity by one step.
func (s *Sensitivity) Increase() {
	s.value += SensitivityStep
	s.clamp()
}

// Decrease lowers the sensitivity by one step.
func (s *Sensitivity) Decrease() {
	s.value -= SensitivityStep
	s.clamp()
}

// Adjust applies the frame's key presses. Increase takes precedence when both
// are pressed.
func (s *Sensitivity) Adjust(increase, decrease bool) {
	if increase {
		s.Increase()
	} else if decrease {
		s.Decrease()
	}
}

func (s *Sensitivity) clamp() {
	if !(s.value >= MinSensitivity) {
		s.value = MinSensitivity
	} else if s.value > MaxSensitivity {
		s.value = MaxSensitivity
	}
}

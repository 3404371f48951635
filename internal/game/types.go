package game

// Mode selects which update and draw pair runs each frame.
type Mode int

const (
	// ModeEdit is the top-down view where walls are painted.
	ModeEdit Mode = iota
	// ModeExplore is the first-person raycast view.
	ModeExplore
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "edit"
	case ModeExplore:
		return "explore"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeEdit {
		return ModeExplore
	}
	return ModeEdit
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// pointerTracker turns absolute cursor positions into per-frame deltas.
type pointerTracker struct {
	lastX, lastY int
	primed       bool
}

// reset makes the next sample report zero motion.
func (p *pointerTracker) reset() {
	p.primed = false
}

// delta records (x, y) and returns the horizontal motion since the previous
// sample.
func (p *pointerTracker) delta(x, y int) float64 {
	if !p.primed {
		p.lastX, p.lastY, p.primed = x, y, true
		return 0
	}
	dx := x - p.lastX
	p.lastX, p.lastY = x, y
	return float64(dx)
}

package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Spin is the rotation state of a continuously turning model.
// The accumulated angle only grows; the axis alternates between Y and X on every full turn.
type Spin struct {
	Step  float64 // radians per frame
	total float64
}

// NewSpin returns a Spin advancing by step radians per frame.
func NewSpin(step float64) *Spin {
	return &Spin{Step: step}
}

// Advance moves the spin forward one frame and returns the angle within the current turn
// and the axis for that turn.
func (s *Spin) Advance() (float32, mgl32.Vec3) {
	s.total += s.Step
	return s.Current()
}

// Current returns the angle within the current turn and its axis without advancing.
func (s *Spin) Current() (float32, mgl32.Vec3) {
	angle := math.Mod(s.total, 2*math.Pi)
	axis := mgl32.Vec3{0, 1, 0}
	if s.Turns()%2 == 1 {
		axis = mgl32.Vec3{1, 0, 0}
	}
	return float32(angle), axis
}

// Total returns the accumulated angle in radians.
func (s *Spin) Total() float64 {
	return s.total
}

// Turns returns the number of completed full turns.
func (s *Spin) Turns() int {
	return int(s.total / (2 * math.Pi))
}

package ui

import (
	"math"
	"time"
)

// Spring is a damped harmonic oscillator that eases Value toward Target.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64

	Value    float64
	Velocity float64
	Target   float64
}

func NewSpring(stiffness, damping float64) Spring {
	return Spring{Stiffness: stiffness, Damping: damping, Mass: 1}
}

// Step integrates one frame (semi-implicit Euler).
func (s *Spring) Step(dt time.Duration) {
	m := s.Mass
	if m <= 0 {
		m = 1
	}
	h := dt.Seconds()
	force := -s.Stiffness*(s.Value-s.Target) - s.Damping*s.Velocity
	s.Velocity += force / m * h
	s.Value += s.Velocity * h
}

// Settled reports whether the spring is within eps of rest at its target.
func (s *Spring) Settled(eps float64) bool {
	return math.Abs(s.Value-s.Target) < eps && math.Abs(s.Velocity) < eps
}

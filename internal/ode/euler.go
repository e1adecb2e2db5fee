package ode

import "github.com/san-kum/integro/internal/linalg"

// Euler is the explicit (forward) Euler stepper.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys System, t float64, y linalg.Vector, h float64) (linalg.Vector, error) {
	dy := sys.Derive(t, y)
	next := make(linalg.Vector, len(y))
	for i := range y {
		next[i] = y[i] + h*dy[i]
	}
	return next, nil
}

package ode

import "github.com/san-kum/integro/internal/linalg"

// RK4 is the classical fourth-order Runge-Kutta stepper. Stage buffers
// are reused across steps, so a single RK4 value must not be shared
// between concurrent integrations.
type RK4 struct {
	k1, k2, k3, k4 linalg.Vector
	scratch        linalg.Vector
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(linalg.Vector, n)
		r.k2 = make(linalg.Vector, n)
		r.k3 = make(linalg.Vector, n)
		r.k4 = make(linalg.Vector, n)
		r.scratch = make(linalg.Vector, n)
	}
}

func (r *RK4) Step(sys System, t float64, y linalg.Vector, h float64) (linalg.Vector, error) {
	n := len(y)
	r.ensureScratch(n)

	copy(r.k1, sys.Derive(t, y))

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + h*0.5*r.k1[i]
	}
	copy(r.k2, sys.Derive(t+h*0.5, r.scratch))

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + h*0.5*r.k2[i]
	}
	copy(r.k3, sys.Derive(t+h*0.5, r.scratch))

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + h*r.k3[i]
	}
	copy(r.k4, sys.Derive(t+h, r.scratch))

	next := make(linalg.Vector, n)
	h6 := h / 6.0
	for i := 0; i < n; i++ {
		next[i] = y[i] + h6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}

	return next, nil
}

package ode

import (
	"github.com/san-kum/integro/internal/linalg"
	"github.com/san-kum/integro/internal/roots"
)

// BackwardEuler is the implicit (backward) Euler stepper. Each step
// solves x - y_k - h*f(t_{k+1}, x) = 0 for x with Newton-Raphson,
// warm-started from the previous state and using a forward-difference
// Jacobian of the residual.
type BackwardEuler struct {
	// MaxIter and Tol configure the inner Newton solve. Zero values
	// fall back to the roots package defaults.
	MaxIter int
	Tol     float64

	stats Stats
}

// Stats aggregates inner-solver health across the steps taken by one
// BackwardEuler value. Unconverged counts steps whose Newton solve
// exhausted MaxIter; the best-effort iterate is still accepted as the
// next state on those steps.
type Stats struct {
	Steps            int
	NewtonIterations int
	Unconverged      int
}

func NewBackwardEuler() *BackwardEuler {
	return &BackwardEuler{
		MaxIter: roots.DefaultMaxIter,
		Tol:     roots.DefaultTol,
	}
}

func (be *BackwardEuler) Stats() Stats { return be.stats }

// stepResidual is the nonlinear system for one implicit step, held as a
// value record rather than a closure over loop variables. Its root is
// the state at time t.
type stepResidual struct {
	sys  System
	prev linalg.Vector
	t    float64 // time at the end of the step
	h    float64
}

func (r stepResidual) eval(x linalg.Vector) linalg.Vector {
	fx := r.sys.Derive(r.t, x)
	res := make(linalg.Vector, len(x))
	for i := range x {
		res[i] = x[i] - r.prev[i] - r.h*fx[i]
	}
	return res
}

func (be *BackwardEuler) Step(sys System, t float64, y linalg.Vector, h float64) (linalg.Vector, error) {
	residual := stepResidual{sys: sys, prev: y, t: t + h, h: h}

	res, err := roots.Solve(residual.eval, y, roots.Options{
		MaxIter:  be.MaxIter,
		Tol:      be.Tol,
		Jacobian: roots.ForwardDifference(),
	})

	be.stats.Steps++
	be.stats.NewtonIterations += res.Iterations
	if err != nil {
		return nil, err
	}
	if !res.Converged {
		be.stats.Unconverged++
	}

	return res.Root, nil
}

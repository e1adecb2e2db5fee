// Package ode integrates initial-value problems dy/dt = f(t, y) with
// fixed-step methods.
//
// A [System] supplies the right-hand side, a [Stepper] advances the
// state by one step, and [Integrate] drives the stepping loop to
// produce a [Solution] trace. Explicit steppers ([Euler], [RK4]) apply
// a closed-form update; [BackwardEuler] solves one nonlinear system per
// step via Newton-Raphson.
package ode

import (
	"fmt"
	"math"

	"github.com/san-kum/integro/internal/linalg"
)

// System describes a first-order ODE system dy/dt = f(t, y).
type System interface {
	Dim() int
	Derive(t float64, y linalg.Vector) linalg.Vector
}

// Func is a plain right-hand-side function.
type Func func(t float64, y linalg.Vector) linalg.Vector

type funcSystem struct {
	dim int
	f   Func
}

// SystemFunc adapts a plain function to the System interface.
func SystemFunc(dim int, f Func) System { return funcSystem{dim: dim, f: f} }

func (s funcSystem) Dim() int { return s.dim }

func (s funcSystem) Derive(t float64, y linalg.Vector) linalg.Vector { return s.f(t, y) }

// Stepper advances a state vector across one step of size h, reading
// the derivative at whatever interior times its scheme requires.
type Stepper interface {
	Step(sys System, t float64, y linalg.Vector, h float64) (linalg.Vector, error)
}

// Solution is an integration trace: States[i] is the state at Times[i].
type Solution struct {
	Times  []float64
	States []linalg.Vector
}

func (s *Solution) Len() int { return len(s.Times) }

// Final returns the last time point and state of the trace.
func (s *Solution) Final() (float64, linalg.Vector) {
	n := len(s.Times)
	if n == 0 {
		return 0, nil
	}
	return s.Times[n-1], s.States[n-1]
}

// Component extracts the trajectory of state component j.
func (s *Solution) Component(j int) []float64 {
	out := make([]float64, len(s.States))
	for i, state := range s.States {
		if j < len(state) {
			out[i] = state[j]
		}
	}
	return out
}

// Integrate advances sys from (t0, y0) to t1 in fixed steps of h and
// returns the full trace, including the initial condition.
//
// The step count is ceil((t1-t0)/h); when h does not divide the
// interval evenly, the final sample lands at t0 + steps*h, which may
// exceed t1. The overshoot is preserved rather than clamped so that all
// steps share the same size.
//
// h <= 0 and t1 <= t0 are rejected before any stepping. A stepper error
// aborts the run and returns the trace accumulated so far alongside the
// error.
func Integrate(sys System, st Stepper, t0, t1 float64, y0 linalg.Vector, h float64) (*Solution, error) {
	if h <= 0 {
		return nil, fmt.Errorf("ode: step size must be positive, got %g", h)
	}
	if t1 <= t0 {
		return nil, fmt.Errorf("ode: t1 (%g) must be greater than t0 (%g)", t1, t0)
	}
	if len(y0) != sys.Dim() {
		return nil, fmt.Errorf("ode: initial state has dimension %d, system expects %d",
			len(y0), sys.Dim())
	}

	steps := int(math.Ceil((t1 - t0) / h))

	sol := &Solution{
		Times:  make([]float64, 0, steps+1),
		States: make([]linalg.Vector, 0, steps+1),
	}

	t := t0
	y := y0.Clone()
	sol.Times = append(sol.Times, t)
	sol.States = append(sol.States, y.Clone())

	for i := 0; i < steps; i++ {
		next, err := st.Step(sys, t, y, h)
		if err != nil {
			return sol, fmt.Errorf("ode: step %d (t=%g): %w", i, t, err)
		}

		t += h
		y = next
		sol.Times = append(sol.Times, t)
		sol.States = append(sol.States, y.Clone())
	}

	return sol, nil
}

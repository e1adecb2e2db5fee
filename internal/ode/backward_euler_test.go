package ode

import (
	"math"
	"testing"

	"github.com/san-kum/integro/internal/linalg"
)

func TestBackwardEulerDecay(t *testing.T) {
	be := NewBackwardEuler()
	sol, err := Integrate(decaySystem(), be, 0, 1, linalg.Vector{1.0}, 0.01)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	_, y := sol.Final()
	expected := math.Exp(-1)
	if math.Abs(y[0]-expected) > 0.01 {
		t.Errorf("y(1) = %.6f, expected within 0.01 of %.6f", y[0], expected)
	}
}

func TestBackwardEulerOscillator(t *testing.T) {
	be := NewBackwardEuler()
	sol, err := Integrate(oscillatorSystem(), be, 0, 1, linalg.Vector{1, 0}, 0.001)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	tFinal, y := sol.Final()
	// First-order method: expect coarse agreement only.
	if math.Abs(y[0]-math.Cos(tFinal)) > 1e-2 {
		t.Errorf("position = %.6f, expected near %.6f", y[0], math.Cos(tFinal))
	}
}

func TestBackwardEulerStiffStability(t *testing.T) {
	// dy/dt = -50y with h=0.1 is far outside the explicit Euler
	// stability region but backward Euler stays bounded and decays.
	stiff := SystemFunc(1, func(t float64, y linalg.Vector) linalg.Vector {
		return linalg.Vector{-50 * y[0]}
	})

	be := NewBackwardEuler()
	sol, err := Integrate(stiff, be, 0, 1, linalg.Vector{1.0}, 0.1)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	_, y := sol.Final()
	if math.Abs(y[0]) > 1e-3 {
		t.Errorf("stiff solution did not decay: y(1) = %g", y[0])
	}

	explicit, err := Integrate(stiff, NewEuler(), 0, 1, linalg.Vector{1.0}, 0.1)
	if err != nil {
		t.Fatalf("explicit integrate failed: %v", err)
	}
	_, yExplicit := explicit.Final()
	if math.Abs(yExplicit[0]) < math.Abs(y[0]) {
		t.Error("explicit euler unexpectedly beat backward euler on the stiff problem")
	}
}

func TestBackwardEulerStats(t *testing.T) {
	be := NewBackwardEuler()
	if _, err := Integrate(decaySystem(), be, 0, 1, linalg.Vector{1.0}, 0.1); err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	stats := be.Stats()
	if stats.Steps != 10 {
		t.Errorf("steps = %d, expected 10", stats.Steps)
	}
	if stats.NewtonIterations < stats.Steps {
		t.Errorf("expected at least one newton iteration per step, got %d over %d steps",
			stats.NewtonIterations, stats.Steps)
	}
	if stats.Unconverged != 0 {
		t.Errorf("linear decay residual should always converge, got %d unconverged steps",
			stats.Unconverged)
	}
}

func TestBackwardEulerWarmStart(t *testing.T) {
	// With a linear residual the Newton solve is exact after one
	// correction, so the per-step iteration count stays tiny.
	be := NewBackwardEuler()
	if _, err := Integrate(decaySystem(), be, 0, 1, linalg.Vector{1.0}, 0.01); err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	stats := be.Stats()
	perStep := float64(stats.NewtonIterations) / float64(stats.Steps)
	if perStep > 3 {
		t.Errorf("average %.1f newton iterations per step, expected warm starts to keep this small", perStep)
	}
}

func TestBackwardEulerNonlinear(t *testing.T) {
	// Logistic equation dy/dt = y(1-y) has solution
	// y(t) = y0 e^t / (1 + y0(e^t - 1)).
	logistic := SystemFunc(1, func(t float64, y linalg.Vector) linalg.Vector {
		return linalg.Vector{y[0] * (1 - y[0])}
	})

	be := NewBackwardEuler()
	sol, err := Integrate(logistic, be, 0, 2, linalg.Vector{0.1}, 0.001)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	tF, y := sol.Final()
	et := math.Exp(tF)
	exact := 0.1 * et / (1 + 0.1*(et-1))
	if math.Abs(y[0]-exact) > 1e-2 {
		t.Errorf("y(%g) = %.6f, expected near %.6f", tF, y[0], exact)
	}
}

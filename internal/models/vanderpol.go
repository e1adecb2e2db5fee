package models

import (
	"fmt"

	"github.com/san-kum/integro/internal/linalg"
)

// VanDerPol is the Van der Pol oscillator:
//
//	dx/dt = y
//	dy/dt = mu*(1 - x^2)*y - x
//
// Large mu makes the system stiff, which is where the implicit stepper
// earns its keep.
type VanDerPol struct {
	Mu float64
}

func NewVanDerPol() *VanDerPol {
	return &VanDerPol{Mu: 1.0}
}

func (v *VanDerPol) Dim() int { return 2 }

func (v *VanDerPol) Derive(t float64, state linalg.Vector) linalg.Vector {
	x, y := state[0], state[1]
	return linalg.Vector{y, v.Mu*(1-x*x)*y - x}
}

func (v *VanDerPol) DefaultState() linalg.Vector {
	return linalg.Vector{2.0, 0.0}
}

func (v *VanDerPol) GetParams() map[string]float64 {
	return map[string]float64{"mu": v.Mu}
}

func (v *VanDerPol) SetParam(name string, value float64) error {
	if name != "mu" {
		return fmt.Errorf("models: vanderpol has no parameter %q", name)
	}
	v.Mu = value
	return nil
}
